package tracker

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/x-xyz/otc-market/base/abi"
	bCtx "github.com/x-xyz/otc-market/base/ctx"
	"github.com/x-xyz/otc-market/base/log"
	"github.com/x-xyz/otc-market/domain"
	"github.com/x-xyz/otc-market/domain/erc721"
)

var transferSig = abi.ERC721TokenABI.Events["Transfer"].ID

type Erc721EventHandler struct {
	transferUC erc721.TransferUseCase
}

func NewErc721EventHandler(transferUC erc721.TransferUseCase) EventHandler {
	return &Erc721EventHandler{
		transferUC: transferUC,
	}
}

func (h *Erc721EventHandler) GetFilterTopics() [][]common.Hash {
	return [][]common.Hash{
		{
			transferSig,
		},
	}
}

func (h *Erc721EventHandler) ProcessEvents(ctx bCtx.Ctx, logs []types.Log) error {
	for i := range logs {
		l := &logs[i]
		if len(l.Topics) == 0 || l.Topics[0] != transferSig {
			ctx.WithField("txHash", l.TxHash).Warn("unknown topic, skipping")
			continue
		}
		e, err := toTransferEvent(l)
		if err != nil {
			// an erc20 Transfer shares the signature but not the indexed token id
			ctx.WithFields(log.Fields{
				"err":      err,
				"contract": l.Address,
				"txHash":   l.TxHash,
			}).Warn("toTransferEvent failed, skipping")
			continue
		}
		if err := h.transferUC.Transfer(ctx, e); err != nil {
			ctx.WithField("err", err).Error("transferUC.Transfer failed")
			return err
		}
	}
	return nil
}

func toTransferEvent(l *types.Log) (*erc721.TransferEvent, error) {
	transferLog, err := abi.ToTransferLog(l)
	if err != nil {
		return nil, err
	}
	tokenId, err := domain.NewUint256(transferLog.TokenId)
	if err != nil {
		return nil, err
	}
	return &erc721.TransferEvent{
		Collection:  toDomainAddress(l.Address),
		From:        toDomainAddress(transferLog.From),
		To:          toDomainAddress(transferLog.To),
		TokenId:     tokenId,
		BlockNumber: domain.BlockNumber(l.BlockNumber),
		TxHash:      domain.TxHash(ToLowerHexStr(l.TxHash)),
		LogIndex:    l.Index,
	}, nil
}
