package usecase

import (
	bCtx "github.com/x-xyz/otc-market/base/ctx"
	"github.com/x-xyz/otc-market/base/log"
	"github.com/x-xyz/otc-market/base/metrics"
	"github.com/x-xyz/otc-market/domain/erc721"
	"github.com/x-xyz/otc-market/domain/listing"
)

type transferUseCase struct {
	listingRepo listing.Repo
	met         metrics.Service
}

// NewTransferUseCase watches transfers of listed tokens, listings are never modified
func NewTransferUseCase(listingRepo listing.Repo) erc721.TransferUseCase {
	return &transferUseCase{
		listingRepo: listingRepo,
		met:         metrics.New("watcher"),
	}
}

func (u *transferUseCase) Transfer(ctx bCtx.Ctx, event *erc721.TransferEvent) error {
	ctx.WithFields(log.Fields{
		"collection": event.Collection,
		"tokenId":    event.TokenId,
		"from":       event.From,
		"to":         event.To,
		"txHash":     event.TxHash,
	}).Info("Transfer")

	listings, err := u.listingRepo.FindAll(ctx,
		listing.WithCollection(event.Collection),
		listing.WithTokenId(event.TokenId),
		listing.WithOwner(event.From),
		listing.WithSettled(false),
	)
	if err != nil {
		ctx.WithField("err", err).Error("listingRepo.FindAll failed")
		return err
	}

	for _, l := range listings {
		// settlement will revert on chain, the maker no longer holds the token
		ctx.WithFields(log.Fields{
			"saleId":      l.SaleId,
			"owner":       l.OwnerAddress,
			"newOwner":    event.To,
			"blockNumber": event.BlockNumber,
		}).Warn("listed token transferred away by its owner")
		u.met.BumpSum("stale_listing", 1, "isAuction", boolTag(l.IsAuction))
	}
	return nil
}

func boolTag(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

