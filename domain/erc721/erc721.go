package erc721

import (
	"github.com/x-xyz/otc-market/base/ctx"
	"github.com/x-xyz/otc-market/domain"
)

type TransferEvent struct {
	Collection  domain.Address
	From        domain.Address
	To          domain.Address
	TokenId     domain.Uint256
	BlockNumber domain.BlockNumber
	TxHash      domain.TxHash
	LogIndex    uint
}

type TransferUseCase interface {
	Transfer(ctx ctx.Ctx, event *TransferEvent) error
}
