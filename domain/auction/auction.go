package auction

import (
	"time"

	"github.com/x-xyz/otc-market/base/ctx"
	"github.com/x-xyz/otc-market/domain"
	"github.com/x-xyz/otc-market/domain/listing"
	"github.com/x-xyz/otc-market/domain/trade"
)

// Bid is a bidder's signed commitment on an auction listing.
// Collection, payment token and token id are copied from the listing, amount is the bid's own.
type Bid struct {
	Id                  string          `json:"id"`
	SaleId              domain.SaleId   `json:"saleId"`
	CollectionAddress   domain.Address  `json:"collectionAddress"`
	PaymentTokenAddress domain.Address  `json:"paymentTokenAddress"`
	TokenId             domain.Uint256  `json:"tokenId"`
	Amount              domain.Uint256  `json:"amount"`
	BidderSignature     trade.Signature `json:"bidderSignature"`
	BidderAddress       domain.Address  `json:"bidderAddress"`
	CreatedAt           time.Time       `json:"createdAt"`
}

func (b *Bid) Terms() trade.Terms {
	return trade.Terms{
		CollectionAddress:   b.CollectionAddress,
		PaymentTokenAddress: b.PaymentTokenAddress,
		TokenId:             b.TokenId,
		Amount:              b.Amount,
	}
}

func (b *Bid) Copy() *Bid {
	c := *b
	return &c
}

type SubmitParams struct {
	SaleId              domain.SaleId
	CollectionAddress   domain.Address
	PaymentTokenAddress domain.Address
	TokenId             *domain.Uint256
	Amount              *domain.Uint256
	BidderSignature     trade.Signature
	BidderAddress       domain.Address
}

// BuildFunc runs under the store lock with copies of the listing and the top bid (nil if none).
// The returned bid is appended, an error aborts the append.
type BuildFunc func(l *listing.Listing, top *Bid) (*Bid, error)

type Repo interface {
	// FindAll returns the bid sequence in acceptance order, amounts strictly increasing
	FindAll(ctx ctx.Ctx, saleId domain.SaleId) ([]*Bid, error)
	FindTop(ctx ctx.Ctx, saleId domain.SaleId) (*Bid, error)
	AppendIfHigher(ctx ctx.Ctx, saleId domain.SaleId, build BuildFunc) (*Bid, error)
}

type UseCase interface {
	SubmitBid(ctx ctx.Ctx, params *SubmitParams) (*Bid, error)
	GetBids(ctx ctx.Ctx, saleId domain.SaleId) ([]*Bid, error)
	GetTopBid(ctx ctx.Ctx, saleId domain.SaleId) (*Bid, error)
}
