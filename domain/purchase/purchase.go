package purchase

import (
	"time"

	"github.com/x-xyz/otc-market/base/ctx"
	"github.com/x-xyz/otc-market/domain"
	"github.com/x-xyz/otc-market/domain/listing"
	"github.com/x-xyz/otc-market/domain/trade"
)

// Intent is a buyer's signed commitment to buy a direct-sale listing at its price.
// Terms are copied from the listing.
type Intent struct {
	Id                  string          `json:"id"`
	SaleId              domain.SaleId   `json:"saleId"`
	CollectionAddress   domain.Address  `json:"collectionAddress"`
	PaymentTokenAddress domain.Address  `json:"paymentTokenAddress"`
	TokenId             domain.Uint256  `json:"tokenId"`
	Amount              domain.Uint256  `json:"amount"`
	BuyerSignature      trade.Signature `json:"buyerSignature"`
	BuyerAddress        domain.Address  `json:"buyerAddress"`
	CreatedAt           time.Time       `json:"createdAt"`
}

func (i *Intent) Terms() trade.Terms {
	return trade.Terms{
		CollectionAddress:   i.CollectionAddress,
		PaymentTokenAddress: i.PaymentTokenAddress,
		TokenId:             i.TokenId,
		Amount:              i.Amount,
	}
}

func (i *Intent) Copy() *Intent {
	c := *i
	return &c
}

type SubmitParams struct {
	SaleId              domain.SaleId
	CollectionAddress   domain.Address
	PaymentTokenAddress domain.Address
	TokenId             *domain.Uint256
	Amount              *domain.Uint256
	BuyerSignature      trade.Signature
	BuyerAddress        domain.Address
}

// BuildFunc runs under the store lock with copies of the listing and the current intent (nil if none).
// The returned intent is stored, an error aborts the insert.
type BuildFunc func(l *listing.Listing, existing *Intent) (*Intent, error)

type Repo interface {
	FindOne(ctx ctx.Ctx, saleId domain.SaleId) (*Intent, error)
	InsertIfAbsent(ctx ctx.Ctx, saleId domain.SaleId, build BuildFunc) (*Intent, error)
}

type UseCase interface {
	SubmitPurchaseIntent(ctx ctx.Ctx, params *SubmitParams) (*Intent, error)
	GetIntent(ctx ctx.Ctx, saleId domain.SaleId) (*Intent, error)
}
