package listing

import (
	"time"

	"github.com/x-xyz/otc-market/base/ctx"
	"github.com/x-xyz/otc-market/domain"
	"github.com/x-xyz/otc-market/domain/trade"
)

type Listing struct {
	SaleId              domain.SaleId  `json:"saleId"`
	CollectionAddress   domain.Address `json:"collectionAddress"`
	TokenId             domain.Uint256 `json:"tokenId"`
	PaymentTokenAddress domain.Address `json:"paymentTokenAddress"`
	// price for direct sales, reserve for auctions
	Amount       domain.Uint256 `json:"amount"`
	IsAuction    bool           `json:"isAuction"`
	OwnerAddress domain.Address `json:"ownerAddress"`
	CreatedAt    time.Time      `json:"createdAt"`
	SettledAt    *time.Time     `json:"settledAt,omitempty"`
}

func (l *Listing) Terms() trade.Terms {
	return trade.Terms{
		CollectionAddress:   l.CollectionAddress,
		PaymentTokenAddress: l.PaymentTokenAddress,
		TokenId:             l.TokenId,
		Amount:              l.Amount,
	}
}

func (l *Listing) IsSettled() bool {
	return l.SettledAt != nil
}

// Copy returns a listing sharing nothing with l
func (l *Listing) Copy() *Listing {
	c := *l
	if l.SettledAt != nil {
		at := *l.SettledAt
		c.SettledAt = &at
	}
	return &c
}

type CreateListingParams struct {
	CollectionAddress   domain.Address
	TokenId             *domain.Uint256
	PaymentTokenAddress domain.Address
	Amount              *domain.Uint256
	IsAuction           *bool
	OwnerAddress        domain.Address
}

type FindAllOptions struct {
	IsAuction  *bool
	Owner      *domain.Address
	Collection *domain.Address
	TokenId    *domain.Uint256
	Settled    *bool
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}
	for _, o := range opts {
		if err := o(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func WithIsAuction(isAuction bool) FindAllOptionsFunc {
	return func(o *FindAllOptions) error {
		o.IsAuction = &isAuction
		return nil
	}
}

func WithOwner(owner domain.Address) FindAllOptionsFunc {
	return func(o *FindAllOptions) error {
		owner = owner.ToLower()
		o.Owner = &owner
		return nil
	}
}

func WithCollection(collection domain.Address) FindAllOptionsFunc {
	return func(o *FindAllOptions) error {
		collection = collection.ToLower()
		o.Collection = &collection
		return nil
	}
}

func WithTokenId(tokenId domain.Uint256) FindAllOptionsFunc {
	return func(o *FindAllOptions) error {
		o.TokenId = &tokenId
		return nil
	}
}

func WithSettled(settled bool) FindAllOptionsFunc {
	return func(o *FindAllOptions) error {
		o.Settled = &settled
		return nil
	}
}

// Match reports whether l passes every set filter
func (o FindAllOptions) Match(l *Listing) bool {
	if o.IsAuction != nil && *o.IsAuction != l.IsAuction {
		return false
	}
	if o.Owner != nil && !o.Owner.Equals(l.OwnerAddress) {
		return false
	}
	if o.Collection != nil && !o.Collection.Equals(l.CollectionAddress) {
		return false
	}
	if o.TokenId != nil && o.TokenId.Cmp(l.TokenId) != 0 {
		return false
	}
	if o.Settled != nil && *o.Settled != l.IsSettled() {
		return false
	}
	return true
}

type Repo interface {
	// Insert assigns the next sale id to l and stores it
	Insert(ctx ctx.Ctx, l *Listing) (domain.SaleId, error)
	FindOne(ctx ctx.Ctx, saleId domain.SaleId) (*Listing, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Listing, error)
}

type UseCase interface {
	CreateListing(ctx ctx.Ctx, params *CreateListingParams) (domain.SaleId, error)
	GetListing(ctx ctx.Ctx, saleId domain.SaleId) (*Listing, error)
	ListAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Listing, error)
}

// OwnershipOracle answers whether owner holds tokenId of an ERC-721 collection
type OwnershipOracle interface {
	IsOwner(ctx ctx.Ctx, collection domain.Address, owner domain.Address, tokenId domain.Uint256) (bool, error)
}
