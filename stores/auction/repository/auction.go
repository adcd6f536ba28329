package repository

import (
	"github.com/x-xyz/otc-market/base/ctx"
	"github.com/x-xyz/otc-market/domain"
	"github.com/x-xyz/otc-market/domain/auction"
	"github.com/x-xyz/otc-market/stores/market"
)

type impl struct {
	store *market.Store
}

func New(store *market.Store) auction.Repo {
	return &impl{store}
}

func (im *impl) FindAll(ctx ctx.Ctx, saleId domain.SaleId) ([]*auction.Bid, error) {
	res := []*auction.Bid{}
	err := im.store.View(func(tx *market.Tx) error {
		for _, b := range tx.Bids(saleId) {
			res = append(res, b.Copy())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (im *impl) FindTop(ctx ctx.Ctx, saleId domain.SaleId) (*auction.Bid, error) {
	var res *auction.Bid
	err := im.store.View(func(tx *market.Tx) error {
		top := tx.TopBid(saleId)
		if top == nil {
			return domain.ErrNoBidsFound
		}
		res = top.Copy()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (im *impl) AppendIfHigher(ctx ctx.Ctx, saleId domain.SaleId, build auction.BuildFunc) (*auction.Bid, error) {
	var res *auction.Bid
	err := im.store.Update(func(tx *market.Tx) error {
		l := tx.Listing(saleId)
		if l == nil {
			return domain.ErrListingNotFound
		}
		var top *auction.Bid
		if b := tx.TopBid(saleId); b != nil {
			top = b.Copy()
		}
		bid, err := build(l.Copy(), top)
		if err != nil {
			return err
		}
		// the sequence stays strictly increasing whatever build decided
		if top != nil && bid.Amount.Cmp(top.Amount) <= 0 {
			return domain.ErrBidTooLow
		}
		record := bid.Copy()
		record.SaleId = saleId
		if err := tx.AppendBid(record); err != nil {
			return err
		}
		res = record.Copy()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
