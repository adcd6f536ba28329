package repository

import (
	"github.com/x-xyz/otc-market/base/ctx"
	"github.com/x-xyz/otc-market/domain"
	"github.com/x-xyz/otc-market/domain/purchase"
	"github.com/x-xyz/otc-market/stores/market"
)

type impl struct {
	store *market.Store
}

func New(store *market.Store) purchase.Repo {
	return &impl{store}
}

func (im *impl) FindOne(ctx ctx.Ctx, saleId domain.SaleId) (*purchase.Intent, error) {
	var res *purchase.Intent
	err := im.store.View(func(tx *market.Tx) error {
		i := tx.Intent(saleId)
		if i == nil {
			return domain.ErrNoIntentFound
		}
		res = i.Copy()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (im *impl) InsertIfAbsent(ctx ctx.Ctx, saleId domain.SaleId, build purchase.BuildFunc) (*purchase.Intent, error) {
	var res *purchase.Intent
	err := im.store.Update(func(tx *market.Tx) error {
		l := tx.Listing(saleId)
		if l == nil {
			return domain.ErrListingNotFound
		}
		var existing *purchase.Intent
		if i := tx.Intent(saleId); i != nil {
			existing = i.Copy()
		}
		intent, err := build(l.Copy(), existing)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicateIntent
		}
		record := intent.Copy()
		record.SaleId = saleId
		if err := tx.PutIntent(record); err != nil {
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
