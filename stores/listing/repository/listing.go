package repository

import (
	"github.com/x-xyz/otc-market/base/ctx"
	"github.com/x-xyz/otc-market/base/log"
	"github.com/x-xyz/otc-market/domain"
	"github.com/x-xyz/otc-market/domain/listing"
	"github.com/x-xyz/otc-market/stores/market"
)

type impl struct {
	store *market.Store
}

func New(store *market.Store) listing.Repo {
	return &impl{store}
}

func (im *impl) Insert(ctx ctx.Ctx, l *listing.Listing) (domain.SaleId, error) {
	record := l.Copy()
	record.CollectionAddress = record.CollectionAddress.ToLower()
	record.PaymentTokenAddress = record.PaymentTokenAddress.ToLower()
	record.OwnerAddress = record.OwnerAddress.ToLower()

	var saleId domain.SaleId
	err := im.store.Update(func(tx *market.Tx) error {
		id, err := tx.InsertListing(record)
		saleId = id
		return err
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"listing": l,
		}).Error("failed to store.InsertListing")
		return 0, err
	}
	l.SaleId = saleId
	return saleId, nil
}

func (im *impl) FindOne(ctx ctx.Ctx, saleId domain.SaleId) (*listing.Listing, error) {
	var res *listing.Listing
	err := im.store.View(func(tx *market.Tx) error {
		l := tx.Listing(saleId)
		if l == nil {
			return domain.ErrListingNotFound
		}
		res = l.Copy()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (im *impl) FindAll(ctx ctx.Ctx, options ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	opts, err := listing.GetFindAllOptions(options...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to listing.GetFindAllOptions")
		return nil, err
	}

	res := []*listing.Listing{}
	err = im.store.View(func(tx *market.Tx) error {
		for _, l := range tx.Listings() {
			if opts.Match(l) {
				res = append(res, l.Copy())
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
