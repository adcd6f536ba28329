package repository

import (
	"time"

	"github.com/x-xyz/otc-market/base/ctx"
	"github.com/x-xyz/otc-market/base/ptr"
	"github.com/x-xyz/otc-market/domain"
	"github.com/x-xyz/otc-market/domain/settlement"
	"github.com/x-xyz/otc-market/stores/market"
)

type impl struct {
	store *market.Store
}

func New(store *market.Store) settlement.Repo {
	return &impl{store}
}

func (im *impl) Reserve(ctx ctx.Ctx, kind settlement.Kind, saleId domain.SaleId, check settlement.CheckFunc, exclusive bool) (*settlement.Candidate, error) {
	var res *settlement.Candidate
	err := im.store.Update(func(tx *market.Tx) error {
		c, err := candidate(tx, kind, saleId)
		if err != nil {
			return err
		}
		if err := check(c); err != nil {
			return err
		}
		if exclusive {
			if c.Listing.IsSettled() {
				return domain.ErrAlreadySettled
			}
			if tx.InFlight(saleId) {
				return domain.ErrSettlementInProgress
			}
			if err := tx.SetInFlight(saleId, true); err != nil {
				return err
			}
		}
		res = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func candidate(tx *market.Tx, kind settlement.Kind, saleId domain.SaleId) (*settlement.Candidate, error) {
	l := tx.Listing(saleId)
	switch kind {
	case settlement.KindPurchase:
		intent := tx.Intent(saleId)
		if l == nil || intent == nil {
			return nil, domain.ErrNoIntentFound
		}
		return &settlement.Candidate{
			Kind:           kind,
			Listing:        l.Copy(),
			Terms:          intent.Terms(),
			TakerSignature: intent.BuyerSignature,
			TakerAddress:   intent.BuyerAddress,
		}, nil
	case settlement.KindAuction:
		top := tx.TopBid(saleId)
		if l == nil || top == nil {
			return nil, domain.ErrNoBidsFound
		}
		return &settlement.Candidate{
			Kind:           kind,
			Listing:        l.Copy(),
			Terms:          top.Terms(),
			TakerSignature: top.BidderSignature,
			TakerAddress:   top.BidderAddress,
		}, nil
	}
	return nil, domain.ErrBadParamInput
}

func (im *impl) Complete(ctx ctx.Ctx, saleId domain.SaleId, at time.Time) error {
	return im.store.Update(func(tx *market.Tx) error {
		l := tx.Listing(saleId)
		if l == nil {
			return domain.ErrListingNotFound
		}
		if err := tx.SetInFlight(saleId, false); err != nil {
			return err
		}
		if l.SettledAt == nil {
			l.SettledAt = ptr.Time(at)
		}
		return nil
	})
}

func (im *impl) Release(ctx ctx.Ctx, saleId domain.SaleId) error {
	return im.store.Update(func(tx *market.Tx) error {
		return tx.SetInFlight(saleId, false)
	})
}
