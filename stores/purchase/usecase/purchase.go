package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/xerrors"

	"github.com/x-xyz/otc-market/base/ctx"
	"github.com/x-xyz/otc-market/base/log"
	"github.com/x-xyz/otc-market/base/metrics"
	"github.com/x-xyz/otc-market/domain"
	"github.com/x-xyz/otc-market/domain/listing"
	"github.com/x-xyz/otc-market/domain/purchase"
	"github.com/x-xyz/otc-market/domain/trade"
)

type impl struct {
	repo purchase.Repo
	met  metrics.Service
}

func New(repo purchase.Repo) purchase.UseCase {
	return &impl{
		repo: repo,
		met:  metrics.New("purchase"),
	}
}

func (im *impl) SubmitPurchaseIntent(ctx ctx.Ctx, p *purchase.SubmitParams) (*purchase.Intent, error) {
	if err := validateSubmitParams(p); err != nil {
		im.met.BumpSum("rejected", 1, "reason", "validation")
		return nil, err
	}
	sig, sigErr := p.BuyerSignature.Bytes()
	normalized, _ := p.BuyerSignature.Normalize()

	intent, err := im.repo.InsertIfAbsent(ctx, p.SaleId, func(l *listing.Listing, existing *purchase.Intent) (*purchase.Intent, error) {
		if l.IsAuction {
			return nil, domain.ErrListingIsAuction
		}
		if existing != nil {
			return nil, domain.ErrDuplicateIntent
		}
		if p.Amount.Cmp(l.Amount) != 0 {
			return nil, domain.ErrAmountMismatch
		}
		// the buyer signs the listing terms, never the terms of the request
		terms := l.Terms()
		if sigErr != nil || !trade.VerifyTaker(terms, sig, p.BuyerAddress) {
			return nil, domain.ErrSignatureMismatch
		}
		return &purchase.Intent{
			Id:                  uuid.NewString(),
			SaleId:              l.SaleId,
			CollectionAddress:   terms.CollectionAddress,
			PaymentTokenAddress: terms.PaymentTokenAddress,
			TokenId:             terms.TokenId,
			Amount:              terms.Amount,
			BuyerSignature:      normalized,
			BuyerAddress:        p.BuyerAddress.ToLower(),
			CreatedAt:           time.Now(),
		}, nil
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"saleId": p.SaleId,
			"buyer":  p.BuyerAddress,
		}).Info("purchase intent rejected")
		im.met.BumpSum("rejected", 1, "reason", domain.Reason(err))
		return nil, xerrors.Errorf("saleId %d: %w", p.SaleId, err)
	}

	im.met.BumpSum("accepted", 1)
	ctx.WithFields(log.Fields{
		"saleId": intent.SaleId,
		"id":     intent.Id,
		"buyer":  intent.BuyerAddress,
	}).Info("purchase intent accepted")
	return intent, nil
}

func validateSubmitParams(p *purchase.SubmitParams) error {
	switch {
	case p.SaleId == 0:
		return xerrors.Errorf("saleId: %w", domain.ErrMissingField)
	case p.CollectionAddress.IsEmpty():
		return xerrors.Errorf("collectionAddress: %w", domain.ErrMissingField)
	case p.PaymentTokenAddress.IsEmpty():
		return xerrors.Errorf("paymentTokenAddress: %w", domain.ErrMissingField)
	case p.TokenId == nil:
		return xerrors.Errorf("tokenId: %w", domain.ErrMissingField)
	case p.Amount == nil:
		return xerrors.Errorf("amount: %w", domain.ErrMissingField)
	case p.BuyerSignature.IsEmpty():
		return xerrors.Errorf("buyerSignature: %w", domain.ErrMissingField)
	case p.BuyerAddress.IsEmpty():
		return xerrors.Errorf("buyerAddress: %w", domain.ErrMissingField)
	case !p.BuyerAddress.IsValid():
		return xerrors.Errorf("buyerAddress: %w", domain.ErrInvalidAddress)
	}
	return nil
}

func (im *impl) GetIntent(ctx ctx.Ctx, saleId domain.SaleId) (*purchase.Intent, error) {
	return im.repo.FindOne(ctx, saleId)
}
