package usecase

import (
	"errors"
	"time"

	"golang.org/x/xerrors"

	"github.com/x-xyz/otc-market/base/ctx"
	"github.com/x-xyz/otc-market/base/log"
	"github.com/x-xyz/otc-market/base/metrics"
	"github.com/x-xyz/otc-market/domain"
	"github.com/x-xyz/otc-market/domain/listing"
)

type ListingUseCaseCfg struct {
	Repo   listing.Repo
	Oracle listing.OwnershipOracle
}

type impl struct {
	repo   listing.Repo
	oracle listing.OwnershipOracle
	met    metrics.Service
}

func New(cfg *ListingUseCaseCfg) listing.UseCase {
	return &impl{
		repo:   cfg.Repo,
		oracle: cfg.Oracle,
		met:    metrics.New("listing"),
	}
}

func (im *impl) CreateListing(ctx ctx.Ctx, p *listing.CreateListingParams) (domain.SaleId, error) {
	if err := validateCreateParams(p); err != nil {
		im.met.BumpSum("rejected", 1, "reason", "validation")
		return 0, err
	}

	isOwner, err := im.oracle.IsOwner(ctx, p.CollectionAddress, p.OwnerAddress, *p.TokenId)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":        err,
			"collection": p.CollectionAddress,
			"owner":      p.OwnerAddress,
			"tokenId":    p.TokenId,
		}).Error("failed to oracle.IsOwner")
		im.met.BumpSum("rejected", 1, "reason", "upstream")
		if errors.Is(err, domain.ErrUpstreamUnavailable) {
			return 0, err
		}
		return 0, xerrors.Errorf("%v: %w", err, domain.ErrUpstreamUnavailable)
	}
	if !isOwner {
		ctx.WithFields(log.Fields{
			"collection": p.CollectionAddress,
			"owner":      p.OwnerAddress,
			"tokenId":    p.TokenId,
		}).Info("listing owner does not own the token")
		im.met.BumpSum("rejected", 1, "reason", "not_owner")
		return 0, domain.ErrNotTokenOwner
	}

	l := &listing.Listing{
		CollectionAddress:   p.CollectionAddress.ToLower(),
		TokenId:             *p.TokenId,
		PaymentTokenAddress: p.PaymentTokenAddress.ToLower(),
		Amount:              *p.Amount,
		IsAuction:           *p.IsAuction,
		OwnerAddress:        p.OwnerAddress.ToLower(),
		CreatedAt:           time.Now(),
	}
	saleId, err := im.repo.Insert(ctx, l)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"listing": l,
		}).Error("failed to repo.Insert")
		return 0, err
	}

	im.met.BumpSum("created", 1, "isAuction", boolTag(l.IsAuction))
	ctx.WithFields(log.Fields{
		"saleId":    saleId,
		"isAuction": l.IsAuction,
	}).Info("listing created")
	return saleId, nil
}

func validateCreateParams(p *listing.CreateListingParams) error {
	switch {
	case p.CollectionAddress.IsEmpty():
		return xerrors.Errorf("collectionAddress: %w", domain.ErrMissingField)
	case p.TokenId == nil:
		return xerrors.Errorf("tokenId: %w", domain.ErrMissingField)
	case p.PaymentTokenAddress.IsEmpty():
		return xerrors.Errorf("paymentTokenAddress: %w", domain.ErrMissingField)
	case p.Amount == nil || p.Amount.IsZero():
		return xerrors.Errorf("amount: %w", domain.ErrMissingField)
	case p.IsAuction == nil:
		return xerrors.Errorf("isAuction: %w", domain.ErrMissingField)
	case p.OwnerAddress.IsEmpty():
		return xerrors.Errorf("ownerAddress: %w", domain.ErrMissingField)
	}
	for _, f := range []struct {
		name string
		addr domain.Address
	}{
		{"collectionAddress", p.CollectionAddress},
		{"paymentTokenAddress", p.PaymentTokenAddress},
		{"ownerAddress", p.OwnerAddress},
	} {
		if !f.addr.IsValid() {
			return xerrors.Errorf("%s: %w", f.name, domain.ErrInvalidAddress)
		}
	}
	return nil
}

func (im *impl) GetListing(ctx ctx.Ctx, saleId domain.SaleId) (*listing.Listing, error) {
	return im.repo.FindOne(ctx, saleId)
}

func (im *impl) ListAll(ctx ctx.Ctx, opts ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	return im.repo.FindAll(ctx, opts...)
}

func boolTag(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
