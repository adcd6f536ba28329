package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/xerrors"

	"github.com/x-xyz/otc-market/base/ctx"
	"github.com/x-xyz/otc-market/base/log"
	"github.com/x-xyz/otc-market/base/metrics"
	"github.com/x-xyz/otc-market/domain"
	"github.com/x-xyz/otc-market/domain/auction"
	"github.com/x-xyz/otc-market/domain/listing"
	"github.com/x-xyz/otc-market/domain/trade"
)

type impl struct {
	repo auction.Repo
	met  metrics.Service
}

func New(repo auction.Repo) auction.UseCase {
	return &impl{
		repo: repo,
		met:  metrics.New("bid"),
	}
}

func (im *impl) SubmitBid(ctx ctx.Ctx, p *auction.SubmitParams) (*auction.Bid, error) {
	if err := validateSubmitParams(p); err != nil {
		im.met.BumpSum("rejected", 1, "reason", "validation")
		return nil, err
	}
	sig, sigErr := p.BidderSignature.Bytes()
	normalized, _ := p.BidderSignature.Normalize()

	bid, err := im.repo.AppendIfHigher(ctx, p.SaleId, func(l *listing.Listing, top *auction.Bid) (*auction.Bid, error) {
		if l.IsSettled() {
			return nil, domain.ErrAuctionAlreadySettled
		}
		if !l.IsAuction {
			return nil, domain.ErrListingNotForAuction
		}
		if top != nil && p.Amount.Cmp(top.Amount) <= 0 {
			return nil, domain.ErrBidTooLow
		}
		terms := l.Terms()
		terms.Amount = *p.Amount
		if sigErr != nil || !trade.VerifyTaker(terms, sig, p.BidderAddress) {
			return nil, domain.ErrSignatureMismatch
		}
		return &auction.Bid{
			Id:                  uuid.NewString(),
			SaleId:              l.SaleId,
			CollectionAddress:   terms.CollectionAddress,
			PaymentTokenAddress: terms.PaymentTokenAddress,
			TokenId:             terms.TokenId,
			Amount:              terms.Amount,
			BidderSignature:     normalized,
			BidderAddress:       p.BidderAddress.ToLower(),
			CreatedAt:           time.Now(),
		}, nil
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"saleId": p.SaleId,
			"bidder": p.BidderAddress,
			"amount": p.Amount,
		}).Info("bid rejected")
		im.met.BumpSum("rejected", 1, "reason", domain.Reason(err))
		return nil, xerrors.Errorf("saleId %d: %w", p.SaleId, err)
	}

	im.met.BumpSum("accepted", 1)
	ctx.WithFields(log.Fields{
		"saleId": bid.SaleId,
		"id":     bid.Id,
		"bidder": bid.BidderAddress,
		"amount": bid.Amount,
	}).Info("bid accepted")
	return bid, nil
}

func validateSubmitParams(p *auction.SubmitParams) error {
	switch {
	case p.SaleId == 0:
		return xerrors.Errorf("saleId: %w", domain.ErrMissingField)
	case p.CollectionAddress.IsEmpty():
		return xerrors.Errorf("collectionAddress: %w", domain.ErrMissingField)
	case p.PaymentTokenAddress.IsEmpty():
		return xerrors.Errorf("paymentTokenAddress: %w", domain.ErrMissingField)
	case p.TokenId == nil:
		return xerrors.Errorf("tokenId: %w", domain.ErrMissingField)
	case p.Amount == nil || p.Amount.IsZero():
		return xerrors.Errorf("amount: %w", domain.ErrMissingField)
	case p.BidderSignature.IsEmpty():
		return xerrors.Errorf("bidderSignature: %w", domain.ErrMissingField)
	case p.BidderAddress.IsEmpty():
		return xerrors.Errorf("bidderAddress: %w", domain.ErrMissingField)
	case !p.BidderAddress.IsValid():
		return xerrors.Errorf("bidderAddress: %w", domain.ErrInvalidAddress)
	}
	return nil
}

func (im *impl) GetBids(ctx ctx.Ctx, saleId domain.SaleId) ([]*auction.Bid, error) {
	return im.repo.FindAll(ctx, saleId)
}

func (im *impl) GetTopBid(ctx ctx.Ctx, saleId domain.SaleId) (*auction.Bid, error) {
	return im.repo.FindTop(ctx, saleId)
}
