package usecase

import (
	"time"

	"golang.org/x/xerrors"

	"github.com/x-xyz/otc-market/base/ctx"
	"github.com/x-xyz/otc-market/base/log"
	"github.com/x-xyz/otc-market/base/metrics"
	"github.com/x-xyz/otc-market/domain"
	"github.com/x-xyz/otc-market/domain/settlement"
	"github.com/x-xyz/otc-market/domain/trade"
)

type SettlementUseCaseCfg struct {
	Repo    settlement.Repo
	Builder settlement.TxBuilder
	// AllowRepeat rebuilds the descriptor on every call instead of refusing settled listings
	AllowRepeat bool
}

type impl struct {
	repo        settlement.Repo
	builder     settlement.TxBuilder
	allowRepeat bool
	met         metrics.Service
}

func New(cfg *SettlementUseCaseCfg) settlement.UseCase {
	return &impl{
		repo:        cfg.Repo,
		builder:     cfg.Builder,
		allowRepeat: cfg.AllowRepeat,
		met:         metrics.New("settlement"),
	}
}

func (im *impl) SettlePurchase(ctx ctx.Ctx, req *settlement.Request) (*settlement.TxDescriptor, error) {
	return im.settle(ctx, settlement.KindPurchase, req)
}

func (im *impl) SettleAuction(ctx ctx.Ctx, req *settlement.Request) (*settlement.TxDescriptor, error) {
	return im.settle(ctx, settlement.KindAuction, req)
}

func (im *impl) settle(ctx ctx.Ctx, kind settlement.Kind, req *settlement.Request) (*settlement.TxDescriptor, error) {
	if err := validateRequest(req); err != nil {
		im.met.BumpSum("rejected", 1, "kind", string(kind), "reason", "validation")
		return nil, err
	}
	ownerSig, ownerSigErr := req.OwnerApprovalSignature.Bytes()

	var takerSig []byte
	c, err := im.repo.Reserve(ctx, kind, req.SaleId, func(c *settlement.Candidate) error {
		sig, err := c.TakerSignature.Bytes()
		if err != nil || !trade.VerifyTaker(c.Terms, sig, c.TakerAddress) {
			return domain.ErrTakerSignatureMismatch
		}
		if ownerSigErr != nil || !trade.VerifyApproval(sig, ownerSig, req.OwnerAddress) {
			return domain.ErrOwnerSignatureMismatch
		}
		if !req.OwnerAddress.Equals(c.Listing.OwnerAddress) {
			return domain.ErrOwnerSignatureMismatch
		}
		takerSig = sig
		return nil
	}, !im.allowRepeat)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"kind":   kind,
			"saleId": req.SaleId,
			"owner":  req.OwnerAddress,
		}).Info("settlement rejected")
		im.met.BumpSum("rejected", 1, "kind", string(kind), "reason", domain.Reason(err))
		return nil, xerrors.Errorf("saleId %d: %w", req.SaleId, err)
	}

	// the store lock is released, the builder may talk to the chain
	tx, err := im.builder.BuildSettlementTx(ctx, c.Terms, takerSig, ownerSig, req.OwnerAddress.ToLower())
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"kind":   kind,
			"saleId": req.SaleId,
		}).Error("builder.BuildSettlementTx failed")
		if err := im.repo.Release(ctx, req.SaleId); err != nil {
			ctx.WithFields(log.Fields{
				"err":    err,
				"saleId": req.SaleId,
			}).Error("repo.Release failed")
		}
		im.met.BumpSum("rejected", 1, "kind", string(kind), "reason", domain.Reason(err))
		return nil, xerrors.Errorf("saleId %d: %w", req.SaleId, err)
	}

	if err := im.repo.Complete(ctx, req.SaleId, time.Now()); err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"saleId": req.SaleId,
		}).Error("repo.Complete failed")
		return nil, err
	}

	im.met.BumpSum("built", 1, "kind", string(kind))
	ctx.WithFields(log.Fields{
		"kind":   kind,
		"saleId": req.SaleId,
		"taker":  c.TakerAddress,
		"amount": c.Terms.Amount,
		"nonce":  tx.Nonce,
	}).Info("settlement built")
	return tx, nil
}

func validateRequest(req *settlement.Request) error {
	switch {
	case req.SaleId == 0:
		return xerrors.Errorf("saleId: %w", domain.ErrMissingField)
	case req.OwnerApprovalSignature.IsEmpty():
		return xerrors.Errorf("ownerApprovalSignature: %w", domain.ErrMissingField)
	case req.OwnerAddress.IsEmpty():
		return xerrors.Errorf("ownerAddress: %w", domain.ErrMissingField)
	case !req.OwnerAddress.IsValid():
		return xerrors.Errorf("ownerAddress: %w", domain.ErrInvalidAddress)
	}
	return nil
}
