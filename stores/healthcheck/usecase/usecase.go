package usecase

import (
	"golang.org/x/xerrors"

	"github.com/x-xyz/otc-market/base/ctx"
	"github.com/x-xyz/otc-market/domain"
	hcdomain "github.com/x-xyz/otc-market/domain/healthcheck"
)

type impl struct {
	repo hcdomain.HealthCheckRepo
}

// New creates new healthCheckUsecase object representation of HealthCheckUsecase interface
func New(repo hcdomain.HealthCheckRepo) hcdomain.HealthCheckUsecase {
	return &impl{
		repo: repo,
	}
}

func (im *impl) Check(context ctx.Ctx) (*hcdomain.Status, error) {
	blk, err := im.repo.PingChain(context)
	if err != nil {
		return nil, xerrors.Errorf("chain %d: %v: %w", im.repo.ChainId(), err, domain.ErrUpstreamUnavailable)
	}
	return &hcdomain.Status{
		ChainId:     im.repo.ChainId(),
		BlockNumber: blk,
	}, nil
}
