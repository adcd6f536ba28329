package repository

import (
	"time"

	"github.com/x-xyz/otc-market/base/ctx"
	"github.com/x-xyz/otc-market/base/log"
	hcdomain "github.com/x-xyz/otc-market/domain/healthcheck"
	"github.com/x-xyz/otc-market/service/chain"
)

const pingTimeout = 2 * time.Second

type impl struct {
	chainService chain.Client
	chainId      int32
}

// New creates new healthCheckRepo object representation of HealthCheckRepo interface
func New(chainService chain.Client, chainId int32) hcdomain.HealthCheckRepo {
	return &impl{
		chainService: chainService,
		chainId:      chainId,
	}
}

func (im *impl) ChainId() int32 {
	return im.chainId
}

func (im *impl) PingChain(context ctx.Ctx) (uint64, error) {
	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()
	blk, err := im.chainService.BlockNumber(ctx, im.chainId)
	if err != nil {
		context.WithFields(log.Fields{"err": err, "chainId": im.chainId}).Error("ping chain error")
		return 0, err
	}
	return blk, nil
}
