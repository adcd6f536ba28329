package healthcheck

import (
	"github.com/x-xyz/otc-market/base/ctx"
)

// Status is what a passing health check reports
type Status struct {
	ChainId     int32  `json:"chainId"`
	BlockNumber uint64 `json:"blockNumber"`
}

// HealthCheckUsecase represents the healthCheck's usecases
type HealthCheckUsecase interface {
	Check(context ctx.Ctx) (*Status, error)
}

// HealthCheckRepo is repository layer of healthCheck
type HealthCheckRepo interface {
	// PingChain returns the head block of the settlement chain
	PingChain(context ctx.Ctx) (uint64, error)
	ChainId() int32
}
