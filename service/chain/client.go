package chain

import (
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	bCtx "github.com/x-xyz/otc-market/base/ctx"
	bEthereum "github.com/x-xyz/otc-market/base/ethereum"
	"github.com/x-xyz/otc-market/base/log"
	"github.com/x-xyz/otc-market/base/metrics"
	"github.com/x-xyz/otc-market/domain"
)

var ErrUnsupportedChain = errors.New("unsupported chain")

type ClientCfg struct {
	RpcUrls map[int32]string
	// MaxConcurrency bounds in-flight calls per node, 0 means unbounded
	MaxConcurrency int
}

type Client interface {
	Call(bCtx.Ctx, int32, common.Address, *big.Int, abi.ABI, string, ...interface{}) ([]interface{}, error)
	ChainID(bCtx.Ctx, int32) (*big.Int, error)
	BlockNumber(bCtx.Ctx, int32) (uint64, error)
	FilterLogs(bCtx.Ctx, int32, ethereum.FilterQuery) ([]types.Log, error)
	PendingNonceAt(bCtx.Ctx, int32, common.Address) (uint64, error)
	SuggestGasPrice(bCtx.Ctx, int32) (*big.Int, error)
}

type clientImpl struct {
	clients map[int32]domain.EthClientRepo
	met     metrics.Service
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	var (
		anyerr error
	)
	clients := make(map[int32]domain.EthClientRepo)
	for chainId, url := range cfg.RpcUrls {
		client, err := ethclient.DialContext(ctx, url)
		if err != nil {
			anyerr = err
			ctx.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
				"url":     url,
			}).Warn("failed to dial rpc")
			// soft warning, still let the server start
			continue
		}
		if cfg.MaxConcurrency > 0 {
			clients[chainId] = bEthereum.NewTrottledClient(client, cfg.MaxConcurrency)
		} else {
			clients[chainId] = client
		}
	}
	return NewClientWithRepos(clients), anyerr
}

// NewClientWithRepos serves chain calls from already connected clients
func NewClientWithRepos(clients map[int32]domain.EthClientRepo) Client {
	return &clientImpl{
		clients: clients,
		met:     metrics.New("chain"),
	}
}

func (c *clientImpl) client(chainId int32) (domain.EthClientRepo, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return nil, ErrUnsupportedChain
	}
	return client, nil
}

func (c *clientImpl) Call(ctx bCtx.Ctx, chainId int32, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	client, err := c.client(chainId)
	if err != nil {
		return nil, err
	}

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	ender := c.met.BumpTime("call.latency", "method", method)
	res, err := client.CallContract(ctx, msg, blk)
	ender.End()
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"method": method,
			"addr":   addr,
		}).Warn("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithField("err", err).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) ChainID(ctx bCtx.Ctx, chainId int32) (*big.Int, error) {
	client, err := c.client(chainId)
	if err != nil {
		return nil, err
	}
	return client.ChainID(ctx)
}

func (c *clientImpl) BlockNumber(ctx bCtx.Ctx, chainId int32) (uint64, error) {
	client, err := c.client(chainId)
	if err != nil {
		return 0, err
	}
	defer c.met.BumpTime("call.latency", "method", "eth_blockNumber").End()
	return client.BlockNumber(ctx)
}

func (c *clientImpl) FilterLogs(ctx bCtx.Ctx, chainId int32, q ethereum.FilterQuery) ([]types.Log, error) {
	client, err := c.client(chainId)
	if err != nil {
		return nil, err
	}
	defer c.met.BumpTime("call.latency", "method", "eth_getLogs").End()
	return client.FilterLogs(ctx, q)
}

func (c *clientImpl) PendingNonceAt(ctx bCtx.Ctx, chainId int32, account common.Address) (uint64, error) {
	client, err := c.client(chainId)
	if err != nil {
		return 0, err
	}
	defer c.met.BumpTime("call.latency", "method", "eth_getTransactionCount").End()
	return client.PendingNonceAt(ctx, account)
}

func (c *clientImpl) SuggestGasPrice(ctx bCtx.Ctx, chainId int32) (*big.Int, error) {
	client, err := c.client(chainId)
	if err != nil {
		return nil, err
	}
	defer c.met.BumpTime("call.latency", "method", "eth_gasPrice").End()
	return client.SuggestGasPrice(ctx)
}
