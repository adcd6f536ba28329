package contract

import (
	"fmt"
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	baseabi "github.com/x-xyz/otc-market/base/abi"
	bCtx "github.com/x-xyz/otc-market/base/ctx"
	"github.com/x-xyz/otc-market/base/log"
	"github.com/x-xyz/otc-market/domain"
	"github.com/x-xyz/otc-market/domain/settlement"
	"github.com/x-xyz/otc-market/domain/trade"
	"github.com/x-xyz/otc-market/service/chain"
)

const DefaultSettleMethod = "finishAuction"

type MarketplaceCfg struct {
	ChainService chain.Client
	ChainId      int32
	Address      domain.Address
	// Method defaults to finishAuction
	Method   string
	GasLimit uint64
	// GasPriceGwei 0 asks the node
	GasPriceGwei float64
}

// Marketplace builds unsigned settlement transactions against the marketplace contract
type Marketplace struct {
	chainService chain.Client
	chainId      int32
	address      domain.Address
	method       string
	gasLimit     uint64
	gasPrice     *big.Int
	abi          ethabi.ABI
}

func NewMarketplace(cfg *MarketplaceCfg) (*Marketplace, error) {
	method := cfg.Method
	if method == "" {
		method = DefaultSettleMethod
	}
	if _, ok := baseabi.MarketplaceABI.Methods[method]; !ok {
		return nil, fmt.Errorf("unknown marketplace method %s", method)
	}
	if !cfg.Address.IsValid() {
		return nil, xerrors.Errorf("marketplace address %q: %w", cfg.Address, domain.ErrInvalidAddress)
	}
	var gasPrice *big.Int
	if cfg.GasPriceGwei > 0 {
		gasPrice = decimal.NewFromFloat(cfg.GasPriceGwei).Shift(9).BigInt()
	}
	return &Marketplace{
		chainService: cfg.ChainService,
		chainId:      cfg.ChainId,
		address:      cfg.Address.ToLower(),
		method:       method,
		gasLimit:     cfg.GasLimit,
		gasPrice:     gasPrice,
		abi:          baseabi.MarketplaceABI,
	}, nil
}

func (m *Marketplace) BuildSettlementTx(ctx bCtx.Ctx, terms trade.Terms, takerSig, ownerSig []byte, sender domain.Address) (*settlement.TxDescriptor, error) {
	data, err := m.abi.Pack(m.method, baseabi.AuctionData{
		NftCollectionAddress: terms.CollectionAddress.ToCommon(),
		Erc20Address:         terms.PaymentTokenAddress.ToCommon(),
		TokenId:              terms.TokenId.BigInt(),
		Erc20Amount:          terms.Amount.BigInt(),
	}, takerSig, ownerSig)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"method": m.method,
		}).Error("abi.Pack failed")
		return nil, err
	}

	// a fresh nonce every call, the owner may have sent transactions meanwhile
	nonce, err := m.chainService.PendingNonceAt(ctx, m.chainId, sender.ToCommon())
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"sender": sender,
		}).Error("chainService.PendingNonceAt failed")
		return nil, xerrors.Errorf("nonce of %s: %v: %w", sender, err, domain.ErrUpstreamUnavailable)
	}

	gasPrice := m.gasPrice
	if gasPrice == nil {
		gasPrice, err = m.chainService.SuggestGasPrice(ctx, m.chainId)
		if err != nil {
			ctx.WithField("err", err).Error("chainService.SuggestGasPrice failed")
			return nil, xerrors.Errorf("gas price: %v: %w", err, domain.ErrUpstreamUnavailable)
		}
	}
	price, err := domain.NewUint256(gasPrice)
	if err != nil {
		return nil, err
	}

	return &settlement.TxDescriptor{
		ChainId:  domain.ChainId(m.chainId),
		From:     sender.ToLower(),
		To:       m.address,
		Gas:      m.gasLimit,
		GasPrice: price,
		Nonce:    nonce,
		Data:     data,
		Value:    domain.Uint256FromUint64(0),
	}, nil
}
