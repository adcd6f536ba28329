package contract

import (
	"errors"
	"math/big"
	"testing"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	baseabi "github.com/x-xyz/otc-market/base/abi"
	bCtx "github.com/x-xyz/otc-market/base/ctx"
	"github.com/x-xyz/otc-market/domain"
	"github.com/x-xyz/otc-market/domain/trade"
	"github.com/x-xyz/otc-market/service/chain/mocks"
)

var marketplace = domain.Address("0x00000000000000000000000000000000000000Ff")

func testTerms() trade.Terms {
	return trade.Terms{
		CollectionAddress:   collection,
		PaymentTokenAddress: payToken,
		TokenId:             domain.Uint256FromUint64(1),
		Amount:              domain.Uint256FromUint64(100),
	}
}

func TestBuildSettlementTx(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	chainService := mocks.NewClient(t)

	m, err := NewMarketplace(&MarketplaceCfg{
		ChainService: chainService,
		ChainId:      5,
		Address:      marketplace,
		GasLimit:     300000,
		GasPriceGwei: 20,
	})
	req.NoError(err)

	takerSig := []byte{1, 2, 3}
	ownerSig := []byte{4, 5, 6}
	chainService.On("PendingNonceAt", mock.Anything, int32(5), owner.ToCommon()).Return(uint64(7), nil).Once()

	tx, err := m.BuildSettlementTx(ctx, testTerms(), takerSig, ownerSig, owner)
	req.NoError(err)
	req.Equal(domain.ChainId(5), tx.ChainId)
	req.Equal(owner, tx.From)
	req.Equal(marketplace.ToLower(), tx.To)
	req.Equal(uint64(300000), tx.Gas)
	req.Equal("20000000000", tx.GasPrice.String())
	req.Equal(uint64(7), tx.Nonce)
	req.True(tx.Value.IsZero())

	method := baseabi.MarketplaceABI.Methods["finishAuction"]
	req.Equal(method.ID, []byte(tx.Data[:4]))
	args, err := method.Inputs.Unpack(tx.Data[4:])
	req.NoError(err)
	data := *ethabi.ConvertType(args[0], new(baseabi.AuctionData)).(*baseabi.AuctionData)
	req.Equal(collection.ToCommon(), data.NftCollectionAddress)
	req.Equal(payToken.ToCommon(), data.Erc20Address)
	req.Equal(int64(1), data.TokenId.Int64())
	req.Equal(int64(100), data.Erc20Amount.Int64())
	req.Equal(takerSig, args[1])
	req.Equal(ownerSig, args[2])

	signed := tx.ToTransaction()
	req.Equal(uint64(7), signed.Nonce())
	req.Equal(marketplace.ToCommon(), *signed.To())
}

func TestBuildSettlementTxNodeGasPrice(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	chainService := mocks.NewClient(t)

	m, err := NewMarketplace(&MarketplaceCfg{
		ChainService: chainService,
		ChainId:      5,
		Address:      marketplace,
		GasLimit:     300000,
	})
	req.NoError(err)

	chainService.On("PendingNonceAt", mock.Anything, int32(5), owner.ToCommon()).Return(uint64(8), nil).Twice()
	chainService.On("SuggestGasPrice", mock.Anything, int32(5)).Return(big.NewInt(1500), nil).Once()

	tx, err := m.BuildSettlementTx(ctx, testTerms(), []byte{1}, []byte{2}, owner)
	req.NoError(err)
	req.Equal("1500", tx.GasPrice.String())

	chainService.On("SuggestGasPrice", mock.Anything, int32(5)).Return(nil, errors.New("timeout")).Once()
	_, err = m.BuildSettlementTx(ctx, testTerms(), []byte{1}, []byte{2}, owner)
	req.True(errors.Is(err, domain.ErrUpstreamUnavailable))
}

func TestBuildSettlementTxNonceFailure(t *testing.T) {
	req := require.New(t)
	chainService := mocks.NewClient(t)

	m, err := NewMarketplace(&MarketplaceCfg{ChainService: chainService, ChainId: 5, Address: marketplace, GasPriceGwei: 1})
	req.NoError(err)

	chainService.On("PendingNonceAt", mock.Anything, int32(5), owner.ToCommon()).Return(uint64(0), errors.New("timeout")).Once()
	_, err = m.BuildSettlementTx(bCtx.Background(), testTerms(), []byte{1}, []byte{2}, owner)
	req.True(errors.Is(err, domain.ErrUpstreamUnavailable))
}

func TestNewMarketplace(t *testing.T) {
	req := require.New(t)

	_, err := NewMarketplace(&MarketplaceCfg{Address: marketplace, Method: "buy"})
	req.Error(err)

	_, err = NewMarketplace(&MarketplaceCfg{Address: "0x01"})
	req.True(errors.Is(err, domain.ErrInvalidAddress))
}
