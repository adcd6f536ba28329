package http

import (
	"crypto/ecdsa"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	"github.com/x-xyz/otc-market/base/ctx"
	"github.com/x-xyz/otc-market/base/ethereum"
	bValidator "github.com/x-xyz/otc-market/base/validator"
	"github.com/x-xyz/otc-market/domain"
	"github.com/x-xyz/otc-market/domain/listing"
	"github.com/x-xyz/otc-market/domain/purchase"
	"github.com/x-xyz/otc-market/domain/settlement"
	"github.com/x-xyz/otc-market/domain/settlement/mocks"
	"github.com/x-xyz/otc-market/domain/trade"
	listingRepository "github.com/x-xyz/otc-market/stores/listing/repository"
	"github.com/x-xyz/otc-market/stores/market"
	purchaseRepository "github.com/x-xyz/otc-market/stores/purchase/repository"
	purchaseUseCase "github.com/x-xyz/otc-market/stores/purchase/usecase"
	settlementRepository "github.com/x-xyz/otc-market/stores/settlement/repository"
	settlementUseCase "github.com/x-xyz/otc-market/stores/settlement/usecase"
)

const owner = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"

var body = `{"saleId": 1, "ownerApprovalSignature": "0x` + strings.Repeat("33", 65) + `", "ownerAddress": "` + owner + `"}`

func newEcho(t *testing.T) (*echo.Echo, *mocks.UseCase) {
	e := echo.New()
	e.Validator = bValidator.NewCustomValidator(bValidator.New())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	uc := mocks.NewUseCase(t)
	New(e, uc)
	return e, uc
}

func post(e *echo.Echo, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSettle(t *testing.T) {
	req := require.New(t)
	e, uc := newEcho(t)

	tx := &settlement.TxDescriptor{
		ChainId:  1,
		To:       "0x00000000000000000000000000000000000000cc",
		Gas:      300000,
		GasPrice: domain.Uint256FromUint64(2000000000),
		Nonce:    7,
		Data:     []byte{0xde, 0xad},
	}

	isReq := mock.MatchedBy(func(r *settlement.Request) bool {
		return r.SaleId == 1 && r.OwnerAddress == owner
	})

	for _, tt := range []struct {
		target string
		method string
	}{
		{"/settlements/purchase", "SettlePurchase"},
		{"/settlements/auction", "SettleAuction"},
	} {
		uc.On(tt.method, mock.Anything, isReq).Return(tx, nil).Once()
		rec := post(e, tt.target, body)
		req.Equal(http.StatusOK, rec.Code, tt.target)

		res := struct {
			Data struct {
				TxHash struct {
					To       string `json:"to"`
					Nonce    uint64 `json:"nonce"`
					GasPrice string `json:"gasPrice"`
					Data     string `json:"data"`
				} `json:"txHash"`
			} `json:"data"`
			Status string `json:"status"`
		}{}
		req.NoError(json.Unmarshal(rec.Body.Bytes(), &res))
		req.Equal("success", res.Status)
		req.Equal(uint64(7), res.Data.TxHash.Nonce)
		req.Equal("2000000000", res.Data.TxHash.GasPrice)
		req.Equal("0xdead", res.Data.TxHash.Data)
	}
}

func TestSettleErrors(t *testing.T) {
	req := require.New(t)
	e, uc := newEcho(t)

	tests := []struct {
		err    error
		status int
	}{
		{domain.ErrNoIntentFound, http.StatusNotFound},
		{domain.ErrOwnerSignatureMismatch, http.StatusBadRequest},
		{domain.ErrAlreadySettled, http.StatusBadRequest},
		{domain.ErrSettlementInProgress, http.StatusBadRequest},
		{domain.ErrUpstreamUnavailable, http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		uc.On("SettlePurchase", mock.Anything, mock.Anything).Return(nil, xerrors.Errorf("saleId 1: %w", tt.err)).Once()
		rec := post(e, "/settlements/purchase", body)
		req.Equal(tt.status, rec.Code, tt.err.Error())
	}

	rec := post(e, "/settlements/auction", `{"saleId": 1, "ownerAddress": "`+owner+`"}`)
	req.Equal(http.StatusBadRequest, rec.Code)
	req.Contains(rec.Body.String(), domain.ErrMissingField.Error())
	uc.AssertNotCalled(t, "SettleAuction", mock.Anything, mock.Anything)
}

func TestSettleOwnerIsNotListingOwner(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	newKey := func() (*ecdsa.PrivateKey, domain.Address) {
		key, pub, err := ethereum.GenerateKey()
		req.NoError(err)
		return key, domain.AddressFromCommon(crypto.PubkeyToAddress(*pub))
	}
	_, listingOwner := newKey()
	takerKey, taker := newKey()
	otherKey, other := newKey()

	store := market.New()
	listingRepo := listingRepository.New(store)
	terms := trade.Terms{
		CollectionAddress:   "0x00000000000000000000000000000000000000aa",
		PaymentTokenAddress: "0x00000000000000000000000000000000000000bb",
		TokenId:             domain.Uint256FromUint64(1),
		Amount:              domain.Uint256FromUint64(100),
	}
	saleId, err := listingRepo.Insert(c, &listing.Listing{
		CollectionAddress:   terms.CollectionAddress,
		TokenId:             terms.TokenId,
		PaymentTokenAddress: terms.PaymentTokenAddress,
		Amount:              terms.Amount,
		OwnerAddress:        listingOwner,
		CreatedAt:           time.Now(),
	})
	req.NoError(err)

	takerSig, err := ethereum.SignPersonal(terms.Digest(), takerKey)
	req.NoError(err)
	_, err = purchaseUseCase.New(purchaseRepository.New(store)).SubmitPurchaseIntent(c, &purchase.SubmitParams{
		SaleId:              saleId,
		CollectionAddress:   terms.CollectionAddress,
		PaymentTokenAddress: terms.PaymentTokenAddress,
		TokenId:             &terms.TokenId,
		Amount:              &terms.Amount,
		BuyerSignature:      trade.Signature(hexutil.Encode(takerSig)),
		BuyerAddress:        taker,
	})
	req.NoError(err)

	// a valid approval, signed by someone who does not own the listing
	approval, err := ethereum.SignPersonal(trade.ApprovalDigest(takerSig), otherKey)
	req.NoError(err)

	e := echo.New()
	e.Validator = bValidator.NewCustomValidator(bValidator.New())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ec echo.Context) error {
			ec.Set("ctx", c)
			return next(ec)
		}
	})
	New(e, settlementUseCase.New(&settlementUseCase.SettlementUseCaseCfg{
		Repo:    settlementRepository.New(store),
		Builder: mocks.NewTxBuilder(t),
	}))

	rec := post(e, "/settlements/purchase", fmt.Sprintf(
		`{"saleId": %d, "ownerApprovalSignature": "%s", "ownerAddress": "%s"}`,
		saleId, hexutil.Encode(approval), other,
	))
	req.Equal(http.StatusBadRequest, rec.Code)
	req.Contains(rec.Body.String(), `"status":"fail"`)
	req.Contains(rec.Body.String(), domain.ErrOwnerSignatureMismatch.Error())

	l, err := listingRepo.FindOne(c, saleId)
	req.NoError(err)
	req.Nil(l.SettledAt)
}
