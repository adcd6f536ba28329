package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	"github.com/x-xyz/otc-market/base/ctx"
	bValidator "github.com/x-xyz/otc-market/base/validator"
	"github.com/x-xyz/otc-market/domain"
	"github.com/x-xyz/otc-market/domain/purchase"
	"github.com/x-xyz/otc-market/domain/purchase/mocks"
)

var (
	sig  = "0x" + strings.Repeat("11", 65)
	body = `{
		"saleId": 1,
		"collectionAddress": "0x939ae6A4C8dfDBB1f7085189574F0A938013952A",
		"paymentTokenAddress": "0x00000000000000000000000000000000000000bb",
		"tokenId": "1",
		"amount": "100",
		"buyerSignature": "` + sig + `",
		"buyerAddress": "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	}`
)

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

func TestSubmitPurchaseIntent(t *testing.T) {
	req := require.New(t)
	e, uc := newEcho(t)

	uc.On("SubmitPurchaseIntent", mock.Anything, mock.MatchedBy(func(p *purchase.SubmitParams) bool {
		return p.SaleId == 1 && p.Amount.String() == "100" && string(p.BuyerSignature) == sig
	})).Return(&purchase.Intent{Id: "a", SaleId: 1}, nil).Once()

	rec := post(e, "/purchase-intents", body)
	req.Equal(http.StatusCreated, rec.Code)
	req.Contains(rec.Body.String(), `"id":"a"`)

	uc.On("SubmitPurchaseIntent", mock.Anything, mock.Anything).Return(nil, xerrors.Errorf("saleId 1: %w", domain.ErrDuplicateIntent)).Once()
	rec = post(e, "/purchase-intents", body)
	req.Equal(http.StatusBadRequest, rec.Code)
	req.Contains(rec.Body.String(), domain.ErrDuplicateIntent.Error())

	uc.On("SubmitPurchaseIntent", mock.Anything, mock.Anything).Return(nil, xerrors.Errorf("saleId 1: %w", domain.ErrListingNotFound)).Once()
	rec = post(e, "/purchase-intents", body)
	req.Equal(http.StatusNotFound, rec.Code)
}

func TestSubmitPurchaseIntentBadRequest(t *testing.T) {
	req := require.New(t)
	e, uc := newEcho(t)

	bodies := []string{
		strings.Replace(body, sig, "0x1234", 1),
		strings.Replace(body, `"saleId": 1,`, "", 1),
		strings.Replace(body, `"amount": "100",`, "", 1),
		`{"saleId": "x"}`,
	}
	for _, b := range bodies {
		rec := post(e, "/purchase-intents", b)
		req.Equal(http.StatusBadRequest, rec.Code, b)
	}
	uc.AssertNotCalled(t, "SubmitPurchaseIntent", mock.Anything, mock.Anything)
}

func TestGetIntent(t *testing.T) {
	req := require.New(t)
	e, uc := newEcho(t)

	uc.On("GetIntent", mock.Anything, domain.SaleId(3)).Return(&purchase.Intent{Id: "b", SaleId: 3}, nil).Once()
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/purchase-intents/3", nil))
	req.Equal(http.StatusOK, rec.Code)
	req.Contains(rec.Body.String(), `"saleId":3`)

	uc.On("GetIntent", mock.Anything, domain.SaleId(4)).Return(nil, domain.ErrNoIntentFound).Once()
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/purchase-intents/4", nil))
	req.Equal(http.StatusNotFound, rec.Code)
}
