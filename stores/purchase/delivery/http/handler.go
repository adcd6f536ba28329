package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/otc-market/base/ctx"
	"github.com/x-xyz/otc-market/base/delivery"
	"github.com/x-xyz/otc-market/domain"
	"github.com/x-xyz/otc-market/domain/purchase"
	"github.com/x-xyz/otc-market/domain/trade"
	"github.com/x-xyz/otc-market/middleware"
)

type handler struct {
	purchaseUseCase purchase.UseCase
}

func New(e *echo.Echo, purchaseUseCase purchase.UseCase) {
	h := &handler{purchaseUseCase}

	g := e.Group("/purchase-intents")

	g.POST("", h.submitPurchaseIntent)
	g.GET("/:saleId", h.getIntent, middleware.IsValidSaleId("saleId"))
}

// submitPurchaseIntent
//
//	@Summary		Submit a purchase intent
//	@Description	Submit the buyer's signed commitment to buy a direct-sale listing at its price.
//	@Description	The signature is a personal_sign of keccak256(collection, paymentToken, tokenId, amount).
//	@Tags			purchase-intents
//	@Accept			json
//	@Produce		json
//	@Param			params	body		http.submitPurchaseIntent.params	true	"params"
//	@Success		201		{object}	purchase.Intent
//	@Failure		400
//	@Failure		404
//	@Router			/purchase-intents [post]
func (h *handler) submitPurchaseIntent(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		SaleId              domain.SaleId   `json:"saleId" validate:"required"`
		CollectionAddress   domain.Address  `json:"collectionAddress" validate:"required,eth_addr"`
		PaymentTokenAddress domain.Address  `json:"paymentTokenAddress" validate:"required,eth_addr"`
		TokenId             *domain.Uint256 `json:"tokenId" validate:"required"`
		Amount              *domain.Uint256 `json:"amount" validate:"required"`
		BuyerSignature      trade.Signature `json:"buyerSignature" validate:"required,signature"`
		BuyerAddress        domain.Address  `json:"buyerAddress" validate:"required,eth_addr"`
	}

	p := params{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.purchaseUseCase.SubmitPurchaseIntent(ctx, &purchase.SubmitParams{
		SaleId:              p.SaleId,
		CollectionAddress:   p.CollectionAddress,
		PaymentTokenAddress: p.PaymentTokenAddress,
		TokenId:             p.TokenId,
		Amount:              p.Amount,
		BuyerSignature:      p.BuyerSignature,
		BuyerAddress:        p.BuyerAddress,
	})
	if err != nil {
		return delivery.MakeErrorResp(c, err)
	}

	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

// getIntent
//
//	@Summary		Get the purchase intent of a listing
//	@Tags			purchase-intents
//	@Produce		json
//	@Param			saleId	path		int	true	"sale id"
//	@Success		200		{object}	purchase.Intent
//	@Failure		400
//	@Failure		404
//	@Router			/purchase-intents/{saleId} [get]
func (h *handler) getIntent(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	saleId, _ := domain.ParseSaleId(c.Param("saleId"))

	res, err := h.purchaseUseCase.GetIntent(ctx, saleId)
	if err != nil {
		return delivery.MakeErrorResp(c, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
