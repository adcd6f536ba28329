package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/otc-market/base/ctx"
	"github.com/x-xyz/otc-market/base/delivery"
	"github.com/x-xyz/otc-market/base/log"
	"github.com/x-xyz/otc-market/domain"
	"github.com/x-xyz/otc-market/domain/settlement"
	"github.com/x-xyz/otc-market/domain/trade"
)

type handler struct {
	settlementUseCase settlement.UseCase
}

func New(e *echo.Echo, settlementUseCase settlement.UseCase) {
	h := &handler{settlementUseCase}

	g := e.Group("/settlements")

	g.POST("/purchase", h.settlePurchase)
	g.POST("/auction", h.settleAuction)
}

type params struct {
	SaleId                 domain.SaleId   `json:"saleId" validate:"required"`
	OwnerApprovalSignature trade.Signature `json:"ownerApprovalSignature" validate:"required,signature"`
	OwnerAddress           domain.Address  `json:"ownerAddress" validate:"required,eth_addr"`
}

type response struct {
	// unsigned transaction for the owner to sign and broadcast
	TxHash *settlement.TxDescriptor `json:"txHash"`
}

// settlePurchase
//
//	@Summary		Settle a direct sale
//	@Description	Build the finishAuction transaction for the purchase intent of a listing.
//	@Description	ownerApprovalSignature is the owner's personal_sign of keccak256(buyerSignature).
//	@Tags			settlements
//	@Accept			json
//	@Produce		json
//	@Param			params	body		http.params	true	"params"
//	@Success		200		{object}	http.response
//	@Failure		400
//	@Failure		404
//	@Failure		503
//	@Router			/settlements/purchase [post]
func (h *handler) settlePurchase(c echo.Context) error {
	return h.settle(c, h.settlementUseCase.SettlePurchase)
}

// settleAuction
//
//	@Summary		Settle an auction
//	@Description	Build the finishAuction transaction for the top bid of an auction listing.
//	@Description	ownerApprovalSignature is the owner's personal_sign of keccak256(bidderSignature).
//	@Tags			settlements
//	@Accept			json
//	@Produce		json
//	@Param			params	body		http.params	true	"params"
//	@Success		200		{object}	http.response
//	@Failure		400
//	@Failure		404
//	@Failure		503
//	@Router			/settlements/auction [post]
func (h *handler) settleAuction(c echo.Context) error {
	return h.settle(c, h.settlementUseCase.SettleAuction)
}

func (h *handler) settle(c echo.Context, fn func(ctx.Ctx, *settlement.Request) (*settlement.TxDescriptor, error)) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := params{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	tx, err := fn(ctx, &settlement.Request{
		SaleId:                 p.SaleId,
		OwnerApprovalSignature: p.OwnerApprovalSignature,
		OwnerAddress:           p.OwnerAddress,
	})
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "saleId": p.SaleId}).Warn("settlement failed")
		return delivery.MakeErrorResp(c, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, response{tx})
}
