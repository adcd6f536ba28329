package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/otc-market/base/ctx"
	"github.com/x-xyz/otc-market/base/delivery"
	"github.com/x-xyz/otc-market/domain"
	"github.com/x-xyz/otc-market/domain/auction"
	"github.com/x-xyz/otc-market/domain/trade"
	"github.com/x-xyz/otc-market/middleware"
)

type handler struct {
	auctionUseCase auction.UseCase
}

func New(e *echo.Echo, auctionUseCase auction.UseCase) {
	h := &handler{auctionUseCase}

	e.POST("/bids", h.submitBid)

	g := e.Group("/auctions/:saleId", middleware.IsValidSaleId("saleId"))

	g.GET("/bids", h.getBids)
	g.GET("/top-bid", h.getTopBid)
}

// submitBid
//
//	@Summary		Submit a bid
//	@Description	Submit a signed bid on an auction listing. The bid must be strictly higher than the current top bid.
//	@Tags			auctions
//	@Accept			json
//	@Produce		json
//	@Param			params	body		http.submitBid.params	true	"params"
//	@Success		201		{object}	auction.Bid
//	@Failure		400
//	@Failure		404
//	@Router			/bids [post]
func (h *handler) submitBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		SaleId              domain.SaleId   `json:"saleId" validate:"required"`
		CollectionAddress   domain.Address  `json:"collectionAddress" validate:"required,eth_addr"`
		PaymentTokenAddress domain.Address  `json:"paymentTokenAddress" validate:"required,eth_addr"`
		TokenId             *domain.Uint256 `json:"tokenId" validate:"required"`
		Amount              *domain.Uint256 `json:"amount" validate:"required"`
		BidderSignature     trade.Signature `json:"bidderSignature" validate:"required,signature"`
		BidderAddress       domain.Address  `json:"bidderAddress" validate:"required,eth_addr"`
	}

	p := params{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.auctionUseCase.SubmitBid(ctx, &auction.SubmitParams{
		SaleId:              p.SaleId,
		CollectionAddress:   p.CollectionAddress,
		PaymentTokenAddress: p.PaymentTokenAddress,
		TokenId:             p.TokenId,
		Amount:              p.Amount,
		BidderSignature:     p.BidderSignature,
		BidderAddress:       p.BidderAddress,
	})
	if err != nil {
		return delivery.MakeErrorResp(c, err)
	}

	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

// getBids
//
//	@Summary		Get the bids of an auction
//	@Description	Bids in acceptance order, amounts strictly increasing
//	@Tags			auctions
//	@Produce		json
//	@Param			saleId	path		int	true	"sale id"
//	@Success		200		{object}	[]auction.Bid
//	@Failure		400
//	@Router			/auctions/{saleId}/bids [get]
func (h *handler) getBids(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	saleId, _ := domain.ParseSaleId(c.Param("saleId"))

	res, err := h.auctionUseCase.GetBids(ctx, saleId)
	if err != nil {
		return delivery.MakeErrorResp(c, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getTopBid
//
//	@Summary		Get the top bid of an auction
//	@Tags			auctions
//	@Produce		json
//	@Param			saleId	path		int	true	"sale id"
//	@Success		200		{object}	auction.Bid
//	@Failure		400
//	@Failure		404
//	@Router			/auctions/{saleId}/top-bid [get]
func (h *handler) getTopBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	saleId, _ := domain.ParseSaleId(c.Param("saleId"))

	res, err := h.auctionUseCase.GetTopBid(ctx, saleId)
	if err != nil {
		return delivery.MakeErrorResp(c, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
