package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/otc-market/base/ctx"
	"github.com/x-xyz/otc-market/base/delivery"
	"github.com/x-xyz/otc-market/domain"
	"github.com/x-xyz/otc-market/domain/listing"
	"github.com/x-xyz/otc-market/middleware"
)

type handler struct {
	listingUseCase listing.UseCase
}

func New(e *echo.Echo, listingUseCase listing.UseCase) {
	h := &handler{listingUseCase}

	gs := e.Group("/listings")

	gs.POST("", h.createListing)
	gs.GET("", h.listAll)

	gs.GET("/:saleId", h.getListing, middleware.IsValidSaleId("saleId"))
}

// createListing
//
//	@Summary		Create a listing
//	@Description	Register an NFT for direct sale or auction. The owner must currently own the token.
//	@Tags			listings
//	@Accept			json
//	@Produce		json
//	@Param			params	body		http.createListing.params	true	"params"
//	@Success		201		{object}	http.createListing.response
//	@Failure		400
//	@Failure		503
//	@Router			/listings [post]
func (h *handler) createListing(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		CollectionAddress   domain.Address  `json:"collectionAddress" validate:"required,eth_addr"`
		TokenId             *domain.Uint256 `json:"tokenId" validate:"required"`
		PaymentTokenAddress domain.Address  `json:"paymentTokenAddress" validate:"required,eth_addr"`
		// price for direct sales, reserve for auctions
		Amount       *domain.Uint256 `json:"amount" validate:"required"`
		IsAuction    *bool           `json:"isAuction" validate:"required"`
		OwnerAddress domain.Address  `json:"ownerAddress" validate:"required,eth_addr"`
	}

	type response struct {
		SaleId domain.SaleId `json:"saleId"`
	}

	p := params{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	saleId, err := h.listingUseCase.CreateListing(ctx, &listing.CreateListingParams{
		CollectionAddress:   p.CollectionAddress,
		TokenId:             p.TokenId,
		PaymentTokenAddress: p.PaymentTokenAddress,
		Amount:              p.Amount,
		IsAuction:           p.IsAuction,
		OwnerAddress:        p.OwnerAddress,
	})
	if err != nil {
		ctx.WithField("err", err).Warn("listingUseCase.CreateListing failed")
		return delivery.MakeErrorResp(c, err)
	}

	return delivery.MakeJsonResp(c, http.StatusCreated, response{saleId})
}

// listAll
//
//	@Summary		List all listings
//	@Description	List listings in creation order, optionally filtered
//	@Tags			listings
//	@Produce		json
//	@Param			isAuction	query		bool	false	"true for auctions, false for direct sales"
//	@Param			owner		query		string	false	"owner address"
//	@Param			collection	query		string	false	"NFT collection contract address"
//	@Success		200			{object}	[]listing.Listing
//	@Failure		400
//	@Failure		500
//	@Router			/listings [get]
func (h *handler) listAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		IsAuction  *bool           `query:"isAuction"`
		Owner      *domain.Address `query:"owner" validate:"omitempty,eth_addr"`
		Collection *domain.Address `query:"collection" validate:"omitempty,eth_addr"`
	}

	p := params{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	opts := []listing.FindAllOptionsFunc{}

	if p.IsAuction != nil {
		opts = append(opts, listing.WithIsAuction(*p.IsAuction))
	}

	if p.Owner != nil {
		opts = append(opts, listing.WithOwner(*p.Owner))
	}

	if p.Collection != nil {
		opts = append(opts, listing.WithCollection(*p.Collection))
	}

	res, err := h.listingUseCase.ListAll(ctx, opts...)
	if err != nil {
		return delivery.MakeErrorResp(c, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getListing
//
//	@Summary		Get a listing
//	@Tags			listings
//	@Produce		json
//	@Param			saleId	path		int	true	"sale id"
//	@Success		200		{object}	listing.Listing
//	@Failure		400
//	@Failure		404
//	@Router			/listings/{saleId} [get]
func (h *handler) getListing(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	saleId, _ := domain.ParseSaleId(c.Param("saleId"))

	res, err := h.listingUseCase.GetListing(ctx, saleId)
	if err != nil {
		return delivery.MakeErrorResp(c, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
