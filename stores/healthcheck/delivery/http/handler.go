package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/otc-market/base/ctx"
	"github.com/x-xyz/otc-market/base/delivery"
	hcdomain "github.com/x-xyz/otc-market/domain/healthcheck"
)

// ResponseError represent the reseponse error struct
type ResponseError struct {
	Message string `json:"message"`
}

type healthCheckHandler struct {
	healthCheck hcdomain.HealthCheckUsecase
}

// New will initialize the healthcheck/
func New(e *echo.Echo, us hcdomain.HealthCheckUsecase) {
	handler := &healthCheckHandler{
		healthCheck: us,
	}
	g := e.Group("/health")
	g.GET("", handler.check)
}

type response struct {
	Healthy string `json:"healthy"`
	*hcdomain.Status
}

// check
//
//	@Summary		Health check
//	@Description	Reports the head block of the settlement chain
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	http.response
//	@Failure		503	{object}	http.ResponseError
//	@Router			/health [get]
func (h *healthCheckHandler) check(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	status, err := h.healthCheck.Check(context)
	if err != nil {
		return c.JSON(delivery.StatusOf(err), ResponseError{
			Message: err.Error(),
		})
	}
	return c.JSON(http.StatusOK, response{"ok", status})
}
