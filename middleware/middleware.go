package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/otc-market/base/ctx"
	"github.com/x-xyz/otc-market/base/delivery"
	"github.com/x-xyz/otc-market/base/log"
	"github.com/x-xyz/otc-market/base/metrics"
	"github.com/x-xyz/otc-market/domain"
)

// GoMiddleware represent the data-struct for middleware
type GoMiddleware struct {
	// another stuff , may be needed by middleware
}

// InitMiddleware initialize the middleware
func InitMiddleware() *GoMiddleware {
	return &GoMiddleware{}
}

// AddContexte adds custome context into echo
func (m *GoMiddleware) AddContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			cont := ctx.WithValue(ctx.Background(), "requestID", c.Response().Header().Get(echo.HeaderXRequestID))
			c.Set("ctx", cont)
			return next(c)
		}
	}
}

// ResponseLogger logs one line per response, failed responses carry the handler error
func (m *GoMiddleware) ResponseLogger() echo.MiddlewareFunc {
	met := metrics.New("http")
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			met.BumpHistogram("request.time", float64(time.Since(start).Milliseconds()),
				"method", req.Method, "path", c.Path(), "status", strconv.Itoa(res.Status))

			fields := log.Fields{
				"ms":         time.Since(start).Seconds() * 1000,
				"httpStatus": res.Status,
				"host":       req.Host,
				"remoteIP":   c.RealIP(),
				"uri":        req.URL.Path,
				"route":      c.Path(),
				"httpMethod": req.Method,
				"size":       res.Size,
				"userAgent":  req.UserAgent(),
				"referer":    req.Header.Get("Referer"),
			}

			cont, ok := c.Get("ctx").(ctx.Ctx)
			if !ok {
				cont = ctx.Background()
			}

			switch n := res.Status; {
			case n >= 500:
				fields["nextErr"] = err
				cont.WithFields(fields).Error("response")
			case n >= 400:
				fields["nextErr"] = err
				cont.WithFields(fields).Warn("response")
			default:
				cont.WithFields(fields).Info("response")
			}
			return nil
		}
	}
}

// IsValidSaleId rejects requests whose path param is not a sale id
func IsValidSaleId(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			if _, err := domain.ParseSaleId(c.Param(param)); err != nil {
				return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
			}
			return next(c)
		}
	}
}
