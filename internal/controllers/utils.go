package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/etkecc/go-kit"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/etkecc/lid/internal/utils"
)

var rls = map[rate.Limit]echo.MiddlewareFunc{}

// getOrigin returns the hostname of the Origin header (if provided), or the Referer header (if provided)
func getOrigin(r *http.Request) string {
	if parsed := utils.ParseURL(r.Header.Get("Origin")); parsed != nil {
		return parsed.Hostname()
	}
	if parsed := utils.ParseURL(r.Header.Get("Referer")); parsed != nil {
		return parsed.Hostname()
	}
	return ""
}

func getRL(limit rate.Limit) echo.MiddlewareFunc {
	rl, ok := rls[limit]
	if ok {
		return rl
	}
	cfg := middleware.DefaultRateLimiterConfig
	cfg.Skipper = func(c echo.Context) bool {
		return c.Request().Method == http.MethodOptions
	}
	cfg.ErrorHandler = func(c echo.Context, err error) error {
		message := "error while extracting identifier" // default message from middleware
		if err != nil {
			message = err.Error()
		}
		return c.JSONBlob(http.StatusForbidden, utils.MustJSON(kit.NewErrorResponse(errors.New(message), http.StatusForbidden)))
	}
	cfg.DenyHandler = func(c echo.Context, _ string, _ error) error {
		c.Response().Header().Set(echo.HeaderRetryAfter, "10")
		return c.JSONBlob(http.StatusTooManyRequests, utils.MustJSON(kit.NewErrorResponse(errors.New("rate limit exceeded"), http.StatusTooManyRequests)))
	}
	cfg.Store = middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      limit,
		Burst:     int(limit),
		ExpiresIn: 5 * time.Minute,
	})
	rls[limit] = middleware.RateLimiterWithConfig(cfg)
	return rls[limit]
}
