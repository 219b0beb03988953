package controllers

import (
	"net/http"

	"github.com/etkecc/go-apm"
	echobasicauth "github.com/etkecc/go-echo-basic-auth"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/etkecc/lid/internal/metrics"
	"github.com/etkecc/lid/internal/model"
	"github.com/etkecc/lid/internal/version"
)

type configService interface {
	Get() *model.Config
}

// ConfigureRouter configures echo router
func ConfigureRouter(e *echo.Echo, cfg configService, detectionSvc detectionService) {
	configureRouter(e)

	e.GET("/metrics", echo.WrapHandler(&metrics.Handler{}), echobasicauth.NewMiddleware(&cfg.Get().Auth.Metrics))

	e.POST("/detect", detect(detectionSvc), getRL(30))
	e.GET("/trend", trend(detectionSvc), getRL(10))
	e.GET("/stats", stats(detectionSvc), getRL(10))

	a := e.Group("-")
	a.Use(echobasicauth.NewMiddleware(&cfg.Get().Auth.Admin))
	a.POST("/cache/sweep", sweepCache(detectionSvc))
	a.POST("/cache/clear", clearCache(detectionSvc))
	a.POST("/reset", reset(detectionSvc))
}

func configureRouter(e *echo.Echo) {
	e.Use(middleware.Recover())
	e.Use(apm.WithSentry())
	e.Use(middleware.Secure())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{MaxAge: 86400}))
	e.Use(middleware.Gzip())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderServer, version.Server)
			return next(c)
		}
	})
	e.HideBanner = true
	e.IPExtractor = echo.ExtractIPFromXFFHeader(
		echo.TrustLoopback(true),
		echo.TrustLinkLocal(true),
		echo.TrustPrivateNet(true),
	)
	e.Any("/_health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/robots.txt", func(c echo.Context) error {
		return c.String(http.StatusOK, "User-agent: *\nDisallow: /")
	})
}
