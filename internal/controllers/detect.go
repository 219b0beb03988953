package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/etkecc/go-kit"
	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"

	"github.com/etkecc/lid/internal/metrics"
	"github.com/etkecc/lid/internal/model"
)

type detectionService interface {
	Detect(ctx context.Context, text string, dctx *model.DetectionContext, origin string) *model.DetectionResult
	Trend() *model.TrendSnapshot
	Stats() *model.DetectionStats
	SweepCache(ctx context.Context)
	ClearCache()
	Reset()
}

func detect(svc detectionService) echo.HandlerFunc {
	return func(c echo.Context) error {
		defer metrics.DetectRequests.Inc()

		var req *model.DetectionRequest
		if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
			apiErr := kit.NewErrorResponse(err, http.StatusBadRequest)
			return c.JSON(apiErr.StatusCode, apiErr)
		}
		if req == nil || req.Text == "" {
			apiErr := kit.NewErrorResponse(errors.New("text is required"), http.StatusBadRequest)
			return c.JSON(apiErr.StatusCode, apiErr)
		}

		result := svc.Detect(c.Request().Context(), req.Text, req.Context, getOrigin(c.Request()))
		return c.JSON(http.StatusOK, result)
	}
}

func trend(svc detectionService) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, svc.Trend())
	}
}

func stats(svc detectionService) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, svc.Stats())
	}
}

func sweepCache(svc detectionService) echo.HandlerFunc {
	return func(c echo.Context) error {
		svc.SweepCache(c.Request().Context())
		return c.NoContent(http.StatusNoContent)
	}
}

func clearCache(svc detectionService) echo.HandlerFunc {
	return func(c echo.Context) error {
		svc.ClearCache()
		return c.NoContent(http.StatusNoContent)
	}
}

func reset(svc detectionService) echo.HandlerFunc {
	return func(c echo.Context) error {
		svc.Reset()
		return c.NoContent(http.StatusNoContent)
	}
}
