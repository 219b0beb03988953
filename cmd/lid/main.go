package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/etkecc/go-apm"
	healthchecks "github.com/etkecc/go-healthchecks/v2"
	"github.com/labstack/echo/v4"
	"github.com/mileusna/crontab"

	"github.com/etkecc/lid/internal/controllers"
	"github.com/etkecc/lid/internal/detector"
	"github.com/etkecc/lid/internal/metrics"
	"github.com/etkecc/lid/internal/model"
	"github.com/etkecc/lid/internal/services"
	"github.com/etkecc/lid/internal/version"
)

const healthchecksDuration = 60 * time.Second

var (
	configPath string
	hc         *healthchecks.Client
	cron       *crontab.Crontab
	e          *echo.Echo
)

func main() {
	quit := make(chan struct{})
	flag.StringVar(&configPath, "c", "config.yml", "Path to the config file")
	flag.Parse()

	cfg, err := services.NewConfig(configPath)
	if err != nil {
		log.Panic(err)
	}
	apm.SetName(version.Name)
	apm.SetLogLevel(cfg.Get().LogLevel)
	apm.SetSentryDSN(cfg.Get().SentryDSN)
	ctx := apm.NewContext()
	initHealthchecks(cfg.Get())

	engine, err := detector.New(engineOptions(cfg.Get().Engine))
	if err != nil {
		log.Panic(err)
	}
	metrics.RegisterEngine(
		func() float64 { return float64(engine.Statistics().Detections) },
		func() float64 { return float64(engine.Statistics().CacheHits) },
		func() float64 { return float64(engine.CacheLen()) },
	)
	detectionSvc := services.NewDetection(cfg, engine)

	e = echo.New()
	controllers.ConfigureRouter(e, cfg, detectionSvc)

	initCron(ctx, cfg, detectionSvc)
	initShutdown(quit)

	apm.Log(ctx).Info().Str("address", cfg.Get().Address+":"+cfg.Get().Port).Msg("starting server")
	if err := e.Start(cfg.Get().Address + ":" + cfg.Get().Port); err != nil && err != http.ErrServerClosed {
		log.Fatal("shutting down the server", err)
	}

	<-quit
}

// engineOptions maps the yaml knobs onto engine options, zero values keep the
// engine defaults
func engineOptions(cfg *model.ConfigEngine) detector.Options {
	if cfg == nil {
		return detector.Options{}
	}
	opts := detector.Options{
		MinSampleLength: cfg.MinSampleLength,
		MaxSampleLength: cfg.MaxSampleLength,
		CacheMaxEntries: cfg.CacheMaxEntries,
		WordNoiseFloor:  cfg.WordNoiseFloor,
		FrequencyFloor:  cfg.FrequencyFloor,
	}
	if ttl, err := time.ParseDuration(cfg.CacheTTL); err == nil {
		opts.CacheTTL = ttl
	}
	if horizon, err := time.ParseDuration(cfg.TrendHorizon); err == nil {
		opts.TrendHorizon = horizon
	}
	return opts
}

func initHealthchecks(cfg *model.Config) {
	if cfg.Healthchecks == nil || cfg.Healthchecks.UUID == "" {
		return
	}
	hc = healthchecks.New(
		healthchecks.WithBaseURL(cfg.Healthchecks.URL),
		healthchecks.WithCheckUUID(cfg.Healthchecks.UUID),
	)
	hc.Start(strings.NewReader("lid is starting"))
	go hc.Auto(healthchecksDuration)
	apm.SetHealthchecks(hc)
}

func initCron(ctx context.Context, cfg services.ConfigService, detectionSvc *services.Detection) {
	cron = crontab.New()
	if cfg.Get().Cron == nil || cfg.Get().Cron.Sweep == "" {
		return
	}
	if err := cron.AddJob(cfg.Get().Cron.Sweep, func() { detectionSvc.SweepCache(ctx) }); err != nil {
		apm.Log(ctx).Error().Err(err).Msg("cannot schedule cache sweep")
	}
}

func initShutdown(quit chan struct{}) {
	listener := make(chan os.Signal, 1)
	signal.Notify(listener, os.Interrupt, syscall.SIGABRT, syscall.SIGHUP, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)
	go func() {
		<-listener
		defer close(quit)
		shutdown()
	}()
}

func shutdown() {
	ctx := apm.NewContext()
	apm.Log(ctx).Info().Msg("shutting down...")
	if cron != nil {
		cron.Shutdown()
	}
	if hc != nil {
		hc.Shutdown()
		hc.ExitStatus(0, strings.NewReader("shutting down"))
	}
	ctxShutdown, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctxShutdown); err != nil {
		apm.Log(ctx).Error().Err(err).Msg("cannot shutdown server")
	}
	apm.Flush(ctx)
}
