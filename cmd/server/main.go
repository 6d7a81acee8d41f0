// Command server runs the HR insight dashboard: a server-rendered web app
// with employee profiles, attrition/promotion predictions, a task tracker,
// HR chatbots, PDF reports, and a spreadsheet mirror of profile and
// applicant data.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/config"
	httpapi "github.com/Neha-N8242/HR-Insight-Dashboard/internal/http"
	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/ml"
	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/observability"
	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/repo"
	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/sysutil"
	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/xlsx"
)

// version is stamped at build time via -ldflags.
var version = "dev"

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	sysutil.SetLogLevel(cfg.LogLevel)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	log.Info().Str("version", version).Msg("starting hr-insight-dashboard")

	gin.SetMode(cfg.GinMode)

	ctx := context.Background()

	// Tracing (no-op unless OTEL_ENABLED).
	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}

	// Storage.
	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database failed")
	}
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("database migration failed")
	}
	if cfg.OTEL.Enabled {
		if err := repo.EnableTracing(db); err != nil {
			log.Fatal().Err(err).Msg("db tracing setup failed")
		}
	}

	// Model pipeline. Training is synthetic and takes a moment at boot;
	// the process must not serve traffic without a fitted model.
	pipeline, err := ml.Train()
	if err != nil {
		log.Fatal().Err(err).Msg("model training failed")
	}
	log.Info().Msg("prediction pipeline ready")

	// Spreadsheet mirror. DISABLE_MIRROR is an escape hatch for setups
	// where the workbook path is not writable.
	var mirror xlsx.Mirror
	if !sysutil.IsTruthy(os.Getenv("DISABLE_MIRROR")) {
		fm, err := xlsx.NewFileMirror(cfg.XLSXPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.XLSXPath).Msg("open workbook failed")
		}
		mirror = fm
	} else {
		log.Warn().Msg("spreadsheet mirror disabled")
	}

	// HTTP transport.
	r := gin.New()
	httpapi.RegisterRoutes(r, db, pipeline, mirror, cfg)

	addr := ":" + sysutil.FirstNonEmpty(cfg.Port, "8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	if err := shutdownOTel(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("otel shutdown")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info().Msg("bye")
}
