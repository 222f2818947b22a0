package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "syngen/docs"
	"syngen/internal/api"
	"syngen/internal/api/handler"
	"syngen/pkg/router"
	"syngen/pkg/utils"
)

var (
	cfg struct {
		// Server config
		Addr           string `help:"Address the API listens on" default:":8080" env:"SYNGEN_ADDR"`
		RequestTimeout string `help:"Read and write timeout per request" default:"30s" env:"SYNGEN_REQUEST_TIMEOUT"`
		ShutdownGrace  string `help:"Time allowed for in-flight requests on shutdown" default:"10s" env:"SYNGEN_SHUTDOWN_GRACE"`

		// Generation limits
		DefaultRecords int `help:"Record count used when a request omits it" default:"100" env:"SYNGEN_DEFAULT_RECORDS"`
		MaxRecords     int `help:"Largest record count a request may ask for" default:"1000" env:"SYNGEN_MAX_RECORDS"`
	}
)

// @title SynGen API
// @version 1.0
// @description Synthetic dataset generation with summary statistics and CSV, XLSX, JSON and SQLite downloads.
// @host localhost:8080
// @BasePath /
func main() {
	_ = kong.Parse(&cfg,
		kong.Name("syngen-api"),
		kong.Description("Serve synthetic dataset generation over HTTP."),
	)

	h := handler.NewDatasetHandler(handler.Config{
		DefaultRecords: cfg.DefaultRecords,
		MaxRecords:     cfg.MaxRecords,
	})

	// Create router
	r := router.New()

	// Register API routes
	api.RegisterRoutes(r, h)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		timeout := utils.ParseDuration(cfg.RequestTimeout, 30*time.Second)
		errCh <- r.Start(cfg.Addr, otelhttp.NewHandler(r.Handler(), "syngen-api"), timeout)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("❌ server failed: %v", err)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), utils.ParseDuration(cfg.ShutdownGrace, 10*time.Second))
		defer cancel()
		if err := r.Shutdown(shutdownCtx); err != nil {
			log.Printf("⚠️ shutdown incomplete: %v", err)
		}
	}
}
