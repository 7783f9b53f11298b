package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"

	"github.com/lessonlabs/slidekit/config"
	"github.com/lessonlabs/slidekit/pkg/otel"
	"github.com/lessonlabs/slidekit/server/api"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var version = "dev"

func main() {
	configFlag := flag.String("config", "config.yaml", "configuration file")
	addrFlag := flag.String("addr", "", "listen address")

	flag.Parse()

	ctx := context.Background()

	if err := otel.Setup(ctx, "slidekit", version); err != nil {
		slog.Error("telemetry setup failed", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Parse(*configFlag)

	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if *addrFlag != "" {
		cfg.Address = *addrFlag
	}

	handler, err := api.New(cfg)

	if err != nil {
		slog.Error("handler setup failed", "error", err)
		os.Exit(1)
	}

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Route("/v1", handler.Attach)

	slog.Info("starting server", "address", cfg.Address)

	if err := http.ListenAndServe(cfg.Address, otelhttp.NewHandler(r, "server")); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
