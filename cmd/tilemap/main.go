// Package main is the entry point for tilemap.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/tilemap/internal/app"
	"github.com/samdwyer/tilemap/internal/config"
	"github.com/samdwyer/tilemap/internal/telemetry"
)

const serviceName = "tilemap"

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	setupOTelEnv()

	ctx := context.Background()

	tracer := telemetry.NoopTracer(telemetry.ComponentApp)
	shutdown, err := telemetry.Setup(ctx, telemetry.Service{Name: serviceName})
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
	} else {
		tracer = telemetry.Tracer(telemetry.ComponentApp)
	}

	if err := run(ctx, tracer, shutdown); err != nil {
		log.Fatalf("%v", err)
	}
}

// run resolves config and builds the map. shutdown, when non-nil, is called
// before run returns so spans from a failed start are exported.
func run(ctx context.Context, tracer trace.Tracer, shutdown func(context.Context) error) error {
	if shutdown != nil {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	cfg, err := config.Resolve()
	if err != nil {
		return fmt.Errorf("failed to resolve config: %w", err)
	}

	if _, err := app.New(cfg, tracer).Init(ctx); err != nil {
		return fmt.Errorf("failed to initialize map: %w", err)
	}
	return nil
}

// setupOTelEnv maps HONEYCOMB_TILEMAP_* variables onto the OTEL_* ones the exporter reads.
func setupOTelEnv() {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	apiKey := os.Getenv("HONEYCOMB_TILEMAP_API_KEY")
	dataset := os.Getenv("HONEYCOMB_TILEMAP_DATASET")
	if dataset == "" {
		dataset = serviceName
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
