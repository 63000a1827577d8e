// Package app wires configuration, telemetry and the tile map together.
package app

import (
	"context"
	"fmt"
	"log"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/tilemap/internal/config"
	"github.com/samdwyer/tilemap/internal/world"
)

// App holds the resolved configuration and tracer.
type App struct {
	cfg    config.Config
	tracer trace.Tracer
}

// New creates an app for the given configuration.
func New(cfg config.Config, tracer trace.Tracer) *App {
	return &App{cfg: cfg, tracer: tracer}
}

// Init validates the configuration and builds a floor-filled map.
func (a *App) Init(ctx context.Context) (*world.Map, error) {
	_, span := a.tracer.Start(ctx, "map.init")
	defer span.End()

	if err := a.cfg.Validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	m := world.NewMapSize(a.cfg.Width, a.cfg.Height)

	span.SetAttributes(
		attribute.Int("map.width", m.Width()),
		attribute.Int("map.height", m.Height()),
		attribute.Int("map.tiles", m.Len()),
		attribute.Int("map.floor_tiles", m.Count(world.TileFloor)),
	)

	log.Printf("Map ready: %dx%d (%d tiles)", m.Width(), m.Height(), m.Len())
	return m, nil
}
