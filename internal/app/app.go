// Package app wires configuration into a ready order viewer, its metrics,
// and its HTTP server.
package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/goliatone/go-orderviewer/components/orderviewer"
	"github.com/goliatone/go-orderviewer/internal/config"
	"github.com/goliatone/go-orderviewer/internal/metrics"
	"github.com/goliatone/go-orderviewer/internal/server"
	"github.com/goliatone/go-orderviewer/pkg/i18n"
	"github.com/goliatone/go-orderviewer/pkg/orders"
	"github.com/goliatone/go-orderviewer/pkg/themes"
)

type App struct {
	Config    *config.Config
	Logger    *zap.Logger
	Registry  *prometheus.Registry
	Metrics   *metrics.Metrics
	Sessions  *orderviewer.MemorySessions
	Component *orderviewer.Component
}

func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("app: config is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	registry := metrics.NewRegistry()
	m := metrics.New(registry)
	sessions := orderviewer.NewMemorySessions(cfg.Server.SessionTTL)
	m.TrackSessions(sessions.Len)

	fns, err := ViewerOptions(ctx, cfg)
	if err != nil {
		return nil, err
	}
	fns = append(fns,
		orderviewer.WithLogger(logger.Named("orderviewer")),
		orderviewer.WithObserver(m),
		orderviewer.WithSessions(sessions),
	)

	component, err := orderviewer.New(fns...)
	if err != nil {
		return nil, err
	}

	endpoint := component.Options().Endpoint
	logger.Info("order viewer configured",
		zap.String("order_url", endpoint.BaseURL+endpoint.PathTemplate),
		zap.String("locale", cfg.Viewer.Locale),
		zap.String("ordering", cfg.Viewer.Ordering),
	)

	return &App{
		Config:    cfg,
		Logger:    logger,
		Registry:  registry,
		Metrics:   m,
		Sessions:  sessions,
		Component: component,
	}, nil
}

// ViewerOptions translates cfg into component options.
func ViewerOptions(ctx context.Context, cfg *config.Config) ([]orderviewer.OptionFn, error) {
	endpoint, err := resolveEndpoint(ctx, cfg.Remote)
	if err != nil {
		return nil, err
	}

	fns := []orderviewer.OptionFn{
		orderviewer.WithEndpoint(endpoint),
		orderviewer.WithRequestTimeout(cfg.Remote.Timeout),
		orderviewer.WithOrdering(orderviewer.ResponseOrdering(cfg.Viewer.Ordering)),
		orderviewer.WithLocale(cfg.Viewer.Locale),
		orderviewer.WithSessionTTL(cfg.Server.SessionTTL),
	}

	if path := strings.TrimSpace(cfg.Viewer.Catalog); path != "" {
		catalog := i18n.DefaultCatalog()
		if err := catalog.LoadFile(path); err != nil {
			return nil, fmt.Errorf("app: load catalog: %w", err)
		}
		fns = append(fns, orderviewer.WithTranslator(catalog))
	}

	themeCfg, err := resolveTheme(cfg.Viewer)
	if err != nil {
		return nil, err
	}
	fns = append(fns, orderviewer.WithTheme(themeCfg))

	if path := strings.TrimSpace(cfg.Viewer.LogoSVG); path != "" {
		markup, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("app: read logo: %w", err)
		}
		fns = append(fns, orderviewer.WithLogoSVG(string(markup)))
	}

	return fns, nil
}

// resolveEndpoint prefers an explicit base URL over the OpenAPI document's
// server entry.
func resolveEndpoint(ctx context.Context, remote config.Remote) (orders.Endpoint, error) {
	endpoint := orders.DefaultEndpoint()
	if path := strings.TrimSpace(remote.OpenAPI); path != "" {
		discovered, err := orders.LoadEndpointFile(ctx, path, remote.Operation)
		if err != nil {
			return orders.Endpoint{}, fmt.Errorf("app: resolve order endpoint: %w", err)
		}
		endpoint = discovered
	}
	if base := strings.TrimSpace(remote.BaseURL); base != "" {
		endpoint.BaseURL = base
	}
	return endpoint.Normalize(), nil
}

// resolveTheme only knows the built-in manifest and its variants.
func resolveTheme(viewer config.Viewer) (*theme.RendererConfig, error) {
	name := strings.TrimSpace(viewer.Theme)
	if name != "" && name != themes.DefaultName {
		return nil, fmt.Errorf("app: unknown theme %q", name)
	}
	return themes.FromManifest(themes.DefaultManifest(), viewer.Variant)
}

// Server builds the HTTP server for the component.
func (a *App) Server() (*server.Server, error) {
	router, routes, err := server.NewRouter(a.Component, a.Config.Server.Mount, metrics.Handler(a.Registry), a.Logger)
	if err != nil {
		return nil, err
	}
	a.Logger.Info("order viewer mounted", zap.String("page", routes.Page))

	return server.New(server.Config{
		Addr:            a.Config.Server.Addr,
		ShutdownTimeout: a.Config.Server.ShutdownTimeout,
	}, router, a.Logger), nil
}

// Viewer returns a standalone viewer for terminal sessions.
func (a *App) Viewer() *orderviewer.Viewer {
	return a.Component.NewViewer()
}
