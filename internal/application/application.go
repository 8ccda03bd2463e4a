package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"rating_widget/internal/config"
	"rating_widget/internal/domain/service/card"
	"rating_widget/internal/domain/service/resolver"
	"rating_widget/internal/infrastructure/rendercache"
	"rating_widget/internal/render"
	"rating_widget/internal/server"
	"rating_widget/pkg/application/connectors"
	"rating_widget/pkg/application/modules"
	"rating_widget/pkg/contextx"
	"rating_widget/pkg/logx"
	"rating_widget/pkg/probe"
)

// Run поднимает HTTP API виджетов вместе с probe- и metrics-серверами и
// блокируется до отмены ctx или падения одного из модулей.
func Run(ctx context.Context, logOutput io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	log, err := logx.NewLogger(logOutput, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("logx.NewLogger: %w", err)
	}

	log = log.With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	)

	slog.SetDefault(log)

	ctx = contextx.WithLogger(ctx, log)

	var (
		cache       card.RenderCache = rendercache.Nop{}
		readyChecks map[string]probe.Check
	)

	// Без REDIS_ADDRESS кэш рендера отключён.
	if cfg.Redis.Enabled() {
		redisConnector := &connectors.Redis{ //nolint:exhaustruct
			Address:            cfg.Redis.Address,
			Username:           cfg.Redis.Username,
			Password:           cfg.Redis.Password,
			DatabaseNumber:     cfg.Redis.DatabaseNumber,
			PoolSize:           cfg.Redis.PoolSize,
			MinIdleConnections: cfg.Redis.MinIdleConnections,
			MaxIdleConnections: cfg.Redis.MaxIdleConnections,
		}
		defer redisConnector.Close(ctx)

		cache = rendercache.NewRedisCache(redisConnector.Client(ctx), cfg.Widget.RenderTTL)
		readyChecks = map[string]probe.Check{"redis": redisConnector.Ping}
	}

	widgetResolver := resolver.NewResolver(
		resolver.WithLabelSet(cfg.Widget.LabelSet),
		resolver.WithFallbackGrade(cfg.Widget.FallbackGrade),
		resolver.WithMemoTTL(cfg.Widget.ResolveTTL),
	)

	renderer, err := render.NewRenderer(render.Options{
		BrandName:      cfg.Widget.BrandName,
		BadgeCaption:   cfg.Widget.BadgeCaption,
		SiteURL:        cfg.Widget.SiteURL,
		DefaultLogoURL: cfg.Widget.DefaultLogoURL,
	})
	if err != nil {
		return fmt.Errorf("render.NewRenderer: %w", err)
	}

	cacheKey := rendercache.KeyFunc(rendercache.Fingerprint(
		cfg.App.Version,
		cfg.Widget.LabelSet.String(),
		cfg.Widget.FallbackGrade.String(),
		cfg.Widget.BrandName,
		cfg.Widget.BadgeCaption,
		cfg.Widget.SiteURL,
		cfg.Widget.DefaultLogoURL,
	))

	cardService := card.NewCardService(widgetResolver, renderer, cache, cacheKey).
		WithStrictGrades(cfg.Widget.StrictGrades)

	router := server.NewRouter(
		server.NewServer(server.NewWidgetServer(cardService)),
		cfg.HTTP.LogFieldMaxLen,
	)

	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{
		ListenAddress:   cfg.HTTP.ListenAddress,
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g, router)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Probe.ListenAddress,
		ReadyChecks:   readyChecks,
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.Metrics.ListenAddress,
	}.Run(ctx, g)

	log.Info(
		"application started",
		slog.Bool("render-cache", cfg.Redis.Enabled()),
		slog.Bool("strict-grades", cfg.Widget.StrictGrades),
		slog.String(logx.FieldGrade, cfg.Widget.FallbackGrade.String()),
	)

	if err = g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}
