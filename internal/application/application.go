package application

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/TimohUSik/SkidkiSteamBot/internal/config"
	"github.com/TimohUSik/SkidkiSteamBot/internal/domain/entity"
	"github.com/TimohUSik/SkidkiSteamBot/internal/domain/service/deals"
	"github.com/TimohUSik/SkidkiSteamBot/internal/domain/service/watchlist"
	"github.com/TimohUSik/SkidkiSteamBot/internal/infrastructure/notifier"
	"github.com/TimohUSik/SkidkiSteamBot/internal/infrastructure/persistence"
	"github.com/TimohUSik/SkidkiSteamBot/internal/infrastructure/steam"
	"github.com/TimohUSik/SkidkiSteamBot/internal/server"
	"github.com/TimohUSik/SkidkiSteamBot/internal/transport/bot"
	"github.com/TimohUSik/SkidkiSteamBot/internal/worker"
	"github.com/TimohUSik/SkidkiSteamBot/pkg/application/connectors"
	"github.com/TimohUSik/SkidkiSteamBot/pkg/application/modules"
	"github.com/TimohUSik/SkidkiSteamBot/pkg/contextx"
	"github.com/TimohUSik/SkidkiSteamBot/pkg/logx"
	"github.com/TimohUSik/SkidkiSteamBot/pkg/middlewarex"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const (
	notificationBuffer = 100
	logDumpMaxLen      = 4096
)

// Run собирает все компоненты и работает до отмены контекста.
func Run(ctx context.Context) error { //nolint:funlen
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)

	// Хранилище вотчлистов.
	watchlistRepo, closeStorage, err := newWatchlistRepository(ctx, cfg)
	if err != nil {
		return err
	}

	if closeStorage != nil {
		defer closeStorage()
	}

	// Дедупликация уведомлений.
	deduper, closeDedup := newDeduper(ctx, cfg)
	if closeDedup != nil {
		defer closeDedup()
	}

	// Витрина магазина и доменные сервисы.
	catalog := steam.NewClient(cfg.Steam)
	resolver := deals.NewPriceResolver(catalog, cfg.Steam)
	collector := deals.NewSourceCollector(catalog, cfg.Steam.PrimaryRegion, cfg.Scan.MaxApps)

	watchService := watchlist.NewService(watchlistRepo, resolver, catalog)

	dealService := deals.NewService(resolver, collector, watchService, deduper).
		WithThresholds(cfg.Scan.MinOriginalPrice, cfg.Scan.MinDiscountPercent)

	// Уведомления: сканер кладёт в канал, бот-отправитель забирает.
	notifications := make(chan entity.Notification, notificationBuffer)

	alertBot, err := notifier.NewTelegramBot(cfg.Bot.Token, cfg.Bot.ChatID)
	if err != nil {
		return fmt.Errorf("notifier.NewTelegramBot: %w", err)
	}

	g.Go(func() error {
		if err := alertBot.Run(ctx, notifications); err != nil && ctx.Err() == nil {
			return fmt.Errorf("alertBot.Run: %w", err)
		}

		return nil
	})

	scanner := worker.NewDealScanner(dealService, resolver, notifications, cfg.Scan.Interval)
	if err = scanner.Start(ctx); err != nil {
		return fmt.Errorf("scanner.Start: %w", err)
	}

	defer scanner.Stop()

	// Телеграм-бот с командами подписчиков.
	commandBot, err := bot.New(cfg, dealService, watchService, scanner)
	if err != nil {
		return fmt.Errorf("bot.New: %w", err)
	}

	g.Go(func() error {
		if err := commandBot.Run(ctx); err != nil && ctx.Err() == nil {
			return fmt.Errorf("commandBot.Run: %w", err)
		}

		return nil
	})

	// Служебный HTTP API.
	router := chi.NewRouter()
	router.Use(
		middlewarex.Recovery,
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.RequestLogging(logx.NewSensitiveDataMasker(), logDumpMaxLen),
		middlewarex.ResponseLogging(logx.NewSensitiveDataMasker(), logDumpMaxLen),
	)

	server.NewServer(
		server.NewDealServer(dealService, watchService, scanner),
	).RegisterRoutes(router)

	modules.HTTPServer{ShutdownTimeout: cfg.Server.ShutdownTimeout}.Run(ctx, g, &http.Server{ //nolint:exhaustruct
		Addr:    cfg.Server.HTTPListen,
		Handler: router,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	})

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Server.ProbeListen,
	}.Run(ctx, g)

	modules.MetricServer{ListenAddress: cfg.Server.MetricsListen}.Run(ctx, g)

	logger(ctx).Info("application started")

	if err = g.Wait(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}

func newWatchlistRepository(ctx context.Context, cfg config.Config) (watchlist.Repository, func(), error) {
	if cfg.Storage.Driver == config.StorageDriverPostgres {
		pg := &connectors.Postgres{ //nolint:exhaustruct
			DSN:             cfg.Storage.Postgres.DSN,
			MaxOpenConns:    cfg.Storage.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Storage.Postgres.MaxIdleConns,
			ConnMaxLifetime: cfg.Storage.Postgres.ConnMaxLifetime,
		}

		db := pg.Client(ctx)
		if err := db.PingContext(ctx); err != nil {
			return nil, nil, fmt.Errorf("db.Ping: %w", err)
		}

		return persistence.NewPostgresStore(db), func() { pg.Close(ctx) }, nil
	}

	return persistence.NewFileStore(cfg.Storage.Path, cfg.Storage.MigrateTo), nil, nil
}

func newDeduper(ctx context.Context, cfg config.Config) (deals.Deduper, func()) {
	if cfg.Dedup.Driver == config.DedupDriverRedis {
		rd := &connectors.Redis{ //nolint:exhaustruct
			Address:        cfg.Dedup.Redis.Address,
			Username:       cfg.Dedup.Redis.Username,
			Password:       cfg.Dedup.Redis.Password,
			DatabaseNumber: cfg.Dedup.Redis.DB,
		}

		return persistence.NewRedisDeduper(rd.Client(ctx), cfg.Dedup.TTL), func() { rd.Close(ctx) }
	}

	return deals.NewMemoryDeduper(), nil
}
