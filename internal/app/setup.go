package app

import (
	"context"
	"fmt"

	"github.com/polymaker/lp-bot/internal/discovery"
	"github.com/polymaker/lp-bot/internal/display"
	"github.com/polymaker/lp-bot/internal/execution"
	"github.com/polymaker/lp-bot/internal/markets"
	"github.com/polymaker/lp-bot/internal/monitor"
	"github.com/polymaker/lp-bot/internal/notify"
	"github.com/polymaker/lp-bot/internal/quoting"
	"github.com/polymaker/lp-bot/internal/scanner"
	"github.com/polymaker/lp-bot/internal/storage"
	"github.com/polymaker/lp-bot/pkg/cache"
	"github.com/polymaker/lp-bot/pkg/config"
	"github.com/polymaker/lp-bot/pkg/healthprobe"
	"github.com/polymaker/lp-bot/pkg/httpserver"
	"go.uber.org/zap"
)

// New creates a new application instance.
func New(cfg *config.Config, logger *zap.Logger, opts *Options) (*App, error) {
	if opts == nil {
		opts = &Options{}
	}

	ctx, cancel := context.WithCancel(context.Background())

	healthChecker := healthprobe.New()

	midpointCache, err := setupCache(logger)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("setup cache: %w", err)
	}

	marketScanner := setupScanner(cfg, logger)
	notifier := setupNotifier(cfg, logger)
	fillMonitor := setupMonitor(cfg, logger, midpointCache, notifier)

	store, err := setupStorage(cfg, logger)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("setup storage: %w", err)
	}

	orders, err := setupOrderClient(cfg, logger, opts)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("setup order client: %w", err)
	}

	a := &App{
		cfg:           cfg,
		logger:        logger,
		healthChecker: healthChecker,
		scanner:       marketScanner,
		strategist:    quoting.NewStrategist(cfg.SpreadSafetyMargin),
		orders:        orders,
		monitor:       fillMonitor,
		notifier:      notifier,
		store:         store,
		cache:         midpointCache,
		renderer:      display.NewConsoleRenderer(),
		ctx:           ctx,
		cancel:        cancel,
	}

	a.httpServer = httpserver.New(&httpserver.Config{
		Port:          cfg.HTTPPort,
		Logger:        logger,
		HealthChecker: healthChecker,
		Positions:     a,
	})

	return a, nil
}

func setupCache(logger *zap.Logger) (cache.Cache, error) {
	return cache.NewRistrettoCache(&cache.RistrettoConfig{
		NumCounters: 10000, // 10x expected max tracked tokens
		MaxCost:     1000,
		BufferItems: 64,
		Logger:      logger,
	})
}

func setupScanner(cfg *config.Config, logger *zap.Logger) *scanner.Scanner {
	return scanner.New(&scanner.Config{
		Client: discovery.NewClient(cfg.GammaAPIURL, cfg.ScanPageLimit, logger),
		Thresholds: scanner.Thresholds{
			MinDays:        cfg.MinDaysToResolution,
			MinDailyReward: cfg.MinDailyReward,
			MaxCompetition: cfg.MaxCompetitionScore,
		},
		Logger: logger,
	})
}

func setupNotifier(cfg *config.Config, logger *zap.Logger) notify.Notifier {
	if cfg.TelegramBotToken != "" && cfg.TelegramChatID != "" {
		logger.Info("telegram-notifier-enabled")
		return notify.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramChatID, logger)
	}

	logger.Info("console-notifier-enabled",
		zap.String("reason", "TELEGRAM_BOT_TOKEN or TELEGRAM_CHAT_ID not set"))
	return notify.NewConsoleNotifier(logger)
}

func setupMonitor(
	cfg *config.Config,
	logger *zap.Logger,
	midpointCache cache.Cache,
	notifier notify.Notifier,
) *monitor.Monitor {
	midpointClient := markets.NewMidpointClient(cfg.CLOBAPIURL)
	cachedMidpoints := markets.NewCachedMidpointSource(midpointClient, midpointCache, logger)

	return monitor.New(cachedMidpoints, notifier, &monitor.Config{
		FillAlertThreshold: cfg.FillAlertThreshold,
	}, logger)
}

func setupStorage(cfg *config.Config, logger *zap.Logger) (storage.Storage, error) {
	if cfg.StorageMode == "postgres" {
		pgStorage, err := storage.NewPostgresStorage(&storage.PostgresConfig{
			Host:     cfg.PostgresHost,
			Port:     cfg.PostgresPort,
			User:     cfg.PostgresUser,
			Password: cfg.PostgresPass,
			Database: cfg.PostgresDB,
			SSLMode:  cfg.PostgresSSL,
			Logger:   logger,
		})
		if err != nil {
			return nil, fmt.Errorf("create postgres storage: %w", err)
		}
		return pgStorage, nil
	}

	return storage.NewConsoleStorage(logger), nil
}

func setupOrderClient(cfg *config.Config, logger *zap.Logger, opts *Options) (OrderPlacer, error) {
	if opts.DryRun {
		logger.Info("order-client-disabled-dry-run-mode",
			zap.String("note", "quotes will be computed and logged only"))
		return nil, nil
	}

	if err := cfg.RequireTradingCredentials(); err != nil {
		return nil, err
	}

	return execution.NewOrderClient(&execution.OrderClientConfig{
		BaseURL:       cfg.CLOBAPIURL,
		APIKey:        cfg.APIKey,
		Secret:        cfg.APISecret,
		Passphrase:    cfg.APIPassphrase,
		PrivateKey:    cfg.PrivateKey,
		FunderAddress: cfg.FunderAddress,
		SignatureType: cfg.SignatureType,
		Logger:        logger,
	})
}
