package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"ecertidoes/internal/adapter/http/handlers"
	"ecertidoes/internal/adapter/http/routes"
	"ecertidoes/internal/adapter/persistence/repository"
	"ecertidoes/internal/infrastructure/auth"
	"ecertidoes/internal/infrastructure/cache"
	"ecertidoes/internal/infrastructure/config"
	"ecertidoes/internal/infrastructure/database"
	"ecertidoes/internal/infrastructure/lookup"
	"ecertidoes/internal/infrastructure/metrics"
	"ecertidoes/internal/infrastructure/notification"
	"ecertidoes/internal/infrastructure/payments"
	"ecertidoes/internal/infrastructure/storage"
	"ecertidoes/internal/infrastructure/worker"
	"ecertidoes/internal/usecase"
	"ecertidoes/internal/usecase/interfaces"
)

type application struct {
	db        *gorm.DB
	cache     *cache.RedisCache
	webhooks  *worker.Dispatcher[usecase.WebhookEvent]
	handlers  routes.Handlers
	routeOpts routes.Options
}

func (a *application) close(log *zap.Logger) {
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			log.Warn("redis close failed", zap.Error(err))
		}
	}
	if err := database.Close(a.db); err != nil {
		log.Warn("database close failed", zap.Error(err))
	}
}

func build(ctx context.Context, cfg *config.Config, log *zap.Logger) (*application, error) {
	db, err := database.OpenPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}
	app := &application{db: db}

	if cfg.DB.AutoMigrate {
		if err := migrateUp(ctx, db, log); err != nil {
			app.close(log)
			return nil, err
		}
	}

	orders := repository.NewOrderGormRepository(db)
	paymentsRepo := repository.NewPaymentGormRepository(db)
	users := repository.NewUserGormRepository(db)

	fileStorage, notifications, err := buildAWS(ctx, cfg, log)
	if err != nil {
		app.close(log)
		return nil, err
	}

	var lookupCache interfaces.ILookupCache
	if cfg.Redis.Enabled {
		rc, err := cache.NewRedisCache(ctx, cfg.Redis, log)
		if err != nil {
			log.Warn("redis unavailable, lookup cache disabled", zap.Error(err))
		} else {
			app.cache = rc
			lookupCache = rc
		}
	}

	reg := metrics.NewRegistry()
	paymentMetrics := metrics.NewPaymentMetrics(reg)

	var gateway interfaces.IPaymentGateway
	if mp, err := payments.NewMercadoPagoGateway(cfg.MercadoPago, log); err != nil {
		log.Error("payment gateway disabled", zap.Error(err))
	} else {
		gateway = mp
	}

	var notifier interfaces.INotificationSender
	if cfg.Email.ResendAPIKey != "" {
		notifier = notification.NewResendSender(cfg.Email.ResendAPIKey, cfg.Email.From, cfg.App.BackendURL, log)
	} else {
		notifier = notification.NewLogSender(log)
	}

	tokens, err := auth.NewJWTManager(cfg.JWT)
	if err != nil {
		app.close(log)
		return nil, err
	}

	orderUC := usecase.NewOrderUseCase(orders, fileStorage, log)
	checkoutUC := usecase.NewCheckoutUseCase(orders, paymentsRepo, gateway, paymentMetrics, usecase.CheckoutConfig{
		FrontendURL:     cfg.App.FrontendURL,
		BackendURL:      cfg.App.BackendURL,
		MaxInstallments: cfg.MercadoPago.MaxInstallments,
	}, log)
	webhookUC := usecase.NewWebhookUseCase(orders, paymentsRepo, gateway, notifier, notifications, paymentMetrics, log)
	adminUC := usecase.NewAdminOrderUseCase(orders, paymentsRepo, gateway, notifier, fileStorage, notifications, paymentMetrics, log)
	authUC := usecase.NewAuthUseCase(users, auth.NewBcryptHasher(0), tokens, log)
	lookupUC := usecase.NewLookupUseCase(
		lookup.NewIBGEClient("", cfg.Lookup.HTTPTimeout),
		lookup.NewInfosimplesClient("", cfg.Lookup.InfosimplesToken, cfg.Lookup.InfosimplesTimeout),
		lookup.NewFrenetClient("", cfg.Lookup.FrenetToken, cfg.Lookup.FrenetSellerCEP, cfg.Lookup.HTTPTimeout),
		lookupCache,
		cfg.Redis.CacheTTL,
		log,
	)

	if err := authUC.EnsureAdmin(ctx, cfg.Admin.Nome, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		log.Error("admin bootstrap failed", zap.Error(err))
	}

	dispatcher, err := worker.NewDispatcher[usecase.WebhookEvent](func(ctx context.Context, ev usecase.WebhookEvent) {
		webhookUC.Process(ctx, ev)
	}, worker.Options{
		Workers:    cfg.Webhook.Workers,
		QueueSize:  cfg.Webhook.QueueSize,
		JobTimeout: cfg.Webhook.ProcessTimeout,
	}, paymentMetrics, log)
	if err != nil {
		app.close(log)
		return nil, err
	}
	dispatcher.Start()
	app.webhooks = dispatcher

	app.handlers = routes.Handlers{
		Orders:      handlers.NewOrderHandler(orderUC, cfg.Storage.MaxUploadBytes, log),
		Payments:    handlers.NewPaymentHandler(checkoutUC, dispatcher, log),
		AdminOrders: handlers.NewAdminOrderHandler(adminUC, cfg.Storage.MaxUploadBytes, log),
		Auth:        handlers.NewAuthHandler(authUC),
		Lookup:      handlers.NewLookupHandler(lookupUC),
	}
	app.routeOpts = routes.Options{Tokens: tokens, Registry: reg, Logger: log}
	return app, nil
}

func migrateUp(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	m, err := database.NewMigrator(sqlDB, "postgres", log)
	if err != nil {
		return err
	}
	return m.Up(ctx)
}

// buildAWS resolves the blob store and the optional DynamoDB webhook log.
func buildAWS(ctx context.Context, cfg *config.Config, log *zap.Logger) (interfaces.IFileStorage, interfaces.IWebhookNotificationRepository, error) {
	needAWS := cfg.DynamoDB.Enabled || cfg.Storage.Driver == config.StorageDriverS3
	if !needAWS {
		local, err := storage.NewLocalStorage(cfg.Storage.LocalDir)
		if err != nil {
			return nil, nil, err
		}
		return local, nil, nil
	}

	awsCfg, err := database.NewAWSConfig(ctx, cfg.DynamoDB)
	if err != nil {
		return nil, nil, fmt.Errorf("aws config: %w", err)
	}

	var fileStorage interfaces.IFileStorage
	switch cfg.Storage.Driver {
	case config.StorageDriverS3:
		fileStorage = storage.NewS3Storage(database.NewS3Client(awsCfg, cfg.Storage.S3Endpoint), cfg.Storage.S3Bucket, cfg.Storage.S3Prefix)
	default:
		local, err := storage.NewLocalStorage(cfg.Storage.LocalDir)
		if err != nil {
			return nil, nil, err
		}
		fileStorage = local
	}

	var notifications interfaces.IWebhookNotificationRepository
	if cfg.DynamoDB.Enabled {
		ddb := database.NewDynamoDBClient(awsCfg, cfg.DynamoDB.Endpoint)
		if cfg.DynamoDB.Endpoint != "" {
			if err := database.EnsureWebhookLogTable(ctx, ddb, cfg.DynamoDB.WebhookLogTable, repository.WebhookLogOrderIDIndex, log); err != nil {
				log.Warn("webhook log table bootstrap failed", zap.Error(err))
			}
		}
		notifications = repository.NewWebhookNotificationDynamoRepository(ddb, cfg.DynamoDB.WebhookLogTable)
	}
	return fileStorage, notifications, nil
}
