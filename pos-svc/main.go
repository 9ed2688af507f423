package main

import (
	"context"

	"sushi-pos/config"
	"sushi-pos/logging"
	httpapi "sushi-pos/pos-svc/internal/api/http"
	"sushi-pos/pos-svc/internal/service"
	"sushi-pos/pos-svc/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger := logging.New(cfg, "pos-svc")

	db := config.MustInitPostgres(cfg)
	defer db.Close()

	repo := storage.NewPostgresRepository(db, logger, cfg.SQLEcho)
	if err := repo.EnsureSchema(context.Background()); err != nil {
		logger.WithError(err).Fatal("failed to create schema")
	}

	rdb := config.MustInitRedis(cfg)
	defer rdb.Close()
	cache := storage.NewRedisCache(rdb, cfg.SettingsCacheTTL)

	writer := config.NewKafkaWriter(cfg)
	defer writer.Close()
	publisher := storage.NewKafkaPublisher(writer)

	settings := service.NewSettingsService(repo, cache, logger)
	qr := service.ReceiptQRGenerator{BaseURL: cfg.PublicBaseURL}

	handler := httpapi.NewHandler(
		service.NewCategoryService(repo),
		service.NewMenuItemService(repo, repo, repo),
		service.NewModifierService(repo, repo),
		service.NewTableService(repo, repo, publisher, logger),
		service.NewOrderService(repo, repo, repo, settings, publisher, qr, logger),
		settings,
		service.NewDashboardService(repo, cache, logger),
		logger,
	)

	httpapi.StartServer(":"+cfg.HTTPPort, httpapi.NewRouter(handler), logger)
}
