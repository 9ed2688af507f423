package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"sushi-pos/agg-svc/internal/service"
	"sushi-pos/agg-svc/internal/storage"
	"sushi-pos/config"
	"sushi-pos/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger := logging.New(cfg, "agg-svc")

	rdb := config.MustInitRedis(cfg)
	defer rdb.Close()

	reader := config.NewKafkaReader(cfg, "agg-svc")
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := service.NewConsumer(reader, storage.NewStore(rdb), logger)
	consumer.Start(ctx)
}
