// Job - обработка покупок из Kafka: начисление штампов и баллов
package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/glkeru/loyalty/cards/internal/app"
	"github.com/glkeru/loyalty/cards/internal/config"
	kafka "github.com/glkeru/loyalty/cards/internal/external/kafka"
	"go.uber.org/zap"
)

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// config
	cfg, err := config.Load[config.Consumer]()
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}

	// kafka
	reader := kafka.NewReader(cfg.Kafka, kafka.TopicPurchases)
	defer reader.Close()

	// database
	start, cancelStart := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStart()
	stores, err := app.Open(start, logger, cfg.Postgres, cfg.Mongo, cfg.Cache)
	if err != nil {
		logger.Fatal("storage", zap.Error(err))
	}
	defer stores.Close(context.Background())

	// services
	serv := stores.Service(logger, cfg.Workers.Count)

	// start
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	err = serv.Consume(ctx, reader, "ProcessPurchase", func(ctx context.Context, msg string) error {
		_, err := serv.ProcessPurchase(ctx, msg)
		return err
	})
	if err != nil {
		logger.Error("consumer stopped", zap.Error(err))
	}
}
