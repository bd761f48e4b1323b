// Job - обработка запросов на списание наград из RabbitMQ с подтверждением результата
package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/glkeru/loyalty/cards/internal/app"
	"github.com/glkeru/loyalty/cards/internal/config"
	rabbit "github.com/glkeru/loyalty/cards/internal/external/rabbitmq"
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
	cfg, err := config.Load[config.Redeemer]()
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}

	// rabbitmq
	reader, err := rabbit.NewRabbitConsumer(cfg.Rabbit)
	if err != nil {
		logger.Fatal("rabbitmq", zap.Error(err))
	}
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

	err = serv.Consume(ctx, reader, "Redeem", serv.RedeemAndConfirm(reader))
	if err != nil {
		logger.Error("consumer stopped", zap.Error(err))
	}
}
