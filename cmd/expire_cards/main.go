// Job - перевод карт с наступившей датой окончания в статус expired
package main

import (
	"context"
	"time"

	"github.com/glkeru/loyalty/cards/internal/app"
	"github.com/glkeru/loyalty/cards/internal/config"
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
	cfg, err := config.Load[config.Expirer]()
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	// database
	stores, err := app.Open(ctx, logger, cfg.Postgres, cfg.Mongo, cfg.Cache)
	if err != nil {
		logger.Fatal("storage", zap.Error(err))
	}
	defer stores.Close(context.Background())

	serv := stores.Service(logger, cfg.Workers.Count)
	expired, err := serv.ExpireDue(ctx)
	if err != nil {
		logger.Error(err.Error())
		return
	}
	logger.Info("Job card expiration is finished", zap.Int("expired", expired))
}
