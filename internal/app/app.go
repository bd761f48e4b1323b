// Сборка сервиса карт из хранилищ для бинарников cmd/*
package app

import (
	"context"

	"github.com/glkeru/loyalty/cards/internal/config"
	db "github.com/glkeru/loyalty/cards/internal/db"
	interf "github.com/glkeru/loyalty/cards/internal/interfaces"
	model "github.com/glkeru/loyalty/cards/internal/models"
	services "github.com/glkeru/loyalty/cards/internal/services"
	"go.uber.org/zap"
)

type Stores struct {
	Cards    *db.CardsDB
	Programs *db.ProgramsDB
	Cache    *db.CacheService
}

// Open connects postgres and mongo. Redis is optional: without an address or when it is down
// balances are read from postgres.
func Open(ctx context.Context, logger *zap.Logger, pg config.Postgres, mgo config.Mongo, cache config.Cache) (*Stores, error) {
	clock := model.SystemClock{}

	cards, err := db.NewCardsDB(ctx, pg, logger, clock)
	if err != nil {
		return nil, err
	}
	err = cards.Migrate(ctx)
	if err != nil {
		cards.Close()
		return nil, err
	}
	programs, err := db.NewProgramsDB(ctx, mgo, clock)
	if err != nil {
		cards.Close()
		return nil, err
	}
	return &Stores{Cards: cards, Programs: programs, Cache: openCache(ctx, logger, cache)}, nil
}

// nil, если кэш выключен или недоступен
func openCache(ctx context.Context, logger *zap.Logger, cfg config.Cache) *db.CacheService {
	if !cfg.Enabled() {
		logger.Info("cache is disabled")
		return nil
	}
	redis, err := db.NewCacheService(ctx, cfg)
	if err != nil {
		logger.Error("cache is not available", zap.Error(err))
		return nil
	}
	return redis
}

func (s *Stores) Service(logger *zap.Logger, workers int) *services.CardsService {
	var cache interf.CacheStorage
	if s.Cache != nil {
		cache = s.Cache
	}
	return services.NewCardsService(logger, s.Programs, s.Cards, cache, services.WithWorkers(workers))
}

func (s *Stores) Close(ctx context.Context) {
	s.Cards.Close()
	s.Programs.Close(ctx)
	if s.Cache != nil {
		s.Cache.Close()
	}
}
