package cards

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/glkeru/loyalty/cards/internal/config"
	model "github.com/glkeru/loyalty/cards/internal/models"
	redis "github.com/redis/go-redis/v9"
)

const balancePrefix = "card:balance:"

type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(ctx context.Context, cfg config.Cache) (*CacheService, error) {
	db := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		Username:    cfg.User,
		DB:          0,
		MaxRetries:  5,
		DialTimeout: 10 * time.Second,
	})
	err := db.Ping(ctx).Err()
	if err != nil {
		return nil, err
	}
	return &CacheService{db, cfg.TTL}, nil
}

func (c *CacheService) Close() error {
	return c.client.Close()
}

func (c *CacheService) GetBalance(ctx context.Context, id model.CardID) (model.Balance, error) {
	var balance model.Balance
	val, err := c.client.Get(ctx, balanceKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return balance, fmt.Errorf("balance %s %w", id, model.ErrNotFound)
	} else if err != nil {
		return balance, err
	}
	err = json.Unmarshal(val, &balance)
	if err != nil {
		return balance, err
	}
	return balance, nil
}

const setBalanceAttempts = 3

// SetBalance caches the balance unless the cache already holds one built from a newer card version.
// A reader that loaded the card before a concurrent update can't overwrite the fresher entry.
func (c *CacheService) SetBalance(ctx context.Context, balance model.Balance) error {
	val, err := json.Marshal(balance)
	if err != nil {
		return err
	}
	key := balanceKey(balance.CardID)
	set := func(tx *redis.Tx) error {
		cached, err := tx.Get(ctx, key).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if !replaces(cached, balance) {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, val, c.ttl)
			return nil
		})
		return err
	}
	for i := 0; i < setBalanceAttempts; i++ {
		err = c.client.Watch(ctx, set, key)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return err
}

// replaces reports whether balance may overwrite the cached entry. A broken entry is always replaced.
func replaces(cached []byte, balance model.Balance) bool {
	if cached == nil {
		return true
	}
	var old model.Balance
	if json.Unmarshal(cached, &old) != nil {
		return true
	}
	return old.Version <= balance.Version
}

func (c *CacheService) InvalidateBalance(ctx context.Context, id model.CardID) error {
	return c.client.Del(ctx, balanceKey(id)).Err()
}

func balanceKey(id model.CardID) string {
	return balancePrefix + id.String()
}
