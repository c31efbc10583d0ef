package rewards

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	model "github.com/glkeru/rewards/internal/models"
	redis "github.com/redis/go-redis/v9"
)

const balanceTTL = time.Minute

var errStaleBalance = errors.New("stale balance")

type CacheService struct {
	client *redis.Client
}

func NewCacheService(addr string, user string, pwd string) (serv *CacheService, err error) {
	if addr == "" {
		return nil, fmt.Errorf("env REWARDS_CACHE_URL is not set")
	}
	db := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    pwd,
		Username:    user,
		DB:          0,
		MaxRetries:  5,
		DialTimeout: 10 * time.Second,
	})
	err = db.Ping(context.Background()).Err()
	if err != nil {
		return nil, err
	}
	return &CacheService{db}, nil
}

func balanceKey(user string) string {
	return "balance:" + user
}

func (c *CacheService) GetBalance(ctx context.Context, user string) (model.Balance, error) {
	val, err := c.client.Get(ctx, balanceKey(user)).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.Balance{}, fmt.Errorf("cached balance %w", model.ErrNotFound)
	} else if err != nil {
		return model.Balance{}, err
	}
	var balance model.Balance
	err = json.Unmarshal(val, &balance)
	if err != nil {
		return model.Balance{}, err
	}
	return balance, nil
}

func balanceVersionKey(user string) string {
	return "balance:ver:" + user
}

// Версия баланса в кэше: растет при каждом изменении баланса
func (c *CacheService) BalanceVersion(ctx context.Context, user string) (int64, error) {
	version, err := c.client.Get(ctx, balanceVersionKey(user)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return version, err
}

// Запись баланса, прочитанного при версии version. Если баланс успел измениться,
// снимок устарел и не записывается
func (c *CacheService) SetBalance(ctx context.Context, balance model.Balance, version int64) error {
	val, err := json.Marshal(balance)
	if err != nil {
		return err
	}
	verKey := balanceVersionKey(balance.User)
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, verKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != version {
			return errStaleBalance
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, balanceKey(balance.User), val, balanceTTL)
			return nil
		})
		return err
	}, verKey)
	if errors.Is(err, errStaleBalance) || errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	return err
}

func (c *CacheService) InvalidateBalance(ctx context.Context, user string) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, balanceVersionKey(user))
		pipe.Del(ctx, balanceKey(user))
		return nil
	})
	return err
}

func (c *CacheService) Close() error {
	return c.client.Close()
}
