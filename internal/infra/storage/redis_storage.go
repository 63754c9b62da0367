package storage

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/MUNENE1212/baitech26-sub002/internal/domain/model"
)

// Redis をバックエンドに使うカートストレージ。
// 1つの名前空間キーにワイヤ形式のJSONをそのまま入れる。
type RedisCartStorage struct {
	client *redis.Client
}

// redisAddr は "redis://..." または "host:port"
func NewRedisCartStorage(redisAddr string) *RedisCartStorage {
	opts, err := redis.ParseURL(redisAddr)
	if err != nil {
		// URL形式でなければ単純に Addr として使う
		opts = &redis.Options{
			Addr:         redisAddr,
			MinIdleConns: 1,
			DialTimeout:  10 * time.Second,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
		}
	}

	return &RedisCartStorage{client: redis.NewClient(opts)}
}

// 保存済みカートを読む。キー無し・破損は (nil, false, nil)。
func (s *RedisCartStorage) Load(ctx context.Context) ([]model.CartItem, bool, error) {
	val, err := s.client.Get(ctx, StorageName).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	items, ok := decodeState([]byte(val))
	if !ok {
		return nil, false, nil
	}
	return items, true, nil
}

// カート全体を上書き保存
func (s *RedisCartStorage) Save(ctx context.Context, items []model.CartItem) error {
	data, err := encodeState(items)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, StorageName, data, 0).Err()
}

// Redis が生きているかを確認
func (s *RedisCartStorage) Ping(ctx context.Context) bool {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return s.client.Ping(pingCtx).Err() == nil
}
