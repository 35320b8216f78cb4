package database

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisStorage implements fiber.Storage so limiter counters survive restarts
// and are shared between instances.
type RedisStorage struct {
	Client *redis.Client
	prefix string
}

func NewRedisStorage(addr, password string) *RedisStorage {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
	return &RedisStorage{Client: rdb, prefix: "flc:limiter:"}
}

// Ping checks the connection; callers fall back to in-memory storage on error.
func (s *RedisStorage) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx).Err()
}

func (s *RedisStorage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	val, err := s.Client.Get(context.Background(), s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return val, err
}

func (s *RedisStorage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	return s.Client.Set(context.Background(), s.prefix+key, val, exp).Err()
}

func (s *RedisStorage) Delete(key string) error {
	if key == "" {
		return nil
	}
	return s.Client.Del(context.Background(), s.prefix+key).Err()
}

// Reset removes only the limiter keys, never the whole database.
func (s *RedisStorage) Reset() error {
	ctx := context.Background()
	iter := s.Client.Scan(ctx, 0, s.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := s.Client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (s *RedisStorage) Close() error {
	log.Println("[INFO] closing redis client")
	return s.Client.Close()
}
