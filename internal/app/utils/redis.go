package utils

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const redisPingTimeout = 3 * time.Second

// NewRedisClient подключается к Redis и проверяет соединение
func NewRedisClient(ctx context.Context, endpoint, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     endpoint,
		Password: password,
		DB:       0,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logrus.Warnf("Redis ping error: %v", err)
		_ = client.Close()
		return nil, err
	}
	logrus.WithField("endpoint", endpoint).Info("Redis connected")
	return client, nil
}
