package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var ErrKeyNotFound = errors.New("key not found")

// IRedis stores expiring session state, currently refresh tokens keyed by
// user ID.
type IRedis interface {
	SetRefreshToken(ctx context.Context, userID string, token string, expiration time.Duration) error
	GetRefreshToken(ctx context.Context, userID string) (string, error)
	DeleteRefreshToken(ctx context.Context, userID string) error
}

type redisClient struct {
	client *redis.Client
}

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client}
}

func refreshKey(userID string) string {
	return "refresh_token:" + userID
}

func (r *redisClient) SetRefreshToken(ctx context.Context, userID string, token string, expiration time.Duration) error {
	if err := r.client.Set(ctx, refreshKey(userID), token, expiration).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error setting refresh token for user %s: %v", userID, err))
		return err
	}
	return nil
}

func (r *redisClient) GetRefreshToken(ctx context.Context, userID string) (string, error) {
	val, err := r.client.Get(ctx, refreshKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error getting refresh token for user %s: %v", userID, err))
		return "", err
	}
	return val, nil
}

func (r *redisClient) DeleteRefreshToken(ctx context.Context, userID string) error {
	if _, err := r.client.Del(ctx, refreshKey(userID)).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Error deleting refresh token for user %s: %v", userID, err))
		return err
	}
	return nil
}
