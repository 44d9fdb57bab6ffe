/*
Package redis provides the Redis connection used for session storage and
rate limiting.

  1. connection pool management
  2. automatic retries
  3. concurrency safe helpers
*/
package redis

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/logger"

	redis "github.com/redis/go-redis/v9"
)

const (
	// DefaultPoolSize connection pool size
	DefaultPoolSize = 100
	// DefaultTimeout per-operation timeout
	DefaultTimeout = 5 * time.Second
	// DefaultMinIdleConns minimum idle connections
	DefaultMinIdleConns = 10
	// DefaultMaxRetries maximum retries per command
	DefaultMaxRetries = 3
	// DefaultIdleTimeout idle connection timeout
	DefaultIdleTimeout = 5 * time.Minute
)

// RedisClient wraps the go-redis client
type RedisClient struct {
	Client  *redis.Client
	Context context.Context
	mutex   sync.RWMutex
}

// RedisConfig connection settings
type RedisConfig struct {
	Address      string
	Username     string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
	Timeout      time.Duration
}

var (
	once sync.Once

	// Redis global client instance
	Redis *RedisClient
)

// ConnectRedis initializes the global Redis connection
func ConnectRedis(address, username, password string, db int) {
	once.Do(func() {
		config := RedisConfig{
			Address:      address,
			Username:     username,
			Password:     password,
			DB:           db,
			PoolSize:     DefaultPoolSize,
			MinIdleConns: DefaultMinIdleConns,
			Timeout:      DefaultTimeout,
		}
		Redis = NewClient(config)
	})
}

// NewClient creates a Redis client from the given config
func NewClient(config RedisConfig) *RedisClient {
	rds := &RedisClient{
		Context: context.Background(),
	}

	rds.Client = redis.NewClient(&redis.Options{
		Addr:         config.Address,
		Username:     config.Username,
		Password:     config.Password,
		DB:           config.DB,
		PoolSize:     config.PoolSize,
		MinIdleConns: config.MinIdleConns,

		PoolTimeout:     config.Timeout,
		ConnMaxIdleTime: DefaultIdleTimeout,
		ConnMaxLifetime: 24 * time.Hour,

		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,

		MaxRetries:      DefaultMaxRetries,
		MinRetryBackoff: 8 * time.Millisecond,
		MaxRetryBackoff: 512 * time.Millisecond,
	})

	if err := rds.Ping(); err != nil {
		panic(fmt.Sprintf("Redis connection failed: %v", err))
	}

	return rds
}

// Ping checks the connection
func (rds *RedisClient) Ping() error {
	ctx, cancel := context.WithTimeout(rds.Context, DefaultTimeout)
	defer cancel()

	_, err := rds.Client.Ping(ctx).Result()
	return err
}

// Set stores a key with an expiration
func (rds *RedisClient) Set(key string, value interface{}, expiration time.Duration) bool {
	ctx, cancel := context.WithTimeout(rds.Context, DefaultTimeout)
	defer cancel()

	rds.mutex.Lock()
	defer rds.mutex.Unlock()

	if err := rds.Client.Set(ctx, key, value, expiration).Err(); err != nil {
		logger.ErrorString("Redis", "Set", err.Error())
		return false
	}
	return true
}

// Get reads a key, returning "" when absent
func (rds *RedisClient) Get(key string) string {
	ctx, cancel := context.WithTimeout(rds.Context, DefaultTimeout)
	defer cancel()

	rds.mutex.RLock()
	defer rds.mutex.RUnlock()

	result, err := rds.Client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			logger.ErrorString("Redis", "Get", err.Error())
		}
		return ""
	}
	return result
}

// Has reports whether a key exists
func (rds *RedisClient) Has(key string) bool {
	ctx, cancel := context.WithTimeout(rds.Context, DefaultTimeout)
	defer cancel()

	rds.mutex.RLock()
	defer rds.mutex.RUnlock()

	n, err := rds.Client.Exists(ctx, key).Result()
	if err != nil {
		logger.ErrorString("Redis", "Has", err.Error())
		return false
	}
	return n > 0
}

// Del removes keys
func (rds *RedisClient) Del(keys ...string) bool {
	ctx, cancel := context.WithTimeout(rds.Context, DefaultTimeout)
	defer cancel()

	rds.mutex.Lock()
	defer rds.mutex.Unlock()

	if err := rds.Client.Del(ctx, keys...).Err(); err != nil {
		logger.ErrorString("Redis", "Del", err.Error())
		return false
	}
	return true
}
