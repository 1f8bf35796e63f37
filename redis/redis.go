package redis

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"resto-admin/config"

	"github.com/redis/go-redis/v9"
)

var (
	rdb         *redis.Client
	initOnce    sync.Once
	initialized bool
	initErr     error
	ErrNil      = errors.New("redis: nil")
)

// InitRedis 初始化 Redis 客户端
func InitRedis(config config.RedisConfig) error {
	initOnce.Do(func() {
		log.Printf("Initializing Redis client with address: %s, DB: %d", config.Addr, config.DB)

		rdb = redis.NewClient(&redis.Options{
			Addr:         config.Addr,
			Password:     config.Password,
			DB:           config.DB,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
			PoolSize:     10,
		})

		// 测试连接
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := rdb.Ping(ctx).Err(); err != nil {
			initErr = fmt.Errorf("failed to connect to Redis at %s: %w", config.Addr, err)
			log.Printf("ERROR: %v", initErr)
			return
		}

		initialized = true
		log.Printf("Successfully connected to Redis at %s, DB: %d", config.Addr, config.DB)
	})

	return initErr
}

// GetClient 获取 Redis 客户端实例
func GetClient() *redis.Client {
	if !initialized && initErr == nil {
		// 尝试使用默认配置初始化
		cfg := config.RedisConfig{
			Addr:     "localhost:6379",
			Password: "",
			DB:       0,
		}

		log.Print("Redis client not initialized, attempting with default configuration")
		if err := InitRedis(cfg); err != nil {
			log.Printf("ERROR: Failed to initialize Redis with default config: %v", err)
		}
	}

	if rdb == nil {
		log.Print("WARNING: Redis client is nil, some features may not work")
	}

	return rdb
}

// IsConnected 检查 Redis 是否已连接
func IsConnected() bool {
	if rdb == nil {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return rdb.Ping(ctx).Err() == nil
}

// CloseRedis 关闭 Redis 连接
func CloseRedis() error {
	if rdb != nil {
		log.Print("Closing Redis connection")
		return rdb.Close()
	}
	return nil
}

// StoreToken 存储登录token
func StoreToken(userID string, token string, expiration time.Duration) error {
	key := "token:" + userID
	ctx := context.Background()
	err := rdb.Set(ctx, key, token, expiration).Err()
	if err != nil {
		return fmt.Errorf("failed to store token: %v", err)
	}
	return nil
}

// GetToken 获取登录token，不存在时返回 ErrNil
func GetToken(userID string) (string, error) {
	if rdb == nil {
		return "", fmt.Errorf("redis client not initialized")
	}
	key := "token:" + userID
	ctx := context.Background()
	token, err := rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrNil
	} else if err != nil {
		return "", fmt.Errorf("failed to get token: %v", err)
	}
	return token, nil
}

// DeleteToken 删除登录token
func DeleteToken(userID string) error {
	key := "token:" + userID
	ctx := context.Background()
	err := rdb.Del(ctx, key).Err()
	if err != nil {
		return fmt.Errorf("failed to delete token: %v", err)
	}
	return nil
}

// DeleteKey 删除任意缓存键
func DeleteKey(key string) error {
	if rdb == nil {
		return fmt.Errorf("redis client not initialized")
	}
	ctx := context.Background()
	err := rdb.Del(ctx, key).Err()
	if err != nil {
		return fmt.Errorf("failed to delete key: %v", err)
	}
	return nil
}
