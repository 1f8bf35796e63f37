package mongodb

import (
	"context"
	"log"
	"time"

	"resto-admin/pkg/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var client *mongo.Client

// InitMongoDB 初始化请求审计日志用的 MongoDB 客户端
func InitMongoDB() {
	cfg := config.GetConfig()

	if cfg.MongoDB.URI == "" {
		log.Printf("MongoDB URI 未配置，请求审计日志不可用")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoDB.URI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	if err := c.Ping(ctx, nil); err != nil {
		log.Printf("WARNING: MongoDB ping failed: %v", err)
	}
	client = c
	log.Printf("MongoDB连接已初始化")
}

// IsInitialized 判断客户端是否可用
func IsInitialized() bool {
	return client != nil
}

// GetCollection 按配置中的集合键获取集合
func GetCollection(collectionKey string) *mongo.Collection {
	cfg := config.GetConfig()

	collectionName, exists := cfg.MongoDB.Collections[collectionKey]
	if !exists {
		log.Fatalf("Collection %s not found in mongodb config", collectionKey)
	}
	if client == nil {
		log.Fatalf("MongoDB client not initialized")
	}
	return client.Database(cfg.MongoDB.Database).Collection(collectionName)
}

// CloseMongoDB 关闭连接
func CloseMongoDB() {
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		log.Printf("MongoDB disconnect error: %v", err)
	}
}
