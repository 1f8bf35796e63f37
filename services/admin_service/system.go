package admin_service

import (
	"context"
	"fmt"
	"time"

	"resto-admin/inout"
	"resto-admin/mongodb"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SystemService 系统服务
type SystemService struct{}

// GetSystemLog 从 MongoDB 中读取请求审计日志
func (s *SystemService) GetSystemLog(req inout.GetSystemLogReq, collectionKey string) (interface{}, error) {
	if !mongodb.IsInitialized() {
		return nil, fmt.Errorf("审计日志存储未启用")
	}

	collection := mongodb.GetCollection(collectionKey)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 构建查询条件
	filter := bson.M{}
	if req.Keyword != "" {
		filter["$or"] = []bson.M{
			{"path": bson.M{"$regex": req.Keyword, "$options": "i"}},
			{"method": bson.M{"$regex": req.Keyword, "$options": "i"}},
			{"client_ip": bson.M{"$regex": req.Keyword, "$options": "i"}},
			{"user_agent": bson.M{"$regex": req.Keyword, "$options": "i"}},
		}
	}

	// 设置默认分页参数
	req.Page = max(req.Page, 1)
	req.PageSize = max(req.PageSize, 10)

	findOptions := options.Find()
	findOptions.SetSkip(int64((req.Page - 1) * req.PageSize))
	findOptions.SetLimit(int64(req.PageSize))
	findOptions.SetSort(bson.D{{Key: "timestamp", Value: -1}})

	cursor, err := collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []bson.M
	if err = cursor.All(ctx, &logs); err != nil {
		return nil, err
	}

	total, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	response := map[string]interface{}{
		"total":     total,
		"page":      req.Page,
		"page_size": req.PageSize,
		"items":     logs,
	}
	return response, nil
}
