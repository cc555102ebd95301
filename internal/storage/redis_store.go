package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// Redis key
	resultsKey = "crazy-eights:results"

	// 默认保留的对局记录条数
	DefaultHistorySize = 50

	// 记录过期时间
	resultsExpiration = 30 * 24 * time.Hour
)

// GameRecord 一局结束后的摘要，只记录结果，不包含可恢复的牌局
type GameRecord struct {
	ID            string `json:"id"`
	Winner        string `json:"winner"`
	Plays         int    `json:"plays"`
	Draws         int    `json:"draws"`
	PlayerCards   int    `json:"player_cards"`
	ComputerCards int    `json:"computer_cards"`
	StartedAt     int64  `json:"started_at"`
	FinishedAt    int64  `json:"finished_at"`
}

// Duration 对局时长
func (r *GameRecord) Duration() time.Duration {
	return time.Duration(r.FinishedAt-r.StartedAt) * time.Second
}

// RedisStore Redis 存储，client 为 nil 时所有操作为空操作
type RedisStore struct {
	client      *redis.Client
	historySize int64
}

// NewRedisStore 创建 Redis 存储
func NewRedisStore(client *redis.Client, historySize int) *RedisStore {
	if historySize <= 0 {
		historySize = DefaultHistorySize
	}
	return &RedisStore{client: client, historySize: int64(historySize)}
}

// Enabled 是否连接了 Redis
func (rs *RedisStore) Enabled() bool {
	return rs != nil && rs.client != nil
}

// Ping 检查连接
func (rs *RedisStore) Ping(ctx context.Context) error {
	if !rs.Enabled() {
		return nil
	}
	return rs.client.Ping(ctx).Err()
}

// RecordResult 把对局记录压入列表头部，并裁剪到保留条数
func (rs *RedisStore) RecordResult(ctx context.Context, rec *GameRecord) error {
	if !rs.Enabled() || rec == nil {
		return nil
	}

	jsonData, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("序列化对局记录失败: %w", err)
	}

	pipe := rs.client.TxPipeline()
	pipe.LPush(ctx, resultsKey, jsonData)
	pipe.LTrim(ctx, resultsKey, 0, rs.historySize-1)
	pipe.Expire(ctx, resultsKey, resultsExpiration)
	_, err = pipe.Exec(ctx)
	return err
}

// RecentResults 读取最近 limit 条记录，最新的在前
func (rs *RedisStore) RecentResults(ctx context.Context, limit int) ([]*GameRecord, error) {
	if !rs.Enabled() || limit <= 0 {
		return nil, nil
	}

	items, err := rs.client.LRange(ctx, resultsKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	records := make([]*GameRecord, 0, len(items))
	for _, item := range items {
		var rec GameRecord
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			// 跳过损坏的记录
			continue
		}
		records = append(records, &rec)
	}
	return records, nil
}

// ClearResults 删除全部对局记录
func (rs *RedisStore) ClearResults(ctx context.Context) error {
	if !rs.Enabled() {
		return nil
	}
	return rs.client.Del(ctx, resultsKey).Err()
}

// Close 关闭连接
func (rs *RedisStore) Close() error {
	if !rs.Enabled() {
		return nil
	}
	return rs.client.Close()
}
