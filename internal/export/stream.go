package export

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/nahid-013/alkoteka-scraper/internal/models"
)

// RedisClient is the subset of redis operations the stream sink needs,
// narrowed for testing.
type RedisClient interface {
	XAdd(ctx context.Context, args *redis.XAddArgs) *redis.StringCmd
	Close() error
}

// RedisStreamSink publishes every record to a redis stream for downstream
// consumers.
type RedisStreamSink struct {
	client RedisClient
	stream string
}

func NewRedisStreamSink(client RedisClient, stream string) *RedisStreamSink {
	if stream == "" {
		stream = "products:extracted"
	}
	return &RedisStreamSink{client: client, stream: stream}
}

func (s *RedisStreamSink) Write(ctx context.Context, record *models.ProductRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	err = s.client.XAdd(ctx, &redis.XAddArgs{
		Stream: s.stream,
		Values: map[string]interface{}{
			"rpc":    record.RPC,
			"url":    record.URL,
			"record": string(data),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to publish record: %w", err)
	}
	return nil
}

func (s *RedisStreamSink) Close() error {
	return s.client.Close()
}
