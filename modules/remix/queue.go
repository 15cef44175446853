package remix

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	redisqueue "remix-gallery-server/modules/common/redis"
)

// RedisQueue - pushes job ids onto the shared Redis list the worker drains
type RedisQueue struct {
	client *goredis.Client
}

// NewRedisQueue - wrap an established Redis connection
func NewRedisQueue(client *goredis.Client) *RedisQueue {
	return &RedisQueue{client: client}
}

var _ JobQueue = (*RedisQueue)(nil)

// Enqueue - LPUSH the job id; the worker BRPOPs from the other end
func (q *RedisQueue) Enqueue(jobID string) error {
	if err := q.client.LPush(context.Background(), redisqueue.QueueKey, jobID).Err(); err != nil {
		return fmt.Errorf("failed to enqueue job: %w", err)
	}
	return nil
}

// InProcessQueue - runs jobs directly on a goroutine, used when Redis is
// unreachable so the server still remixes in single-instance mode
type InProcessQueue struct {
	service *Service
}

// NewInProcessQueue - fall back to direct dispatch
func NewInProcessQueue(service *Service) *InProcessQueue {
	return &InProcessQueue{service: service}
}

var _ JobQueue = (*InProcessQueue)(nil)

// Enqueue - dispatch the job immediately
func (q *InProcessQueue) Enqueue(jobID string) error {
	go q.service.ProcessJob(context.Background(), jobID)
	return nil
}
