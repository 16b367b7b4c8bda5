package email

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/redmonkez12/fintrack/internal/logging"
)

// blockTimeout is how long a worker waits on BRPOP before checking for shutdown
const blockTimeout = 5 * time.Second

// RedisQueue is a list-backed queue: LPUSH to enqueue, BRPOP to consume.
// Messages survive API restarts and can be drained by any instance.
type RedisQueue struct {
	client    redis.Cmdable
	key       string
	deliverer Deliverer
	logger    *logging.Logger
}

func NewRedisQueue(client redis.Cmdable, key string, deliverer Deliverer, logger *logging.Logger) *RedisQueue {
	return &RedisQueue{
		client:    client,
		key:       key,
		deliverer: deliverer,
		logger:    logger,
	}
}

func (q *RedisQueue) Enqueue(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode mail message: %w", err)
	}

	if err := q.client.LPush(ctx, q.key, payload).Err(); err != nil {
		return fmt.Errorf("failed to push mail message: %w", err)
	}

	return nil
}

// Run consumes the list until ctx is done
func (q *RedisQueue) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}

		result, err := q.client.BRPop(ctx, blockTimeout, q.key).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			if ctx.Err() != nil {
				return
			}
			q.logger.Error("failed to pop mail message", "error", err)
			// back off before retrying
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Second):
			}
			continue
		}

		// result is [key, value]
		var msg Message
		if err := json.Unmarshal([]byte(result[1]), &msg); err != nil {
			q.logger.Error("dropping malformed mail message", "error", err)
			continue
		}

		deliver(q.deliverer, q.logger, msg)
	}
}
