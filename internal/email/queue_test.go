package email

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redmonkez12/fintrack/internal/logging"
)

// recorder is a Deliverer that captures messages
type recorder struct {
	mu   sync.Mutex
	msgs []Message
	got  chan struct{}
}

func newRecorder() *recorder {
	return &recorder{got: make(chan struct{}, 16)}
}

func (r *recorder) Deliver(_ context.Context, msg Message) error {
	r.mu.Lock()
	r.msgs = append(r.msgs, msg)
	r.mu.Unlock()
	r.got <- struct{}{}
	return nil
}

func (r *recorder) wait(t *testing.T) {
	t.Helper()
	select {
	case <-r.got:
	case <-time.After(5 * time.Second):
		t.Fatal("message was not delivered")
	}
}

func TestInlineQueueDelivers(t *testing.T) {
	rec := newRecorder()
	q := NewInlineQueue(rec, 4, logging.NewLogger(true))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		q.Run(ctx, 2)
		close(done)
	}()

	outbox := NewOutbox(q)
	require.NoError(t, outbox.SendVerificationEmail(context.Background(), "a@x.com", "A", "code"))
	rec.wait(t)

	rec.mu.Lock()
	msg := rec.msgs[0]
	rec.mu.Unlock()
	assert.Equal(t, KindVerification, msg.Kind)
	assert.Equal(t, "a@x.com", msg.To)
	assert.Equal(t, "code", msg.Code)
	assert.NotEqual(t, uuid.Nil, msg.ID)

	cancel()
	<-done
	assert.ErrorIs(t, q.Enqueue(context.Background(), msg), ErrQueueClosed)
}

func TestInlineQueueFull(t *testing.T) {
	q := NewInlineQueue(newRecorder(), 1, logging.NewLogger(true))

	require.NoError(t, q.Enqueue(context.Background(), newMessage(KindVerification, "a@x.com", "A", "1")))
	assert.ErrorIs(t, q.Enqueue(context.Background(), newMessage(KindVerification, "a@x.com", "A", "2")), ErrQueueFull)
}

// listClient serves the Redis list commands the queue uses from memory
type listClient struct {
	redis.Cmdable

	mu     sync.Mutex
	lists  map[string][]string
	pushed chan struct{}
}

func newListClient() *listClient {
	return &listClient{lists: map[string][]string{}, pushed: make(chan struct{}, 16)}
}

func (c *listClient) LPush(_ context.Context, key string, values ...interface{}) *redis.IntCmd {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, v := range values {
		var s string
		switch x := v.(type) {
		case []byte:
			s = string(x)
		case string:
			s = x
		default:
			s = fmt.Sprint(x)
		}
		c.lists[key] = append([]string{s}, c.lists[key]...)

		select {
		case c.pushed <- struct{}{}:
		default:
		}
	}

	return redis.NewIntResult(int64(len(c.lists[key])), nil)
}

func (c *listClient) BRPop(ctx context.Context, timeout time.Duration, keys ...string) *redis.StringSliceCmd {
	deadline := time.After(timeout)
	for {
		c.mu.Lock()
		for _, key := range keys {
			if list := c.lists[key]; len(list) > 0 {
				value := list[len(list)-1]
				c.lists[key] = list[:len(list)-1]
				c.mu.Unlock()
				return redis.NewStringSliceResult([]string{key, value}, nil)
			}
		}
		c.mu.Unlock()

		select {
		case <-ctx.Done():
			return redis.NewStringSliceResult(nil, ctx.Err())
		case <-deadline:
			return redis.NewStringSliceResult(nil, redis.Nil)
		case <-c.pushed:
		}
	}
}

func (c *listClient) pending(key string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.lists[key]...)
}

func TestRedisQueue(t *testing.T) {
	ctx := context.Background()
	client := newListClient()
	const key = "fintrack:mail"

	rec := newRecorder()
	q := NewRedisQueue(client, key, rec, logging.NewLogger(true))
	outbox := NewOutbox(q)

	require.NoError(t, outbox.SendPasswordResetEmail(ctx, "a@x.com", "A", "reset-code"))

	pending := client.pending(key)
	require.Len(t, pending, 1)
	var queued Message
	require.NoError(t, json.Unmarshal([]byte(pending[0]), &queued))
	assert.Equal(t, KindPasswordReset, queued.Kind)
	assert.NotEqual(t, uuid.Nil, queued.ID)

	// a malformed entry is dropped without stopping the consumer
	client.LPush(ctx, key, "not json")
	require.NoError(t, outbox.SendVerificationEmail(ctx, "b@x.com", "B", "verify-code"))

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		q.Run(runCtx)
		close(done)
	}()

	rec.wait(t)
	rec.wait(t)
	cancel()
	<-done

	rec.mu.Lock()
	defer rec.mu.Unlock()
	require.Len(t, rec.msgs, 2)
	assert.Equal(t, KindPasswordReset, rec.msgs[0].Kind)
	assert.Equal(t, "reset-code", rec.msgs[0].Code)
	assert.Equal(t, KindVerification, rec.msgs[1].Kind)
	assert.Equal(t, "verify-code", rec.msgs[1].Code)
	assert.Empty(t, client.pending(key))
}
