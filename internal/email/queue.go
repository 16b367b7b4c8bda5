package email

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redmonkez12/fintrack/internal/logging"
)

var (
	ErrQueueFull   = errors.New("mail queue is full")
	ErrQueueClosed = errors.New("mail queue is closed")
)

// deliveryTimeout bounds a single SMTP exchange made by a worker
const deliveryTimeout = 30 * time.Second

// Deliverer sends one message. *Service is the production implementation.
type Deliverer interface {
	Deliver(ctx context.Context, msg Message) error
}

// Queue accepts messages for asynchronous delivery
type Queue interface {
	Enqueue(ctx context.Context, msg Message) error
}

// Outbox turns account events into queued messages.
// It satisfies auth.EmailService; a nil error only means the queue accepted the message.
type Outbox struct {
	queue Queue
}

func NewOutbox(queue Queue) *Outbox {
	return &Outbox{queue: queue}
}

func (o *Outbox) SendVerificationEmail(ctx context.Context, toEmail, name, code string) error {
	return o.queue.Enqueue(ctx, newMessage(KindVerification, toEmail, name, code))
}

func (o *Outbox) SendPasswordResetEmail(ctx context.Context, toEmail, name, code string) error {
	return o.queue.Enqueue(ctx, newMessage(KindPasswordReset, toEmail, name, code))
}

// InlineQueue is an in-process queue drained by worker goroutines.
// Messages still buffered at shutdown are lost.
type InlineQueue struct {
	messages  chan Message
	deliverer Deliverer
	logger    *logging.Logger

	mu     sync.RWMutex
	closed bool
}

func NewInlineQueue(deliverer Deliverer, size int, logger *logging.Logger) *InlineQueue {
	return &InlineQueue{
		messages:  make(chan Message, size),
		deliverer: deliverer,
		logger:    logger,
	}
}

// Enqueue never blocks: a full buffer is reported as ErrQueueFull
func (q *InlineQueue) Enqueue(ctx context.Context, msg Message) error {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.messages <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ErrQueueFull
	}
}

// Run delivers messages with the given number of workers until ctx is done
func (q *InlineQueue) Run(ctx context.Context, workers int) {
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case msg := <-q.messages:
					deliver(q.deliverer, q.logger, msg)
				}
			}
		}()
	}

	<-ctx.Done()
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	wg.Wait()
}

func deliver(d Deliverer, logger *logging.Logger, msg Message) {
	ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
	defer cancel()

	if err := d.Deliver(ctx, msg); err != nil {
		logger.Error("failed to deliver email",
			"message_id", msg.ID,
			"kind", msg.Kind,
			"error", err,
		)
	}
}
