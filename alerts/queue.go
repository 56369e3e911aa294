package alerts

import (
	"context"
	"sync"

	"github.com/eapache/queue"
)

// QueueNotifier keeps alerts in memory until a dispatcher drains them.
type QueueNotifier struct {
	mu       sync.Mutex
	pending  *queue.Queue
	capacity int
}

var _ Notifier = &QueueNotifier{}

// NewQueueNotifier returns a notifier holding at most capacity alerts. A
// capacity of zero means unbounded.
func NewQueueNotifier(capacity int) *QueueNotifier {
	return &QueueNotifier{
		pending:  queue.New(),
		capacity: capacity,
	}
}

func (q *QueueNotifier) Send(ctx context.Context, message string) error {
	if message == "" {
		return ErrEmptyMessage
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.capacity > 0 && q.pending.Length() >= q.capacity {
		return ErrQueueFull
	}
	q.pending.Add(message)
	return nil
}

func (q *QueueNotifier) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.pending.Length()
}

// Drain removes and returns all queued alerts, oldest first.
func (q *QueueNotifier) Drain() []string {
	q.mu.Lock()
	defer q.mu.Unlock()

	messages := make([]string, 0, q.pending.Length())
	for q.pending.Length() > 0 {
		messages = append(messages, q.pending.Remove().(string))
	}
	return messages
}
