package test

import (
	"context"
	"sync"
)

// Recorder is a notifier that remembers every message it was asked to send.
type Recorder struct {
	mu       sync.Mutex
	messages []string
	Err      error
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Send(ctx context.Context, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages = append(r.messages, message)
	return r.Err
}

func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.messages...)
}

func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.messages)
}
