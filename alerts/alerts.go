package alerts

import (
	"context"
	"fmt"

	"github.com/tidepool-org/vitals/config"
	"github.com/tidepool-org/vitals/errors"
	"go.uber.org/zap"
)

var (
	ErrEmptyMessage = errors.Wrap(errors.BadRequest, "alert message is empty")
	ErrDisabled     = errors.Wrap(errors.Unavailable, "alert notifications are disabled")
	ErrQueueFull    = errors.Wrap(errors.Unavailable, "alert queue is full")
)

//go:generate go tool mockgen -source=./alerts.go -destination=./test/mock_notifier.go -package test MockNotifier

// Notifier delivers a text alert through some external channel.
type Notifier interface {
	Send(ctx context.Context, message string) error
}

// NewNotifier returns the notifier selected by the configuration.
func NewNotifier(cfg *config.Config, logger *zap.SugaredLogger) (Notifier, error) {
	switch cfg.Notifier {
	case config.NotifierLog:
		return NewLogNotifier(logger), nil
	case config.NotifierQueue:
		return NewQueueNotifier(cfg.QueueCapacity), nil
	case config.NotifierDisabled:
		return NewDisabledNotifier(), nil
	default:
		return nil, fmt.Errorf("unknown notifier %q", cfg.Notifier)
	}
}
