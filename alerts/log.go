package alerts

import (
	"context"

	"go.uber.org/zap"
)

type logNotifier struct {
	logger *zap.SugaredLogger
}

var _ Notifier = &logNotifier{}

func NewLogNotifier(logger *zap.SugaredLogger) Notifier {
	return &logNotifier{
		logger: logger,
	}
}

func (l *logNotifier) Send(ctx context.Context, message string) error {
	if message == "" {
		return ErrEmptyMessage
	}
	l.logger.Errorw("patient alert", "message", message)
	return nil
}
