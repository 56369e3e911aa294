package alerts

import "context"

type disabledNotifier struct{}

var _ Notifier = &disabledNotifier{}

func NewDisabledNotifier() Notifier {
	return &disabledNotifier{}
}

func (d *disabledNotifier) Send(ctx context.Context, message string) error {
	return ErrDisabled
}
