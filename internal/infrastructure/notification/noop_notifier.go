package notification

import (
	"context"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// NoopNotifier stands in when EmailJS is not configured, so the gap shows up in
// the logs once per checkout.
type NoopNotifier struct {
	log *zap.Logger
}

var _ interfaces.ICustomerNotifier = (*NoopNotifier)(nil)

func NewNoopNotifier(logger *zap.Logger) *NoopNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NoopNotifier{log: logger.Named("notification.noop")}
}

func (n *NoopNotifier) NotifyCustomer(_ context.Context, _ entities.CustomerContact) error {
	n.log.Warn("notification channel not configured; contact data not mirrored")
	return nil
}
