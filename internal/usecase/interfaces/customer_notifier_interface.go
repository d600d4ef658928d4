package interfaces

import (
	"context"
	"pix_checkout/internal/domain/entities"
)

// ICustomerNotifier mirrors the submitted contact data to an out-of-band channel.
// Failures are reported to the caller but never block a payment.
type ICustomerNotifier interface {
	NotifyCustomer(ctx context.Context, contact entities.CustomerContact) error
}
