package interfaces

import (
	"context"
	"errors"
	"fmt"
	"pix_checkout/internal/domain/entities"
)

// ErrGatewayUnreachable is wrapped by gateways when no HTTP response was
// received (DNS, connection refused, timeout).
var ErrGatewayUnreachable = errors.New("payment gateway unreachable")

// GatewayError is a non-2xx answer from the provider.
type GatewayError struct {
	StatusCode int
	Message    string
	Body       map[string]any
}

func (e *GatewayError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("payment gateway returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("payment gateway returned status %d: %s", e.StatusCode, e.Message)
}

// IPaymentGateway abstracts the Pix provider (Payevo, or Mercado Pago).
//
// Implementations return GatewayError for provider rejections and wrap
// ErrGatewayUnreachable when the provider could not be reached.
type IPaymentGateway interface {
	CreateTransaction(ctx context.Context, payload entities.GatewayPayload) (entities.GatewayResponse, error)
	GetTransaction(ctx context.Context, id string) (entities.GatewayResponse, error)
}
