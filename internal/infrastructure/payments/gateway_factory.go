package payments

import (
	"errors"
	"fmt"

	"pix_checkout/internal/config"
	"pix_checkout/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrUnknownProvider = errors.New("unknown payment provider")

// NewGateway picks the provider named by PAYMENT_PROVIDER. It returns a nil
// interface (never a typed nil) on error.
func NewGateway(cfg config.GatewayConfig, logger *zap.Logger) (interfaces.IPaymentGateway, error) {
	switch cfg.Provider {
	case config.ProviderMercadoPago:
		g, err := NewMercadoPagoGateway(cfg.MercadoPagoToken, cfg.Mock, logger)
		if err != nil {
			return nil, err
		}
		return g, nil
	case config.ProviderPayevo, "":
		g, err := NewPayevoGateway(PayevoOptions{
			BaseURL:   cfg.PayevoAPIURL,
			SecretKey: cfg.PayevoSecretKey,
			Timeout:   cfg.Timeout,
			Mock:      cfg.Mock,
		}, logger)
		if err != nil {
			return nil, err
		}
		return g, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Provider)
	}
}
