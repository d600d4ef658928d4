package routes

import (
	"context"

	"pix_checkout/internal/adapter/http/handlers"
	"pix_checkout/internal/adapter/http/session"
	"pix_checkout/internal/adapter/persistence/repository"
	"pix_checkout/internal/config"
	"pix_checkout/internal/domain/display"
	"pix_checkout/internal/infrastructure/database"
	"pix_checkout/internal/infrastructure/notification"
	"pix_checkout/internal/infrastructure/payments"
	"pix_checkout/internal/infrastructure/qrcode"
	"pix_checkout/internal/usecase"
	"pix_checkout/internal/usecase/interfaces"

	"go.uber.org/zap"
)

type dependencies struct {
	health       *handlers.HealthHandler
	pix          *handlers.PixPaymentHandler
	checkoutPage *handlers.CheckoutPageHandler
	paymentPage  *handlers.PaymentPageHandler
}

func buildDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*dependencies, error) {
	// A missing gateway is not fatal: the relay answers 500 until it is configured.
	gateway, err := payments.NewGateway(cfg.Gateway, logger)
	if err != nil {
		logger.Warn("payment gateway not configured", zap.String("provider", cfg.Gateway.Provider), zap.Error(err))
	}

	var notifier interfaces.ICustomerNotifier
	if cfg.NotificationConfigured() {
		notifier = notification.NewEmailJSNotifier(notification.EmailJSOptions{
			APIURL:         cfg.Notification.EmailJSAPIURL,
			ServiceID:      cfg.Notification.EmailJSServiceID,
			TemplateID:     cfg.Notification.EmailJSTemplateID,
			PublicKey:      cfg.Notification.EmailJSPublicKey,
			PrivateKey:     cfg.Notification.EmailJSPrivateKey,
			RecipientEmail: cfg.Notification.RecipientEmail,
			Timeout:        cfg.Notification.Timeout,
		}, logger)
	} else {
		logger.Warn("emailjs not configured; customer notifications disabled")
		notifier = notification.NewNoopNotifier(logger)
	}

	var ddb repository.DynamoDBAPI
	if cfg.Session.Store == config.SessionStoreDynamoDB {
		client, err := database.NewDynamoDBClient(ctx, cfg.AWS)
		if err != nil {
			return nil, err
		}
		ddb = client
	}
	slot := session.NewPaymentSlot(session.NewStore(cfg.Session, ddb, logger))

	pixUseCase := usecase.NewPixPaymentUseCase(gateway, usecase.ContactPolicy{
		Override:           cfg.Gateway.ContactOverride,
		PlaceholderEmail:   cfg.Gateway.PlaceholderEmail,
		PlaceholderPhone:   cfg.Gateway.PlaceholderPhone,
		DefaultItemTitle:   cfg.Gateway.DefaultItemTitle,
		DefaultDescription: cfg.Gateway.DefaultDescription,
	}, logger)

	offer := usecase.CheckoutOffer{
		AmountCents: cfg.Checkout.Amount,
		Title:       cfg.Checkout.ItemTitle,
		Description: cfg.Checkout.ItemDescription,
	}
	checkoutUseCase := usecase.NewCheckoutUseCase(pixUseCase, notifier, offer, logger)

	debug := !cfg.IsProduction()
	resolver := display.NewResolver(cfg.Checkout.PixCountdown, cfg.Checkout.RedirectDelay)

	return &dependencies{
		health:       handlers.NewHealthHandler(cfg.GatewayConfigured()),
		pix:          handlers.NewPixPaymentHandler(pixUseCase, debug, logger),
		checkoutPage: handlers.NewCheckoutPageHandler(checkoutUseCase, slot, offer, logger),
		paymentPage:  handlers.NewPaymentPageHandler(slot, resolver, qrcode.NewRenderer(), logger),
	}, nil
}
