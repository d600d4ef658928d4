package usecase

import (
	"context"
	"strings"
	"time"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/domain/validation"
	"pix_checkout/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// CheckoutOffer is the fixed charge the checkout form sells.
type CheckoutOffer struct {
	AmountCents int64
	Title       string
	Description string
}

// ICheckoutUseCase turns a validated form submission into a Pix payment.
type ICheckoutUseCase interface {
	Checkout(ctx context.Context, customer entities.CustomerInput, ip string) (entities.NormalizedPixPayment, error)
}

type CheckoutUseCase struct {
	payments IPixPaymentUseCase
	notifier interfaces.ICustomerNotifier
	offer    CheckoutOffer
	log      *zap.Logger
	now      func() time.Time
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(payments IPixPaymentUseCase, notifier interfaces.ICustomerNotifier, offer CheckoutOffer, logger *zap.Logger) *CheckoutUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckoutUseCase{
		payments: payments,
		notifier: notifier,
		offer:    offer,
		log:      logger.Named("checkout"),
		now:      time.Now,
	}
}

// Checkout mirrors the real contact data to the notifier, then requests the
// charge. A notifier failure is logged and does not stop the payment.
func (u *CheckoutUseCase) Checkout(ctx context.Context, customer entities.CustomerInput, ip string) (entities.NormalizedPixPayment, error) {
	customer = entities.CustomerInput{
		FullName: strings.TrimSpace(customer.FullName),
		Email:    strings.TrimSpace(customer.Email),
		Document: validation.Digits(customer.Document),
		Phone:    validation.Digits(customer.Phone),
	}

	if u.notifier != nil {
		contact := entities.CustomerContact{
			FullName:    customer.FullName,
			Email:       customer.Email,
			Phone:       validation.MaskPhone(customer.Phone),
			Document:    validation.MaskDocument(customer.Document),
			AmountCents: u.offer.AmountCents,
			SubmittedAt: u.now(),
		}
		if err := u.notifier.NotifyCustomer(ctx, contact); err != nil {
			u.log.Warn("customer notification failed", zap.Error(err))
		}
	}

	amount := float64(u.offer.AmountCents)
	req := entities.PaymentRequest{
		Amount:   &amount,
		Customer: customer,
		Items: []entities.PaymentItem{{
			Title:       u.offer.Title,
			Quantity:    1,
			Price:       amount,
			Description: u.offer.Description,
		}},
		IP: ip,
	}

	payment, err := u.payments.CreatePixPayment(ctx, req)
	if err != nil {
		u.log.Warn("checkout failed", zap.Error(err))
		return entities.NormalizedPixPayment{}, err
	}
	u.log.Info("checkout complete", zap.String("transaction_id", payment.TransactionID))
	return payment, nil
}
