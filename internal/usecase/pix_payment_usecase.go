package usecase

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strings"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/domain/pixcode"
	"pix_checkout/internal/domain/validation"
	"pix_checkout/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidAmount        = errors.New("amount is required and must be greater than zero")
	ErrInvalidItemPrice     = errors.New("item price exceeds the maximum amount")
	ErrIncompleteCustomer   = errors.New("customer name, email, document and phone are required")
	ErrMissingItems         = errors.New("at least one item is required")
	ErrInvalidDocument      = errors.New("document must have 11 digits")
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrPixPayloadMissing    = errors.New("pix code not found in gateway response")
	ErrTransactionNotFound  = errors.New("transaction not found")
)

const (
	defaultItemTitle       = "Produto"
	defaultItemDescription = "Descrição do item"
	minDocumentDigits      = 11

	// MaxAmountCents caps amounts and item prices, in centavos (R$ 1 bilhão).
	MaxAmountCents = 100_000_000_000
)

// ContactPolicy controls which contact data reaches the gateway.
//
// With Override on, the gateway sees PlaceholderEmail and PlaceholderPhone
// instead of the customer's own; name and document are always real.
type ContactPolicy struct {
	Override           bool
	PlaceholderEmail   string
	PlaceholderPhone   string
	DefaultItemTitle   string
	DefaultDescription string
}

// IPixPaymentUseCase relays Pix charges to the gateway and normalizes its answers.
type IPixPaymentUseCase interface {
	CreatePixPayment(ctx context.Context, req entities.PaymentRequest) (entities.NormalizedPixPayment, error)
	GetTransaction(ctx context.Context, id string) (entities.TransactionStatus, error)
}

type PixPaymentUseCase struct {
	gateway interfaces.IPaymentGateway
	policy  ContactPolicy
	log     *zap.Logger
}

var _ IPixPaymentUseCase = (*PixPaymentUseCase)(nil)

func NewPixPaymentUseCase(gateway interfaces.IPaymentGateway, policy ContactPolicy, logger *zap.Logger) *PixPaymentUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if policy.DefaultItemTitle == "" {
		policy.DefaultItemTitle = defaultItemTitle
	}
	if policy.DefaultDescription == "" {
		policy.DefaultDescription = defaultItemDescription
	}
	return &PixPaymentUseCase{gateway: gateway, policy: policy, log: logger.Named("usecase")}
}

func (u *PixPaymentUseCase) CreatePixPayment(ctx context.Context, req entities.PaymentRequest) (entities.NormalizedPixPayment, error) {
	u.log.Info("create-pix start", zap.Int("items", len(req.Items)), zap.Bool("has_ip", req.IP != ""))

	if err := validatePaymentRequest(req); err != nil {
		u.log.Info("create-pix rejected", zap.Error(err))
		return entities.NormalizedPixPayment{}, err
	}
	if u.gateway == nil {
		u.log.Error("create-pix gateway not configured")
		return entities.NormalizedPixPayment{}, ErrGatewayNotConfigured
	}

	payload := u.buildPayload(req)
	u.log.Info("calling payment gateway",
		zap.Int64("amount", payload.Amount),
		zap.Int("items", len(payload.Items)),
		zap.Bool("contact_override", u.policy.Override),
	)

	resp, err := u.gateway.CreateTransaction(ctx, payload)
	if err != nil {
		u.log.Warn("payment gateway failed", zap.Error(err))
		return entities.NormalizedPixPayment{}, err
	}

	out, err := normalizePixResponse(resp)
	if err != nil {
		u.log.Error("pix extraction failed", zap.String("transaction_id", resp.StringField("id")), zap.Error(err))
		return entities.NormalizedPixPayment{}, err
	}

	u.log.Info("create-pix success",
		zap.String("transaction_id", out.TransactionID),
		zap.String("status", out.Status),
	)
	return out, nil
}

func (u *PixPaymentUseCase) GetTransaction(ctx context.Context, id string) (entities.TransactionStatus, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.TransactionStatus{}, ErrTransactionNotFound
	}
	if u.gateway == nil {
		u.log.Error("get-transaction gateway not configured")
		return entities.TransactionStatus{}, ErrGatewayNotConfigured
	}

	u.log.Info("get-transaction start", zap.String("transaction_id", id))
	resp, err := u.gateway.GetTransaction(ctx, id)
	if err != nil {
		var gwErr *interfaces.GatewayError
		if errors.As(err, &gwErr) && gwErr.StatusCode == http.StatusNotFound {
			u.log.Info("get-transaction not found", zap.String("transaction_id", id))
			return entities.TransactionStatus{}, ErrTransactionNotFound
		}
		u.log.Warn("get-transaction failed", zap.String("transaction_id", id), zap.Error(err))
		return entities.TransactionStatus{}, err
	}

	status := entities.TransactionStatus{
		Status:           resp.StringField("status"),
		TransactionID:    resp.StringField("id"),
		Amount:           resp.Field("amount"),
		PaidAt:           resp.Field("paidAt", "paid_at"),
		OriginalResponse: resp.Body,
	}
	u.log.Info("get-transaction success", zap.String("transaction_id", id), zap.String("status", status.Status))
	return status, nil
}

func validatePaymentRequest(req entities.PaymentRequest) error {
	if req.Amount == nil || !inAmountRange(*req.Amount) || math.Round(*req.Amount) <= 0 {
		return ErrInvalidAmount
	}
	c := req.Customer
	if blank(c.FullName) || blank(c.Email) || blank(c.Document) || blank(c.Phone) {
		return ErrIncompleteCustomer
	}
	if len(req.Items) == 0 {
		return ErrMissingItems
	}
	for _, it := range req.Items {
		if math.IsNaN(it.Price) || math.Round(it.Price) > MaxAmountCents {
			return ErrInvalidItemPrice
		}
	}
	if len(validation.Digits(c.Document)) < minDocumentDigits {
		return ErrInvalidDocument
	}
	return nil
}

func inAmountRange(v float64) bool {
	return !math.IsNaN(v) && math.Round(v) <= MaxAmountCents
}

func (u *PixPaymentUseCase) buildPayload(req entities.PaymentRequest) entities.GatewayPayload {
	email := strings.TrimSpace(req.Customer.Email)
	phone := validation.Digits(req.Customer.Phone)
	if u.policy.Override {
		email = u.policy.PlaceholderEmail
		phone = u.policy.PlaceholderPhone
	}

	items := make([]entities.GatewayItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, entities.GatewayItem{
			Title:       orDefault(it.Title, u.policy.DefaultItemTitle),
			Quantity:    max(it.Quantity, 1),
			Price:       max(int64(math.Round(it.Price)), 0),
			Description: orDefault(it.Description, u.policy.DefaultDescription),
		})
	}

	return entities.GatewayPayload{
		PaymentMethod: entities.PaymentMethodPix,
		Amount:        int64(math.Round(*req.Amount)),
		Customer: entities.GatewayCustomer{
			Name:  strings.TrimSpace(req.Customer.FullName),
			Email: email,
			Document: entities.GatewayDocument{
				Type:   entities.DocumentTypeCPF,
				Number: validation.Digits(req.Customer.Document),
			},
			Phone: phone,
		},
		Items: items,
		IP:    strings.TrimSpace(req.IP),
	}
}

func normalizePixResponse(resp entities.GatewayResponse) (entities.NormalizedPixPayment, error) {
	obj, err := pixcode.PixObject(resp.Raw)
	if err != nil {
		return entities.NormalizedPixPayment{}, ErrPixPayloadMissing
	}
	code, ok := pixcode.Extract(obj)
	if !ok {
		return entities.NormalizedPixPayment{}, ErrPixPayloadMissing
	}

	status := resp.StringField("status")
	if status == "" {
		status = entities.DefaultPixStatus
	}

	return entities.NormalizedPixPayment{
		Status:        status,
		TransactionID: resp.StringField("id"),
		Pix: entities.PixCode{
			QRCode:       code.QRCode,
			CopyAndPaste: code.CopyAndPaste,
		},
		ExpiresAt:        resp.StringField("expiresAt", "expires_at"),
		Amount:           resp.Field("amount"),
		OriginalResponse: resp.Body,
	}, nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func orDefault(s, def string) string {
	if s = strings.TrimSpace(s); s == "" {
		return def
	}
	return s
}
