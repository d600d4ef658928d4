package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase/interfaces"
	"pix_checkout/pkg/money"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

var ErrEmailJSNotConfigured = errors.New("emailjs credentials not configured")

const timestampLayout = "02/01/2006, 15:04:05"

type EmailJSOptions struct {
	APIURL         string
	ServiceID      string
	TemplateID     string
	PublicKey      string
	PrivateKey     string
	RecipientEmail string
	Timeout        time.Duration
}

func (o EmailJSOptions) configured() bool {
	return o.ServiceID != "" && o.TemplateID != "" && o.PublicKey != ""
}

type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

// EmailJSNotifier sends the customer's contact data through an EmailJS template.
type EmailJSNotifier struct {
	client *resty.Client
	opts   EmailJSOptions
	loc    *time.Location
	log    *zap.Logger
}

var _ interfaces.ICustomerNotifier = (*EmailJSNotifier)(nil)

func NewEmailJSNotifier(opts EmailJSOptions, logger *zap.Logger) *EmailJSNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmailJSNotifier{
		client: resty.New().SetTimeout(opts.Timeout),
		opts:   opts,
		loc:    saoPaulo(),
		log:    logger.Named("notification.emailjs"),
	}
}

func (n *EmailJSNotifier) NotifyCustomer(ctx context.Context, contact entities.CustomerContact) error {
	if !n.opts.configured() {
		n.log.Warn("emailjs not configured; skipping notification")
		return ErrEmailJSNotConfigured
	}

	body := emailJSRequest{
		ServiceID:      n.opts.ServiceID,
		TemplateID:     n.opts.TemplateID,
		UserID:         n.opts.PublicKey,
		AccessToken:    n.opts.PrivateKey,
		TemplateParams: n.templateParams(contact),
	}

	resp, err := n.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(n.opts.APIURL)
	if err != nil {
		n.log.Warn("emailjs request failed", zap.Error(err))
		return fmt.Errorf("emailjs send: %w", err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		n.log.Warn("emailjs rejected", zap.Int("status", resp.StatusCode()), zap.ByteString("body", resp.Body()))
		return fmt.Errorf("emailjs returned non-2xx status: %d", resp.StatusCode())
	}

	n.log.Info("customer notification sent", zap.Int("status", resp.StatusCode()))
	return nil
}

func (n *EmailJSNotifier) templateParams(c entities.CustomerContact) map[string]string {
	submitted := c.SubmittedAt
	if submitted.IsZero() {
		submitted = time.Now()
	}
	return map[string]string{
		"to_email":   n.opts.RecipientEmail,
		"from_name":  c.FullName,
		"user_name":  c.FullName,
		"user_email": c.Email,
		"user_phone": c.Phone,
		"user_cpf":   c.Document,
		"timestamp":  submitted.In(n.loc).Format(timestampLayout),
		"amount":     money.FormatBRL(c.AmountCents),
	}
}

func saoPaulo() *time.Location {
	if loc, err := time.LoadLocation("America/Sao_Paulo"); err == nil {
		return loc
	}
	return time.FixedZone("BRT", -3*60*60)
}
