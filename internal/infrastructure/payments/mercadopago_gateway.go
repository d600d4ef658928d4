package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

const mercadoPagoPixMethod = "pix"

var mercadoPagoStatusPattern = regexp.MustCompile(`"status"\s*:\s*(\d{3})`)

// MercadoPagoGateway issues Pix charges through the Mercado Pago payments API and
// reshapes its answers so they read like any other provider's.
type MercadoPagoGateway struct {
	client payment.Client
	mock   *mockPix
	log    *zap.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, mock bool, logger *zap.Logger) (*MercadoPagoGateway, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	log := logger.Named("gateway.mercadopago")

	if mock {
		log.Info("mock mode enabled")
		return &MercadoPagoGateway{mock: newMockPix(), log: log}, nil
	}
	if accessToken == "" {
		log.Warn("missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Error("failed creating sdk config", zap.Error(err))
		return nil, err
	}
	log.Info("client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), log: log}, nil
}

func (g *MercadoPagoGateway) CreateTransaction(ctx context.Context, payload entities.GatewayPayload) (entities.GatewayResponse, error) {
	if g.mock != nil {
		return g.mock.create(payload)
	}

	req, err := mercadoPagoRequest(payload)
	if err != nil {
		g.log.Error("request build failed", zap.Error(err))
		return entities.GatewayResponse{}, err
	}

	g.log.Info("create start", zap.Int64("amount", payload.Amount))
	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.log.Warn("sdk create failed", zap.Error(err))
		return entities.GatewayResponse{}, classifyMercadoPagoError(err)
	}
	g.log.Info("create success", zap.Any("provider_payment_id", resp.ID), zap.String("provider_status", resp.Status))

	return normalizeMercadoPagoResponse(resp)
}

func (g *MercadoPagoGateway) GetTransaction(ctx context.Context, id string) (entities.GatewayResponse, error) {
	if g.mock != nil {
		return g.mock.get(id)
	}

	paymentID, err := strconv.Atoi(id)
	if err != nil {
		return entities.GatewayResponse{}, &interfaces.GatewayError{StatusCode: http.StatusNotFound, Message: "invalid payment id"}
	}

	g.log.Info("get start", zap.Int("provider_payment_id", paymentID))
	resp, err := g.client.Get(ctx, paymentID)
	if err != nil {
		g.log.Warn("sdk get failed", zap.Int("provider_payment_id", paymentID), zap.Error(err))
		return entities.GatewayResponse{}, classifyMercadoPagoError(err)
	}
	return normalizeMercadoPagoResponse(resp)
}

// mercadoPagoRequest builds the SDK request through JSON so only the API field
// names matter here.
func mercadoPagoRequest(payload entities.GatewayPayload) (payment.Request, error) {
	first, last := splitName(payload.Customer.Name)
	description := ""
	if len(payload.Items) > 0 {
		description = payload.Items[0].Title
	}

	reqMap := map[string]any{
		"transaction_amount": decimal.New(payload.Amount, -2).InexactFloat64(),
		"payment_method_id":  mercadoPagoPixMethod,
		"description":        description,
		"payer": map[string]any{
			"email":      payload.Customer.Email,
			"first_name": first,
			"last_name":  last,
			"identification": map[string]any{
				"type":   payload.Customer.Document.Type,
				"number": payload.Customer.Document.Number,
			},
		},
	}

	b, err := json.Marshal(reqMap)
	if err != nil {
		return payment.Request{}, err
	}
	var req payment.Request
	if err := json.Unmarshal(b, &req); err != nil {
		return payment.Request{}, err
	}
	return req, nil
}

// normalizeMercadoPagoResponse exposes the Pix transaction data as "pix" and the
// amount in centavos, keeping the full provider answer under "providerResponse".
func normalizeMercadoPagoResponse(resp *payment.Response) (entities.GatewayResponse, error) {
	b, err := json.Marshal(resp)
	if err != nil {
		return entities.GatewayResponse{}, err
	}
	full := map[string]any{}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&full); err != nil {
		return entities.GatewayResponse{}, err
	}

	body := map[string]any{
		"id":               fmt.Sprint(resp.ID),
		"status":           resp.Status,
		"providerResponse": full,
	}
	if v, ok := full["transaction_amount"].(json.Number); ok {
		if d, err := decimal.NewFromString(v.String()); err == nil {
			body["amount"] = d.Shift(2).Round(0).IntPart()
		}
	}
	if v, ok := full["date_of_expiration"]; ok && v != nil {
		body["expiresAt"] = v
	}
	if v, ok := full["date_approved"]; ok && v != nil {
		body["paidAt"] = v
	}
	if poi, ok := full["point_of_interaction"].(map[string]any); ok {
		if td, ok := poi["transaction_data"].(map[string]any); ok {
			body["pix"] = td
		}
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return entities.GatewayResponse{}, err
	}
	return entities.NewGatewayResponse(raw)
}

// classifyMercadoPagoError maps SDK errors onto GatewayError or
// ErrGatewayUnreachable. The SDK reports API failures as text carrying the
// response JSON, so the status is read from there.
func classifyMercadoPagoError(err error) error {
	msg := err.Error()
	if m := mercadoPagoStatusPattern.FindStringSubmatch(msg); m != nil {
		status, _ := strconv.Atoi(m[1])
		gwErr := &interfaces.GatewayError{StatusCode: status, Message: msg}
		if i := strings.Index(msg, "{"); i >= 0 {
			body := map[string]any{}
			if json.Unmarshal([]byte(msg[i:]), &body) == nil {
				gwErr.Body = body
				if m, ok := body["message"].(string); ok {
					gwErr.Message = m
				}
			}
		}
		return gwErr
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) || isConnectionFailure(msg) {
		return fmt.Errorf("%w: %v", interfaces.ErrGatewayUnreachable, err)
	}
	return err
}

func isConnectionFailure(msg string) bool {
	for _, s := range []string{"dial tcp", "no such host", "connection refused", "Client.Timeout"} {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}

func splitName(name string) (first, last string) {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}
