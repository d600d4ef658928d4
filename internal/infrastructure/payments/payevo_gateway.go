package payments

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

var ErrMissingPayevoSecretKey = errors.New("missing PAYEVO_SECRET_KEY")

const (
	payevoTransactionsPath = "/transactions"
	payevoTransactionPath  = "/transactions/{id}"
)

type PayevoOptions struct {
	BaseURL   string
	SecretKey string
	Timeout   time.Duration
	Mock      bool
}

// PayevoGateway talks to the Payevo transactions API.
type PayevoGateway struct {
	client     *resty.Client
	authHeader string
	mock       *mockPix
	log        *zap.Logger
}

var _ interfaces.IPaymentGateway = (*PayevoGateway)(nil)

func NewPayevoGateway(opts PayevoOptions, logger *zap.Logger) (*PayevoGateway, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	log := logger.Named("gateway.payevo")

	if opts.Mock {
		log.Info("mock mode enabled")
		return &PayevoGateway{mock: newMockPix(), log: log}, nil
	}
	if opts.SecretKey == "" {
		log.Warn("missing PAYEVO_SECRET_KEY")
		return nil, ErrMissingPayevoSecretKey
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(opts.BaseURL, "/")).
		SetTimeout(opts.Timeout).
		SetHeader("Accept", "application/json")

	log.Info("client initialized", zap.String("base_url", opts.BaseURL), zap.Duration("timeout", opts.Timeout))
	return &PayevoGateway{
		client:     client,
		authHeader: "Basic " + base64.StdEncoding.EncodeToString([]byte(opts.SecretKey)),
		log:        log,
	}, nil
}

func (g *PayevoGateway) CreateTransaction(ctx context.Context, payload entities.GatewayPayload) (entities.GatewayResponse, error) {
	if g.mock != nil {
		return g.mock.create(payload)
	}

	g.log.Info("create start", zap.Int64("amount", payload.Amount), zap.Int("items", len(payload.Items)))
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Authorization", g.authHeader).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(payevoTransactionsPath)
	if err != nil {
		g.log.Warn("create no response", zap.Error(err))
		return entities.GatewayResponse{}, fmt.Errorf("%w: %v", interfaces.ErrGatewayUnreachable, err)
	}

	out, err := decodeResponse(resp)
	if err != nil {
		g.log.Warn("create rejected", zap.Int("status", resp.StatusCode()), zap.Error(err))
		return entities.GatewayResponse{}, err
	}
	g.log.Info("create success", zap.Int("status", resp.StatusCode()), zap.String("transaction_id", out.StringField("id")))
	return out, nil
}

func (g *PayevoGateway) GetTransaction(ctx context.Context, id string) (entities.GatewayResponse, error) {
	if g.mock != nil {
		return g.mock.get(id)
	}

	g.log.Info("get start", zap.String("transaction_id", id))
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Authorization", g.authHeader).
		SetPathParam("id", id).
		Get(payevoTransactionPath)
	if err != nil {
		g.log.Warn("get no response", zap.String("transaction_id", id), zap.Error(err))
		return entities.GatewayResponse{}, fmt.Errorf("%w: %v", interfaces.ErrGatewayUnreachable, err)
	}

	out, err := decodeResponse(resp)
	if err != nil {
		g.log.Warn("get rejected", zap.String("transaction_id", id), zap.Int("status", resp.StatusCode()), zap.Error(err))
		return entities.GatewayResponse{}, err
	}
	g.log.Info("get success", zap.String("transaction_id", id), zap.String("status", out.StringField("status")))
	return out, nil
}

// decodeResponse turns non-2xx answers into a GatewayError carrying the
// provider body and message.
func decodeResponse(resp *resty.Response) (entities.GatewayResponse, error) {
	status := resp.StatusCode()
	if status < 200 || status >= 300 {
		return entities.GatewayResponse{}, newGatewayError(status, resp.Body())
	}

	out, err := entities.NewGatewayResponse(resp.Body())
	if err != nil {
		return entities.GatewayResponse{}, fmt.Errorf("decode gateway response: %w", err)
	}
	return out, nil
}

func newGatewayError(status int, body []byte) *interfaces.GatewayError {
	gwErr := &interfaces.GatewayError{StatusCode: status}

	parsed := map[string]any{}
	if err := json.Unmarshal(body, &parsed); err != nil {
		if text := strings.TrimSpace(string(body)); text != "" {
			gwErr.Body = map[string]any{"body": text}
		}
		return gwErr
	}
	gwErr.Body = parsed
	if msg, ok := parsed["message"].(string); ok {
		gwErr.Message = msg
	}
	return gwErr
}
