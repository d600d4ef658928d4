package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"pix_checkout/internal/config"
	"pix_checkout/internal/domain/pixcode"
	"pix_checkout/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/payment"
)

func TestClassifyMercadoPagoError(t *testing.T) {
	t.Run("api rejection", func(t *testing.T) {
		err := classifyMercadoPagoError(errors.New(`error creating payment: {"message":"invalid payer","error":"bad_request","status":400,"cause":[]}`))
		var gwErr *interfaces.GatewayError
		if !errors.As(err, &gwErr) {
			t.Fatalf("expected GatewayError, got %v", err)
		}
		if gwErr.StatusCode != http.StatusBadRequest || gwErr.Message != "invalid payer" {
			t.Fatalf("unexpected gateway error %+v", gwErr)
		}
	})

	t.Run("status without json body", func(t *testing.T) {
		err := classifyMercadoPagoError(errors.New(`unauthorized "status":401`))
		var gwErr *interfaces.GatewayError
		if !errors.As(err, &gwErr) || gwErr.StatusCode != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %v", err)
		}
	})

	t.Run("connection failure", func(t *testing.T) {
		err := classifyMercadoPagoError(errors.New("Post \"https://api.mercadopago.com/v1/payments\": dial tcp: lookup api.mercadopago.com: no such host"))
		if !errors.Is(err, interfaces.ErrGatewayUnreachable) {
			t.Fatalf("expected ErrGatewayUnreachable, got %v", err)
		}
	})

	t.Run("deadline", func(t *testing.T) {
		err := classifyMercadoPagoError(fmt.Errorf("request: %w", context.DeadlineExceeded))
		if !errors.Is(err, interfaces.ErrGatewayUnreachable) {
			t.Fatalf("expected ErrGatewayUnreachable, got %v", err)
		}
	})

	t.Run("other", func(t *testing.T) {
		in := errors.New("boom")
		if err := classifyMercadoPagoError(in); err != in {
			t.Fatalf("expected error unchanged, got %v", err)
		}
	})
}

func TestMercadoPagoRequest(t *testing.T) {
	req, err := mercadoPagoRequest(samplePayload())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b, _ := json.Marshal(req)
	var m map[string]any
	_ = json.Unmarshal(b, &m)

	if m["payment_method_id"] != "pix" {
		t.Fatalf("expected pix method, got %v", m["payment_method_id"])
	}
	if m["transaction_amount"] != 43.67 {
		t.Fatalf("expected 43.67, got %v", m["transaction_amount"])
	}
	payer, _ := m["payer"].(map[string]any)
	if payer["email"] != "maria@example.com" || payer["first_name"] != "Maria" || payer["last_name"] != "Silva" {
		t.Fatalf("unexpected payer %v", payer)
	}
}

func TestNormalizeMercadoPagoResponse(t *testing.T) {
	var resp payment.Response
	raw := `{"id":123456,"status":"pending","transaction_amount":43.67,
		"date_of_expiration":"2025-01-01T00:15:00Z",
		"point_of_interaction":{"transaction_data":{"qr_code":"00020126mpcode","ticket_url":"https://mp/ticket"}}}`
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("invalid fixture: %v", err)
	}

	out, err := normalizeMercadoPagoResponse(&resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.StringField("id") != "123456" || out.StringField("status") != "pending" {
		t.Fatalf("unexpected body %v", out.Body)
	}
	if out.StringField("amount") != "4367" {
		t.Fatalf("expected 4367 centavos, got %v", out.Field("amount"))
	}
	if out.StringField("expiresAt") == "" {
		t.Fatalf("expected expiresAt to be set")
	}

	obj, err := pixcode.PixObject(out.Raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res, ok := pixcode.Extract(obj)
	if !ok || res.QRCode != "00020126mpcode" {
		t.Fatalf("expected qr_code from transaction data, got %+v", res)
	}
}

func TestSplitName(t *testing.T) {
	cases := map[string][2]string{
		"":                  {"", ""},
		"Maria":             {"Maria", ""},
		"Maria Silva":       {"Maria", "Silva"},
		"Ana de Souza Lima": {"Ana", "de Souza Lima"},
	}
	for in, want := range cases {
		first, last := splitName(in)
		if first != want[0] || last != want[1] {
			t.Fatalf("splitName(%q) = %q,%q want %q,%q", in, first, last, want[0], want[1])
		}
	}
}

func TestNewGateway(t *testing.T) {
	t.Run("payevo mock", func(t *testing.T) {
		g, err := NewGateway(config.GatewayConfig{Provider: config.ProviderPayevo, Mock: true}, nil)
		if err != nil || g == nil {
			t.Fatalf("expected gateway, got %v err=%v", g, err)
		}
		if _, ok := g.(*PayevoGateway); !ok {
			t.Fatalf("expected *PayevoGateway, got %T", g)
		}
	})

	t.Run("mercadopago mock", func(t *testing.T) {
		g, err := NewGateway(config.GatewayConfig{Provider: config.ProviderMercadoPago, Mock: true}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := g.(*MercadoPagoGateway); !ok {
			t.Fatalf("expected *MercadoPagoGateway, got %T", g)
		}
	})

	t.Run("missing credentials returns nil interface", func(t *testing.T) {
		g, err := NewGateway(config.GatewayConfig{Provider: config.ProviderPayevo}, nil)
		if !errors.Is(err, ErrMissingPayevoSecretKey) {
			t.Fatalf("expected ErrMissingPayevoSecretKey, got %v", err)
		}
		if g != nil {
			t.Fatalf("expected nil interface, got %T", g)
		}

		g, err = NewGateway(config.GatewayConfig{Provider: config.ProviderMercadoPago}, nil)
		if !errors.Is(err, ErrMissingMercadoPagoAccessToken) || g != nil {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken and nil, got %v %v", g, err)
		}
	})

	t.Run("unknown provider", func(t *testing.T) {
		if _, err := NewGateway(config.GatewayConfig{Provider: "stripe"}, nil); !errors.Is(err, ErrUnknownProvider) {
			t.Fatalf("expected ErrUnknownProvider, got %v", err)
		}
	})
}
