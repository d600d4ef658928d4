package notification

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pix_checkout/internal/domain/entities"
)

func testContact() entities.CustomerContact {
	return entities.CustomerContact{
		FullName:    "Maria Silva",
		Email:       "maria@example.com",
		Phone:       "(11) 98765-4321",
		Document:    "529.982.247-25",
		AmountCents: 4367,
		SubmittedAt: time.Date(2025, 3, 10, 15, 4, 5, 0, time.UTC),
	}
}

func TestEmailJSNotifier_NotifyCustomer(t *testing.T) {
	t.Run("sends template params", func(t *testing.T) {
		var got emailJSRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(body, &got)
			_, _ = w.Write([]byte("OK"))
		}))
		defer srv.Close()

		n := NewEmailJSNotifier(EmailJSOptions{
			APIURL:         srv.URL,
			ServiceID:      "svc",
			TemplateID:     "tpl",
			PublicKey:      "pub",
			RecipientEmail: "ops@example.com",
			Timeout:        time.Second,
		}, nil)
		n.loc = time.FixedZone("BRT", -3*60*60)

		if err := n.NotifyCustomer(context.Background(), testContact()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got.ServiceID != "svc" || got.TemplateID != "tpl" || got.UserID != "pub" || got.AccessToken != "" {
			t.Fatalf("unexpected credentials %+v", got)
		}
		want := map[string]string{
			"to_email":   "ops@example.com",
			"from_name":  "Maria Silva",
			"user_name":  "Maria Silva",
			"user_email": "maria@example.com",
			"user_phone": "(11) 98765-4321",
			"user_cpf":   "529.982.247-25",
			"timestamp":  "10/03/2025, 12:04:05",
			"amount":     "R$ 43,67",
		}
		for k, v := range want {
			if got.TemplateParams[k] != v {
				t.Fatalf("template param %s = %q, want %q", k, got.TemplateParams[k], v)
			}
		}
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("The template ID is invalid"))
		}))
		defer srv.Close()

		n := NewEmailJSNotifier(EmailJSOptions{APIURL: srv.URL, ServiceID: "s", TemplateID: "t", PublicKey: "p", Timeout: time.Second}, nil)
		if err := n.NotifyCustomer(context.Background(), testContact()); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("not configured", func(t *testing.T) {
		n := NewEmailJSNotifier(EmailJSOptions{APIURL: "http://unused"}, nil)
		if err := n.NotifyCustomer(context.Background(), testContact()); !errors.Is(err, ErrEmailJSNotConfigured) {
			t.Fatalf("expected ErrEmailJSNotConfigured, got %v", err)
		}
	})
}

func TestNoopNotifier(t *testing.T) {
	if err := NewNoopNotifier(nil).NotifyCustomer(context.Background(), testContact()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
