package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"ENVIRONMENT", "PORT", "PAYMENT_PROVIDER", "PAYEVO_SECRET_KEY", "PAYMENT_GATEWAY_MOCK",
		"GATEWAY_CONTACT_OVERRIDE", "CHECKOUT_AMOUNT", "PIX_COUNTDOWN", "SESSION_STORE",
		"EMAILJS_SERVICE_ID", "EMAILJS_TEMPLATE_ID", "EMAILJS_PUBLIC_KEY",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Server.Port != "3000" {
		t.Fatalf("expected default port 3000, got %q", cfg.Server.Port)
	}
	if cfg.Gateway.Provider != ProviderPayevo {
		t.Fatalf("expected payevo provider, got %q", cfg.Gateway.Provider)
	}
	if cfg.Gateway.Timeout != 10*time.Second {
		t.Fatalf("expected 10s gateway timeout, got %s", cfg.Gateway.Timeout)
	}
	if cfg.Gateway.ContactOverride {
		t.Fatalf("contact override must default to off")
	}
	if cfg.Checkout.Amount != 4367 {
		t.Fatalf("expected default amount 4367, got %d", cfg.Checkout.Amount)
	}
	if cfg.Checkout.PixCountdown != 15*time.Minute || cfg.Checkout.RedirectDelay != 2*time.Second {
		t.Fatalf("unexpected checkout timings: %+v", cfg.Checkout)
	}
	if cfg.GatewayConfigured() {
		t.Fatalf("gateway must not be configured without a secret")
	}
	if cfg.NotificationConfigured() {
		t.Fatalf("notification must not be configured without emailjs credentials")
	}
	if cfg.IsProduction() {
		t.Fatalf("default environment is development")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("ENVIRONMENT", "Production")
	t.Setenv("PAYMENT_PROVIDER", " MercadoPago ")
	t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "TEST-token")
	t.Setenv("PAYEVO_API_URL", "https://gateway.example/v1/")
	t.Setenv("GATEWAY_TIMEOUT", "3s")
	t.Setenv("GATEWAY_CONTACT_OVERRIDE", "true")
	t.Setenv("PIX_COUNTDOWN", "90s")

	cfg := Load()

	if !cfg.IsProduction() || !cfg.Session.Secure {
		t.Fatalf("expected production with secure cookies, got %+v", cfg)
	}
	if cfg.Gateway.Provider != ProviderMercadoPago || !cfg.GatewayConfigured() {
		t.Fatalf("expected configured mercadopago provider, got %+v", cfg.Gateway)
	}
	if cfg.Gateway.PayevoAPIURL != "https://gateway.example/v1" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.Gateway.PayevoAPIURL)
	}
	if cfg.Gateway.Timeout != 3*time.Second || !cfg.Gateway.ContactOverride {
		t.Fatalf("unexpected gateway config: %+v", cfg.Gateway)
	}
	if cfg.Checkout.PixCountdown != 90*time.Second {
		t.Fatalf("expected 90s countdown, got %s", cfg.Checkout.PixCountdown)
	}
}

func TestIsTruthy(t *testing.T) {
	for _, v := range []string{"1", "true", "YES", " on ", "mock"} {
		if !isTruthy(v) {
			t.Fatalf("expected %q to be truthy", v)
		}
	}
	for _, v := range []string{"", "0", "false", "off"} {
		if isTruthy(v) {
			t.Fatalf("expected %q to be falsy", v)
		}
	}
}
