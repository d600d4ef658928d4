package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	ProviderPayevo      = "payevo"
	ProviderMercadoPago = "mercadopago"

	SessionStoreCookie   = "cookie"
	SessionStoreDynamoDB = "dynamodb"
)

// Config is the full runtime configuration, read from the environment (and .env,
// loaded by godotenv/autoload in main).
type Config struct {
	Environment  string
	Server       ServerConfig
	Gateway      GatewayConfig
	Notification NotificationConfig
	Checkout     CheckoutConfig
	Session      SessionConfig
	AWS          AWSConfig
}

type ServerConfig struct {
	Port string
}

// GatewayConfig drives the outbound payment provider.
//
// ContactOverride replaces the customer's email and phone with the placeholder
// values before they reach the gateway; the real contact data then only travels
// through the notification channel.
type GatewayConfig struct {
	Provider           string
	PayevoAPIURL       string
	PayevoSecretKey    string
	MercadoPagoToken   string
	Mock               bool
	Timeout            time.Duration
	ContactOverride    bool
	PlaceholderEmail   string
	PlaceholderPhone   string
	DefaultItemTitle   string
	DefaultDescription string
}

type NotificationConfig struct {
	EmailJSAPIURL     string
	EmailJSServiceID  string
	EmailJSTemplateID string
	EmailJSPublicKey  string
	EmailJSPrivateKey string
	RecipientEmail    string
	Timeout           time.Duration
}

// CheckoutConfig describes the single product sold by the checkout form and the
// display page timings.
type CheckoutConfig struct {
	Amount          int64
	ItemTitle       string
	ItemDescription string
	PixCountdown    time.Duration
	RedirectDelay   time.Duration
}

type SessionConfig struct {
	Secret    string
	Store     string
	TableName string
	TTL       time.Duration
	Secure    bool
}

type AWSConfig struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	DynamoDBEndpoint string
}

// Load reads configuration from the process environment.
func Load() *Config {
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "3000")

	v.SetDefault("PAYMENT_PROVIDER", ProviderPayevo)
	v.SetDefault("PAYEVO_API_URL", "https://apiv2.payevo.com.br/functions/v1")
	v.SetDefault("GATEWAY_TIMEOUT", 10*time.Second)
	v.SetDefault("GATEWAY_CONTACT_OVERRIDE", false)
	v.SetDefault("GATEWAY_PLACEHOLDER_EMAIL", "email@gmail.com")
	v.SetDefault("GATEWAY_PLACEHOLDER_PHONE", "11122312313")
	v.SetDefault("GATEWAY_DEFAULT_ITEM_TITLE", "Produto")
	v.SetDefault("GATEWAY_DEFAULT_ITEM_DESCRIPTION", "Descrição do item")

	v.SetDefault("EMAILJS_API_URL", "https://api.emailjs.com/api/v1.0/email/send")
	v.SetDefault("EMAILJS_TIMEOUT", 5*time.Second)

	v.SetDefault("CHECKOUT_AMOUNT", 4367)
	v.SetDefault("CHECKOUT_ITEM_TITLE", "Checkout")
	v.SetDefault("CHECKOUT_ITEM_DESCRIPTION", "Pagamento de serviço")
	v.SetDefault("PIX_COUNTDOWN", 15*time.Minute)
	v.SetDefault("REDIRECT_DELAY", 2*time.Second)

	v.SetDefault("SESSION_STORE", SessionStoreCookie)
	v.SetDefault("SESSIONS_TABLE", "checkout_sessions")
	v.SetDefault("SESSION_TTL", 30*time.Minute)

	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")

	return v
}

// FromViper maps an already populated viper instance onto Config.
func FromViper(v *viper.Viper) *Config {
	env := strings.ToLower(strings.TrimSpace(v.GetString("ENVIRONMENT")))

	return &Config{
		Environment: env,
		Server: ServerConfig{
			Port: v.GetString("PORT"),
		},
		Gateway: GatewayConfig{
			Provider:           strings.ToLower(strings.TrimSpace(v.GetString("PAYMENT_PROVIDER"))),
			PayevoAPIURL:       strings.TrimRight(v.GetString("PAYEVO_API_URL"), "/"),
			PayevoSecretKey:    v.GetString("PAYEVO_SECRET_KEY"),
			MercadoPagoToken:   v.GetString("MERCADOPAGO_ACCESS_TOKEN"),
			Mock:               isTruthy(v.GetString("PAYMENT_GATEWAY_MOCK")) || isTruthy(v.GetString("MERCADOPAGO_MOCK")),
			Timeout:            v.GetDuration("GATEWAY_TIMEOUT"),
			ContactOverride:    v.GetBool("GATEWAY_CONTACT_OVERRIDE"),
			PlaceholderEmail:   v.GetString("GATEWAY_PLACEHOLDER_EMAIL"),
			PlaceholderPhone:   v.GetString("GATEWAY_PLACEHOLDER_PHONE"),
			DefaultItemTitle:   v.GetString("GATEWAY_DEFAULT_ITEM_TITLE"),
			DefaultDescription: v.GetString("GATEWAY_DEFAULT_ITEM_DESCRIPTION"),
		},
		Notification: NotificationConfig{
			EmailJSAPIURL:     v.GetString("EMAILJS_API_URL"),
			EmailJSServiceID:  v.GetString("EMAILJS_SERVICE_ID"),
			EmailJSTemplateID: v.GetString("EMAILJS_TEMPLATE_ID"),
			EmailJSPublicKey:  v.GetString("EMAILJS_PUBLIC_KEY"),
			EmailJSPrivateKey: v.GetString("EMAILJS_PRIVATE_KEY"),
			RecipientEmail:    v.GetString("EMAILJS_TO_EMAIL"),
			Timeout:           v.GetDuration("EMAILJS_TIMEOUT"),
		},
		Checkout: CheckoutConfig{
			Amount:          v.GetInt64("CHECKOUT_AMOUNT"),
			ItemTitle:       v.GetString("CHECKOUT_ITEM_TITLE"),
			ItemDescription: v.GetString("CHECKOUT_ITEM_DESCRIPTION"),
			PixCountdown:    v.GetDuration("PIX_COUNTDOWN"),
			RedirectDelay:   v.GetDuration("REDIRECT_DELAY"),
		},
		Session: SessionConfig{
			Secret:    v.GetString("SESSION_SECRET"),
			Store:     strings.ToLower(strings.TrimSpace(v.GetString("SESSION_STORE"))),
			TableName: v.GetString("SESSIONS_TABLE"),
			TTL:       v.GetDuration("SESSION_TTL"),
			Secure:    env == "production",
		},
		AWS: AWSConfig{
			Region:           v.GetString("AWS_REGION"),
			AccessKeyID:      v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey:  v.GetString("AWS_SECRET_ACCESS_KEY"),
			DynamoDBEndpoint: v.GetString("DYNAMODB_ENDPOINT"),
		},
	}
}

// IsProduction gates debug detail in error responses.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// GatewayConfigured reports whether the selected provider has credentials (or runs mocked).
func (c *Config) GatewayConfigured() bool {
	if c.Gateway.Mock {
		return true
	}
	if c.Gateway.Provider == ProviderMercadoPago {
		return c.Gateway.MercadoPagoToken != ""
	}
	return c.Gateway.PayevoSecretKey != ""
}

// NotificationConfigured is false when any EmailJS credential is missing.
func (c *Config) NotificationConfigured() bool {
	n := c.Notification
	return n.EmailJSServiceID != "" && n.EmailJSTemplateID != "" && n.EmailJSPublicKey != ""
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
