package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// DocumentTypeCPF is the only document type the checkout accepts.
const DocumentTypeCPF = "CPF"

// PaymentMethodPix is the gateway payment method for every transaction we create.
const PaymentMethodPix = "PIX"

// DefaultPixStatus is used when the gateway omits the status in its response.
const DefaultPixStatus = "waiting_payment"

// CustomerInput is the customer data collected by the checkout form. It is
// validated before submission and never persisted.
type CustomerInput struct {
	FullName string
	Email    string
	Document string
	Phone    string
}

// PaymentItem is one line of a payment request. Zero values are replaced by the
// gateway defaults when the gateway payload is built.
type PaymentItem struct {
	Title       string
	Quantity    int
	Price       float64
	Description string
}

// PaymentRequest is the relay input, built once per submission attempt.
//
// Amount is in minor currency units (centavos). It is a pointer so "missing" and
// "zero" can be told apart in logs; both are rejected.
type PaymentRequest struct {
	Amount   *float64
	Customer CustomerInput
	Items    []PaymentItem
	IP       string
}

// GatewayPayload is the body sent to the Pix gateway's transaction endpoint.
type GatewayPayload struct {
	PaymentMethod string          `json:"paymentMethod"`
	Amount        int64           `json:"amount"`
	Customer      GatewayCustomer `json:"customer"`
	Items         []GatewayItem   `json:"items"`
	IP            string          `json:"ip,omitempty"`
}

type GatewayCustomer struct {
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Document GatewayDocument `json:"document"`
	Phone    string          `json:"phone"`
}

type GatewayDocument struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

type GatewayItem struct {
	Title       string `json:"title"`
	Quantity    int    `json:"quantity"`
	Price       int64  `json:"price"`
	Description string `json:"description"`
}

// GatewayResponse is the untyped gateway answer.
//
// The shape is not contractually fixed, so only Raw is authoritative. Body is the
// decoded view for field lookups; Raw keeps key order, which the QR scan needs.
type GatewayResponse struct {
	Raw  json.RawMessage
	Body map[string]any
}

// NewGatewayResponse decodes raw as a JSON object. Numbers are kept as
// json.Number so provider ids and amounts are echoed unchanged.
func NewGatewayResponse(raw []byte) (GatewayResponse, error) {
	body := map[string]any{}
	if len(bytes.TrimSpace(raw)) > 0 {
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		if err := dec.Decode(&body); err != nil {
			return GatewayResponse{}, err
		}
	}
	return GatewayResponse{Raw: json.RawMessage(raw), Body: body}, nil
}

// Field returns the first present, non-null value among keys.
func (r GatewayResponse) Field(keys ...string) any {
	for _, k := range keys {
		if v, ok := r.Body[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

// StringField is Field rendered as text; numbers keep their literal form.
func (r GatewayResponse) StringField(keys ...string) string {
	switch v := r.Field(keys...).(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// PixCode holds the Pix "BR Code" payload in its two presentations.
type PixCode struct {
	QRCode       string `json:"qrcode"`
	CopyAndPaste string `json:"copyAndPaste"`
}

// NormalizedPixPayment is the only artifact handed from the relay to the form
// and from the form to the display page.
//
// ExpiresAt is advisory: it is surfaced as received and never enforced by the relay.
type NormalizedPixPayment struct {
	Status        string  `json:"status"`
	TransactionID string  `json:"transactionId"`
	Pix           PixCode `json:"pix"`
	ExpiresAt     string  `json:"expiresAt,omitempty"`
	Amount        any     `json:"amount,omitempty"`

	OriginalResponse map[string]any `json:"-"`
}

// StoredPayment is what the checkout keeps in the session slot between the form
// and the display page.
type StoredPayment struct {
	Payment  NormalizedPixPayment `json:"payment"`
	IssuedAt time.Time            `json:"issuedAt"`
}

// TransactionStatus is the normalized answer of a transaction lookup.
type TransactionStatus struct {
	Status        string
	TransactionID string
	Amount        any
	PaidAt        any

	OriginalResponse map[string]any
}

// CustomerContact is the real contact data mirrored to the notification channel.
type CustomerContact struct {
	FullName    string
	Email       string
	Phone       string
	Document    string
	AmountCents int64
	SubmittedAt time.Time
}
