package response

import (
	"time"

	"pix_checkout/internal/domain/entities"
)

type PixCodeResponse struct {
	QRCode       string `json:"qrcode"`
	CopyAndPaste string `json:"copyAndPaste"`
}

type PixPaymentResponse struct {
	Status           string          `json:"status"`
	TransactionID    string          `json:"transactionId"`
	Pix              PixCodeResponse `json:"pix"`
	ExpiresAt        string          `json:"expiresAt,omitempty"`
	Amount           any             `json:"amount,omitempty"`
	OriginalResponse map[string]any  `json:"originalResponse,omitempty"`
}

// FromPixPayment echoes the raw gateway answer only when withOriginal is set
// (non-production).
func FromPixPayment(p entities.NormalizedPixPayment, withOriginal bool) PixPaymentResponse {
	out := PixPaymentResponse{
		Status:        p.Status,
		TransactionID: p.TransactionID,
		Pix:           PixCodeResponse{QRCode: p.Pix.QRCode, CopyAndPaste: p.Pix.CopyAndPaste},
		ExpiresAt:     p.ExpiresAt,
		Amount:        p.Amount,
	}
	if withOriginal {
		out.OriginalResponse = p.OriginalResponse
	}
	return out
}

type TransactionResponse struct {
	Status        string `json:"status"`
	TransactionID string `json:"transactionId"`
	Amount        any    `json:"amount"`
	PaidAt        any    `json:"paidAt"`
}

func FromTransactionStatus(s entities.TransactionStatus) TransactionResponse {
	return TransactionResponse{
		Status:        s.Status,
		TransactionID: s.TransactionID,
		Amount:        s.Amount,
		PaidAt:        s.PaidAt,
	}
}

type HealthResponse struct {
	Status            string    `json:"status"`
	Timestamp         time.Time `json:"timestamp"`
	GatewayConfigured bool      `json:"gatewayConfigured"`
}

type NotFoundResponse struct {
	Error  string `json:"error"`
	Path   string `json:"path"`
	Method string `json:"method"`
}
