package payments

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/domain/pixcode"
	"pix_checkout/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	mockPixKey       = "checkout@pix.example.com"
	mockMerchantName = "PIX CHECKOUT"
	mockMerchantCity = "SAO PAULO"
	mockExpiry       = 15 * time.Minute
)

// mockPix answers like a provider without any network call. It issues static BR
// Codes with a valid CRC, so the rest of the flow behaves as in production.
type mockPix struct {
	mu    sync.Mutex
	store map[string][]byte
	now   func() time.Time
}

func newMockPix() *mockPix {
	return &mockPix{store: map[string][]byte{}, now: time.Now}
}

func (m *mockPix) create(payload entities.GatewayPayload) (entities.GatewayResponse, error) {
	id := uuid.NewString()
	code, err := pixcode.StaticCode{
		Key:          mockPixKey,
		MerchantName: mockMerchantName,
		MerchantCity: mockMerchantCity,
		AmountCents:  payload.Amount,
		TxID:         strings.ReplaceAll(id, "-", ""),
	}.Build()
	if err != nil {
		return entities.GatewayResponse{}, err
	}

	now := m.now().UTC()
	raw, err := json.Marshal(map[string]any{
		"id":            id,
		"status":        entities.DefaultPixStatus,
		"amount":        payload.Amount,
		"paymentMethod": payload.PaymentMethod,
		"createdAt":     now.Format(time.RFC3339),
		"expiresAt":     now.Add(mockExpiry).Format(time.RFC3339),
		"pix":           map[string]any{"qrcode": code},
	})
	if err != nil {
		return entities.GatewayResponse{}, err
	}

	m.mu.Lock()
	m.store[id] = raw
	m.mu.Unlock()

	return entities.NewGatewayResponse(raw)
}

func (m *mockPix) get(id string) (entities.GatewayResponse, error) {
	m.mu.Lock()
	raw, ok := m.store[id]
	m.mu.Unlock()
	if !ok {
		return entities.GatewayResponse{}, &interfaces.GatewayError{StatusCode: http.StatusNotFound, Message: "transaction not found"}
	}
	return entities.NewGatewayResponse(raw)
}
