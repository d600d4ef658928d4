// Package session keeps the checkout's per-visitor state: the payment slot
// handed from the form to the display page and the flash toasts.
package session

import (
	"encoding/json"
	"fmt"
	"net/http"

	"pix_checkout/internal/domain/display"
	"pix_checkout/internal/domain/entities"

	"github.com/gorilla/sessions"
)

const (
	CookieName = "checkout"
	SlotKey    = "pixPaymentData"
	toastKey   = "toast"
)

var (
	ErrSlotEmpty   = display.ErrSlotEmpty
	ErrSlotCorrupt = display.ErrSlotCorrupt
)

const (
	ToastSuccess = "success"
	ToastError   = "error"
)

type Toast struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// PaymentSlot is the single session-scoped slot holding the latest payment.
// Each Save overwrites it.
type PaymentSlot struct {
	store sessions.Store
}

func NewPaymentSlot(store sessions.Store) *PaymentSlot {
	return &PaymentSlot{store: store}
}

func (s *PaymentSlot) Save(w http.ResponseWriter, r *http.Request, stored entities.StoredPayment) error {
	sess, err := s.session(r)
	if err != nil {
		return err
	}
	b, err := json.Marshal(stored)
	if err != nil {
		return err
	}
	sess.Values[SlotKey] = string(b)
	return sess.Save(r, w)
}

// Load returns ErrSlotEmpty when nothing was stored and ErrSlotCorrupt when the
// stored value cannot be decoded.
func (s *PaymentSlot) Load(r *http.Request) (*entities.StoredPayment, error) {
	sess, err := s.session(r)
	if err != nil {
		return nil, ErrSlotEmpty
	}
	raw, ok := sess.Values[SlotKey]
	if !ok {
		return nil, ErrSlotEmpty
	}
	text, ok := raw.(string)
	if !ok || text == "" {
		return nil, ErrSlotCorrupt
	}

	var stored entities.StoredPayment
	if err := json.Unmarshal([]byte(text), &stored); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSlotCorrupt, err)
	}
	return &stored, nil
}

func (s *PaymentSlot) Clear(w http.ResponseWriter, r *http.Request) error {
	sess, err := s.session(r)
	if err != nil {
		return err
	}
	if _, ok := sess.Values[SlotKey]; !ok {
		return nil
	}
	delete(sess.Values, SlotKey)
	return sess.Save(r, w)
}

// Flash queues a toast for the next rendered page. Toasts are kept as a JSON
// string so both stores can gob-encode them without type registration.
func (s *PaymentSlot) Flash(w http.ResponseWriter, r *http.Request, t Toast) error {
	sess, err := s.session(r)
	if err != nil {
		return err
	}
	queued := pendingToasts(sess)
	b, err := json.Marshal(append(queued, t))
	if err != nil {
		return err
	}
	sess.Values[toastKey] = string(b)
	return sess.Save(r, w)
}

// Toasts drains the queued toasts.
func (s *PaymentSlot) Toasts(w http.ResponseWriter, r *http.Request) []Toast {
	sess, err := s.session(r)
	if err != nil {
		return nil
	}
	if _, ok := sess.Values[toastKey]; !ok {
		return nil
	}
	out := pendingToasts(sess)
	delete(sess.Values, toastKey)
	_ = sess.Save(r, w)
	return out
}

func pendingToasts(sess *sessions.Session) []Toast {
	text, _ := sess.Values[toastKey].(string)
	if text == "" {
		return nil
	}
	var out []Toast
	if json.Unmarshal([]byte(text), &out) != nil {
		return nil
	}
	return out
}

// session ignores decode failures of a stale or tampered cookie: the visitor
// simply starts over with an empty session, which is saved over the bad cookie.
func (s *PaymentSlot) session(r *http.Request) (*sessions.Session, error) {
	sess, err := s.store.Get(r, CookieName)
	if sess == nil {
		if err == nil {
			err = ErrSlotEmpty
		}
		return nil, err
	}
	return sess, nil
}
