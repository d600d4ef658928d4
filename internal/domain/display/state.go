// Package display decides what the payment page shows for a given session slot.
package display

import (
	"errors"
	"time"

	"pix_checkout/internal/domain/countdown"
	"pix_checkout/internal/domain/entities"
)

type State string

const (
	StateDisplayed   State = "displayed"
	StateRedirecting State = "redirecting"
	StateExpired     State = "expired"
)

const (
	NoticeSessionExpired = "Sessão expirada. Redirecionando..."
	NoticeLoadFailed     = "Erro ao carregar pagamento. Redirecionando..."
	NoticePixMissing     = "Não foi possível obter os dados do PIX."
	NoticePixExpired     = "Código Pix expirado. Gere um novo código."
	NoticeCopied         = "Código Pix copiado!"
	NoticeCopyFailed     = "Não foi possível copiar o código."
)

// ErrSlotEmpty and ErrSlotCorrupt are the two ways loading the slot can fail.
// Session stores wrap or return them so the page can pick the right notice.
var (
	ErrSlotEmpty   = errors.New("payment slot is empty")
	ErrSlotCorrupt = errors.New("payment slot could not be decoded")
)

type View struct {
	State   State
	Payment entities.NormalizedPixPayment
	Notice  string

	QRAvailable      bool
	RemainingSeconds int
	Countdown        string
	RedirectAfter    time.Duration
}

type Resolver struct {
	Window        time.Duration
	RedirectDelay time.Duration
	Now           func() time.Time
}

func NewResolver(window, redirectDelay time.Duration) *Resolver {
	return &Resolver{Window: window, RedirectDelay: redirectDelay, Now: time.Now}
}

// Resolve turns the slot load result into a view. A load error always means
// Redirecting; a stored payment means Displayed, or Expired once its window has
// run out.
func (r *Resolver) Resolve(stored *entities.StoredPayment, loadErr error) View {
	if loadErr != nil || stored == nil {
		notice := NoticeSessionExpired
		if errors.Is(loadErr, ErrSlotCorrupt) {
			notice = NoticeLoadFailed
		}
		return View{State: StateRedirecting, Notice: notice, RedirectAfter: r.RedirectDelay}
	}

	v := View{
		State:       StateDisplayed,
		Payment:     stored.Payment,
		QRAvailable: stored.Payment.Pix.QRCode != "",
	}
	if !v.QRAvailable {
		v.Notice = NoticePixMissing
	}

	v.RemainingSeconds = r.RemainingSeconds(*stored)
	v.Countdown = countdown.Format(v.RemainingSeconds)
	if v.RemainingSeconds == 0 {
		v.State = StateExpired
		v.Notice = NoticePixExpired
	}
	return v
}

// RemainingSeconds counts from IssuedAt over the configured window, clamped to
// the gateway's expiresAt when that is earlier. Unparsable expiresAt values are
// ignored.
func (r *Resolver) RemainingSeconds(stored entities.StoredPayment) int {
	now := r.now()
	deadline := stored.IssuedAt.Add(r.Window)
	if stored.IssuedAt.IsZero() {
		deadline = now.Add(r.Window)
	}
	if exp, ok := parseExpiresAt(stored.Payment.ExpiresAt); ok && exp.Before(deadline) {
		deadline = exp
	}

	left := deadline.Sub(now)
	if left <= 0 {
		return 0
	}
	return int(left.Round(time.Second) / time.Second)
}

func (r *Resolver) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}

var expiresAtLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02 15:04:05"}

func parseExpiresAt(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range expiresAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
