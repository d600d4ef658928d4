package handlers

import (
	"net/http"
	"time"

	"pix_checkout/internal/adapter/http/session"
	"pix_checkout/internal/adapter/http/views"
	"pix_checkout/internal/domain/countdown"
	"pix_checkout/internal/domain/display"
	"pix_checkout/internal/infrastructure/qrcode"
	"pix_checkout/pkg/money"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	eventTick    = "tick"
	eventExpired = "expired"
)

// PaymentPageHandler serves the Pix display page, its QR image and the
// countdown stream.
type PaymentPageHandler struct {
	slot     *session.PaymentSlot
	resolver *display.Resolver
	qr       *qrcode.Renderer
	log      *zap.Logger

	// tick is the countdown step; one second outside tests.
	tick time.Duration
}

func NewPaymentPageHandler(slot *session.PaymentSlot, resolver *display.Resolver, qr *qrcode.Renderer, logger *zap.Logger) *PaymentPageHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if qr == nil {
		qr = qrcode.NewRenderer()
	}
	return &PaymentPageHandler{
		slot:     slot,
		resolver: resolver,
		qr:       qr,
		log:      logger.Named("handler.payment_page"),
		tick:     time.Second,
	}
}

func (h *PaymentPageHandler) Show(c *gin.Context) {
	stored, err := h.slot.Load(c.Request)
	view := h.resolver.Resolve(stored, err)

	page := views.PaymentPage{
		View:       view,
		RedirectMs: view.RedirectAfter.Milliseconds(),
		Copied:     session.Toast{Kind: session.ToastSuccess, Message: display.NoticeCopied},
		CopyFailed: session.Toast{Kind: session.ToastError, Message: display.NoticeCopyFailed},
		Expired:    session.Toast{Kind: session.ToastError, Message: display.NoticePixExpired},
	}
	if cents, ok := money.FromAny(view.Payment.Amount); ok && cents > 0 {
		page.AmountLabel = money.FormatBRL(cents)
	}
	if view.State == display.StateRedirecting {
		h.log.Info("payment page redirecting", zap.Error(err))
		// the form shows the notice again after the redirect
		if flashErr := h.slot.Flash(c.Writer, c.Request, session.Toast{Kind: session.ToastError, Message: view.Notice}); flashErr != nil {
			h.log.Warn("redirect notice flash failed", zap.Error(flashErr))
		}
	}

	if view.QRAvailable {
		uri, qrErr := h.qr.DataURI(view.Payment.Pix.QRCode)
		if qrErr != nil {
			h.log.Warn("qr render failed", zap.String("transaction_id", view.Payment.TransactionID), zap.Error(qrErr))
			page.View.QRAvailable = false
			if page.View.Notice == "" {
				page.View.Notice = display.NoticePixMissing
			}
		} else {
			page.QRDataURI = uri
		}
	}

	c.HTML(http.StatusOK, views.PaymentTemplate, page)
}

// QRCode returns the slot's Pix code as a PNG.
func (h *PaymentPageHandler) QRCode(c *gin.Context) {
	stored, err := h.slot.Load(c.Request)
	if err != nil || stored.Payment.Pix.QRCode == "" {
		c.Status(http.StatusNotFound)
		return
	}

	png, err := h.qr.PNG(stored.Payment.Pix.QRCode)
	if err != nil {
		h.log.Warn("qr render failed", zap.String("transaction_id", stored.Payment.TransactionID), zap.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", png)
}

// Timer streams the countdown as Server-Sent Events: one "tick" per second
// carrying MM:SS and a final "expired" event. The countdown stops when the
// client goes away or the handler returns.
func (h *PaymentPageHandler) Timer(c *gin.Context) {
	stored, err := h.slot.Load(c.Request)
	if err != nil {
		// 204 tells EventSource not to reconnect.
		c.Status(http.StatusNoContent)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	remaining := h.resolver.RemainingSeconds(*stored)
	if remaining == 0 {
		c.SSEvent(eventExpired, display.NoticePixExpired)
		c.Writer.Flush()
		return
	}

	log := h.log.With(zap.String("transaction_id", stored.Payment.TransactionID))
	cd := countdown.New(remaining,
		countdown.WithInterval(h.tick),
		countdown.WithExpire(func() { log.Info("pix countdown expired") }),
	)
	defer cd.Stop()

	c.SSEvent(eventTick, countdown.Format(remaining))
	c.Writer.Flush()

	for left := range cd.Start(c.Request.Context()) {
		c.SSEvent(eventTick, countdown.Format(left))
		c.Writer.Flush()
	}

	if !cd.Expired() {
		log.Debug("pix countdown stream closed", zap.Int("remaining", cd.Remaining()))
		return
	}
	c.SSEvent(eventExpired, display.NoticePixExpired)
	c.Writer.Flush()
}

// Back clears the slot and returns to the form.
func (h *PaymentPageHandler) Back(c *gin.Context) {
	if err := h.slot.Clear(c.Writer, c.Request); err != nil {
		h.log.Warn("payment slot clear failed", zap.Error(err))
	}
	c.Redirect(http.StatusSeeOther, PathCheckoutForm)
}
