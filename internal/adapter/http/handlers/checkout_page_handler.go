package handlers

import (
	"net/http"
	"time"

	request "pix_checkout/internal/adapter/http/dto/request"
	"pix_checkout/internal/adapter/http/session"
	"pix_checkout/internal/adapter/http/views"
	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase"
	"pix_checkout/pkg/money"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	PathCheckoutForm = "/"
	PathPaymentPage  = "/pagamento"

	msgCheckoutFailed = "Erro ao processar pagamento. Tente novamente."
	msgFormInvalid    = "Verifique os campos destacados."
)

// CheckoutPageHandler serves the checkout form and its submission.
type CheckoutPageHandler struct {
	checkout usecase.ICheckoutUseCase
	slot     *session.PaymentSlot
	offer    usecase.CheckoutOffer
	log      *zap.Logger
	now      func() time.Time
}

func NewCheckoutPageHandler(checkout usecase.ICheckoutUseCase, slot *session.PaymentSlot, offer usecase.CheckoutOffer, logger *zap.Logger) *CheckoutPageHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckoutPageHandler{
		checkout: checkout,
		slot:     slot,
		offer:    offer,
		log:      logger.Named("handler.checkout"),
		now:      time.Now,
	}
}

// ShowForm renders the empty form with any queued toasts.
func (h *CheckoutPageHandler) ShowForm(c *gin.Context) {
	toasts := h.slot.Toasts(c.Writer, c.Request)
	h.render(c, http.StatusOK, request.CheckoutFormRequest{}, nil, toasts)
}

// Submit validates the form, creates the charge and hands the payment to the
// display page through the session slot.
func (h *CheckoutPageHandler) Submit(c *gin.Context) {
	var form request.CheckoutFormRequest
	if err := c.ShouldBind(&form); err != nil {
		h.log.Info("checkout form bind failed", zap.Error(err))
	}

	if errs := form.Validate(); len(errs) > 0 {
		h.render(c, http.StatusBadRequest, form.Masked(), errs, []session.Toast{{Kind: session.ToastError, Message: msgFormInvalid}})
		return
	}

	payment, err := h.checkout.Checkout(c.Request.Context(), form.ToEntity(), c.ClientIP())
	if err != nil {
		status := mapPixPaymentError(err).HTTPStatus
		h.log.Warn("checkout submit failed", zap.Int("status", status), zap.Error(err))
		h.render(c, status, form.Masked(), nil, []session.Toast{{Kind: session.ToastError, Message: msgCheckoutFailed}})
		return
	}

	stored := entities.StoredPayment{Payment: payment, IssuedAt: h.now()}
	if err := h.slot.Save(c.Writer, c.Request, stored); err != nil {
		h.log.Error("payment slot save failed", zap.String("transaction_id", payment.TransactionID), zap.Error(err))
		h.render(c, http.StatusInternalServerError, form.Masked(), nil, []session.Toast{{Kind: session.ToastError, Message: msgCheckoutFailed}})
		return
	}

	h.log.Info("checkout submit success", zap.String("transaction_id", payment.TransactionID))
	c.Redirect(http.StatusSeeOther, PathPaymentPage)
}

func (h *CheckoutPageHandler) render(c *gin.Context, status int, form request.CheckoutFormRequest, errs map[string]string, toasts []session.Toast) {
	c.HTML(status, views.CheckoutTemplate, views.CheckoutPage{
		Title:       h.offer.Title,
		Description: h.offer.Description,
		AmountLabel: money.FormatBRL(h.offer.AmountCents),
		Form:        form,
		Errors:      errs,
		Toasts:      toasts,
	})
}
