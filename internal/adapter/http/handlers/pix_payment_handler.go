package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "pix_checkout/internal/adapter/http/dto/request"
	response "pix_checkout/internal/adapter/http/dto/response"
	"pix_checkout/internal/usecase"
	"pix_checkout/internal/usecase/interfaces"
	"pix_checkout/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PixPaymentHandler exposes the payment relay as JSON endpoints.
type PixPaymentHandler struct {
	usecase usecase.IPixPaymentUseCase
	log     *zap.Logger
	debug   bool
}

// NewPixPaymentHandler builds the handler. With debug set, error bodies carry
// the wrapped cause and successful bodies echo the gateway response.
func NewPixPaymentHandler(uc usecase.IPixPaymentUseCase, debug bool, logger *zap.Logger) *PixPaymentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PixPaymentHandler{usecase: uc, log: logger.Named("handler.pix"), debug: debug}
}

// CreatePixPayment godoc
// @Summary      Create a Pix charge
// @Description  Validates the request, relays it to the payment gateway and returns the normalized Pix code.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payload  body      request.PixPaymentRequest  true  "Pix payment"
// @Success      200      {object}  response.PixPaymentResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Failure      503      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /api/payments/pix [post]
func (h *PixPaymentHandler) CreatePixPayment(c *gin.Context) {
	var req request.PixPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Info("create pix invalid payload", zap.Error(err))
		h.writeError(c, pkg.NewDomainError("INVALID_REQUEST", "Requisição inválida", err, http.StatusBadRequest))
		return
	}

	payment, err := h.usecase.CreatePixPayment(c.Request.Context(), req.ToEntity())
	if err != nil {
		appErr := mapPixPaymentError(err)
		h.log.Warn("create pix failed", zap.Int("status", appErr.HTTPStatus), zap.Error(err))
		h.writeError(c, appErr)
		return
	}
	h.log.Info("create pix success", zap.String("transaction_id", payment.TransactionID), zap.String("status", payment.Status))

	c.JSON(http.StatusOK, response.FromPixPayment(payment, h.debug))
}

// GetTransaction godoc
// @Summary      Look up a transaction
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Transaction id"
// @Success      200  {object}  response.TransactionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /api/payments/transaction/{id} [get]
func (h *PixPaymentHandler) GetTransaction(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	status, err := h.usecase.GetTransaction(c.Request.Context(), id)
	if err != nil {
		appErr := mapTransactionLookupError(err)
		h.log.Warn("get transaction failed", zap.String("transaction_id", id), zap.Int("status", appErr.HTTPStatus), zap.Error(err))
		h.writeError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, response.FromTransactionStatus(status))
}

func (h *PixPaymentHandler) writeError(c *gin.Context, appErr *pkg.AppError) {
	writeAppError(c, appErr, h.debug)
}

func writeAppError(c *gin.Context, appErr *pkg.AppError, debug bool) {
	if debug {
		c.JSON(appErr.HTTPStatus, appErr.ToDebugHTTPError())
		return
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapPixPaymentError(err error) *pkg.AppError {
	var gwErr *interfaces.GatewayError

	switch {
	case errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainError("INVALID_AMOUNT", "Valor inválido", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidItemPrice):
		return pkg.NewDomainError("INVALID_ITEM_PRICE", "Preço do item inválido", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrIncompleteCustomer):
		return pkg.NewDomainError("INCOMPLETE_CUSTOMER", "Dados do cliente incompletos", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingItems):
		return pkg.NewDomainError("MISSING_ITEMS", "Itens são obrigatórios", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDocument):
		return pkg.NewDomainError("INVALID_DOCUMENT", "CPF deve ter 11 dígitos", err, http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrGatewayUnreachable):
		return pkg.NewDomainError("GATEWAY_UNREACHABLE", "Não foi possível conectar ao gateway de pagamento", err, http.StatusServiceUnavailable)
	case errors.As(err, &gwErr):
		status := gwErr.StatusCode
		if status == 0 {
			status = http.StatusBadRequest
		}
		message := gwErr.Message
		if message == "" {
			message = "Erro ao criar transação PIX"
		}
		appErr := pkg.NewDomainError("GATEWAY_ERROR", message, err, status)
		if gwErr.Body != nil {
			appErr = appErr.WithDetails(gwErr.Body)
		}
		return appErr
	case errors.Is(err, usecase.ErrPixPayloadMissing):
		return pkg.NewDomainError("PIX_PAYLOAD_MISSING", "Resposta do gateway sem código Pix", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("TRANSACTION_NOT_FOUND", "Transação não encontrada", http.StatusNotFound)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "Gateway de pagamento não configurado", http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro interno do servidor", err, http.StatusInternalServerError)
	}
}

// mapTransactionLookupError differs from the create mapping only for an
// unreachable gateway, which the lookup reports as a plain 500.
func mapTransactionLookupError(err error) *pkg.AppError {
	if errors.Is(err, interfaces.ErrGatewayUnreachable) {
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro ao consultar transação", err, http.StatusInternalServerError)
	}
	return mapPixPaymentError(err)
}
