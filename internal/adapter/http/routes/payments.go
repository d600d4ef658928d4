package routes

import (
	"pix_checkout/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAPI      = "/api"
	PathPayments = "/payments"
	PathHealth   = "/health"
)

func addPaymentRoutes(rg *gin.RouterGroup, pixHandler *handlers.PixPaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/pix", pixHandler.CreatePixPayment)
		payments.GET("/transaction/:id", pixHandler.GetTransaction)
	}
}
