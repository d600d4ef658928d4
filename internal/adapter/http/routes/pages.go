package routes

import (
	"pix_checkout/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addPageRoutes(router *gin.Engine, checkoutPage *handlers.CheckoutPageHandler, paymentPage *handlers.PaymentPageHandler) {
	router.GET(handlers.PathCheckoutForm, checkoutPage.ShowForm)
	router.POST("/checkout", checkoutPage.Submit)

	pagamento := router.Group(handlers.PathPaymentPage)
	{
		pagamento.GET("", paymentPage.Show)
		pagamento.GET("/timer", paymentPage.Timer)
		pagamento.GET("/qrcode.png", paymentPage.QRCode)
		pagamento.POST("/voltar", paymentPage.Back)
	}
}
