package middleware

import (
	"fmt"
	"net/http"

	"pix_checkout/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery turns a panic into a 500 JSON error. The panic value is only
// exposed when debug is set.
func Recovery(logger *zap.Logger, debug bool) gin.HandlerFunc {
	log := logger.Named("http")
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", GetRequestID(c)),
			zap.Stack("stack"),
		)

		appErr := pkg.NewDomainError("INTERNAL_ERROR", "Erro interno do servidor", fmt.Errorf("panic: %v", recovered), http.StatusInternalServerError)
		body := appErr.ToHTTPError()
		if debug {
			body = appErr.ToDebugHTTPError()
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, body)
	})
}
