package handlers

import (
	"net/http"
	"time"

	response "pix_checkout/internal/adapter/http/dto/response"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	gatewayConfigured bool
	now               func() time.Time
}

func NewHealthHandler(gatewayConfigured bool) *HealthHandler {
	return &HealthHandler{gatewayConfigured: gatewayConfigured, now: time.Now}
}

// Health godoc
// @Summary  Liveness probe
// @Tags     health
// @Produce  json
// @Success  200  {object}  response.HealthResponse
// @Router   /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, response.HealthResponse{
		Status:            "ok",
		Timestamp:         h.now().UTC(),
		GatewayConfigured: h.gatewayConfigured,
	})
}
