package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	g.POST("/bookings/:id/pay", authMiddleware, h.Pay)
	g.POST("/payments/webhook", h.Webhook)
}
