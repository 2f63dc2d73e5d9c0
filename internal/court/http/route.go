package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/courts")

	// Public browse routes
	group.GET("", h.List)
	group.GET("/:id", h.Get)

	// Owner/admin routes
	group.POST("", authMiddleware, h.Create)
	group.PATCH("/:id", authMiddleware, h.Update)
	group.DELETE("/:id", authMiddleware, h.Delete)
}
