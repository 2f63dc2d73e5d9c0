package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	// Public venue-facing routes
	g.GET("/venues/:id/reviews", h.List)
	g.GET("/venues/:id/rating", h.Rating)

	g.POST("/venues/:id/reviews", authMiddleware, h.Create)

	group := g.Group("/reviews", authMiddleware)
	group.GET("", adminMiddleware, h.ListForModeration)
	group.PATCH("/:id", adminMiddleware, h.Moderate)
	group.DELETE("/:id", h.Delete)
}
