package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	// Availability is public; anyone can browse open slots.
	g.GET("/courts/:id/slots", h.Slots)
	g.GET("/courts/:id/availability", h.Availability)

	// Venue owners (and admins) inspect their venue's schedule.
	g.GET("/venues/:id/bookings", authMiddleware, h.ListForVenue)

	group := g.Group("/bookings", authMiddleware)
	group.POST("", h.Create)
	group.GET("", h.ListMine)
	group.GET("/:id", h.Get)
	group.POST("/:id/cancel", h.Cancel)
	group.POST("/:id/complete", adminMiddleware, h.Complete)
}
