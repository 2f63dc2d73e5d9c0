package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	g.POST("/venues/:id/photo", authMiddleware, h.UploadVenuePhoto)
	g.GET("/media/*path", h.ServePhoto)
}
