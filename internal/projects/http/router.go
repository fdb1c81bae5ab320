package http

import "github.com/gin-gonic/gin"

// Register attaches project routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/", h.create)
	rg.GET("/", h.list)
	rg.GET("/:project_id", h.get)
	rg.PUT("/:project_id", h.update)
	rg.DELETE("/:project_id", h.delete)
}
