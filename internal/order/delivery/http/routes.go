package http

import (
	"github.com/gin-gonic/gin"

	"restaurant-order-agent/internal/middleware"
)

// RegisterRoutes maps the order-taking endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.GET("/greeting", h.Greeting)
	rg.POST("/chat", mw.RateLimit(), h.Chat)
}
