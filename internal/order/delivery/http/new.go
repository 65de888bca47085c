package http

import (
	"github.com/gin-gonic/gin"

	"restaurant-order-agent/internal/order"
	"restaurant-order-agent/pkg/log"
)

// Handler is the public interface for the order HTTP delivery layer.
type Handler interface {
	Greeting(c *gin.Context)
	Chat(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc order.UseCase
}

// New creates a new HTTP handler for the order domain.
func New(l log.Logger, uc order.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
