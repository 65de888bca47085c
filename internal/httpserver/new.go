package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"restaurant-order-agent/internal/middleware"
	orderHTTP "restaurant-order-agent/internal/order/delivery/http"
	tgDelivery "restaurant-order-agent/internal/order/delivery/telegram"
	"restaurant-order-agent/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Order domain
	orderHandler orderHTTP.Handler
	middleware   middleware.Middleware

	// Telegram channel (optional)
	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	OrderHandler orderHTTP.Handler
	Middleware   middleware.Middleware

	TelegramHandler tgDelivery.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		orderHandler:    cfg.OrderHandler,
		middleware:      cfg.Middleware,
		telegramHandler: cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.orderHandler == nil {
		return errors.New("order handler is required")
	}
	return nil
}
