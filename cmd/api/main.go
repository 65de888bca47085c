package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"restaurant-order-agent/config"
	"restaurant-order-agent/internal/catalog"
	"restaurant-order-agent/internal/httpserver"
	"restaurant-order-agent/internal/middleware"
	"restaurant-order-agent/internal/nlu"
	nluLLM "restaurant-order-agent/internal/nlu/llm"
	orderHTTP "restaurant-order-agent/internal/order/delivery/http"
	tgDelivery "restaurant-order-agent/internal/order/delivery/telegram"
	"restaurant-order-agent/internal/order/repository"
	sessionMemory "restaurant-order-agent/internal/order/repository/memory"
	sessionRedis "restaurant-order-agent/internal/order/repository/redis"
	orderUC "restaurant-order-agent/internal/order/usecase"
	"restaurant-order-agent/internal/ticket"
	ticketFile "restaurant-order-agent/internal/ticket/repository/file"
	ticketUC "restaurant-order-agent/internal/ticket/usecase"
	"restaurant-order-agent/pkg/gemini"
	"restaurant-order-agent/pkg/kitchen"
	"restaurant-order-agent/pkg/log"
	"restaurant-order-agent/pkg/telegram"
)

func main() {
	// .env is for local development only, ignore when absent
	_ = godotenv.Load()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Restaurant Order Agent...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Store: menu, settings and prices
	store, err := config.LoadStore(cfg.Store.MenuPath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to load menu: %v", err)
	}
	index := catalog.BuildIndex(store.Catalog)
	logger.Infof(ctx, "Loaded menu for %q: %d orderable items", store.Settings.Name, len(index))

	// 4. Utterance interpreter
	var interp nlu.Interpreter
	switch cfg.NLU.Engine {
	case "llm":
		geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
		if cfg.Gemini.Model != "" {
			geminiClient.SetModel(cfg.Gemini.Model)
		}
		llmInterp := nluLLM.New(logger, geminiClient, index, store.Settings)
		llmInterp.SetTimeout(time.Duration(cfg.NLU.TimeoutSeconds) * time.Second)
		interp = llmInterp
		logger.Infof(ctx, "NLU engine: llm (%s)", cfg.Gemini.Model)
	default:
		interp = nlu.NewRuleInterpreter(index, store.Settings)
		logger.Info(ctx, "NLU engine: rules")
	}

	// 5. Session store
	var sessions repository.SessionRepository
	ttl := time.Duration(cfg.Session.TTLMinutes) * time.Minute
	switch cfg.Session.Backend {
	case "redis":
		sessions, err = sessionRedis.New(cfg.Session.RedisURL, ttl)
		if err != nil {
			logger.Fatalf(ctx, "Failed to connect session store: %v", err)
		}
		logger.Info(ctx, "Session backend: redis")
	default:
		sessions = sessionMemory.New(ttl, cfg.Session.MaxSessions)
		logger.Info(ctx, "Session backend: memory")
	}

	// 6. Ticket store
	ticketRepo, err := ticketFile.New(cfg.Ticket.Path)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open ticket store %s: %v", cfg.Ticket.Path, err)
	}

	// 7. Kitchen bus (optional)
	var notifier ticket.KitchenNotifier
	if cfg.Kitchen.Enabled {
		pub, kErr := kitchen.New(kitchen.Config{
			URL:     cfg.Kitchen.NatsURL,
			Subject: cfg.Kitchen.Subject,
			Name:    httpserver.ServiceName,
		})
		if kErr != nil {
			logger.Warnf(ctx, "Kitchen bus not available (optional): %v", kErr)
		} else {
			defer pub.Close()
			notifier = ticket.NewNATSNotifier(pub)
			logger.Infof(ctx, "Kitchen bus connected, publishing to %s", cfg.Kitchen.Subject)
		}
	}

	// 8. UseCases
	tUC := ticketUC.New(logger, store, ticketRepo, notifier)
	oUC := orderUC.New(logger, sessions, interp, tUC, store, index)

	// 9. HTTP delivery
	orderHandler := orderHTTP.New(logger, oUC)
	mw := middleware.New(logger, cfg.Chat.RateLimitPerMin)

	// 10. Telegram channel (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, oUC, bot)

		if cfg.Telegram.WebhookURL != "" {
			if whErr := bot.SetWebhook(cfg.Telegram.WebhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
			}
		}
	} else {
		logger.Info(ctx, "Telegram channel disabled: no bot token configured")
	}

	// 11. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		OrderHandler:    orderHandler,
		Middleware:      mw,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 12. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
