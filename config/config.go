package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Order taking specifics
	Store   StoreConfig
	Session SessionConfig
	Ticket  TicketConfig
	Kitchen KitchenConfig
	NLU     NLUConfig
	Gemini  GeminiConfig
	Chat    ChatConfig

	// Channels
	Telegram TelegramConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// StoreConfig points at the menu file (settings, catalog, prices).
type StoreConfig struct {
	MenuPath string
}

// SessionConfig selects and tunes the session store.
type SessionConfig struct {
	Backend     string // memory | redis
	TTLMinutes  int
	MaxSessions int
	RedisURL    string
}

type TicketConfig struct {
	Path string // JSONL ticket file
}

type KitchenConfig struct {
	Enabled bool
	NatsURL string
	Subject string
}

// NLUConfig selects the utterance interpreter.
type NLUConfig struct {
	Engine         string // rules | llm
	TimeoutSeconds int    // llm request deadline
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type ChatConfig struct {
	RateLimitPerMin int
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Store
	cfg.Store.MenuPath = viper.GetString("store.menu_path")
	if menuPath := viper.GetString("menu_path"); menuPath != "" {
		cfg.Store.MenuPath = menuPath
	}

	// Sessions
	cfg.Session.Backend = viper.GetString("session.backend")
	cfg.Session.TTLMinutes = viper.GetInt("session.ttl_minutes")
	cfg.Session.MaxSessions = viper.GetInt("session.max_sessions")
	cfg.Session.RedisURL = viper.GetString("session.redis_url")
	if redisURL := viper.GetString("redis_url"); redisURL != "" {
		cfg.Session.RedisURL = redisURL
	}

	// Tickets
	cfg.Ticket.Path = viper.GetString("ticket.path")

	// Kitchen bus
	cfg.Kitchen.Enabled = viper.GetBool("kitchen.enabled")
	cfg.Kitchen.NatsURL = viper.GetString("kitchen.nats_url")
	cfg.Kitchen.Subject = viper.GetString("kitchen.subject")
	if natsURL := viper.GetString("nats_url"); natsURL != "" {
		cfg.Kitchen.NatsURL = natsURL
	}

	// NLU engine
	cfg.NLU.Engine = viper.GetString("nlu.engine")
	cfg.NLU.TimeoutSeconds = viper.GetInt("nlu.timeout_seconds")
	switch cfg.NLU.Engine {
	case "rules", "llm":
	default:
		return nil, fmt.Errorf("invalid nlu.engine %q (want rules or llm)", cfg.NLU.Engine)
	}

	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" {
		cfg.Gemini.APIKey = geminiKey
	}
	if cfg.NLU.Engine == "llm" && cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("nlu.engine is llm but no gemini API key configured")
	}

	// Chat limits
	cfg.Chat.RateLimitPerMin = viper.GetInt("chat.rate_limit_per_min")

	// Telegram channel (optional)
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("store.menu_path", "./config/menu.yaml")
	viper.SetDefault("session.backend", "memory")
	viper.SetDefault("session.ttl_minutes", 30)
	viper.SetDefault("session.max_sessions", 10000)
	viper.SetDefault("ticket.path", "./data/tickets.jsonl")
	viper.SetDefault("kitchen.enabled", false)
	viper.SetDefault("kitchen.nats_url", "nats://localhost:4222")
	viper.SetDefault("kitchen.subject", "kitchen.tickets")
	viper.SetDefault("nlu.engine", "rules")
	viper.SetDefault("nlu.timeout_seconds", 15)
	viper.SetDefault("chat.rate_limit_per_min", 60)
}
