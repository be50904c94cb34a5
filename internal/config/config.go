package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Remote reasoning providers for the chat assistant
const (
	ChatRemoteBackend = "backend"
	ChatRemoteGemini  = "gemini"
	ChatRemoteNone    = "none"
)

type Config struct {
	Server    ServerConfig
	Backend   BackendConfig
	Chat      ChatConfig
	Dashboard DashboardConfig
	Security  SecurityConfig
	Display   DisplayConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	LogLevel         string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
}

type BackendConfig struct {
	BaseURL             string
	Timeout             time.Duration
	UserID              int
	BreakerMaxFailures  int
	BreakerResetTimeout time.Duration
}

type ChatConfig struct {
	Remote        string
	RemoteTimeout time.Duration
	GeminiAPIKey  string
	GeminiModel   string
	SessionTTL    time.Duration
}

type DashboardConfig struct {
	CategoryPeriod int
	FetchTimeout   time.Duration
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

type DisplayConfig struct {
	CurrencySymbol string
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			LogLevel:        getEnv("LOG_LEVEL", "info"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Backend: BackendConfig{
			BaseURL:             strings.TrimRight(getEnv("BACKEND_BASE_URL", "http://localhost:5000"), "/"),
			Timeout:             getDurationEnv("BACKEND_TIMEOUT", 10*time.Second),
			UserID:              getIntEnv("BACKEND_USER_ID", 1),
			BreakerMaxFailures:  getIntEnv("BACKEND_BREAKER_MAX_FAILURES", 5),
			BreakerResetTimeout: getDurationEnv("BACKEND_BREAKER_RESET_TIMEOUT", 30*time.Second),
		},
		Chat: ChatConfig{
			Remote:        strings.ToLower(getEnv("CHAT_REMOTE", ChatRemoteBackend)),
			RemoteTimeout: getDurationEnv("CHAT_REMOTE_TIMEOUT", 20*time.Second),
			GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
			GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			SessionTTL:    getDurationEnv("CHAT_SESSION_TTL", 2*time.Hour),
		},
		Dashboard: DashboardConfig{
			CategoryPeriod: getIntEnv("DASHBOARD_CATEGORY_PERIOD", 30),
			FetchTimeout:   getDurationEnv("DASHBOARD_FETCH_TIMEOUT", 8*time.Second),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 10),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 20),
		},
		Display: DisplayConfig{
			CurrencySymbol: getEnv("CURRENCY_SYMBOL", "£"),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	return config
}

// Validate checks the configuration and reports every problem at once
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Server.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Server.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if parsed, err := url.Parse(c.Backend.BaseURL); err != nil {
		problems = append(problems, fmt.Sprintf("invalid backend URL '%s': %v", c.Backend.BaseURL, err))
	} else if parsed.Scheme != "http" && parsed.Scheme != "https" {
		problems = append(problems, fmt.Sprintf("invalid backend URL scheme '%s': must be 'http' or 'https'", parsed.Scheme))
	}

	if c.Backend.Timeout <= 0 {
		problems = append(problems, "backend timeout must be positive")
	}

	if c.Backend.BreakerMaxFailures < 1 {
		problems = append(problems, "backend breaker max failures must be at least 1")
	}

	switch c.Chat.Remote {
	case ChatRemoteBackend, ChatRemoteNone:
	case ChatRemoteGemini:
		if c.Chat.GeminiAPIKey == "" {
			problems = append(problems, "GEMINI_API_KEY is required when CHAT_REMOTE is 'gemini'")
		}
	default:
		problems = append(problems, fmt.Sprintf("invalid chat remote '%s': must be one of backend, gemini, none", c.Chat.Remote))
	}

	if !isValidPeriod(c.Dashboard.CategoryPeriod) {
		problems = append(problems, fmt.Sprintf("invalid dashboard category period %d: must be 7, 30, 90 or 365", c.Dashboard.CategoryPeriod))
	}

	if c.Security.RateLimitPerSecond < 1 || c.Security.RateLimitBurst < 1 {
		problems = append(problems, "rate limit and burst must be at least 1")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Server.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c *Config) Address() string {
	return c.Server.Host + ":" + c.Server.Port
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func isValidPeriod(days int) bool {
	switch days {
	case 7, 30, 90, 365:
		return true
	default:
		return false
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			slog.Warn("CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*'")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	return origins
}
