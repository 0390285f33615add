package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates application configuration values.
type Config struct {
	HTTP    HTTPConfig
	Pricing PricingConfig
	Client  ClientConfig
	DB      DBConfig
	Redis   RedisConfig
	Auth    AuthConfig
	Logging LoggingConfig
}

type HTTPConfig struct {
	Port         string
	AllowOrigins string
}

// PricingConfig holds the constant tables used while pricing a payment.
type PricingConfig struct {
	CurrencyRate     float64
	RefundFeePercent float64
	FraudLimit       float64
	LightRiskLimit   float64
	HeavyRiskLimit   float64
}

// ClientConfig selects the API client that receives posted records.
type ClientConfig struct {
	Kind           string // log|http|stripe|ledger
	BaseURL        string
	Timeout        time.Duration
	APIKey         string
	StripeKey      string
	FingerprintKey []byte // ledger card fingerprint key
}

type DBConfig struct {
	Host            string
	User            string
	Password        string
	Name            string
	Port            string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Host      string
	Port      string
	Password  string
	DB        int
	StreamKey string
	Analytics bool // publish analytics events to StreamKey
}

type AuthConfig struct {
	JWTSecret string
}

type LoggingConfig struct {
	Level  string
	Format string // text|json
}

// Client kinds
const (
	ClientLog    = "log"
	ClientHTTP   = "http"
	ClientStripe = "stripe"
	ClientLedger = "ledger"
)

// MinFingerprintKeyLen is the shortest card fingerprint key the ledger accepts.
const MinFingerprintKeyLen = 32

// Pricing defaults
const (
	DefaultCurrencyRate     = 1.2
	DefaultRefundFeePercent = 0.05
	DefaultFraudLimit       = 100
	DefaultLightRiskLimit   = 10
	DefaultHeavyRiskLimit   = 1000
)

// DefaultPricing returns the fixed pricing tables.
func DefaultPricing() PricingConfig {
	return PricingConfig{
		CurrencyRate:     DefaultCurrencyRate,
		RefundFeePercent: DefaultRefundFeePercent,
		FraudLimit:       DefaultFraudLimit,
		LightRiskLimit:   DefaultLightRiskLimit,
		HeavyRiskLimit:   DefaultHeavyRiskLimit,
	}
}

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		HTTP: HTTPConfig{
			Port:         GetEnv("PORT", "3000"),
			AllowOrigins: GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173"),
		},
		Pricing: PricingConfig{
			CurrencyRate:     GetFloatEnv("CURRENCY_RATE", DefaultCurrencyRate),
			RefundFeePercent: GetFloatEnv("REFUND_FEE_PERCENT", DefaultRefundFeePercent),
			FraudLimit:       GetFloatEnv("FRAUD_LIMIT", DefaultFraudLimit),
			LightRiskLimit:   GetFloatEnv("FRAUD_LIGHT_RISK_LIMIT", DefaultLightRiskLimit),
			HeavyRiskLimit:   GetFloatEnv("FRAUD_HEAVY_RISK_LIMIT", DefaultHeavyRiskLimit),
		},
		Client: ClientConfig{
			Kind:           GetEnv("API_CLIENT", ClientLog),
			BaseURL:        GetEnv("API_BASE_URL", ""),
			APIKey:         GetEnv("API_KEY", ""),
			StripeKey:      GetEnv("STRIPE_SECRET_KEY", ""),
			FingerprintKey: []byte(GetEnv("CARD_FINGERPRINT_KEY", "")),
		},
		DB: DBConfig{
			Host:         GetEnv("DB_HOST", "localhost"),
			User:         GetEnv("DB_USER", "postgres"),
			Password:     GetEnv("DB_PASSWORD", "postgres"),
			Name:         GetEnv("DB_NAME", "payproc"),
			Port:         GetEnv("DB_PORT", "5432"),
			MaxIdleConns: GetIntEnv("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns: GetIntEnv("DB_MAX_OPEN_CONNS", 100),
		},
		Redis: RedisConfig{
			Host:      GetEnv("REDIS_HOST", "localhost"),
			Port:      GetEnv("REDIS_PORT", "6379"),
			Password:  GetEnv("REDIS_PASSWORD", ""),
			DB:        GetIntEnv("REDIS_DB", 0),
			StreamKey: GetEnv("ANALYTICS_STREAM", "payments:analytics"),
			Analytics: GetEnv("ANALYTICS_SINK", "log") == "redis",
		},
		Auth: AuthConfig{
			JWTSecret: GetEnv("JWT_SECRET", ""),
		},
		Logging: LoggingConfig{
			Level:  GetEnv("LOG_LEVEL", "info"),
			Format: GetEnv("LOG_FORMAT", "text"),
		},
	}

	timeout, err := time.ParseDuration(GetEnv("API_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid API_TIMEOUT: %w", err)
	}
	cfg.Client.Timeout = timeout

	lifetime, err := time.ParseDuration(GetEnv("DB_CONN_MAX_LIFETIME", "1h"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid DB_CONN_MAX_LIFETIME: %w", err)
	}
	cfg.DB.ConnMaxLifetime = lifetime

	switch cfg.Client.Kind {
	case ClientLog:
	case ClientLedger:
		if len(cfg.Client.FingerprintKey) < MinFingerprintKeyLen {
			return Config{}, fmt.Errorf("CARD_FINGERPRINT_KEY must be at least %d bytes for the %s client", MinFingerprintKeyLen, ClientLedger)
		}
	case ClientHTTP:
		if cfg.Client.BaseURL == "" {
			return Config{}, fmt.Errorf("API_BASE_URL is required for the %s client", ClientHTTP)
		}
	case ClientStripe:
		if cfg.Client.StripeKey == "" {
			return Config{}, fmt.Errorf("STRIPE_SECRET_KEY is required for the %s client", ClientStripe)
		}
	default:
		return Config{}, fmt.Errorf("unknown API_CLIENT %q", cfg.Client.Kind)
	}

	if IsProduction() && cfg.Auth.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET must be set in production")
	}

	return cfg, nil
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetFloatEnv returns a float environment variable or a default value.
func GetFloatEnv(key string, defaultVal float64) float64 {
	if val, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

// IsProduction checks if the app runs in production mode.
func IsProduction() bool {
	return GetEnv("ENV", "development") == "production"
}

// DSN builds the postgres connection string.
func (c DBConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port + " sslmode=disable"
}
