package configs

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is built once at startup and handed to the constructors that need it.
type Config struct {
	Port string

	MongoURI     string
	DatabaseName string

	AccessTokenSecret string
	AccessTokenTTL    time.Duration

	PaymentProvider     string
	PaymentSecretKey    string
	PaymentCurrency     string
	MidtransProduction  bool
	PaymentTransactions bool

	// OpenRolePromotion drops the admin gate on PATCH /users/{admin,instructor}/:id.
	OpenRolePromotion bool

	CorsOrigins string

	RedisAddr       string
	RedisPassword   string
	RateLimitMax    int
	RateLimitWindow time.Duration

	ShutdownTimeout time.Duration
}

const (
	PaymentProviderStripe   = "stripe"
	PaymentProviderMidtrans = "midtrans"

	defaultAtlasHost = "flc.panjdap.mongodb.net"
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env file not found, using system environment")
	} else {
		log.Println("✅ .env file loaded")
	}

	cfg := &Config{
		Port:                GetEnv("PORT", "5000"),
		MongoURI:            GetEnv("MONGODB_URI"),
		DatabaseName:        GetEnv("DB_NAME", "flc_db"),
		AccessTokenSecret:   GetEnv("ACCESS_TOKEN_SECRET"),
		PaymentProvider:     strings.ToLower(GetEnv("PAYMENT_PROVIDER", PaymentProviderStripe)),
		PaymentSecretKey:    GetEnv("PAYMENT_SECRET_KEY"),
		PaymentCurrency:     strings.ToLower(GetEnv("PAYMENT_CURRENCY", "usd")),
		CorsOrigins:         GetEnv("CORS_ORIGINS", "*"),
		RedisAddr:           GetEnv("REDIS_ADDR"),
		RedisPassword:       GetEnv("REDIS_PASSWORD"),
		ShutdownTimeout:     5 * time.Second,
		PaymentTransactions: true,
	}

	var err error
	if cfg.AccessTokenTTL, err = durationEnv("ACCESS_TOKEN_TTL", 10*time.Hour); err != nil {
		return nil, err
	}
	if cfg.RateLimitWindow, err = durationEnv("RATE_LIMIT_WINDOW", time.Minute); err != nil {
		return nil, err
	}
	if cfg.RateLimitMax, err = intEnv("RATE_LIMIT_MAX", 100); err != nil {
		return nil, err
	}
	if cfg.MidtransProduction, err = boolEnv("MIDTRANS_PRODUCTION", false); err != nil {
		return nil, err
	}
	if cfg.PaymentTransactions, err = boolEnv("PAYMENT_TRANSACTIONS", true); err != nil {
		return nil, err
	}
	if cfg.OpenRolePromotion, err = boolEnv("OPEN_ROLE_PROMOTION", false); err != nil {
		return nil, err
	}

	if cfg.MongoURI == "" {
		cfg.MongoURI = atlasURI(GetEnv("DB_USER"), GetEnv("DB_PASS"), GetEnv("DB_HOST", defaultAtlasHost))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports settings the server cannot start without.
func (c *Config) Validate() error {
	if c.AccessTokenSecret == "" {
		return fmt.Errorf("ACCESS_TOKEN_SECRET is not set")
	}
	switch c.PaymentProvider {
	case PaymentProviderStripe, PaymentProviderMidtrans:
	default:
		return fmt.Errorf("unsupported PAYMENT_PROVIDER %q", c.PaymentProvider)
	}
	if c.PaymentSecretKey == "" {
		log.Println("❌ PAYMENT_SECRET_KEY is not set, payment intents will fail")
	}
	return nil
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || value == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func atlasURI(user, pass, host string) string {
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
		url.QueryEscape(user), url.QueryEscape(pass), host)
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := GetEnv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func intEnv(key string, def int) (int, error) {
	raw := GetEnv(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func boolEnv(key string, def bool) (bool, error) {
	raw := GetEnv(key)
	if raw == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
