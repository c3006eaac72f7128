package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"preloved-backend/internal/domain"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	Env           string
	LogLevel      string
	AllowedOrigin string

	// Pricing policy
	FreeShippingThreshold domain.Money
	ShippingFee           domain.Money

	// Session state
	SessionTTL             time.Duration
	SessionCleanupInterval time.Duration

	// Cache
	CacheListingTTL time.Duration

	// Business Rules
	MaxCartQuantity int

	// Identity stub: the user assumed when the client sends no X-User-ID.
	// A real identity collaborator replaces this.
	DefaultUserID string

	// Rate limiting
	RateLimitPerSecond float64
	RateLimitBurst     int
}

func LoadConfig() *Config {
	// 1. Check if a specific config file is requested via env var
	configFile := os.Getenv("CONFIG_FILE")
	if configFile != "" {
		if err := godotenv.Load(configFile); err != nil {
			log.Printf("Warning: Failed to load config file '%s': %v", configFile, err)
		} else {
			log.Printf("Loaded configuration from %s", configFile)
		}
	} else {
		// 2. Default fallback: .env for local dev. In docker/prod envs .env
		// usually does not exist and system env vars are used instead.
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found or error loading it, relying on system env vars")
		}
	}

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),

		// Shipping defaults: fee waived above 50.00, otherwise 5.99
		FreeShippingThreshold: getMoneyEnv("FREE_SHIPPING_THRESHOLD", domain.Money(5000)),
		ShippingFee:           getMoneyEnv("SHIPPING_FEE", domain.Money(599)),

		// Session defaults: 30m idle TTL, cleanup sweep every 10m
		SessionTTL:             getDurationEnv("SESSION_TTL", 30*time.Minute),
		SessionCleanupInterval: getDurationEnv("SESSION_CLEANUP_INTERVAL", 10*time.Minute),

		CacheListingTTL: getDurationEnv("CACHE_LISTING_TTL", 10*time.Minute),

		// Business rules: 1000 max cart quantity per request
		MaxCartQuantity: getIntEnv("MAX_CART_QUANTITY", 1000),

		DefaultUserID: getEnv("DEFAULT_USER_ID", "user1"),

		RateLimitPerSecond: getFloatEnv("RATE_LIMIT_PER_SECOND", 50),
		RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 100),
	}

	cfg.Validate()
	return cfg
}

func (c *Config) Validate() {
	if c.ShippingFee < 0 {
		log.Fatal("CRITICAL: SHIPPING_FEE must not be negative")
	}
	if c.MaxCartQuantity < 1 {
		log.Fatal("CRITICAL: MAX_CART_QUANTITY must be at least 1")
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Invalid duration for %s, using fallback", key)
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
		log.Printf("Invalid int for %s, using fallback", key)
	}
	return fallback
}
