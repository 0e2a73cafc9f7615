package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Mail provider selection values for MAIL_PROVIDER.
const (
	ProviderGmail    = "gmail"
	ProviderPostmark = "postmark"
	ProviderLog      = "log"
)

// Config holds all configuration for the application.
type Config struct {
	// App
	AppName     string
	SiteBaseURL string

	// Server
	ApiPort        string
	ServiceApiPort string

	// Mail transport
	MailProvider string // gmail | postmark | log; empty means auto-detect from credentials

	// Gmail OAuth relay
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRefreshToken string
	GoogleEmail        string

	// Postmark transactional API
	PostmarkServerToken  string
	PostmarkAccountToken string
	SenderEmail          string

	// Lead routing. BusinessEmail falls back to the verified sender address
	// when unset.
	BusinessEmail string

	// Redis (mock email capture in test mode)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Captcha
	CloudflareTurnstileSecretKey string
	CloudflareSiteVerifyURL      string
	JwtSecret                    string
	CaptchaTokenTTL              time.Duration

	// Rate Limiting
	RateLimitSoftBucketSize int
	RateLimitSoftRefillRate int // tokens per second
	RateLimitHardBucketSize int
	RateLimitHardRefillRate int // tokens per second
}

// MailSenderAddress returns the From address for the active provider.
func (c *Config) MailSenderAddress() string {
	if c.MailProvider == ProviderGmail || (c.MailProvider == "" && c.GoogleEmail != "") {
		return c.GoogleEmail
	}
	return c.SenderEmail
}

// BusinessRecipient returns the destination for business notifications,
// falling back to the verified sender address.
func (c *Config) BusinessRecipient() string {
	if c.BusinessEmail != "" {
		return c.BusinessEmail
	}
	return c.MailSenderAddress()
}

// Load configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file, ignoring errors if it doesn't exist
	godotenv.Load()

	cfg := &Config{}

	// Helper function to get env var or default
	getEnv := func(key, defaultValue string) string {
		if value, exists := os.LookupEnv(key); exists {
			return value
		}
		return defaultValue
	}

	cfg.AppName = getEnv("APP_NAME", "Mile High Interface")
	cfg.SiteBaseURL = getEnv("SITE_BASE_URL", "https://milehighinterface.com")
	cfg.ApiPort = getEnv("API_PORT", "8080")
	cfg.ServiceApiPort = getEnv("SERVICE_API_PORT", "12345")

	cfg.MailProvider = getEnv("MAIL_PROVIDER", "")
	switch cfg.MailProvider {
	case "", ProviderGmail, ProviderPostmark, ProviderLog:
	default:
		return nil, fmt.Errorf("invalid MAIL_PROVIDER: %q (expected gmail, postmark or log)", cfg.MailProvider)
	}

	cfg.GoogleClientID = getEnv("GOOGLE_CLIENT_ID", "")
	cfg.GoogleClientSecret = getEnv("GOOGLE_CLIENT_SECRET", "")
	cfg.GoogleRefreshToken = getEnv("GOOGLE_REFRESH_TOKEN", "")
	cfg.GoogleEmail = getEnv("GOOGLE_EMAIL", "")

	cfg.PostmarkServerToken = getEnv("POSTMARK_SERVER_TOKEN", "")
	cfg.PostmarkAccountToken = getEnv("POSTMARK_ACCOUNT_TOKEN", "")
	cfg.SenderEmail = getEnv("SENDER_EMAIL", "")

	cfg.BusinessEmail = getEnv("BUSINESS_EMAIL", "")

	cfg.RedisAddr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")

	cfg.CloudflareTurnstileSecretKey = getEnv("CLOUDFLARE_TURNSTILE_SECRET_KEY", "")
	cfg.CloudflareSiteVerifyURL = getEnv("CLOUDFLARE_SITEVERIFY_URL", "https://challenges.cloudflare.com/turnstile/v0/siteverify")
	cfg.JwtSecret = getEnv("JWT_SECRET", "")

	var err error

	cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	captchaTTLSeconds, err := strconv.ParseInt(getEnv("CAPTCHA_TOKEN_TTL", "1200"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid CAPTCHA_TOKEN_TTL: %w", err)
	}
	cfg.CaptchaTokenTTL = time.Duration(captchaTTLSeconds) * time.Second

	cfg.RateLimitSoftBucketSize, err = strconv.Atoi(getEnv("RATE_LIMIT_SOFT_BUCKET_SIZE", "2"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_SOFT_BUCKET_SIZE: %w", err)
	}
	cfg.RateLimitSoftRefillRate, err = strconv.Atoi(getEnv("RATE_LIMIT_SOFT_REFILL_RATE", "1"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_SOFT_REFILL_RATE: %w", err)
	}
	cfg.RateLimitHardBucketSize, err = strconv.Atoi(getEnv("RATE_LIMIT_HARD_BUCKET_SIZE", "8"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_HARD_BUCKET_SIZE: %w", err)
	}
	cfg.RateLimitHardRefillRate, err = strconv.Atoi(getEnv("RATE_LIMIT_HARD_REFILL_RATE", "4"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_HARD_REFILL_RATE: %w", err)
	}

	return cfg, nil
}
