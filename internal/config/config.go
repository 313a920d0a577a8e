package config

import (
	"fmt"
	"net"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Slot policies.
const (
	SlotPolicyLoose     = "loose"
	SlotPolicyExclusive = "exclusive"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`

	MigrationsPath    string        `envconfig:"MIGRATIONS_PATH" default:"migrations"`
	DBMaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	DBMaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	DBConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`

	RateLimitRPS   float64 `envconfig:"RATE_LIMIT_RPS" default:"20"`
	RateLimitBurst int     `envconfig:"RATE_LIMIT_BURST" default:"40"`

	// TrustedProxies lists the IPs or CIDRs allowed to set X-Forwarded-For.
	// Empty means the client ip is always the connection's peer address.
	TrustedProxies []string `envconfig:"TRUSTED_PROXIES"`

	SlotPolicy      string        `envconfig:"SLOT_POLICY" default:"loose"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	switch c.SlotPolicy {
	case SlotPolicyLoose, SlotPolicyExclusive:
	default:
		return fmt.Errorf("invalid SLOT_POLICY %q: must be %q or %q", c.SlotPolicy, SlotPolicyLoose, SlotPolicyExclusive)
	}

	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("rate limit must be positive (rps=%v, burst=%d)", c.RateLimitRPS, c.RateLimitBurst)
	}

	for _, proxy := range c.TrustedProxies {
		if net.ParseIP(proxy) != nil {
			continue
		}
		if _, _, err := net.ParseCIDR(proxy); err != nil {
			return fmt.Errorf("invalid TRUSTED_PROXIES entry %q", proxy)
		}
	}

	return nil
}

// ExclusiveSlots reports whether bookings must hold their slot exclusively.
func (c *Config) ExclusiveSlots() bool {
	return c.SlotPolicy == SlotPolicyExclusive
}
