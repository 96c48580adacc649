package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Scheduler  SchedulerConfig  `yaml:"scheduler"`
	Pricing    PricingConfig    `yaml:"pricing"`
	Push       PushConfig       `yaml:"push"`
	WorkerPool WorkerPoolConfig `yaml:"worker_pool"`
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port            int     `yaml:"port"`
	RequestIPHeader string  `yaml:"request_ip_header"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	CacheTTLSeconds int     `yaml:"cache_ttl_seconds"`
}

// DatabaseConfig holds the database connection configuration.
type DatabaseConfig struct {
	DSN                    string `yaml:"dsn"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
}

// SchedulerConfig tunes the workflow scheduling engine.
type SchedulerConfig struct {
	DefaultDailyHours float64 `yaml:"default_daily_hours"`
	WorkdayStartHour  int     `yaml:"workday_start_hour"`
	TrackCapacity     bool    `yaml:"track_capacity"`
	// CapacityHoursPerDay is the default posted for manufacturers who do
	// not state their own.
	CapacityHoursPerDay float64 `yaml:"capacity_hours_per_day"`
}

// PricingConfig holds the pay estimator defaults.
type PricingConfig struct {
	MarketRatePerHour    float64 `yaml:"market_rate_per_hour"`
	StandardDeliveryDays int     `yaml:"standard_delivery_days"`
}

// PushConfig holds the VAPID keys for web push notifications.
type PushConfig struct {
	PublicKey  string `yaml:"vapid_public_key"`
	PrivateKey string `yaml:"vapid_private_key"`
	Subject    string `yaml:"subject"`
	TTL        int    `yaml:"ttl"`
}

// WorkerPoolConfig holds the configuration for the notification worker pool.
type WorkerPoolConfig struct {
	Size int `yaml:"size"`
}

// Load reads the configuration from the given path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	if cfg.Scheduler.DefaultDailyHours <= 0 {
		cfg.Scheduler.DefaultDailyHours = 8.0
	}
	if cfg.Scheduler.WorkdayStartHour <= 0 {
		cfg.Scheduler.WorkdayStartHour = 8
	}
	if cfg.Scheduler.CapacityHoursPerDay <= 0 {
		cfg.Scheduler.CapacityHoursPerDay = 16.0
	}

	if cfg.Pricing.MarketRatePerHour <= 0 {
		cfg.Pricing.MarketRatePerHour = 50.0
	}
	if cfg.Pricing.StandardDeliveryDays <= 0 {
		cfg.Pricing.StandardDeliveryDays = 7
	}

	if cfg.Push.TTL <= 0 {
		cfg.Push.TTL = 3600
	}

	if cfg.WorkerPool.Size <= 0 {
		log.Printf("worker_pool.size is not set or invalid; defaulting to 1")
		cfg.WorkerPool.Size = 1
	}

	return &cfg, nil
}
