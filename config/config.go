package config

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Storage. STORE_BACKEND is "mongo" or "memory".
	StoreBackend string `mapstructure:"STORE_BACKEND"`
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration. An empty address disables idempotency caching
	// and the confirmation queue.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Booking engine.
	AvailabilityStart     string `mapstructure:"AVAILABILITY_START"`
	AvailabilityEnd       string `mapstructure:"AVAILABILITY_END"`
	BookingMaxAttempts    int    `mapstructure:"BOOKING_MAX_ATTEMPTS"`
	IdempotencyTTLMinutes int    `mapstructure:"IDEMPOTENCY_TTL_MINUTES"`
}

var AppConfig Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("STORE_BACKEND", "mongo")
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "rentify")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_CACHE_DB", 0)
	v.SetDefault("REDIS_QUEUE_DB", 1)
	v.SetDefault("AVAILABILITY_START", "2024-01-01")
	v.SetDefault("AVAILABILITY_END", "2026-01-01")
	v.SetDefault("BOOKING_MAX_ATTEMPTS", 3)
	v.SetDefault("IDEMPOTENCY_TTL_MINUTES", 24*60)
}

// Load reads config.yaml from "." or "./config" and the environment into a Config.
func Load(v *viper.Viper) (Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	// Automatically use environment variables where available.
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig fills AppConfig or exits the process.
func LoadConfig() {
	cfg, err := Load(viper.New())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

// Validate rejects settings the booking engine cannot run with.
func (c Config) Validate() error {
	switch c.StoreBackend {
	case "mongo", "memory":
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend)
	}
	if c.BookingMaxAttempts < 1 {
		return fmt.Errorf("BOOKING_MAX_ATTEMPTS must be at least 1, got %d", c.BookingMaxAttempts)
	}
	start, end, err := c.AvailabilityWindow()
	if err != nil {
		return err
	}
	if end.Before(start) {
		return fmt.Errorf("AVAILABILITY_END %s is before AVAILABILITY_START %s", c.AvailabilityEnd, c.AvailabilityStart)
	}
	return nil
}

// AvailabilityWindow parses the open range given to every new rental.
func (c Config) AvailabilityWindow() (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", c.AvailabilityStart)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid AVAILABILITY_START: %w", err)
	}
	end, err := time.Parse("2006-01-02", c.AvailabilityEnd)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid AVAILABILITY_END: %w", err)
	}
	return start, end, nil
}

// IdempotencyTTL is how long a replayed booking request returns the first result.
func (c Config) IdempotencyTTL() time.Duration {
	return time.Duration(c.IdempotencyTTLMinutes) * time.Minute
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
