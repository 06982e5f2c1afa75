package cmd

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RateServiceURL     string
	RateServiceTimeout time.Duration

	KafkaHost              string
	KafkaOrderChangedTopic string

	PromotionCacheTTL        time.Duration
	PromotionRefreshSchedule string

	LogLevel slog.Level
}

// ParseConfig builds a Config from a variable lookup such as os.Getenv.
// Missing optional values fall back to defaults; malformed durations and log
// levels are errors.
func ParseConfig(getenv func(string) string) (Config, error) {
	cfg := Config{
		HTTPPort:                 withDefault(getenv("HTTP_PORT"), "8080"),
		DBHost:                   getenv("DB_HOST"),
		DBPort:                   withDefault(getenv("DB_PORT"), "5432"),
		DBUser:                   getenv("DB_USER"),
		DBPassword:               getenv("DB_PASSWORD"),
		DBName:                   getenv("DB_NAME"),
		DBSslMode:                withDefault(getenv("DB_SSLMODE"), "disable"),
		RateServiceURL:           getenv("RATE_SERVICE_URL"),
		KafkaHost:                getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic:   withDefault(getenv("KAFKA_ORDER_CHANGED_TOPIC"), "order.changed"),
		PromotionRefreshSchedule: getenv("PROMOTION_REFRESH_SCHEDULE"),
	}

	var err error
	if cfg.RateServiceTimeout, err = parseDuration(getenv("RATE_SERVICE_TIMEOUT"), 2*time.Second); err != nil {
		return Config{}, fmt.Errorf("RATE_SERVICE_TIMEOUT: %w", err)
	}
	if cfg.PromotionCacheTTL, err = parseDuration(getenv("PROMOTION_CACHE_TTL"), 5*time.Minute); err != nil {
		return Config{}, fmt.Errorf("PROMOTION_CACHE_TTL: %w", err)
	}
	if lvl := getenv("LOG_LEVEL"); lvl != "" {
		if err = cfg.LogLevel.UnmarshalText([]byte(lvl)); err != nil {
			return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
		}
	}

	if cfg.DBHost == "" || cfg.DBName == "" {
		return Config{}, fmt.Errorf("DB_HOST and DB_NAME are required")
	}
	if cfg.RateServiceURL == "" {
		return Config{}, fmt.Errorf("RATE_SERVICE_URL is required")
	}
	return cfg, nil
}

// DSN is the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// KafkaBrokers splits KAFKA_HOST on commas. Empty means publishing is disabled.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func withDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func parseDuration(v string, def time.Duration) (time.Duration, error) {
	if v == "" {
		return def, nil
	}
	return time.ParseDuration(v)
}
