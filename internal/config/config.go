// Package config centralises configuration parsing for the tracker services.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures runtime configuration values. Formula constants are not configurable.
type Config struct {
	HTTPAddress     string
	MetricsAddress  string
	KafkaBrokers    []string // Empty disables publishing.
	SummaryTopic    string
	PackageTopic    string
	ConsumerGroupID string
	AuthEnabled     bool
	JWTSecret       string
	JWTIssuer       string
	ShutdownTimeout time.Duration
}

// Load reads environment variables into Config, applying defaults for local dev.
func Load() Config {
	return Config{
		HTTPAddress:     getEnv("HTTP_ADDRESS", ":8080"),
		MetricsAddress:  getEnv("METRICS_ADDRESS", ":9090"),
		KafkaBrokers:    splitAndTrim(getEnv("KAFKA_BROKERS", "")),
		SummaryTopic:    getEnv("SUMMARY_TOPIC", "workout_summaries"),
		PackageTopic:    getEnv("PACKAGE_TOPIC", "workout_packages"),
		ConsumerGroupID: getEnv("CONSUMER_GROUP_ID", "fittracker-summarizer"),
		AuthEnabled:     getBoolEnv("AUTH_ENABLED", false),
		JWTSecret:       getEnv("JWT_SECRET", "dev-secret-change-me"),
		JWTIssuer:       getEnv("JWT_ISSUER", "i5e.identity"),
		ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 15*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
