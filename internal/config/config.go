package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Cheertaboi/shop-admin/pkg/db"
)

type Config struct {
	HTTP   HTTPConfig
	DB     db.PostgresConfig
	Auth   AuthConfig
	Coupon CouponConfig
	Kafka  KafkaConfig
	Jobs   JobsConfig
}

type HTTPConfig struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
	// AdminRoleID pins the admin role; when empty it is looked up by name.
	AdminRoleID string
}

type CouponConfig struct {
	EndOfDayGrace      bool
	RequireFutureStart bool
}

// KafkaConfig configures the audit event publisher. No brokers disables it.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type JobsConfig struct {
	// CouponExpirySpec is a robfig/cron spec; empty disables the sweep.
	CouponExpirySpec string
}

// Load reads .env (if any) and then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("config: no .env loaded: %v", err)
	}

	return Config{
		HTTP: HTTPConfig{
			Addr:         getEnv("HTTP_ADDR", ":8080"),
			ReadTimeout:  getEnvAsDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getEnvAsDuration("HTTP_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:  getEnvAsDuration("HTTP_IDLE_TIMEOUT", 60*time.Second),
		},
		DB: db.PostgresConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", ""),
			DBName:          getEnv("DB_NAME", "shop"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Auth: AuthConfig{
			JWTSecret:   getEnv("JWT_SECRET", ""),
			TokenTTL:    getEnvAsDuration("JWT_EXPIRES_IN", 24*time.Hour),
			AdminRoleID: getEnv("ADMIN_ROLE_ID", ""),
		},
		Coupon: CouponConfig{
			EndOfDayGrace:      getEnvAsBool("COUPON_END_OF_DAY_GRACE", true),
			RequireFutureStart: getEnvAsBool("COUPON_REQUIRE_FUTURE_START", true),
		},
		Kafka: KafkaConfig{
			Brokers: getEnvAsList("KAFKA_BROKERS"),
			Topic:   getEnv("KAFKA_TOPIC", "admin-events"),
		},
		Jobs: JobsConfig{
			CouponExpirySpec: getEnv("COUPON_EXPIRY_SPEC", "@midnight"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		// bare numbers are minutes
		if minutes, err := strconv.Atoi(value); err == nil {
			return time.Duration(minutes) * time.Minute
		}
	}
	return defaultValue
}

func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
