package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/srad-secure/srad-backend-go/internal/domain/settings"
)

type Config struct {
	App    AppConfig
	JWT    JWTConfig
	Auth   AuthConfig
	Engine settings.Config
	Jobs   JobsConfig
	CORS   CORSConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
	// SeedFixtures loads the demo roster, posts and absences at startup.
	SeedFixtures bool
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AuthConfig holds the console login stub settings
type AuthConfig struct {
	DemoPassword string
	BcryptCost   int
}

// JobsConfig holds background sweep intervals
type JobsConfig struct {
	DocumentComplianceInterval time.Duration
	AbsenceSLAInterval         time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}
	seed, err := strconv.ParseBool(getEnv("SEED_FIXTURES", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_FIXTURES: %w", err)
	}

	config.App = AppConfig{
		Port:         appPort,
		Env:          getEnv("APP_ENV", "development"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		SeedFixtures: seed,
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "8h"),
	}

	// Login stub
	bcryptCost, err := strconv.Atoi(getEnv("BCRYPT_COST", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
	}
	config.Auth = AuthConfig{
		DemoPassword: getEnv("DEMO_PASSWORD", "srad2026"),
		BcryptCost:   bcryptCost,
	}

	// Engine defaults, tunable at runtime through the settings API
	engine, err := loadEngine()
	if err != nil {
		return nil, err
	}
	config.Engine = engine

	// Background jobs
	complianceInterval, err := time.ParseDuration(getEnv("JOB_DOCUMENT_COMPLIANCE_INTERVAL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JOB_DOCUMENT_COMPLIANCE_INTERVAL: %w", err)
	}
	slaInterval, err := time.ParseDuration(getEnv("JOB_ABSENCE_SLA_INTERVAL", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid JOB_ABSENCE_SLA_INTERVAL: %w", err)
	}
	config.Jobs = JobsConfig{
		DocumentComplianceInterval: complianceInterval,
		AbsenceSLAInterval:         slaInterval,
	}

	config.CORS = CORSConfig{
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// engineEnv maps each tunable to its environment variable.
var engineEnv = []struct {
	key   string
	param settings.Param
}{
	{"ENGINE_MAX_TRAVEL_MINUTES", settings.ParamMaxTravelMinutes},
	{"ENGINE_MONTHLY_OVERTIME_CEILING", settings.ParamMonthlyOvertimeCeiling},
	{"ENGINE_FATIGUE_WEIGHT", settings.ParamFatigueWeight},
	{"ENGINE_NIGHT_FATIGUE_WEIGHT", settings.ParamNightFatigueWeight},
	{"ENGINE_MIN_REST_HOURS", settings.ParamMinRestHours},
	{"ENGINE_RESPONSE_SLA_MINUTES", settings.ParamResponseSLAMinutes},
	{"ENGINE_WEIGHT_COMPLIANCE", settings.ParamWeightCompliance},
	{"ENGINE_WEIGHT_REGION_MATCH", settings.ParamWeightRegionMatch},
	{"ENGINE_WEIGHT_OVERTIME_HEADROOM", settings.ParamWeightOvertimeHeadroom},
	{"ENGINE_WEIGHT_FATIGUE", settings.ParamWeightFatigue},
	{"ENGINE_WEIGHT_NIGHT_APTITUDE", settings.ParamWeightNightAptitude},
}

func loadEngine() (settings.Config, error) {
	cfg := settings.DefaultConfig()
	for _, e := range engineEnv {
		raw := os.Getenv(e.key)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s: %w", e.key, err)
		}
		if err := cfg.Set(e.param, v); err != nil {
			return cfg, fmt.Errorf("invalid %s: %w", e.key, err)
		}
	}
	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}
	if c.Auth.DemoPassword == "" {
		return fmt.Errorf("DEMO_PASSWORD is required")
	}
	if c.Engine.MaxTravelMinutes <= 0 {
		return fmt.Errorf("ENGINE_MAX_TRAVEL_MINUTES must be positive")
	}
	if c.Engine.ResponseSLAMinutes <= 0 {
		return fmt.Errorf("ENGINE_RESPONSE_SLA_MINUTES must be positive")
	}
	if c.Jobs.DocumentComplianceInterval <= 0 || c.Jobs.AbsenceSLAInterval <= 0 {
		return fmt.Errorf("job intervals must be positive")
	}
	return nil
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.App.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
