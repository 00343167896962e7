package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	RunMigrations  bool
	MigrationsPath string
	JWTSecret      string

	// Ledger engine
	SourceTimeout      time.Duration
	CurrencyMinorUnits int32
	StrictInvariants   bool

	// HTTP surface
	RateLimit          string
	CORSAllowedOrigins []string
}

const (
	defaultJWTSecret     = "a-very-secret-key-should-be-longer-and-random"
	defaultSourceTimeout = 5 * time.Second
)

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("RUN_MIGRATIONS", true)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("SOURCE_TIMEOUT", defaultSourceTimeout.String())
	viper.SetDefault("CURRENCY_MINOR_UNITS", 2)
	viper.SetDefault("RATE_LIMIT", "120-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	// Environment variables override defaults and .env values.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	sourceTimeoutStr := viper.GetString("SOURCE_TIMEOUT")
	sourceTimeout, err := time.ParseDuration(sourceTimeoutStr)
	if err != nil || sourceTimeout <= 0 {
		sourceTimeout = defaultSourceTimeout
		log.Printf("Warning: Invalid value for SOURCE_TIMEOUT ('%s'). Defaulting to %s.\n", sourceTimeoutStr, sourceTimeout.String())
	}
	cfg.SourceTimeout = sourceTimeout

	minorUnits := viper.GetInt("CURRENCY_MINOR_UNITS")
	if minorUnits < 0 || minorUnits > 8 {
		log.Printf("Warning: Invalid value for CURRENCY_MINOR_UNITS (%d). Defaulting to 2.\n", minorUnits)
		minorUnits = 2
	}
	cfg.CurrencyMinorUnits = int32(minorUnits)

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.RunMigrations = viper.GetBool("RUN_MIGRATIONS")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	// Invariant violations panic in development unless explicitly disabled.
	cfg.StrictInvariants = !cfg.IsProduction
	if viper.IsSet("STRICT_INVARIANTS") {
		cfg.StrictInvariants = viper.GetBool("STRICT_INVARIANTS")
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
