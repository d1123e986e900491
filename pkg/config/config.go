package config

import (
	"fmt"
	"log"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const (
	defaultWithdrawalLimit = "500.00"
	defaultMaxWithdrawals  = 3
)

// Config holds application configuration.
type Config struct {
	LogLevel               slog.Level
	LogFormat              string // "text" or "json"
	IsProduction           bool
	DefaultWithdrawalLimit decimal.Decimal
	DefaultMaxWithdrawals  int
	CurrencySymbol         string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("LOG_LEVEL", "warn")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("DEFAULT_WITHDRAWAL_LIMIT", defaultWithdrawalLimit)
	v.SetDefault("DEFAULT_MAX_WITHDRAWALS", defaultMaxWithdrawals)
	v.SetDefault("CURRENCY_SYMBOL", "R$")

	// Actual environment variables override the defaults above.
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	levelStr := v.GetString("LOG_LEVEL")
	if err := cfg.LogLevel.UnmarshalText([]byte(levelStr)); err != nil {
		cfg.LogLevel = slog.LevelWarn
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to %s.\n", levelStr, cfg.LogLevel)
	}

	cfg.LogFormat = strings.ToLower(v.GetString("LOG_FORMAT"))
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		log.Printf("Warning: Invalid value for LOG_FORMAT ('%s'). Defaulting to text.\n", cfg.LogFormat)
		cfg.LogFormat = "text"
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")

	limitStr := v.GetString("DEFAULT_WITHDRAWAL_LIMIT")
	limit, err := decimal.NewFromString(limitStr)
	if err != nil || !limit.IsPositive() {
		limit = decimal.RequireFromString(defaultWithdrawalLimit)
		log.Printf("Warning: Invalid value for DEFAULT_WITHDRAWAL_LIMIT ('%s'). Defaulting to %s.\n", limitStr, defaultWithdrawalLimit)
	}
	cfg.DefaultWithdrawalLimit = limit

	cfg.DefaultMaxWithdrawals = v.GetInt("DEFAULT_MAX_WITHDRAWALS")
	if cfg.DefaultMaxWithdrawals <= 0 {
		log.Printf("Warning: Invalid value for DEFAULT_MAX_WITHDRAWALS ('%s'). Defaulting to %d.\n",
			v.GetString("DEFAULT_MAX_WITHDRAWALS"), defaultMaxWithdrawals)
		cfg.DefaultMaxWithdrawals = defaultMaxWithdrawals
	}

	cfg.CurrencySymbol = v.GetString("CURRENCY_SYMBOL")

	if cfg.IsProduction && cfg.LogLevel < slog.LevelInfo {
		return nil, fmt.Errorf("LOG_LEVEL %s is not allowed when IS_PRODUCTION is set", cfg.LogLevel)
	}

	return cfg, nil
}
