package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
)

const defaultDSN = "host=localhost port=5432 user=postgres password=postgres dbname=lending_db sslmode=disable"
const defaultChannelID = "CredApp"
const defaultChannelKey = "CredChannelKey001"
const defaultMinCreditAmount = "100.00"
const defaultMinPoolTarget = "1000.00"
const defaultOverdueSweepCron = "0 3 * * *"

type Config struct {
	DatabaseDSN      string
	MigrationsDir    string
	HTTPAddr         string
	LogLevel         string
	ChannelID        string
	ChannelKey       string
	MinCreditAmount  decimal.Decimal
	MinPoolTarget    decimal.Decimal
	OverdueSweepCron string
}

func Load() (Config, error) {
	minCredit, err := decimalEnv("MIN_CREDIT_AMOUNT", defaultMinCreditAmount)
	if err != nil {
		return Config{}, err
	}

	minPool, err := decimalEnv("MIN_POOL_TARGET", defaultMinPoolTarget)
	if err != nil {
		return Config{}, err
	}

	return Config{
		DatabaseDSN:      stringEnv("DATABASE_DSN", defaultDSN),
		MigrationsDir:    stringEnv("MIGRATIONS_DIR", filepath.Join("migrations")),
		HTTPAddr:         stringEnv("HTTP_ADDR", ":8080"),
		LogLevel:         stringEnv("LOG_LEVEL", "info"),
		ChannelID:        stringEnv("CHANNEL_ID", defaultChannelID),
		ChannelKey:       stringEnv("CHANNEL_KEY", defaultChannelKey),
		MinCreditAmount:  minCredit,
		MinPoolTarget:    minPool,
		OverdueSweepCron: stringEnv("OVERDUE_SWEEP_CRON", defaultOverdueSweepCron),
	}, nil
}

func stringEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func decimalEnv(key, fallback string) (decimal.Decimal, error) {
	raw := stringEnv(key, fallback)
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%s must be numeric: %w", key, err)
	}
	if value.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%s cannot be negative", key)
	}
	return value, nil
}
