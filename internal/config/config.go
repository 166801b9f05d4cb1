package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/dvloznov/splitledger/internal/money"
)

// Config carries the run-wide settings: the base currency balances are
// expressed in and where the exchange-rate table comes from.
type Config struct {
	// BaseCurrency is the currency every balance and payment is expressed
	// in. Defaults to USD.
	BaseCurrency string

	// RatesFile is an optional path to a YAML exchange-rate table.
	RatesFile string
}

// Load reads configuration from the environment, loading .env first if one
// is present (non-fatal if missing).
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		BaseCurrency: strings.ToUpper(getEnvDefault("BASE_CURRENCY", "USD")),
		RatesFile:    os.Getenv("RATES_FILE"),
	}
	return cfg, nil
}

// Rates builds the conversion table: the optional YAML file first, then
// RATE_<CODE> environment variables on top as overrides.
func (c *Config) Rates() (money.Rates, error) {
	rates := money.NewRates(c.BaseCurrency)
	if c.RatesFile != "" {
		if err := loadRatesFile(c.RatesFile, &rates); err != nil {
			return rates, err
		}
	}
	if err := applyEnvRates(&rates); err != nil {
		return rates, err
	}
	return rates, nil
}

// ratesFile is the YAML shape of a rate table:
//
//	base: USD
//	rates:
//	  EUR: "1.0843"
//	  GBP: "1.2701"
//
// Rates are base units per one unit of the listed currency, kept as
// strings so they reach decimal arithmetic without a float detour.
type ratesFile struct {
	Base  string            `yaml:"base"`
	Rates map[string]string `yaml:"rates"`
}

func loadRatesFile(path string, rates *money.Rates) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("loadRatesFile: %w", err)
	}

	var rf ratesFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return fmt.Errorf("loadRatesFile: %s: %w", path, err)
	}

	if rf.Base != "" {
		rates.Base = strings.ToUpper(rf.Base)
	}
	for code, raw := range rf.Rates {
		rate, err := decimal.NewFromString(raw)
		if err != nil {
			return fmt.Errorf("loadRatesFile: rate for %s: %w", code, err)
		}
		rates.Table[strings.ToUpper(code)] = rate
	}
	return nil
}

// applyEnvRates overlays RATE_<CODE> variables, e.g. RATE_EUR=1.0843.
func applyEnvRates(rates *money.Rates) error {
	for _, kv := range os.Environ() {
		key, value, _ := strings.Cut(kv, "=")
		code, ok := strings.CutPrefix(key, "RATE_")
		if !ok || code == "" {
			continue
		}
		rate, err := decimal.NewFromString(value)
		if err != nil {
			return fmt.Errorf("applyEnvRates: %s: %w", key, err)
		}
		rates.Table[strings.ToUpper(code)] = rate
	}
	return nil
}

func getEnvDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
