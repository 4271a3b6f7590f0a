// Package config loads the trading session configuration: the account
// owner, the starting cash balance and the instrument catalog.
package config

import (
	"flag"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/papertrader/internal/domain"
	"gopkg.in/yaml.v3"
)

// GeneratedFile is where the setup wizard writes its configuration.
const GeneratedFile = "config.gen.yaml"

// Config is the resolved session configuration.
type Config struct {
	Owner       string
	Balance     decimal.Decimal
	Instruments []domain.Instrument
}

// FileConfig mirrors Config in the yaml file. Monetary values are strings
// so they survive the round trip without float precision loss.
type FileConfig struct {
	Owner       string             `yaml:"owner"`
	Balance     string             `yaml:"balance"`
	Instruments []InstrumentConfig `yaml:"instruments"`
}

// InstrumentConfig is one catalog entry in the yaml file.
type InstrumentConfig struct {
	Symbol string `yaml:"symbol"`
	Name   string `yaml:"name"`
	Price  string `yaml:"price"`
}

// Default returns the built-in configuration: the fixed four-stock catalog
// and the stock account of the original platform.
func Default() Config {
	return Config{
		Owner:   "Hasini",
		Balance: decimal.RequireFromString("10000.00"),
		Instruments: []domain.Instrument{
			{Symbol: "AAPL", Name: "Apple Inc.", Price: decimal.RequireFromString("175.20")},
			{Symbol: "GOOGL", Name: "Alphabet Inc.", Price: decimal.RequireFromString("2820.10")},
			{Symbol: "MSFT", Name: "Microsoft Corp.", Price: decimal.RequireFromString("348.15")},
			{Symbol: "TSLA", Name: "Tesla Inc.", Price: decimal.RequireFromString("920.00")},
		},
	}
}

// Get resolves the configuration from the --config flag, falling back to
// the built-in defaults when no file is given.
func Get() (Config, error) {
	path := flag.String("config", "", "path to yaml config")
	flag.Parse()
	if *path == "" {
		return Default(), nil
	}
	return Load(*path)
}

// Load reads and validates a yaml configuration file. Fields left empty in
// the file keep their default values.
func Load(path string) (Config, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config file")
	}

	var fc FileConfig
	if err := yaml.Unmarshal(payload, &fc); err != nil {
		return Config{}, errors.Wrap(err, "decode config file")
	}

	return fromFileConfig(fc)
}

func fromFileConfig(fc FileConfig) (Config, error) {
	cfg := Default()

	if owner := strings.TrimSpace(fc.Owner); owner != "" {
		cfg.Owner = owner
	}

	if fc.Balance != "" {
		balance, err := decimal.NewFromString(fc.Balance)
		if err != nil {
			return Config{}, errors.Wrapf(err, "incorrect 'balance' param in yaml config: %s", fc.Balance)
		}
		if balance.IsNegative() {
			return Config{}, errors.Errorf("'balance' must not be negative, got %s", fc.Balance)
		}
		cfg.Balance = balance
	}

	if len(fc.Instruments) > 0 {
		instruments := make([]domain.Instrument, 0, len(fc.Instruments))
		seen := make(map[string]struct{}, len(fc.Instruments))
		for _, ic := range fc.Instruments {
			symbol := strings.ToUpper(strings.TrimSpace(ic.Symbol))
			if symbol == "" {
				return Config{}, errors.New("instrument with empty 'symbol' in yaml config")
			}
			if _, ok := seen[symbol]; ok {
				return Config{}, errors.Errorf("duplicate instrument symbol in yaml config: %s", symbol)
			}
			seen[symbol] = struct{}{}

			price, err := decimal.NewFromString(ic.Price)
			if err != nil {
				return Config{}, errors.Wrapf(err, "incorrect 'price' param for instrument %s", symbol)
			}
			if price.IsNegative() {
				return Config{}, errors.Errorf("'price' for instrument %s must not be negative, got %s", symbol, ic.Price)
			}

			instruments = append(instruments, domain.Instrument{
				Symbol: symbol,
				Name:   strings.TrimSpace(ic.Name),
				Price:  price,
			})
		}
		cfg.Instruments = instruments
	}

	return cfg, nil
}
