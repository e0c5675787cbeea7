// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"talent-quote/core/discount"
	"talent-quote/core/types"
	"talent-quote/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Pricing contains the pricing parameters
	Pricing PricingConfig `json:"pricing"`

	// Catalog contains catalog source configuration
	Catalog CatalogConfig `json:"catalog"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// PricingConfig contains the business rules as configuration.
// The volume threshold and the rate/discount percentages are inputs,
// not hardcoded logic, so they can evolve without code changes.
type PricingConfig struct {
	// Currency is the quoting currency
	Currency types.Currency `json:"currency"`

	// AnnualizationFactor converts monthly compensation to annual
	// (number of pay periods per year).
	AnnualizationFactor decimal.Decimal `json:"annualization_factor"`

	// MultiPositionThreshold is the position count at which the
	// multi-position rate tier applies.
	MultiPositionThreshold int `json:"multi_position_threshold"`

	// RetainerFraction is the upfront retainer share of a
	// percentage-priced modality's cost.
	RetainerFraction decimal.Decimal `json:"retainer_fraction"`

	// Rates maps each percentage-priced modality to its fractions
	Rates map[types.Modality]discount.Fractions `json:"rates"`
}

// CatalogConfig contains catalog source settings
type CatalogConfig struct {
	// Path is the HCL catalog file; empty uses the built-in catalog
	Path string `json:"path,omitempty"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format"`

	// ShowMilestones shows the billing schedule per modality
	ShowMilestones bool `json:"show_milestones"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Pricing: PricingConfig{
			Currency:               types.CurrencyUSD,
			AnnualizationFactor:    decimal.NewFromInt(12),
			MultiPositionThreshold: 2,
			RetainerFraction:       decimal.NewFromFloat(0.25),
			Rates: map[types.Modality]discount.Fractions{
				types.ModalityHybrid: {
					Single: decimal.NewFromFloat(0.14),
					Multi:  decimal.NewFromFloat(0.12),
				},
				types.ModalityHuman: {
					Single: decimal.NewFromFloat(0.20),
					Multi:  decimal.NewFromFloat(0.18),
				},
			},
		},
		Output: OutputConfig{
			DefaultFormat:  "cli",
			ShowMilestones: true,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
