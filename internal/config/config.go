package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Config represents the top-level caixa.yaml configuration.
type Config struct {
	Bank   BankConfig   `yaml:"bank"`
	Limits LimitsConfig `yaml:"limits"`
	Ledger LedgerConfig `yaml:"ledger"`
}

// BankConfig identifies the branch every account belongs to.
type BankConfig struct {
	Branch string `yaml:"branch"`
}

// LimitsConfig holds the checking-account defaults.
type LimitsConfig struct {
	PerWithdrawal    string `yaml:"per_withdrawal"` // decimal amount
	DailyWithdrawals int    `yaml:"daily_withdrawals"`
}

// LedgerConfig controls ledger entry ID generation.
type LedgerConfig struct {
	NodeID int64 `yaml:"node_id"`
}

// PerWithdrawalLimit parses the configured per-withdrawal amount.
func (c *Config) PerWithdrawalLimit() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(c.Limits.PerWithdrawal)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing per_withdrawal %q: %w", c.Limits.PerWithdrawal, err)
	}
	return d, nil
}

// Load reads a caixa.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with the standard single-branch defaults.
func Default() *Config {
	return &Config{
		Bank: BankConfig{Branch: "0001"},
		Limits: LimitsConfig{
			PerWithdrawal:    "1000",
			DailyWithdrawals: 3,
		},
		Ledger: LedgerConfig{NodeID: 1},
	}
}
