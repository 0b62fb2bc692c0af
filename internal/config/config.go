// Package config loads table and session settings from HCL files.
package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete game configuration
type Config struct {
	Table   *TableSettings   `hcl:"table,block"`
	Equity  *EquitySettings  `hcl:"equity,block"`
	Session *SessionSettings `hcl:"session,block"`
}

// TableSettings defines the table a hand is played at
type TableSettings struct {
	SmallBlind    int `hcl:"small_blind,optional"`
	BigBlind      int `hcl:"big_blind,optional"`
	StartingStack int `hcl:"starting_stack,optional"`
	Players       int `hcl:"players,optional"`
}

// EquitySettings controls the hand strength estimate shown at each decision
type EquitySettings struct {
	Samples int `hcl:"samples,optional"`
	Workers int `hcl:"workers,optional"`
}

// SessionSettings contains per-run settings
type SessionSettings struct {
	Seed     int64  `hcl:"seed,optional"` // 0 picks a random seed
	LogLevel string `hcl:"log_level,optional"`
}

// MaxPlayers is the most players a 52 card deck can deal to with burns.
const MaxPlayers = 22

// Default returns the default configuration: three players, 200/400 blinds,
// 10000 chip stacks and 1000 equity samples.
func Default() *Config {
	return &Config{
		Table: &TableSettings{
			SmallBlind:    200,
			BigBlind:      400,
			StartingStack: 10000,
			Players:       3,
		},
		Equity: &EquitySettings{
			Samples: 1000,
			Workers: 0, // one per CPU
		},
		Session: &SessionSettings{
			LogLevel: "warn",
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults, and settings left out of the file keep their default values.
func Load(filename string) (*Config, error) {
	// Check if file exists
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

// applyDefaults fills missing blocks and zero values from Default.
func (c *Config) applyDefaults() {
	defaults := Default()

	if c.Table == nil {
		c.Table = defaults.Table
	}
	if c.Table.SmallBlind == 0 {
		c.Table.SmallBlind = defaults.Table.SmallBlind
	}
	if c.Table.BigBlind == 0 {
		c.Table.BigBlind = defaults.Table.BigBlind
	}
	if c.Table.StartingStack == 0 {
		c.Table.StartingStack = defaults.Table.StartingStack
	}
	if c.Table.Players == 0 {
		c.Table.Players = defaults.Table.Players
	}

	if c.Equity == nil {
		c.Equity = defaults.Equity
	}
	if c.Equity.Samples == 0 {
		c.Equity.Samples = defaults.Equity.Samples
	}

	if c.Session == nil {
		c.Session = defaults.Session
	}
	if c.Session.LogLevel == "" {
		c.Session.LogLevel = defaults.Session.LogLevel
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	t := c.Table
	if t.SmallBlind <= 0 {
		return fmt.Errorf("small blind must be positive")
	}
	if t.BigBlind < t.SmallBlind {
		return fmt.Errorf("big blind (%d) must be at least the small blind (%d)", t.BigBlind, t.SmallBlind)
	}
	if t.StartingStack < t.BigBlind {
		return fmt.Errorf("starting stack (%d) must cover the big blind (%d)", t.StartingStack, t.BigBlind)
	}
	if t.Players < 2 || t.Players > MaxPlayers {
		return fmt.Errorf("players must be between 2 and %d, got %d", MaxPlayers, t.Players)
	}

	if c.Equity.Samples <= 0 {
		return fmt.Errorf("equity samples must be positive")
	}
	if c.Equity.Workers < 0 {
		return fmt.Errorf("equity workers cannot be negative")
	}

	if _, err := log.ParseLevel(c.Session.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Session.LogLevel, err)
	}
	return nil
}
