package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the optional blackjack.hcl file. Every block and attribute is
// optional; a missing file yields the defaults.
//
//	player {
//	  name = "Patrick"
//	}
//
//	game {
//	  dealer_delay_ms = 1000
//	  seed            = 42
//	}
//
//	log {
//	  level = "info"
//	  file  = "blackjack.log"
//	}
type Config struct {
	Player *PlayerSettings `hcl:"player,block"`
	Game   *GameSettings   `hcl:"game,block"`
	Log    *LogSettings    `hcl:"log,block"`
}

// PlayerSettings configures the human participant
type PlayerSettings struct {
	Name string `hcl:"name,optional"`
}

// GameSettings configures round behaviour. Seed zero means shuffle from the
// clock; the delay is the cosmetic pause between dealer draws.
type GameSettings struct {
	DealerDelayMs int   `hcl:"dealer_delay_ms,optional"`
	Seed          int64 `hcl:"seed,optional"`
}

// LogSettings configures the debug log file
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Player: &PlayerSettings{},
		Game: &GameSettings{
			DealerDelayMs: 1000,
		},
		Log: &LogSettings{
			Level: "info",
			File:  "blackjack.log",
		},
	}
}

// Load loads configuration from an HCL file. A missing file is not an
// error; defaults are returned.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Fill in anything the file left out
	defaults := Default()
	if cfg.Player == nil {
		cfg.Player = defaults.Player
	}
	if cfg.Game == nil {
		cfg.Game = defaults.Game
	}
	if cfg.Log == nil {
		cfg.Log = defaults.Log
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}
	if cfg.Log.File == "" {
		cfg.Log.File = defaults.Log.File
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Game.DealerDelayMs < 0 {
		return fmt.Errorf("dealer_delay_ms must not be negative: %d", c.Game.DealerDelayMs)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.Log.Level] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	return nil
}
