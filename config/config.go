// Package config loads the TOML settings shared by the svgplace command.
package config

import (
	"fmt"
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/mindera-gaming/svg-placer/svg"
)

type ParserConfig struct {
	SlopeTolerance float64 `toml:"slope_tolerance"`
	GenerateIDs    bool    `toml:"generate_ids"`
}

type MathConfig struct {
	Float64EqualityThreshold float64 `toml:"float64_equality_threshold"`
}

type LogConfig struct {
	Level    string `toml:"level"`
	Encoding string `toml:"encoding"`
}

type Config struct {
	Parser ParserConfig `toml:"parser"`
	Math   MathConfig   `toml:"math"`
	Log    LogConfig    `toml:"log"`
}

// Default returns the settings used when no file overrides them.
func Default() Config {
	return Config{
		Parser: ParserConfig{
			GenerateIDs: true,
		},
		Math: MathConfig{
			Float64EqualityThreshold: 1e-9,
		},
		Log: LogConfig{
			Level:    "info",
			Encoding: "console",
		},
	}
}

// ReadTOML reads fileName on top of Default. Keys missing from the file
// keep their default value.
func ReadTOML(fileName string) (*Config, error) {
	file, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	config := Default()
	if err := toml.Unmarshal(file, &config); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", fileName, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("validating %s: %w", fileName, err)
	}

	return &config, nil
}

func (c Config) Validate() error {
	if err := c.ParserOptions().Validate(); err != nil {
		return err
	}
	if t := c.Math.Float64EqualityThreshold; math.IsNaN(t) || t < 0 {
		return fmt.Errorf("float64 equality threshold cannot be %v", c.Math.Float64EqualityThreshold)
	}
	switch c.Log.Encoding {
	case "json", "console":
	default:
		return fmt.Errorf("unknown log encoding %q", c.Log.Encoding)
	}

	return nil
}

func (c Config) ParserOptions() svg.ParserOptions {
	return svg.ParserOptions{
		SlopeTolerance: c.Parser.SlopeTolerance,
		GenerateIDs:    c.Parser.GenerateIDs,
	}
}
