// Package config provides configuration for the chess application.
package config

import (
	"io"
	"os"

	"github.com/lgbarn/chess-go/internal/engine"
)

// Config holds all program configuration, grouped by concern.
type Config struct {
	// StartFEN is the position every game starts from, including after a
	// reset.
	StartFEN string `mapstructure:"start_fen"`

	Rules   *RulesConfig   `mapstructure:"rules"`
	Display *DisplayConfig `mapstructure:"display"`
	Log     *LogConfig     `mapstructure:"log"`

	// Streams used by the text front end.
	Input  io.Reader `mapstructure:"-"`
	Output io.Writer `mapstructure:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		StartFEN: engine.InitialFEN,
		Rules:    NewRulesConfig(),
		Display:  NewDisplayConfig(),
		Log:      NewLogConfig(),
		Input:    os.Stdin,
		Output:   os.Stdout,
	}
}

// SetOutput sets the stream the text front end writes to.
func (c *Config) SetOutput(w io.Writer) {
	c.Output = w
}

// SetInput sets the stream the text front end reads commands from.
func (c *Config) SetInput(r io.Reader) {
	c.Input = r
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if _, err := engine.NewStateFromFEN(c.StartFEN); err != nil {
		return invalid("start_fen", err)
	}
	return c.Log.Validate()
}

// EngineOptions returns the draw rules selected by the configuration.
func (c *Config) EngineOptions() engine.Options {
	return c.Rules.EngineOptions()
}
