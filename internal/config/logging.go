package config

import (
	"go.uber.org/zap/zapcore"
)

// DefaultLogFile is where logs go when nothing else is configured. The
// full screen front end owns the terminal, so logs never go to stderr.
const DefaultLogFile = "chess.log"

// LogConfig holds logging settings.
type LogConfig struct {
	// File is the log destination. "-" means stderr.
	File string `mapstructure:"file"`

	// Level is a zap level name: debug, info, warn or error.
	Level string `mapstructure:"level"`
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{
		File:  DefaultLogFile,
		Level: "info",
	}
}

// ZapLevel parses Level.
func (l *LogConfig) ZapLevel() (zapcore.Level, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return lvl, invalid("log.level", err)
	}
	return lvl, nil
}

// Validate checks that the logging configuration is usable.
func (l *LogConfig) Validate() error {
	if l.File == "" {
		return invalid("log.file", nil)
	}
	_, err := l.ZapLevel()
	return err
}
