package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithStartFEN sets the start position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithInsufficientMaterial toggles the insufficient material draw.
func (b *ConfigBuilder) WithInsufficientMaterial(enabled bool) *ConfigBuilder {
	b.cfg.Rules.InsufficientMaterial = enabled
	return b
}

// WithFiftyMoveRule toggles the fifty-move draw.
func (b *ConfigBuilder) WithFiftyMoveRule(enabled bool) *ConfigBuilder {
	b.cfg.Rules.FiftyMove = enabled
	return b
}

// WithRepetition toggles the threefold repetition draw.
func (b *ConfigBuilder) WithRepetition(enabled bool) *ConfigBuilder {
	b.cfg.Rules.Repetition = enabled
	return b
}

// WithTextMode selects the line-oriented front end.
func (b *ConfigBuilder) WithTextMode(enabled bool) *ConfigBuilder {
	b.cfg.Display.TextMode = enabled
	return b
}

// WithColor toggles ANSI colours in the text board.
func (b *ConfigBuilder) WithColor(enabled bool) *ConfigBuilder {
	b.cfg.Display.Color = enabled
	return b
}

// WithUnicode toggles chess symbols in the text board.
func (b *ConfigBuilder) WithUnicode(enabled bool) *ConfigBuilder {
	b.cfg.Display.Unicode = enabled
	return b
}

// WithJSONOutput writes frames as JSON in the text front end.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Display.JSON = enabled
	return b
}

// WithLogFile sets the log destination.
func (b *ConfigBuilder) WithLogFile(path string) *ConfigBuilder {
	b.cfg.Log.File = path
	return b
}

// WithLogLevel sets the log level name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithInput sets the command stream.
func (b *ConfigBuilder) WithInput(r io.Reader) *ConfigBuilder {
	b.cfg.SetInput(r)
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.SetOutput(w)
	return b
}
