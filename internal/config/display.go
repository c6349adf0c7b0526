package config

// DisplayConfig holds settings for the front ends.
type DisplayConfig struct {
	// TextMode uses the line-oriented front end instead of the full
	// screen one.
	TextMode bool `mapstructure:"text_mode"`

	// Color enables ANSI colours in the text board.
	Color bool `mapstructure:"color"`

	// Unicode draws pieces with chess symbols instead of letters.
	Unicode bool `mapstructure:"unicode"`

	// Coordinates prints file letters and rank numbers around the board.
	Coordinates bool `mapstructure:"coordinates"`

	// JSON writes each frame as a JSON object instead of a text board.
	JSON bool `mapstructure:"json"`
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Color:       true,
		Coordinates: true,
	}
}
