package config

import "github.com/lgbarn/chess-go/internal/engine"

// RulesConfig selects the optional draw rules.
type RulesConfig struct {
	// InsufficientMaterial ends the game when neither side can mate.
	InsufficientMaterial bool `mapstructure:"insufficient_material"`

	// FiftyMove ends the game after fifty moves by each side without a
	// pawn move or capture.
	FiftyMove bool `mapstructure:"fifty_move"`

	// Repetition ends the game when a position occurs for the third time.
	Repetition bool `mapstructure:"repetition"`
}

// NewRulesConfig creates a RulesConfig matching engine.DefaultOptions.
func NewRulesConfig() *RulesConfig {
	opts := engine.DefaultOptions()
	return &RulesConfig{
		InsufficientMaterial: opts.InsufficientMaterial,
		FiftyMove:            opts.FiftyMoveRule,
		Repetition:           opts.ThreefoldRepetition,
	}
}

// EngineOptions converts the rules to engine options.
func (r *RulesConfig) EngineOptions() engine.Options {
	return engine.Options{
		InsufficientMaterial: r.InsufficientMaterial,
		FiftyMoveRule:        r.FiftyMove,
		ThreefoldRepetition:  r.Repetition,
	}
}
