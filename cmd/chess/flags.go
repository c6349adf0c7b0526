// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/chess-go/internal/config"
)

var (
	configFile = flag.String("config", "", "Configuration file (YAML, TOML or JSON)")
	startFEN   = flag.String("fen", "", "Start position in FEN (default: standard start)")

	// Draw rules
	fiftyMove      = flag.Bool("fifty", false, "Enable the fifty-move draw")
	repetition     = flag.Bool("repetition", false, "Enable the threefold repetition draw")
	noInsufficient = flag.Bool("noinsufficient", false, "Disable the insufficient material draw")

	// Front end
	textMode   = flag.Bool("text", false, "Line-oriented front end on stdin/stdout instead of the full screen board")
	jsonOutput = flag.Bool("json", false, "Write text mode frames as JSON (implies -text)")
	noColor    = flag.Bool("nocolor", false, "Disable colours in text mode")
	unicode    = flag.Bool("unicode", false, "Use chess symbols in text mode")

	// Logging
	logFile = flag.String("log", "", "Log file, - for stderr (default: "+config.DefaultLogFile+")")
	debug   = flag.Bool("debug", false, "Log at debug level")

	// Move generator check
	perftDepth   = flag.Int("perft", 0, "Print perft node counts per root move to depth N and exit")
	perftWorkers = flag.Int("workers", runtime.NumCPU(), "Goroutines used by -perft")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags overrides the loaded configuration with the flags that were
// given. Flags left at their defaults keep the file and environment values.
func applyFlags(cfg *config.Config) {
	applyRuleFlags(cfg)
	applyDisplayFlags(cfg)
	applyLogFlags(cfg)

	if *startFEN != "" {
		cfg.StartFEN = *startFEN
	}
}

// applyRuleFlags configures the optional draw rules.
func applyRuleFlags(cfg *config.Config) {
	if *fiftyMove {
		cfg.Rules.FiftyMove = true
	}
	if *repetition {
		cfg.Rules.Repetition = true
	}
	if *noInsufficient {
		cfg.Rules.InsufficientMaterial = false
	}
}

// applyDisplayFlags configures the front end.
func applyDisplayFlags(cfg *config.Config) {
	if *textMode {
		cfg.Display.TextMode = true
	}
	if *jsonOutput {
		cfg.Display.TextMode = true
		cfg.Display.JSON = true
	}
	if *noColor {
		cfg.Display.Color = false
	}
	if *unicode {
		cfg.Display.Unicode = true
	}
}

// applyLogFlags configures the logger.
func applyLogFlags(cfg *config.Config) {
	if *logFile != "" {
		cfg.Log.File = *logFile
	}
	if *debug {
		cfg.Log.Level = "debug"
	}
}
