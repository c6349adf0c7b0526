// chess is a two-player chess board for the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lgbarn/chess-go/internal/config"
	"github.com/lgbarn/chess-go/internal/interaction"
	"github.com/lgbarn/chess-go/internal/output"
	"github.com/lgbarn/chess-go/internal/tui"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess version %s\n", programVersion)
		os.Exit(0)
	}

	os.Exit(run())
}

// run sets everything up from the flags and plays until the user quits.
// It returns the process exit code.
func run() int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *perftDepth > 0 {
		if err := runPerft(ctx, cfg, *perftDepth, *perftWorkers, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	log, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		return 1
	}
	defer log.Sync() //nolint:errcheck // flush on exit

	ctrl, err := interaction.New(
		interaction.WithLogger(log),
		interaction.WithOptions(cfg.EngineOptions()),
		interaction.WithStartFEN(cfg.StartFEN),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	if cfg.Display.TextMode {
		err = runText(ctx, ctrl, cfg.Input, output.NewSnapshotWriter(cfg.Output, cfg.Display), log)
	} else {
		err = runScreen(ctx, ctrl, log)
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		log.Errorw("front end failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// loadConfig reads the configuration file and environment, then applies
// the command-line flags on top.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return nil, err
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runScreen runs the full screen board on the terminal.
func runScreen(ctx context.Context, ctrl *interaction.Controller, log *zap.SugaredLogger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	return tui.New(screen, ctrl, log).Run(ctx)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "A two-player chess board for the terminal.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
	fmt.Fprintf(os.Stderr, "  %s_START_FEN, %s_RULES_FIFTY_MOVE, %s_LOG_LEVEL, ... override the\n", config.EnvPrefix, config.EnvPrefix, config.EnvPrefix)
	fmt.Fprintf(os.Stderr, "  matching configuration keys.\n")
}
