package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/lgbarn/chess-go/internal/config"
	"github.com/lgbarn/chess-go/internal/engine"
)

// runPerft prints the perft divide of the configured start position, one
// root move per line, followed by the total.
func runPerft(ctx context.Context, cfg *config.Config, depth, workers int, w io.Writer) error {
	s, err := engine.NewStateFromFEN(cfg.StartFEN)
	if err != nil {
		return err
	}
	s.Options = cfg.EngineOptions()

	start := time.Now()
	results, err := engine.PerftDivide(ctx, s, depth, workers)
	if err != nil {
		return err
	}

	var total uint64
	for _, r := range results {
		total += r.Nodes
		if _, err := fmt.Fprintf(w, "%s: %d\n", r.Move, r.Nodes); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "\nNodes searched: %d (%d moves, depth %d, %s)\n",
		total, len(results), depth, time.Since(start).Round(time.Millisecond))
	return err
}
