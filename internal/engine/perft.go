package engine

import (
	"context"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/worker"
)

// Perft counts the leaf nodes of the legal move tree to the given depth,
// expanding each promotion into all four promotion kinds.
func Perft(s *GameState, depth int) uint64 {
	if depth <= 0 {
		return 1
	}

	var nodes uint64
	for _, m := range rootMoves(s) {
		nodes += perftChild(s, m, depth)
	}
	return nodes
}

func perftChild(s *GameState, m chess.Move, depth int) uint64 {
	if depth == 1 {
		return 1
	}
	return Perft(play(s, m), depth-1)
}

// rootMoves lists the legal moves of s with every promotion completed.
func rootMoves(s *GameState) []chess.Move {
	legal := LegalMoves(s)
	moves := make([]chess.Move, 0, len(legal))
	for _, m := range legal {
		if m.Class != chess.Promotion {
			moves = append(moves, m)
			continue
		}
		for _, kind := range chess.PromotionKinds {
			moves = append(moves, m.WithPromotion(kind))
		}
	}
	return moves
}

// DivideResult is the perft count below one root move.
type DivideResult struct {
	Move  chess.Move
	Nodes uint64
}

// PerftDivide runs perft to depth separately below each root move, with
// the root moves shared out between workers goroutines. Results are in
// move generation order and sum to Perft(s, depth). A done ctx stops the
// search and its error is returned.
func PerftDivide(ctx context.Context, s *GameState, depth, workers int) ([]DivideResult, error) {
	if depth <= 0 {
		return nil, nil
	}

	moves := rootMoves(s)
	pool := worker.NewPool(func(item worker.WorkItem) worker.ProcessResult {
		return worker.ProcessResult{
			Move:  item.Move,
			Index: item.Index,
			Nodes: perftChild(s, item.Move, depth),
		}
	}, worker.WithWorkers(workers), worker.WithBufferSize(len(moves)))
	pool.Start()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			pool.Stop()
		case <-done:
		}
	}()

	go func() {
		for i, m := range moves {
			pool.Submit(worker.WorkItem{Move: m, Index: i})
		}
		pool.Close()
	}()

	results := make([]DivideResult, len(moves))
	for r := range pool.Results() {
		results[r.Index] = DivideResult{Move: r.Move, Nodes: r.Nodes}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
