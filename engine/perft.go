package engine

import (
	"github.com/hvandenberg/chesscore/chess"
	"github.com/hvandenberg/chesscore/internal/worker"
)

// Perft counts the legal move paths of length depth from pos. Depth 0
// counts the position itself. A pawn reaching the far rank counts
// once; the promoted role is a commit option, not a distinct move.
func Perft(pos chess.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	for m := range allLegalMoves(pos) {
		if depth == 1 {
			nodes++
			continue
		}
		nodes += Perft(apply(pos, m, chess.Queen), depth-1)
	}
	return nodes
}

// Divide returns the perft count below each root move. Comparing the
// per-move counts against another generator localizes a divergence to
// a single branch.
func Divide(pos chess.Position, depth int) map[chess.Move]uint64 {
	counts := make(map[chess.Move]uint64)
	if depth <= 0 {
		return counts
	}
	for m := range allLegalMoves(pos) {
		counts[m] = Perft(apply(pos, m, chess.Queen), depth-1)
	}
	return counts
}

// ParallelPerft computes the same total as Perft with the root moves
// fanned out over a worker pool. Every branch explores its own
// Position value, so the workers share no state. workers at or below
// one falls back to the sequential count.
func ParallelPerft(pos chess.Position, depth, workers int) uint64 {
	if workers <= 1 || depth <= 1 {
		return Perft(pos, depth)
	}

	var branches []chess.Position
	for m := range allLegalMoves(pos) {
		branches = append(branches, apply(pos, m, chess.Queen))
	}
	if len(branches) == 0 {
		return 0
	}

	pool := worker.NewPoolWithOptions(
		func(item worker.WorkItem) worker.ProcessResult {
			return worker.ProcessResult{Index: item.Index, Nodes: Perft(item.Pos, item.Depth)}
		},
		worker.WithWorkers(workers),
		worker.WithBufferSize(len(branches)),
	)
	pool.Start()
	for i, branch := range branches {
		pool.Submit(worker.WorkItem{Pos: branch, Depth: depth - 1, Index: i})
	}
	go pool.Close()

	var total uint64
	for result := range pool.Results() {
		total += result.Nodes
	}
	return total
}
