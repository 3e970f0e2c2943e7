// perft is a development tool that counts legal move paths from a
// position to a fixed depth and reports the speed of the count.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"sort"
	"time"

	"github.com/hvandenberg/chesscore/chess"
	"github.com/hvandenberg/chesscore/engine"
	"github.com/pkg/profile"
)

var log = slog.Default().With("program", "perft")

func main() {
	flag.Usage = usage
	flag.Parse()

	if *cpuProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*cpuProfile)).Stop()
	}

	pos, err := chess.ParseFEN(*fenFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing FEN %q: %v\n", *fenFlag, err)
		os.Exit(1)
	}
	if *depth < 0 {
		fmt.Fprintf(os.Stderr, "Error: depth must not be negative\n")
		os.Exit(1)
	}

	n := *workers
	if n <= 0 {
		n = runtime.NumCPU()
	}
	log.Info("counting", "depth", *depth, "workers", n, "turn", pos.Turn)

	start := time.Now()
	var nodes uint64
	if *divide {
		nodes = printDivide(os.Stdout, pos, *depth)
	} else {
		nodes = engine.ParallelPerft(pos, *depth, n)
	}
	elapsed := time.Since(start)

	rate := float64(nodes) / elapsed.Seconds()
	fmt.Printf("%d nodes in %v (%.0f nodes/s)\n", nodes, elapsed.Round(time.Millisecond), rate)
}

// printDivide writes the per-root-move subtree counts in move order
// and returns the total.
func printDivide(w io.Writer, pos chess.Position, depth int) uint64 {
	counts := engine.Divide(pos, depth)

	moves := make([]chess.Move, 0, len(counts))
	for m := range counts {
		moves = append(moves, m)
	}
	sort.Slice(moves, func(i, j int) bool {
		return moves[i].String() < moves[j].String()
	})

	var total uint64
	for _, m := range moves {
		fmt.Fprintf(w, "%v: %d\n", m, counts[m])
		total += counts[m]
	}
	return total
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: perft [options]\n\n")
	fmt.Fprintf(os.Stderr, "Counts legal move paths from a position to a fixed depth.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
