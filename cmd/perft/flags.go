// flags.go - Command-line flag definitions
package main

import (
	"flag"

	"github.com/hvandenberg/chesscore/chess"
)

var (
	// Search options
	fenFlag = flag.String("fen", chess.InitialFEN, "Position to search, in FEN")
	depth   = flag.Int("depth", 5, "Search depth in plies")
	workers = flag.Int("workers", 0, "Worker goroutines (0 = one per CPU)")
	divide  = flag.Bool("divide", false, "Print the node count below each root move")

	// Diagnostics
	cpuProfile = flag.String("cpuprofile", "", "Write a CPU profile into this directory")
)
