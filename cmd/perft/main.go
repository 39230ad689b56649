package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/pkg/profile"

	"connect4-engine/c4board"
)

func main() {
	notation := flag.String("board", c4board.StartPos, "position in row notation (defaults to the empty board)")
	side := flag.Int("side", 1, "player to move first (1 or 2)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-column node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.Bool("cpuprofile", false, "Write a CPU profile to the working directory")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}
	toMove := c4board.Player(*side)
	if !toMove.Valid() {
		fmt.Fprintln(os.Stderr, "-side must be 1 or 2")
		os.Exit(2)
	}

	board, err := c4board.ParseBoard(*notation)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseBoard error: %v\n", err)
		os.Exit(2)
	}

	if *divide {
		div := c4board.PerftDivide(board, *depth, toMove)
		cols := make([]int, 0, len(div))
		for col := range div {
			cols = append(cols, col)
		}
		sort.Ints(cols)
		var sum uint64
		for _, col := range cols {
			fmt.Printf("%d: %d\n", col, div[col])
			sum += div[col]
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	if *cpuProf {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	}

	// Timing loop
	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += c4board.Perft(board, *depth, toMove)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)
}
