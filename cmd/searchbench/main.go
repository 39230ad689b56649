package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"connect4-engine/c4board"
	"connect4-engine/engine"
)

func main() {
	// --- Flags ---
	depthFlag := flag.Int("depth", 8, "search depth in plies")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	boardFlag := flag.String("board", "", "position in row notation (empty = start position)")
	minimizeFlag := flag.Bool("p1", false, "search for player 1 (minimizing) instead of player 2")
	traceFlag := flag.Bool("trace", false, "record the search tree and report its size")
	cacheFlag := flag.Int("cache", 0, "evaluation cache size in MB, kept across repeats (0 = off)")
	profileFlag := flag.String("profile", "", "cpu or mem")
	profileDir := flag.String("profiledir", ".", "directory for profile output")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if *depthFlag < 0 {
		log.Fatal().Int("depth", *depthFlag).Msg("depth must not be negative")
	}

	// --- Optional profiling ---
	switch *profileFlag {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*profileDir), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(*profileDir), profile.Quiet).Stop()
	default:
		log.Fatal().Str("profile", *profileFlag).Msg("unknown profile mode")
	}

	notation := c4board.StartPos
	if *boardFlag != "" {
		notation = *boardFlag
	}
	depth := *depthFlag
	repeat := *repeatFlag
	maximizing := !*minimizeFlag

	fmt.Printf("searchbench: board=%q depth=%d repeat=%d maximizing=%v\n", notation, depth, repeat, maximizing)

	var opts []engine.Option
	if *traceFlag {
		opts = append(opts, engine.WithTrace())
	}
	if *cacheFlag > 0 {
		opts = append(opts, engine.WithEvalCache(engine.NewEvalCache(*cacheFlag)))
	}

	var total engine.Stats
	startAll := time.Now()
	for i := 0; i < repeat; i++ {
		// Fresh position for each run
		b, err := c4board.ParseBoard(notation)
		if err != nil {
			log.Fatal().Err(err).Msg("bad board")
		}

		iterStart := time.Now()
		res, err := engine.Search(b, depth, maximizing, opts...)
		iterElapsed := time.Since(iterStart)
		if err != nil {
			log.Fatal().Err(err).Int("iteration", i+1).Msg("search failed")
		}
		total.Add(res.Stats)

		fmt.Printf("iteration %d: bestmove %d score %d nodes %d time=%v\n",
			i+1, res.Column, res.Score, res.Stats.Nodes, iterElapsed)
		if res.Trace != nil {
			fmt.Printf("iteration %d: trace nodes %d\n", i+1, res.Trace.Count())
		}
	}
	totalElapsed := time.Since(startAll)
	fmt.Printf("total time: %v\n", totalElapsed)
	if secs := totalElapsed.Seconds(); secs > 0 {
		fmt.Printf("nps: %.0f\n", float64(total.Nodes)/secs)
	}
	total.Dump(os.Stdout)
}
