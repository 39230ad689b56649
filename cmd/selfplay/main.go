package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	games := flag.Int("games", 14, "number of games to play")
	depth1 := flag.Int("depth1", 2, "search depth of player 1")
	depth2 := flag.Int("depth2", 4, "search depth of player 2")
	workers := flag.Int("workers", 4, "games played at the same time")
	verbose := flag.Bool("v", false, "log every finished game")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.InfoLevel)
	if *verbose {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	}

	m := match{
		Games:   *games,
		Depth1:  *depth1,
		Depth2:  *depth2,
		Workers: *workers,
		Logger:  log.Logger,
	}
	start := time.Now()
	tally, err := m.play(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("match failed")
	}
	fmt.Printf("player 1 (depth %d): %d wins\n", *depth1, tally.P1Wins)
	fmt.Printf("player 2 (depth %d): %d wins\n", *depth2, tally.P2Wins)
	fmt.Printf("draws: %d\n", tally.Draws)
	fmt.Printf("time: %v\n", time.Since(start))
}
