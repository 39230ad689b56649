package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"connect4-engine/c4board"
	"connect4-engine/engine"
)

var errBadMatch = errors.New("bad match settings")

// match plays engine against engine. Each game owns its board, so games run
// in parallel while every search stays single threaded.
type match struct {
	Games   int
	Depth1  int
	Depth2  int
	Workers int
	Logger  zerolog.Logger
}

type tally struct {
	P1Wins, P2Wins, Draws int
}

type gameResult struct {
	winner     c4board.Player
	p1Lines    int
	p2Lines    int
	finalBoard string
}

func (m match) play(ctx context.Context) (tally, error) {
	if m.Games < 0 || m.Depth1 < 1 || m.Depth2 < 1 || m.Workers < 1 {
		return tally{}, fmt.Errorf("%w: games %d depths %d/%d workers %d",
			errBadMatch, m.Games, m.Depth1, m.Depth2, m.Workers)
	}

	results := make([]gameResult, m.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.Workers)
	for i := 0; i < m.Games; i++ {
		i := i
		g.Go(func() error {
			r, err := m.playGame(ctx, i)
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			results[i] = r
			m.Logger.Debug().
				Int("game", i).
				Stringer("winner", r.winner).
				Int("p1", r.p1Lines).
				Int("p2", r.p2Lines).
				Str("board", r.finalBoard).
				Msg("game-finished")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return tally{}, err
	}

	var t tally
	for _, r := range results {
		switch r.winner {
		case c4board.Player1:
			t.P1Wins++
		case c4board.Player2:
			t.P2Wins++
		default:
			t.Draws++
		}
	}
	return t, nil
}

// openingFor picks the first two columns of game i, so that deterministic
// engines do not replay the same game.
func openingFor(i int) []int {
	return []int{i % c4board.Width, (i / c4board.Width) % c4board.Width}
}

func (m match) playGame(ctx context.Context, i int) (gameResult, error) {
	game := c4board.NewGame()
	for _, col := range openingFor(i) {
		if err := game.Play(col); err != nil {
			return gameResult{}, err
		}
	}

	for !game.Over() {
		if err := ctx.Err(); err != nil {
			return gameResult{}, err
		}
		depth, maximizing := m.Depth1, false
		if game.ToMove() == c4board.Player2 {
			depth, maximizing = m.Depth2, true
		}
		res, err := engine.Search(game.Board(), depth, maximizing)
		if err != nil {
			return gameResult{}, err
		}
		if err := game.Play(res.Column); err != nil {
			return gameResult{}, err
		}
	}

	p1, p2 := game.Scores()
	return gameResult{
		winner:     game.Winner(),
		p1Lines:    p1,
		p2Lines:    p2,
		finalBoard: game.Board().Notation(),
	}, nil
}
