package c4board

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGameAlternatesTurns(t *testing.T) {
	g := NewGame()
	for _, col := range []int{3, 3, 2, 4} {
		if err := g.Play(col); err != nil {
			t.Fatalf("Play(%d): %v", col, err)
		}
	}
	want := []Move{
		{Column: 3, Player: Player1},
		{Column: 3, Player: Player2},
		{Column: 2, Player: Player1},
		{Column: 4, Player: Player2},
	}
	if diff := cmp.Diff(want, g.History()); diff != "" {
		t.Fatalf("history mismatch (-want +got):\n%s", diff)
	}
	if g.ToMove() != Player1 || g.Ply() != 4 {
		t.Fatalf("ToMove = %v, Ply = %d", g.ToMove(), g.Ply())
	}
	if got := g.Board().Notation(); got != "7/7/7/7/3O3/2XXO2" {
		t.Fatalf("board = %q", got)
	}
}

func TestGameTakeBack(t *testing.T) {
	g := NewGame()
	if _, err := g.TakeBack(); !errors.Is(err, ErrNoHistory) {
		t.Fatalf("TakeBack on new game err = %v", err)
	}
	_ = g.Play(0)
	_ = g.Play(6)
	m, err := g.TakeBack()
	if err != nil {
		t.Fatalf("TakeBack: %v", err)
	}
	if m != (Move{Column: 6, Player: Player2}) {
		t.Fatalf("took back %+v", m)
	}
	if g.ToMove() != Player2 {
		t.Fatalf("turn not returned to player 2")
	}
	if got := g.Board().Notation(); got != "7/7/7/7/7/X6" {
		t.Fatalf("board = %q", got)
	}
}

func TestGameRejectsBadMoveWithoutSideEffects(t *testing.T) {
	g := NewGame()
	for i := 0; i < Height; i++ {
		_ = g.Play(1)
	}
	err := g.Play(1)
	if !errors.Is(err, ErrColumnFull) {
		t.Fatalf("err = %v, want ErrColumnFull", err)
	}
	if g.Ply() != Height || g.ToMove() != Player1 {
		t.Fatalf("failed Play changed game state")
	}
}

func TestGameWinnerByLineCount(t *testing.T) {
	b := mustParse(t, "XXXXXXX/XXXXXXX/OOOOOOO/OOOOOOO/XXXXXXX/XXXXXXX")
	g := NewGameFrom(b, Player1)
	if !g.Over() {
		t.Fatalf("full board not over")
	}
	if w := g.Winner(); w != Player1 {
		t.Fatalf("Winner = %v, want player 1", w)
	}
	if err := g.Play(0); !errors.Is(err, ErrGameOver) {
		t.Fatalf("Play on finished game err = %v", err)
	}

	draw := NewGameFrom(mustParse(t, "XOXOXOX/XOXOXOX/OXOXOXO/OXOXOXO/XOXOXOX/XOXOXOX"), Player1)
	if w := draw.Winner(); w != NoPlayer {
		t.Fatalf("Winner = %v on a board without lines", w)
	}

	if w := NewGame().Winner(); w != NoPlayer {
		t.Fatalf("unfinished game has winner %v", w)
	}
}

func TestGameRestart(t *testing.T) {
	g := NewGame()
	_ = g.Play(3)
	_ = g.Play(4)
	g.Restart()
	if g.Ply() != 0 || g.ToMove() != Player1 || g.Board().Count() != 0 {
		t.Fatalf("Restart left state behind")
	}
}
