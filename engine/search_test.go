package engine

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"connect4-engine/c4board"
)

// fullWidth is plain minimax without pruning, trying moves in the same order
// as the engine.
func fullWidth(t *testing.T, b *c4board.Board, depth int, maximizing bool) (int, int) {
	t.Helper()
	if len(b.ValidMoves()) == 0 {
		return NoColumn, TerminalScore(b)
	}
	if depth == 0 {
		return NoColumn, EvaluateBoard(b)
	}
	order, err := OrderMoves(b, maximizing)
	if err != nil {
		t.Fatalf("OrderMoves: %v", err)
	}
	side := sideFor(maximizing)
	bestCol, bestScore := order[0], Infinity
	if maximizing {
		bestScore = -Infinity
	}
	for _, col := range order {
		if err := b.Move(col, side); err != nil {
			t.Fatalf("Move: %v", err)
		}
		_, score := fullWidth(t, b, depth-1, !maximizing)
		if err := b.Undo(col, side); err != nil {
			t.Fatalf("Undo: %v", err)
		}
		if (maximizing && score > bestScore) || (!maximizing && score < bestScore) {
			bestCol, bestScore = col, score
		}
	}
	return bestCol, bestScore
}

var searchPositions = []string{
	c4board.StartPos,
	"7/7/7/7/7/XXX4",
	"7/7/7/3O3/2OXX2/1XOXO2",
	"7/7/3X3/2XO3/1XOO3/XOOO3",
	"X6/O6/X5O/O5X/X2O2O/O2X2X",
	"OXXXO2/XXXOXX1/XXOXXXO/XOXXXOX/OXXXOXX/XXXOXXX",
}

func TestPruningMatchesFullWidthMinimax(t *testing.T) {
	for _, pos := range searchPositions {
		for depth := 0; depth <= 4; depth++ {
			for _, maximizing := range []bool{true, false} {
				b := mustParse(t, pos)
				wantCol, wantScore := fullWidth(t, b, depth, maximizing)
				r, err := Search(b, depth, maximizing)
				if err != nil {
					t.Fatalf("%s depth %d: %v", pos, depth, err)
				}
				if r.Column != wantCol || r.Score != wantScore {
					t.Errorf("%s depth %d max=%v: alpha-beta (%d, %d), minimax (%d, %d)",
						pos, depth, maximizing, r.Column, r.Score, wantCol, wantScore)
				}
			}
		}
	}
}

func TestSearchRestoresBoard(t *testing.T) {
	for _, pos := range searchPositions {
		b := mustParse(t, pos)
		before := *b
		if _, err := Search(b, 5, true, WithTrace()); err != nil {
			t.Fatalf("%s: %v", pos, err)
		}
		if *b != before {
			t.Fatalf("%s: board changed to %s", pos, b.Notation())
		}
	}
}

func TestDepthZeroReturnsStaticEvaluation(t *testing.T) {
	for _, pos := range searchPositions {
		b := mustParse(t, pos)
		r, err := Search(b, 0, true)
		if err != nil {
			t.Fatalf("%s: %v", pos, err)
		}
		if r.Column != NoColumn || r.Score != EvaluateBoard(b) {
			t.Errorf("%s: got (%d, %d), want (%d, %d)", pos, r.Column, r.Score, NoColumn, EvaluateBoard(b))
		}
	}
}

func TestTerminalScoreDominates(t *testing.T) {
	full := []string{
		"XXXXXXX/XXXXXXX/OOOOOOO/OOOOOOO/XXXXXXX/XXXXXXX",
		"XOXOXOX/XOXOXOX/XOXOXOX/XOXOXOX/XOXOXOX/XOXOXOX",
		"OXXXOXX/XXXOXXX/XXOXXXO/XOXXXOX/OXXXOXX/XXXOXXX",
		"XOXOXOX/XOXOXOX/OXOXOXO/OXOXOXO/XOXOXOX/XOXOXOX",
	}
	for _, pos := range full {
		b := mustParse(t, pos)
		want := (b.CountLines(c4board.Player2) - b.CountLines(c4board.Player1)) * 1_000_000
		for _, depth := range []int{0, 1, 6} {
			for _, maximizing := range []bool{true, false} {
				r, err := Search(b, depth, maximizing)
				if err != nil {
					t.Fatalf("%s: %v", pos, err)
				}
				if r.Column != NoColumn || r.Score != want {
					t.Errorf("%s depth %d: got (%d, %d), want (%d, %d)", pos, depth, r.Column, r.Score, NoColumn, want)
				}
			}
		}
	}
}

func TestLastMoveIsScoredByLines(t *testing.T) {
	// One cell left; filling it ends the game.
	b := mustParse(t, "OXXXOX1/XXXOXXX/XXOXXXO/XOXXXOX/OXXXOXX/XXXOXXX")
	r, err := Search(b, 3, true)
	if err != nil {
		t.Fatal(err)
	}
	if r.Column != 6 {
		t.Fatalf("Column = %d, want 6", r.Column)
	}
	_ = b.Move(6, c4board.Player2)
	want := TerminalScore(b)
	_ = b.Undo(6, c4board.Player2)
	if r.Score != want {
		t.Fatalf("Score = %d, want %d", r.Score, want)
	}
}

func TestCentreOpening(t *testing.T) {
	r, err := Search(c4board.NewBoard(), 1, true)
	if err != nil {
		t.Fatal(err)
	}
	if r.Column != 3 {
		t.Fatalf("opening move = %d, want 3", r.Column)
	}
	if r.Score != 277 {
		t.Fatalf("opening score = %d, want 277", r.Score)
	}
}

func TestForcedBlock(t *testing.T) {
	b := mustParse(t, "7/7/7/7/7/XXX4")
	if got := EvaluateWindow(b, 0, 0, 0, 1, c4board.Player1); got != WindowThree {
		t.Fatalf("player 1 threat window = %d, want %d", got, WindowThree)
	}
	for depth := 1; depth <= 3; depth++ {
		r, err := Search(b, depth, true)
		if err != nil {
			t.Fatal(err)
		}
		if r.Column != 3 {
			t.Errorf("depth %d: chose %d, want 3", depth, r.Column)
		}
	}
}

func TestSearchErrors(t *testing.T) {
	b := c4board.NewBoard()
	if _, err := Search(b, -1, true); !errors.Is(err, ErrInvalidDepth) {
		t.Errorf("depth -1: err = %v", err)
	}
	if _, err := Search(nil, 2, true); !errors.Is(err, ErrNilBoard) {
		t.Errorf("nil board: err = %v", err)
	}
	if *b != (c4board.Board{}) {
		t.Errorf("rejected search changed the board")
	}
}

func TestTraceDoesNotChangeResult(t *testing.T) {
	for _, pos := range searchPositions {
		for depth := 1; depth <= 4; depth++ {
			b := mustParse(t, pos)
			plain, err := Search(b, depth, depth%2 == 0)
			if err != nil {
				t.Fatal(err)
			}
			traced, err := Search(b, depth, depth%2 == 0, WithTrace())
			if err != nil {
				t.Fatal(err)
			}
			if plain.Trace != nil {
				t.Fatalf("trace built without WithTrace")
			}
			if plain.Column != traced.Column || plain.Score != traced.Score {
				t.Errorf("%s depth %d: plain (%d, %d) traced (%d, %d)", pos, depth,
					plain.Column, plain.Score, traced.Column, traced.Score)
			}
			if diff := cmp.Diff(plain.Stats, traced.Stats); diff != "" {
				t.Errorf("%s depth %d: stats differ (-plain +traced):\n%s", pos, depth, diff)
			}
			if got := traced.Trace.Count(); uint64(got) != traced.Stats.Nodes {
				t.Errorf("%s depth %d: trace has %d nodes, search visited %d", pos, depth, got, traced.Stats.Nodes)
			}
		}
	}
}

func TestTraceMirrorsRoot(t *testing.T) {
	b := c4board.NewBoard()
	r, err := Search(b, 1, true, WithTrace())
	if err != nil {
		t.Fatal(err)
	}
	root := r.Trace
	if root.Move != r.Column || root.Score != r.Score {
		t.Fatalf("root node (%d, %d), result (%d, %d)", root.Move, root.Score, r.Column, r.Score)
	}

	order, err := OrderMoves(b, true)
	if err != nil {
		t.Fatal(err)
	}
	var explored []int
	for _, c := range root.Children {
		explored = append(explored, c.Move)
		if len(c.Children) != 0 {
			t.Errorf("depth-1 child %d has children", c.Move)
		}
		_ = b.Move(c.Move, c4board.Player2)
		if want := EvaluateBoard(b); c.Score != want {
			t.Errorf("child %d score = %d, want %d", c.Move, c.Score, want)
		}
		_ = b.Undo(c.Move, c4board.Player2)
	}
	if diff := cmp.Diff(order, explored); diff != "" {
		t.Errorf("children not in search order (-want +got):\n%s", diff)
	}
}

func TestWindowOption(t *testing.T) {
	b := c4board.NewBoard()
	def, err := Search(b, 3, true)
	if err != nil {
		t.Fatal(err)
	}
	wide, err := AlphaBeta(b, 3, -Infinity, Infinity, true, false)
	if err != nil {
		t.Fatal(err)
	}
	if def.Column != wide.Column || def.Score != wide.Score {
		t.Fatalf("explicit infinite window differs from default")
	}

	// The first move already fails high here, yet a column is still reported.
	r, err := Search(b, 2, true, WithWindow(-Infinity, -Infinity+1))
	if err != nil {
		t.Fatal(err)
	}
	if r.Column == NoColumn {
		t.Fatalf("no column with a narrow window")
	}
}

func TestSearchStats(t *testing.T) {
	r, err := Search(c4board.NewBoard(), 1, true)
	if err != nil {
		t.Fatal(err)
	}
	want := Stats{Nodes: 8, Evaluations: 7, OrderingEvals: 7}
	if diff := cmp.Diff(want, r.Stats); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}

	deep, err := Search(c4board.NewBoard(), 4, true)
	if err != nil {
		t.Fatal(err)
	}
	if deep.Stats.Cutoffs == 0 {
		t.Errorf("no cutoffs at depth 4 from the empty board")
	}
	if deep.Stats.Nodes >= 1+7+49+343+2401 {
		t.Errorf("alpha-beta visited %d nodes, no fewer than full width", deep.Stats.Nodes)
	}
}
