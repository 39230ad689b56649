package engine

import (
	"golang.org/x/exp/constraints"

	"connect4-engine/c4board"
)

// Min returns the smaller of x or y.
func Min[T constraints.Ordered](x, y T) T {
	if x < y {
		return x
	}
	return y
}

// Max returns the larger of x or y.
func Max[T constraints.Ordered](x, y T) T {
	if x > y {
		return x
	}
	return y
}

// sideFor maps the minimax role to the stone it places. The maximiser plays
// player 2, matching the sign of EvaluateBoard.
func sideFor(maximizing bool) c4board.Player {
	if maximizing {
		return c4board.Player2
	}
	return c4board.Player1
}
