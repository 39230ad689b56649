package engine

import (
	"math/bits"

	"connect4-engine/c4board"
)

// =============================================================================
// WINDOW SCORES
// =============================================================================
const (
	WindowFour       = 100000
	WindowThree      = 1000
	WindowTwo        = 100
	WindowOne        = 10
	WindowBlockThree = -800
	WindowBlockTwo   = -50
	WindowLength     = 4
	directionCount   = 4
)

// Direction is a (row, col) step between the cells of a window.
type Direction struct {
	DRow, DCol int
}

// Directions lists the four window orientations: horizontal, vertical,
// rising diagonal and falling diagonal.
var Directions = [directionCount]Direction{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// PositionalWeights favour the middle of the board. Indexed [row][col], row 0
// at the bottom.
var PositionalWeights = [c4board.Height][c4board.Width]int{
	{3, 4, 5, 7, 5, 4, 3},
	{4, 6, 8, 10, 8, 6, 4},
	{5, 8, 11, 13, 11, 8, 5},
	{5, 8, 11, 13, 11, 8, 5},
	{4, 6, 8, 10, 8, 6, 4},
	{3, 4, 5, 7, 5, 4, 3},
}

// ColumnWeights strongly favour the centre column.
var ColumnWeights = [c4board.Width]int{40, 70, 120, 200, 120, 70, 40}

// cellWeight merges both tables so the evaluator does one lookup per stone.
var cellWeight [c4board.Cells]int

// windowMasks holds every window that fits on the grid. Windows hanging off
// the edge score 0, so they are not stored.
var windowMasks []uint64

func init() {
	initEvalTables()
}

func initEvalTables() {
	windowMasks = windowMasks[:0]
	for row := 0; row < c4board.Height; row++ {
		for col := 0; col < c4board.Width; col++ {
			cellWeight[row*c4board.Width+col] = PositionalWeights[row][col] + ColumnWeights[col]
			for _, d := range Directions {
				if m, ok := windowMask(row, col, d.DRow, d.DCol); ok {
					windowMasks = append(windowMasks, m)
				}
			}
		}
	}
}

// windowMask returns the four cells starting at (row, col) stepping by
// (dRow, dCol), or ok=false if any of them is off the grid.
func windowMask(row, col, dRow, dCol int) (mask uint64, ok bool) {
	for i := 0; i < WindowLength; i++ {
		r := row + i*dRow
		c := col + i*dCol
		if r < 0 || r >= c4board.Height || c < 0 || c >= c4board.Width {
			return 0, false
		}
		mask |= uint64(1) << uint(r*c4board.Width+c)
	}
	return mask, true
}

// windowScore classifies a window by how many cells the player owns, how
// many are empty and how many the opponent owns.
func windowScore(own, empty, opp int) int {
	switch {
	case own == 4:
		return WindowFour
	case own == 3 && empty == 1:
		return WindowThree
	case own == 2 && empty == 2:
		return WindowTwo
	case own == 1 && empty == 3:
		return WindowOne
	case opp == 3 && empty == 1:
		return WindowBlockThree
	case opp == 2 && empty == 2:
		return WindowBlockTwo
	}
	return 0
}

func scoreMask(window, own, opp uint64) int {
	o := bits.OnesCount64(window & own)
	t := bits.OnesCount64(window & opp)
	return windowScore(o, WindowLength-o-t, t)
}

// EvaluateWindow scores the four cells starting at (row, col) and stepping by
// (dRow, dCol) from p's point of view. Returns 0 if the window leaves the grid.
func EvaluateWindow(b *c4board.Board, row, col, dRow, dCol int, p c4board.Player) int {
	m, ok := windowMask(row, col, dRow, dCol)
	if !ok {
		return 0
	}
	return scoreMask(m, b.Mask(p), b.Mask(p.Other()))
}

// EvaluateBreakdown returns the heuristic totals of both players: every
// window's score plus the positional and column weight of each stone.
func EvaluateBreakdown(b *c4board.Board) (p1, p2 int) {
	m1 := b.Mask(c4board.Player1)
	m2 := b.Mask(c4board.Player2)

	for _, w := range windowMasks {
		p1 += scoreMask(w, m1, m2)
		p2 += scoreMask(w, m2, m1)
	}

	for m := m1; m != 0; m &= m - 1 {
		p1 += cellWeight[bits.TrailingZeros64(m)]
	}
	for m := m2; m != 0; m &= m - 1 {
		p2 += cellWeight[bits.TrailingZeros64(m)]
	}
	return p1, p2
}

// EvaluateBoard is the static evaluation: player 2's total minus player 1's.
// Positive always favours player 2, whichever side the caller maximises.
func EvaluateBoard(b *c4board.Board) int {
	p1, p2 := EvaluateBreakdown(b)
	return p2 - p1
}
