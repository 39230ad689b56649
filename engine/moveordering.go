package engine

import (
	"golang.org/x/exp/slices"

	"connect4-engine/c4board"
)

type move struct {
	column int
	score  int
}

type moveList struct {
	moves []move
}

/*
	Move ordering
	- Every candidate is played, statically evaluated and taken back; no recursion.
	- The maximiser looks at the highest static score first, the minimiser at the lowest.
	- Equal scores are broken by column in the same direction as the score, so the
	  order is total and a search is reproducible move for move.
	Ordering only changes how much gets pruned, never the value at the root.
*/
func (s *searcher) scoreMovesList(columns []int, side c4board.Player, into []move) (moveList, error) {
	list := moveList{moves: into[:0]}
	for _, col := range columns {
		if err := s.board.Move(col, side); err != nil {
			return list, err
		}
		score := s.evaluate()
		if err := s.board.Undo(col, side); err != nil {
			return list, err
		}
		s.stats.OrderingEvals++
		list.moves = append(list.moves, move{column: col, score: score})
	}
	return list, nil
}

func compareMoves(a, b move) int {
	switch {
	case a.score < b.score:
		return -1
	case a.score > b.score:
		return 1
	case a.column < b.column:
		return -1
	case a.column > b.column:
		return 1
	}
	return 0
}

// sort puts the most promising move for the side to move first.
func (ml *moveList) sort(maximizing bool) {
	if maximizing {
		slices.SortFunc(ml.moves, func(a, b move) int { return compareMoves(b, a) })
		return
	}
	slices.SortFunc(ml.moves, compareMoves)
}

// OrderMoves returns the playable columns in the order the search would try
// them for the given side.
func OrderMoves(b *c4board.Board, maximizing bool) ([]int, error) {
	s := &searcher{board: b}
	var buf [c4board.Width]int
	list, err := s.scoreMovesList(b.AppendValidMoves(buf[:0]), sideFor(maximizing), nil)
	if err != nil {
		return nil, err
	}
	list.sort(maximizing)
	out := make([]int, len(list.moves))
	for i, m := range list.moves {
		out[i] = m.column
	}
	return out, nil
}
