package engine

import (
	"errors"
	"math"

	"connect4-engine/c4board"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	// Infinity bounds the default alpha-beta window. No reachable score
	// comes close to it.
	Infinity = math.MaxInt32

	// TerminalMultiplier scales the line-count difference of a full board so
	// finished games outrank any heuristic score.
	TerminalMultiplier = 1_000_000

	// NoColumn is returned when there is nothing to play: a full board or a
	// depth-0 search.
	NoColumn = -1
)

var (
	ErrInvalidDepth = errors.New("search depth must not be negative")
	ErrNilBoard     = errors.New("nil board")
)

// Result is the outcome of a search.
type Result struct {
	Column int         // chosen column, NoColumn at a leaf
	Score  int         // positive favours player 2
	Trace  *SearchNode // nil unless WithTrace was given
	Stats  Stats
}

type options struct {
	alpha, beta int
	trace       bool
	cache       *EvalCache
}

// Option customises a Search call.
type Option func(*options)

// WithWindow sets the initial alpha-beta bounds. The defaults are
// -Infinity and +Infinity.
func WithWindow(alpha, beta int) Option {
	return func(o *options) {
		o.alpha = alpha
		o.beta = beta
	}
}

// WithTrace records the explored tree in Result.Trace. Tracing never changes
// the chosen column or score.
func WithTrace() Option {
	return func(o *options) {
		o.trace = true
	}
}

// WithEvalCache reuses static evaluations stored in c and adds new ones.
func WithEvalCache(c *EvalCache) Option {
	return func(o *options) {
		o.cache = c
	}
}

type searcher struct {
	board *c4board.Board
	trace bool
	cache *EvalCache
	stats Stats
}

func (s *searcher) evaluate() int {
	if s.cache == nil {
		return EvaluateBoard(s.board)
	}
	if score, ok := s.cache.probe(s.board); ok {
		s.stats.CacheHits++
		return score
	}
	score := EvaluateBoard(s.board)
	s.cache.store(s.board, score)
	return score
}

// TerminalScore scores a finished game: the line-count difference, player 2
// minus player 1, times TerminalMultiplier.
func TerminalScore(b *c4board.Board) int {
	return (b.CountLines(c4board.Player2) - b.CountLines(c4board.Player1)) * TerminalMultiplier
}

// Search runs a depth-limited minimax with alpha-beta pruning from b.
//
// When maximizing, the side to move is player 2 and looks for the highest
// score; otherwise player 1 looks for the lowest. The board is mutated during
// the search and restored before Search returns; nothing else may touch it
// in the meantime.
func Search(b *c4board.Board, depth int, maximizing bool, opts ...Option) (Result, error) {
	if b == nil {
		return Result{Column: NoColumn}, ErrNilBoard
	}
	if depth < 0 {
		return Result{Column: NoColumn}, ErrInvalidDepth
	}

	o := options{alpha: -Infinity, beta: Infinity}
	for _, opt := range opts {
		opt(&o)
	}

	if o.cache != nil {
		o.cache.NewSearch()
	}
	s := &searcher{board: b, trace: o.trace, cache: o.cache}
	col, score, node, err := s.minimax(depth, o.alpha, o.beta, maximizing)
	if err != nil {
		return Result{Column: NoColumn, Stats: s.stats}, err
	}
	return Result{Column: col, Score: score, Trace: node, Stats: s.stats}, nil
}

// AlphaBeta is Search with every parameter spelled out.
func AlphaBeta(b *c4board.Board, depth, alpha, beta int, maximizing, withTrace bool) (Result, error) {
	opts := []Option{WithWindow(alpha, beta)}
	if withTrace {
		opts = append(opts, WithTrace())
	}
	return Search(b, depth, maximizing, opts...)
}

func (s *searcher) leaf(score int) *SearchNode {
	if !s.trace {
		return nil
	}
	return &SearchNode{Move: NoColumn, Score: score}
}

func (s *searcher) minimax(depth, alpha, beta int, maximizing bool) (int, int, *SearchNode, error) {
	s.stats.Nodes++

	var colBuf [c4board.Width]int
	columns := s.board.AppendValidMoves(colBuf[:0])

	if len(columns) == 0 {
		s.stats.Terminals++
		score := TerminalScore(s.board)
		return NoColumn, score, s.leaf(score), nil
	}

	if depth == 0 {
		s.stats.Evaluations++
		score := s.evaluate()
		return NoColumn, score, s.leaf(score), nil
	}

	side := sideFor(maximizing)
	var moveBuf [c4board.Width]move
	moveList, err := s.scoreMovesList(columns, side, moveBuf[:0])
	if err != nil {
		return NoColumn, 0, nil, err
	}
	moveList.sort(maximizing)

	bestCol := moveList.moves[0].column
	bestScore := Infinity
	if maximizing {
		bestScore = -Infinity
	}

	var node *SearchNode
	if s.trace {
		node = &SearchNode{Children: make([]*SearchNode, 0, len(moveList.moves))}
	}

	for _, m := range moveList.moves {
		if err := s.board.Move(m.column, side); err != nil {
			return NoColumn, 0, nil, err
		}
		_, score, child, err := s.minimax(depth-1, alpha, beta, !maximizing)
		if undoErr := s.board.Undo(m.column, side); err == nil {
			err = undoErr
		}
		if err != nil {
			return NoColumn, 0, nil, err
		}

		if node != nil {
			child.Move = m.column
			node.Children = append(node.Children, child)
		}

		if maximizing {
			if score > bestScore {
				bestScore = score
				bestCol = m.column
			}
			alpha = Max(alpha, score)
		} else {
			if score < bestScore {
				bestScore = score
				bestCol = m.column
			}
			beta = Min(beta, score)
		}

		if beta <= alpha {
			s.stats.Cutoffs++
			break
		}
	}

	if node != nil {
		node.Move = bestCol
		node.Score = bestScore
	}
	return bestCol, bestScore, node, nil
}
