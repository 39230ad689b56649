package engine

import (
	"time"

	"github.com/rs/zerolog"

	"connect4-engine/c4board"
)

// DeepenResult is the deepest search that finished inside the budget. Its
// Stats cover every iteration that ran, not only the one reported.
type DeepenResult struct {
	Result
	Depth   int
	Elapsed time.Duration // wall time of all iterations, including discarded ones
}

// TimeHandler runs fixed-depth searches at increasing depth until the budget
// is spent. A search is never interrupted: the budget is only checked
// between complete iterations, so the last one may overrun it. An iteration
// that finishes after the deadline is discarded unless it is the first.
type TimeHandler struct {
	Budget time.Duration // zero means no limit
	Logger zerolog.Logger
	Cache  *EvalCache // optional, shared by all iterations

	start time.Time
	last  time.Duration
}

// NewTimeHandler returns a handler with the given budget and a silent logger.
func NewTimeHandler(budget time.Duration) *TimeHandler {
	return &TimeHandler{Budget: budget, Logger: zerolog.Nop()}
}

func (th *TimeHandler) elapsed() time.Duration {
	return time.Since(th.start)
}

func (th *TimeHandler) timeUp() bool {
	return th.Budget > 0 && th.elapsed() >= th.Budget
}

// shouldStopEarly predicts whether the next iteration can finish in time.
// Each ply multiplies the work by roughly the number of playable columns.
func (th *TimeHandler) shouldStopEarly(branching int) bool {
	if th.Budget <= 0 || th.last == 0 {
		return false
	}
	return th.elapsed()+th.last*time.Duration(Max(branching, 1)) > th.Budget
}

// Deepen searches b at depths 1..maxDepth and returns the deepest completed
// result. maxDepth 0 performs the single depth-0 evaluation.
func (th *TimeHandler) Deepen(b *c4board.Board, maxDepth int, maximizing bool) (DeepenResult, error) {
	if b == nil {
		return DeepenResult{Result: Result{Column: NoColumn}}, ErrNilBoard
	}
	if maxDepth < 0 {
		return DeepenResult{Result: Result{Column: NoColumn}}, ErrInvalidDepth
	}

	th.start = time.Now()
	th.last = 0

	var opts []Option
	if th.Cache != nil {
		opts = append(opts, WithEvalCache(th.Cache))
	}

	if maxDepth == 0 {
		r, err := Search(b, 0, maximizing, opts...)
		return DeepenResult{Result: r, Elapsed: th.elapsed()}, err
	}

	var best DeepenResult
	var total Stats
	branching := len(b.ValidMoves())

	for depth := 1; depth <= maxDepth; depth++ {
		if depth > 1 && (th.timeUp() || th.shouldStopEarly(branching)) {
			break
		}

		iterStart := time.Now()
		r, err := Search(b, depth, maximizing, opts...)
		th.last = time.Since(iterStart)
		total.Add(r.Stats)
		if err != nil {
			return best, err
		}

		if depth > 1 && th.timeUp() {
			th.Logger.Debug().
				Int("depth", depth).
				Dur("iteration", th.last).
				Msg("iteration-over-budget-discarded")
			break
		}

		best.Result = r
		best.Depth = depth
		th.Logger.Debug().
			Int("depth", depth).
			Int("column", r.Column).
			Int("score", r.Score).
			Uint64("nodes", r.Stats.Nodes).
			Uint64("cache-hits", r.Stats.CacheHits).
			Dur("iteration", th.last).
			Msg("deepening-iteratively")

		if r.Column == NoColumn {
			break
		}
	}

	best.Stats = total
	best.Elapsed = th.elapsed()
	return best, nil
}
