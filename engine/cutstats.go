package engine

import (
	"fmt"
	"io"
)

// Stats counts what a search did. It is bookkeeping only: the search reads
// none of it.
type Stats struct {
	Nodes         uint64 // positions entered
	Evaluations   uint64 // depth-limit leaves scored by EvaluateBoard
	Terminals     uint64 // full-board leaves scored by line count
	Cutoffs       uint64 // sibling loops stopped by beta <= alpha
	OrderingEvals uint64 // static evaluations spent on move ordering
	CacheHits     uint64 // evaluations answered by an EvalCache
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Nodes += o.Nodes
	s.Evaluations += o.Evaluations
	s.Terminals += o.Terminals
	s.Cutoffs += o.Cutoffs
	s.OrderingEvals += o.OrderingEvals
	s.CacheHits += o.CacheHits
}

// Dump writes the counters in the front end's "info string" style.
func (s Stats) Dump(w io.Writer) {
	fmt.Fprintln(w, "info string Search statistics:")
	fmt.Fprintf(w, "info string   Nodes: %d\n", s.Nodes)
	fmt.Fprintf(w, "info string   Evaluations: %d\n", s.Evaluations)
	fmt.Fprintf(w, "info string   Terminal positions: %d\n", s.Terminals)
	fmt.Fprintf(w, "info string   Cutoffs: %d\n", s.Cutoffs)
	fmt.Fprintf(w, "info string   Ordering evaluations: %d\n", s.OrderingEvals)
	if s.CacheHits > 0 {
		fmt.Fprintf(w, "info string   Eval cache hits: %d\n", s.CacheHits)
	}
}
