package engine

import (
	"unsafe"

	"connect4-engine/c4board"
)

const clusterSize = 4

// EvalCache remembers EvaluateBoard results across searches. Entries are
// keyed on the full position, not just its hash, so a hit is always the
// score EvaluateBoard would return and caching never changes a search.
//
// An EvalCache is not safe for concurrent use.
type EvalCache struct {
	entries      []evalEntry
	clusterCount uint64
	age          uint8
}

type evalEntry struct {
	p1, p2 uint64
	score  int32
	age    uint8
	used   bool
}

// NewEvalCache allocates a cache of roughly sizeMB megabytes.
func NewEvalCache(sizeMB int) *EvalCache {
	c := &EvalCache{}
	entrySize := uint64(unsafe.Sizeof(evalEntry{}))
	totalBytes := uint64(sizeMB) * 1024 * 1024
	clusterCount := totalBytes / (entrySize * clusterSize)
	if clusterCount == 0 {
		clusterCount = 1
	}
	c.clusterCount = clusterCount
	c.entries = make([]evalEntry, clusterCount*clusterSize)
	return c
}

// Clear empties the cache.
func (c *EvalCache) Clear() {
	for i := range c.entries {
		c.entries[i] = evalEntry{}
	}
	c.age = 0
}

// NewSearch marks older entries as the first to be replaced.
func (c *EvalCache) NewSearch() {
	c.age++
}

func (c *EvalCache) cluster(b *c4board.Board) []evalEntry {
	base := (b.Hash() % c.clusterCount) * clusterSize
	return c.entries[base : base+clusterSize]
}

func (c *EvalCache) probe(b *c4board.Board) (int, bool) {
	p1, p2 := b.Mask(c4board.Player1), b.Mask(c4board.Player2)
	for _, e := range c.cluster(b) {
		if e.used && e.p1 == p1 && e.p2 == p2 {
			return int(e.score), true
		}
	}
	return 0, false
}

/*
Replacement: an entry for the same position is overwritten, then the first
free slot is taken, otherwise the entry from the oldest search goes.
*/
func (c *EvalCache) store(b *c4board.Board, score int) {
	p1, p2 := b.Mask(c4board.Player1), b.Mask(c4board.Player2)
	entries := c.cluster(b)

	target := -1
	for i := range entries {
		if entries[i].used && entries[i].p1 == p1 && entries[i].p2 == p2 {
			target = i
			break
		}
	}
	if target == -1 {
		for i := range entries {
			if !entries[i].used {
				target = i
				break
			}
		}
	}
	if target == -1 {
		target = 0
		oldest := c.age - entries[0].age
		for i := 1; i < len(entries); i++ {
			if d := c.age - entries[i].age; d > oldest {
				oldest = d
				target = i
			}
		}
	}

	entries[target] = evalEntry{p1: p1, p2: p2, score: int32(score), age: c.age, used: true}
}
