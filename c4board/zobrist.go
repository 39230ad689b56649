package c4board

import (
	"math/bits"
	"math/rand"
)

// Zobrist keys, one per player per cell.
var zobristCell [2][Cells]uint64

func init() {
	initZobrist()
}

func initZobrist() {
	// Fixed seed so hashes are stable between runs.
	rnd := rand.New(rand.NewSource(0xC4))
	for p := 0; p < 2; p++ {
		for sq := 0; sq < Cells; sq++ {
			zobristCell[p][sq] = rnd.Uint64()
		}
	}
}

// Hash returns the Zobrist hash of the stones on the board. The empty board
// hashes to zero. Whose turn it is is not part of the hash; in Connect Four
// it follows from the stone counts.
func (b *Board) Hash() uint64 {
	var key uint64
	for p := 0; p < 2; p++ {
		for m := b.masks[p]; m != 0; m &= m - 1 {
			key ^= zobristCell[p][bits.TrailingZeros64(m)]
		}
	}
	return key
}
