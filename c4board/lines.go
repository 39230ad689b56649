package c4board

import "math/bits"

// VerticalLineWeight is how much a vertical four counts in CountLines
// relative to the other three directions. Used downstream as a tiebreak
// between otherwise equal final positions.
const VerticalLineWeight = 11

// Start-cell masks: a bit is set where a four in that direction fits.
var (
	gridMask       uint64
	horizontalMask uint64 // (0,+1)
	verticalMask   uint64 // (+1,0)
	diagUpMask     uint64 // (+1,+1)
	diagDownMask   uint64 // (+1,-1), i.e. a falling diagonal read right to left
)

func init() {
	initLineMasks()
}

func initLineMasks() {
	for row := 0; row < Height; row++ {
		for col := 0; col < Width; col++ {
			sq := bit(row, col)
			gridMask |= sq
			if col+3 < Width {
				horizontalMask |= sq
			}
			if row+3 < Height {
				verticalMask |= sq
			}
			if row+3 < Height && col+3 < Width {
				diagUpMask |= sq
			}
			if row+3 < Height && col-3 >= 0 {
				diagDownMask |= sq
			}
		}
	}
}

// runs returns the start cells of every four-in-a-row of m along shift.
func runs(m uint64, shift uint, start uint64) uint64 {
	return m & (m >> shift) & (m >> (2 * shift)) & (m >> (3 * shift)) & start
}

// CountLines counts every length-4 run of p's stones. A run of five counts
// twice, six three times. Vertical runs are weighted by VerticalLineWeight.
func (b *Board) CountLines(p Player) int {
	m := b.Mask(p)
	if m == 0 {
		return 0
	}
	count := bits.OnesCount64(runs(m, 1, horizontalMask))
	count += VerticalLineWeight * bits.OnesCount64(runs(m, Width, verticalMask))
	count += bits.OnesCount64(runs(m, Width+1, diagUpMask))
	count += bits.OnesCount64(runs(m, Width-1, diagDownMask))
	return count
}
