package c4board

// Perft counts the move sequences of exactly depth plies from b, with toMove
// playing first. The board is restored before it returns.
func Perft(b *Board, depth int, toMove Player) uint64 {
	if !toMove.Valid() || depth < 0 {
		return 0
	}
	if depth == 0 {
		return 1
	}
	var buf [Width]int
	var nodes uint64
	for _, col := range b.AppendValidMoves(buf[:0]) {
		if depth == 1 {
			nodes++
			continue
		}
		// cannot fail: col came from AppendValidMoves
		_ = b.Move(col, toMove)
		nodes += Perft(b, depth-1, toMove.Other())
		_ = b.Undo(col, toMove)
	}
	return nodes
}

// PerftDivide reports Perft per root column.
func PerftDivide(b *Board, depth int, toMove Player) map[int]uint64 {
	out := make(map[int]uint64, Width)
	if !toMove.Valid() || depth < 1 {
		return out
	}
	for _, col := range b.ValidMoves() {
		_ = b.Move(col, toMove)
		out[col] = Perft(b, depth-1, toMove.Other())
		_ = b.Undo(col, toMove)
	}
	return out
}
