package bench

import (
	"testing"

	"connect4-engine/c4board"
	"connect4-engine/engine"
)

const midgame = "7/7/7/3O3/2OXX2/1XOXO2"

func benchSearch(b *testing.B, notation string, depth int, opts ...engine.Option) {
	board, err := c4board.ParseBoard(notation)
	if err != nil {
		b.Fatalf("ParseBoard: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := engine.Search(board, depth, true, opts...); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSearch_Empty_D4(b *testing.B) {
	benchSearch(b, c4board.StartPos, 4)
}

func BenchmarkSearch_Empty_D6(b *testing.B) {
	benchSearch(b, c4board.StartPos, 6)
}

func BenchmarkSearch_Midgame_D6(b *testing.B) {
	benchSearch(b, midgame, 6)
}

func BenchmarkSearch_Midgame_D6_Trace(b *testing.B) {
	benchSearch(b, midgame, 6, engine.WithTrace())
}

func BenchmarkOrderMoves(b *testing.B) {
	board, err := c4board.ParseBoard(midgame)
	if err != nil {
		b.Fatalf("ParseBoard: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := engine.OrderMoves(board, i%2 == 0); err != nil {
			b.Fatal(err)
		}
	}
}
