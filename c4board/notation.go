package c4board

import (
	"fmt"
	"strings"
)

// StartPos is the notation of the empty board.
const StartPos = "7/7/7/7/7/7"

// stoneFromChar converts a notation character to the owning player.
func stoneFromChar(ch rune) (Player, bool) {
	switch ch {
	case 'X', 'x':
		return Player1, true
	case 'O', 'o':
		return Player2, true
	case '.':
		return NoPlayer, true
	default:
		return NoPlayer, false
	}
}

// charFromStone converts a player to its notation character.
func charFromStone(p Player) byte {
	switch p {
	case Player1:
		return 'X'
	case Player2:
		return 'O'
	default:
		return '.'
	}
}

// ParseBoard reads a position in row notation: six rows from the top down,
// separated by '/'. Each row lists its seven cells left to right as 'X'
// (player 1), 'O' (player 2) or '.' (empty); a digit 1-7 stands for that many
// empty cells. Positions with floating stones are rejected.
func ParseBoard(s string) (*Board, error) {
	rows := strings.Split(strings.TrimSpace(s), "/")
	if len(rows) != Height {
		return nil, fmt.Errorf("%w: want %d rows, got %d", ErrInvalidBoard, Height, len(rows))
	}

	b := &Board{}
	for i, rowStr := range rows {
		row := Height - 1 - i
		col := 0
		for _, ch := range rowStr {
			if ch >= '1' && ch <= '7' {
				col += int(ch - '0')
				continue
			}
			p, ok := stoneFromChar(ch)
			if !ok {
				return nil, fmt.Errorf("%w: unexpected %q in row %d", ErrInvalidBoard, ch, i+1)
			}
			if col >= Width {
				return nil, fmt.Errorf("%w: too many cells in row %d", ErrInvalidBoard, i+1)
			}
			if p != NoPlayer {
				b.masks[p-1] |= bit(row, col)
			}
			col++
		}
		if col != Width {
			return nil, fmt.Errorf("%w: row %d has %d cells", ErrInvalidBoard, i+1, col)
		}
	}

	if !b.Validate() {
		return nil, fmt.Errorf("%w: stones must rest on the bottom or another stone", ErrInvalidBoard)
	}
	return b, nil
}

// Notation returns the row notation of the board. Runs of empty cells are
// written as digits, so the empty board is StartPos.
func (b *Board) Notation() string {
	var sb strings.Builder
	for row := Height - 1; row >= 0; row-- {
		empty := 0
		for col := 0; col < Width; col++ {
			p := b.PieceAt(row, col)
			if p == NoPlayer {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(charFromStone(p))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// String draws the board as a grid, top row first, with column indices
// underneath.
func (b *Board) String() string {
	var sb strings.Builder
	for row := Height - 1; row >= 0; row-- {
		for col := 0; col < Width; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(charFromStone(b.PieceAt(row, col)))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("0 1 2 3 4 5 6")
	return sb.String()
}
