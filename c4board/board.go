package c4board

import "math/bits"

const (
	Width  = 7
	Height = 6
	Cells  = Width * Height
)

// Player identifies the owner of a stone. Player1 moves first.
type Player uint8

const (
	NoPlayer Player = 0
	Player1  Player = 1
	Player2  Player = 2
)

// Other returns the opposing player. NoPlayer maps to itself.
func (p Player) Other() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return NoPlayer
	}
}

// Valid reports whether p is Player1 or Player2.
func (p Player) Valid() bool { return p == Player1 || p == Player2 }

func (p Player) String() string {
	switch p {
	case Player1:
		return "player 1"
	case Player2:
		return "player 2"
	default:
		return "nobody"
	}
}

// Move is a column drop by a player. The board never stores these; callers
// keep them for their own undo bookkeeping.
type Move struct {
	Column int
	Player Player
}

// Board is the packed occupancy state of a 6x7 grid. Each player owns one
// 42-bit mask, bit row*7+col, row 0 at the bottom.
//
// The zero value is an empty board. A Board is not safe for concurrent use;
// search mutates it in place.
type Board struct {
	masks [2]uint64
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// Reset clears both players' stones.
func (b *Board) Reset() {
	b.masks[0] = 0
	b.masks[1] = 0
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

func bit(row, col int) uint64 {
	return uint64(1) << uint(row*Width+col)
}

// Mask returns the occupancy mask of p. Unknown players get an empty mask.
func (b *Board) Mask(p Player) uint64 {
	if !p.Valid() {
		return 0
	}
	return b.masks[p-1]
}

// Occupied returns the union of both players' masks.
func (b *Board) Occupied() uint64 {
	return b.masks[0] | b.masks[1]
}

// Count returns the number of stones on the board.
func (b *Board) Count() int {
	return bits.OnesCount64(b.Occupied())
}

// PieceAt returns the owner of the cell, or NoPlayer when it is empty or
// off the grid.
func (b *Board) PieceAt(row, col int) Player {
	if row < 0 || row >= Height || col < 0 || col >= Width {
		return NoPlayer
	}
	sq := bit(row, col)
	if b.masks[0]&sq != 0 {
		return Player1
	}
	if b.masks[1]&sq != 0 {
		return Player2
	}
	return NoPlayer
}

// Height returns the row the next stone in col would land on, or Height (6)
// if the column is full. col must be in [0, Width); hot paths rely on the
// caller having checked it.
func (b *Board) Height(col int) int {
	occ := b.Occupied()
	for row := 0; row < Height; row++ {
		if occ&bit(row, col) == 0 {
			return row
		}
	}
	return Height
}

// ValidMoves returns the playable columns in ascending order.
func (b *Board) ValidMoves() []int {
	return b.AppendValidMoves(make([]int, 0, Width))
}

// AppendValidMoves appends the playable columns to dst in ascending order.
func (b *Board) AppendValidMoves(dst []int) []int {
	for col := 0; col < Width; col++ {
		if b.Height(col) < Height {
			dst = append(dst, col)
		}
	}
	return dst
}

// IsFull reports whether no column can take another stone.
func (b *Board) IsFull() bool {
	for col := 0; col < Width; col++ {
		if b.Height(col) < Height {
			return false
		}
	}
	return true
}

func checkColumn(op string, col int, p Player) error {
	if col < 0 || col >= Width {
		return &MoveError{Op: op, Column: col, Player: p, Err: ErrInvalidColumn}
	}
	if !p.Valid() {
		return &MoveError{Op: op, Column: col, Player: p, Err: ErrInvalidPlayer}
	}
	return nil
}

// Move drops a stone for p into col. The board is left untouched when an
// error is returned.
func (b *Board) Move(col int, p Player) error {
	if err := checkColumn("move", col, p); err != nil {
		return err
	}
	h := b.Height(col)
	if h == Height {
		return &MoveError{Op: "move", Column: col, Player: p, Err: ErrColumnFull}
	}
	b.masks[p-1] |= bit(h, col)
	return nil
}

// Undo removes the top stone of col from p's mask.
//
// p must own that stone. This is not verified: undoing with the wrong player
// leaves a hole under the opponent's stone and breaks the gravity invariant.
func (b *Board) Undo(col int, p Player) error {
	if err := checkColumn("undo", col, p); err != nil {
		return err
	}
	h := b.Height(col)
	if h == 0 {
		return &MoveError{Op: "undo", Column: col, Player: p, Err: ErrColumnEmpty}
	}
	b.masks[p-1] &^= bit(h-1, col)
	return nil
}

// Apply plays col for p and returns the matching undo.
func (b *Board) Apply(col int, p Player) (func(), error) {
	if err := b.Move(col, p); err != nil {
		return nil, err
	}
	return func() {
		_ = b.Undo(col, p)
	}, nil
}

// Validate checks the board invariants: the masks are disjoint, no bits are
// set above the grid, and every column is filled from the bottom without gaps.
func (b *Board) Validate() bool {
	if b.masks[0]&b.masks[1] != 0 {
		return false
	}
	occ := b.Occupied()
	if occ&^gridMask != 0 {
		return false
	}
	for col := 0; col < Width; col++ {
		h := b.Height(col)
		for row := h; row < Height; row++ {
			if occ&bit(row, col) != 0 {
				return false
			}
		}
	}
	return true
}
