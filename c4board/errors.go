package c4board

import (
	"errors"
	"fmt"
)

// Sentinel errors. Match them with errors.Is; the board wraps them in a
// *MoveError carrying the column and player.
var (
	ErrInvalidColumn = errors.New("invalid column")
	ErrColumnFull    = errors.New("column is full")
	ErrColumnEmpty   = errors.New("column is empty")
	ErrInvalidPlayer = errors.New("invalid player")
	ErrInvalidBoard  = errors.New("invalid board notation")
	ErrNoHistory     = errors.New("no move to take back")
	ErrGameOver      = errors.New("game is over")
)

// MoveError reports a rejected Move or Undo.
type MoveError struct {
	Op     string // "move" or "undo"
	Column int
	Player Player
	Err    error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("%s column %d (%v): %v", e.Op, e.Column, e.Player, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}
