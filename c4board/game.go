package c4board

// Game is the caller-owned state of one match: the board, whose turn it is
// and the moves played so far. The search engine never sees a Game, only its
// Board.
type Game struct {
	board   *Board
	toMove  Player
	history []Move
}

// NewGame returns an empty game with Player1 to move.
func NewGame() *Game {
	return &Game{
		board:   NewBoard(),
		toMove:  Player1,
		history: make([]Move, 0, Cells),
	}
}

// NewGameFrom starts a game from an existing position. The history is empty,
// so TakeBack cannot go behind the given position.
func NewGameFrom(b *Board, toMove Player) *Game {
	if !toMove.Valid() {
		toMove = Player1
	}
	return &Game{
		board:   b.Clone(),
		toMove:  toMove,
		history: make([]Move, 0, Cells),
	}
}

// Board returns the live board. Callers must not mutate it directly.
func (g *Game) Board() *Board { return g.board }

// ToMove reports whose turn it is.
func (g *Game) ToMove() Player { return g.toMove }

// History returns a copy of the moves played, oldest first.
func (g *Game) History() []Move {
	out := make([]Move, len(g.history))
	copy(out, g.history)
	return out
}

// Ply returns the number of moves played since the game started.
func (g *Game) Ply() int { return len(g.history) }

// Play drops a stone for the side to move and passes the turn.
func (g *Game) Play(col int) error {
	if g.Over() {
		return ErrGameOver
	}
	if err := g.board.Move(col, g.toMove); err != nil {
		return err
	}
	g.history = append(g.history, Move{Column: col, Player: g.toMove})
	g.toMove = g.toMove.Other()
	return nil
}

// TakeBack undoes the last move and gives the turn back to its player.
func (g *Game) TakeBack() (Move, error) {
	if len(g.history) == 0 {
		return Move{}, ErrNoHistory
	}
	last := g.history[len(g.history)-1]
	if err := g.board.Undo(last.Column, last.Player); err != nil {
		return Move{}, err
	}
	g.history = g.history[:len(g.history)-1]
	g.toMove = last.Player
	return last, nil
}

// Restart clears the board and history.
func (g *Game) Restart() {
	g.board.Reset()
	g.toMove = Player1
	g.history = g.history[:0]
}

// Over reports whether the board has no playable column left. Games are
// decided by comparing line counts on the full board.
func (g *Game) Over() bool {
	return g.board.IsFull()
}

// Scores returns CountLines for both players.
func (g *Game) Scores() (p1, p2 int) {
	return g.board.CountLines(Player1), g.board.CountLines(Player2)
}

// Winner returns the player with more lines once the game is over, or
// NoPlayer for a draw or an unfinished game.
func (g *Game) Winner() Player {
	if !g.Over() {
		return NoPlayer
	}
	p1, p2 := g.Scores()
	switch {
	case p1 > p2:
		return Player1
	case p2 > p1:
		return Player2
	default:
		return NoPlayer
	}
}
