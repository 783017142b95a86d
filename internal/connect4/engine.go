package connect4

import "fmt"

// Status is the phase of a game.
type Status int

const (
	InProgress Status = iota
	Won
	Draw
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// State is the result state of a game. Winner is only set when Status is Won.
type State struct {
	Status Status
	Winner Player
}

// Terminal reports whether the game has ended.
func (s State) Terminal() bool {
	return s.Status == Won || s.Status == Draw
}

// Move is a disc placed by a successful Drop.
type Move struct {
	Row    int
	Col    int
	Player Player
}

// Engine runs one game of Connect Four.
// It is not safe for concurrent use; callers that share an engine across
// goroutines must serialize every call.
type Engine struct {
	board   *Board
	current Player
	state   State
	moves   []Move
}

// New creates a game on an empty rows x cols board with Player1 to move.
func New(rows, cols int) (*Engine, error) {
	board, err := NewBoard(rows, cols)
	if err != nil {
		return nil, err
	}
	return &Engine{
		board:   board,
		current: Player1,
		state:   State{Status: InProgress},
	}, nil
}

// NewDefault creates a game on the standard 6x7 board.
func NewDefault() *Engine {
	e, err := New(DefaultRows, DefaultCols)
	if err != nil {
		panic(err) // unreachable with the default dimensions
	}
	return e
}

// Reset starts a new game with the same dimensions.
func (e *Engine) Reset() {
	fresh, err := New(e.board.rows, e.board.cols)
	if err != nil {
		panic(err) // dimensions were validated when e was built
	}
	*e = *fresh
}

// Rows returns the number of board rows.
func (e *Engine) Rows() int {
	return e.board.rows
}

// Cols returns the number of board columns.
func (e *Engine) Cols() int {
	return e.board.cols
}

// Cell returns the owner of a cell.
func (e *Engine) Cell(row, col int) Player {
	return e.board.Cell(row, col)
}

// CurrentPlayer returns the player to move. After a win it is the winner.
func (e *Engine) CurrentPlayer() Player {
	return e.current
}

// State returns the current game state.
func (e *Engine) State() State {
	return e.state
}

// IsColumnPlayable reports whether col can take another disc.
func (e *Engine) IsColumnPlayable(col int) (bool, error) {
	return e.board.IsColumnPlayable(col)
}

// Drop drops the current player's disc into col and returns the row it
// landed in together with the resulting state. On error nothing changes.
func (e *Engine) Drop(col int) (int, State, error) {
	if e.state.Terminal() {
		return -1, e.state, ErrGameAlreadyOver
	}

	playable, err := e.board.IsColumnPlayable(col)
	if err != nil {
		return -1, e.state, fmt.Errorf("%w: %w", ErrIllegalMove, err)
	}
	if !playable {
		return -1, e.state, fmt.Errorf("%w: column %d is full", ErrIllegalMove, col)
	}

	row, ok := e.board.NextOpenRow(col)
	if !ok {
		return -1, e.state, fmt.Errorf("%w: column %d is full", ErrIllegalMove, col)
	}

	p := e.current
	e.board.Place(row, col, p)
	e.moves = append(e.moves, Move{Row: row, Col: col, Player: p})

	switch {
	case IsWinningMove(e.board, row, col, p):
		e.state = State{Status: Won, Winner: p}
	case !e.board.HasPlayableColumn():
		e.state = State{Status: Draw}
	default:
		e.current = p.Other()
	}

	return row, e.state, nil
}

// LastMove returns the most recent move, if any.
func (e *Engine) LastMove() (Move, bool) {
	if len(e.moves) == 0 {
		return Move{}, false
	}
	return e.moves[len(e.moves)-1], true
}

// Moves returns a copy of the moves played so far.
func (e *Engine) Moves() []Move {
	out := make([]Move, len(e.moves))
	copy(out, e.moves)
	return out
}

// WinningLine returns the cells of the winning line once the game is won.
func (e *Engine) WinningLine() [][2]int {
	if e.state.Status != Won {
		return nil
	}
	last, ok := e.LastMove()
	if !ok {
		return nil
	}
	return WinningLine(e.board, last.Row, last.Col, last.Player)
}
