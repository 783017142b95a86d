// Package connect4 implements the Connect Four rules: the grid, gravity,
// move legality, turn order and win/draw detection.
// It has no UI or storage dependencies; the platform layer drives it.
package connect4

import (
	"errors"
	"fmt"
)

// Default board dimensions.
const (
	DefaultRows = 6
	DefaultCols = 7
)

// Errors returned by the engine. Match them with errors.Is.
var (
	ErrInvalidColumn     = errors.New("connect4: invalid column")
	ErrIllegalMove       = errors.New("connect4: illegal move")
	ErrGameAlreadyOver   = errors.New("connect4: game already over")
	ErrInvalidDimensions = errors.New("connect4: invalid board dimensions")
)

// Player identifies who owns a cell. None marks an empty cell.
type Player uint8

const (
	None Player = iota
	Player1
	Player2
)

// Other returns the opponent. None has no opponent and returns None.
func (p Player) Other() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return None
	}
}

// String returns a human-readable name for the player.
func (p Player) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return "None"
	}
}

// Board is a rows x cols grid. Row 0 is the top row; discs fall towards
// row rows-1.
type Board struct {
	rows  int
	cols  int
	cells []Player // row-major
}

// NewBoard creates an empty board.
func NewBoard(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Player, rows*cols),
	}, nil
}

// Rows returns the number of rows.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the number of columns.
func (b *Board) Cols() int {
	return b.cols
}

// inBounds reports whether (row, col) lies on the grid.
func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// Cell returns the owner of a cell. Out-of-range coordinates return None.
func (b *Board) Cell(row, col int) Player {
	if !b.inBounds(row, col) {
		return None
	}
	return b.cells[row*b.cols+col]
}

// IsColumnPlayable reports whether a disc can still be dropped into col.
func (b *Board) IsColumnPlayable(col int) (bool, error) {
	if col < 0 || col >= b.cols {
		return false, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidColumn, col, b.cols)
	}
	return b.cells[col] == None, nil
}

// NextOpenRow returns the lowest empty row in col.
// ok is false when the column is full or col is out of range.
func (b *Board) NextOpenRow(col int) (row int, ok bool) {
	if col < 0 || col >= b.cols {
		return -1, false
	}
	for row = b.rows - 1; row >= 0; row-- {
		if b.cells[row*b.cols+col] == None {
			return row, true
		}
	}
	return -1, false
}

// Place sets a single cell. The caller supplies a valid empty cell.
func (b *Board) Place(row, col int, p Player) {
	b.cells[row*b.cols+col] = p
}

// HasPlayableColumn reports whether any column still has room.
func (b *Board) HasPlayableColumn() bool {
	for col := 0; col < b.cols; col++ {
		if b.cells[col] == None {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Player, len(b.cells))
	copy(cells, b.cells)
	return &Board{rows: b.rows, cols: b.cols, cells: cells}
}

// Grid returns the board as a fresh [row][col] slice.
func (b *Board) Grid() [][]Player {
	grid := make([][]Player, b.rows)
	for row := range grid {
		grid[row] = make([]Player, b.cols)
		copy(grid[row], b.cells[row*b.cols:(row+1)*b.cols])
	}
	return grid
}
