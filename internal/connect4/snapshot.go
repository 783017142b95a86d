package connect4

// Snapshot captures the complete game state for rendering and tests.
// It shares no memory with the engine.
type Snapshot struct {
	Rows     int
	Cols     int
	Grid     [][]Player
	Current  Player
	State    State
	Moves    int
	LastMove *Move
}

// Snapshot returns a copy of the current game state.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Rows:    e.board.rows,
		Cols:    e.board.cols,
		Grid:    e.board.Grid(),
		Current: e.current,
		State:   e.state,
		Moves:   len(e.moves),
	}
	if last, ok := e.LastMove(); ok {
		s.LastMove = &last
	}
	return s
}

// PlayableColumns returns the columns that can still take a disc.
func (s Snapshot) PlayableColumns() []int {
	var cols []int
	if s.Rows == 0 {
		return cols
	}
	for col := 0; col < s.Cols; col++ {
		if s.Grid[0][col] == None {
			cols = append(cols, col)
		}
	}
	return cols
}
