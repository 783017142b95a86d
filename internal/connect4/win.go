package connect4

// ConnectN is the run length that wins the game.
const ConnectN = 4

// run counts contiguous cells owned by p starting one step away from
// (row, col) in direction (dRow, dCol). It stops at the edge of the grid
// and at the first cell p does not own.
func run(b *Board, row, col, dRow, dCol int, p Player) int {
	count := 0
	row += dRow
	col += dCol
	for b.inBounds(row, col) && b.Cell(row, col) == p {
		count++
		row += dRow
		col += dCol
	}
	return count
}

// horizontalRuns returns the runs to the left and right of (row, col).
func horizontalRuns(b *Board, row, col int, p Player) (left, right int) {
	return run(b, row, col, 0, -1, p), run(b, row, col, 0, 1, p)
}

// verticalRun returns the run below (row, col).
// Discs stack from the bottom, so the cells above the one just played are
// always empty. This only holds under gravity placement.
func verticalRun(b *Board, row, col int, p Player) (below int) {
	return run(b, row, col, 1, 0, p)
}

// backslashRuns returns the runs along the "\" diagonal.
func backslashRuns(b *Board, row, col int, p Player) (topLeft, bottomRight int) {
	return run(b, row, col, -1, -1, p), run(b, row, col, 1, 1, p)
}

// slashRuns returns the runs along the "/" diagonal.
func slashRuns(b *Board, row, col int, p Player) (topRight, bottomLeft int) {
	return run(b, row, col, -1, 1, p), run(b, row, col, 1, -1, p)
}

// IsWinningMove reports whether the disc p just placed at (row, col)
// completes a line of ConnectN or more. Only lines through that cell are
// examined.
func IsWinningMove(b *Board, row, col int, p Player) bool {
	const need = ConnectN - 1 // neighbours needed besides the played cell

	if l, r := horizontalRuns(b, row, col, p); l+r >= need {
		return true
	}
	if verticalRun(b, row, col, p) >= need {
		return true
	}
	if tl, br := backslashRuns(b, row, col, p); tl+br >= need {
		return true
	}
	if tr, bl := slashRuns(b, row, col, p); tr+bl >= need {
		return true
	}
	return false
}

// WinningLine returns the cells of the line completed by the disc at
// (row, col), or nil if the move did not win. Used to highlight the
// winning discs.
func WinningLine(b *Board, row, col int, p Player) [][2]int {
	axes := [][2]int{{0, 1}, {1, 0}, {1, 1}, {-1, 1}}
	for _, ax := range axes {
		dRow, dCol := ax[0], ax[1]
		back := run(b, row, col, -dRow, -dCol, p)
		fwd := run(b, row, col, dRow, dCol, p)
		if back+fwd < ConnectN-1 {
			continue
		}
		line := make([][2]int, 0, back+fwd+1)
		for i := -back; i <= fwd; i++ {
			line = append(line, [2]int{row + i*dRow, col + i*dCol})
		}
		return line
	}
	return nil
}
