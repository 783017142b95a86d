package core

// Board geometry in screen cells.
const (
	CellWidth = 4 // horizontal cells per board column

	bannerMinWidth = 30
	bannerHeight   = 7
	buttonGap      = 4
)

// Button labels shown on the end-of-game banner.
const (
	RestartLabel = "[ Restart ]"
	QuitLabel    = "[ Quit ]"
)

// Layout describes where each part of the game view is drawn for a given
// screen size and board size. All coordinates are absolute screen cells.
//
// Vertical order: title, blank, preview row, board frame, column labels,
// blank, status line.
type Layout struct {
	Rows, Cols int

	TitleY   int
	PreviewY int
	Board    Rect // frame including the border
	LabelsY  int
	StatusY  int

	Banner  Rect
	Restart Rect
	Quit    Rect
}

// BoardSize returns the frame size of a rows x cols board.
func BoardSize(rows, cols int) (w, h int) {
	return cols*CellWidth + 3, rows + 2
}

// MinScreenSize returns the smallest screen that fits the whole view.
func MinScreenSize(rows, cols int) (w, h int) {
	bw, bh := BoardSize(rows, cols)
	return Max(bw, bannerMinWidth+2), bh + 7
}

// NewLayout centers the view on a screen of the given size.
// Parts that do not fit are clipped by the Screen when drawn.
func NewLayout(screenW, screenH, rows, cols int) Layout {
	bw, bh := BoardSize(rows, cols)
	_, needH := MinScreenSize(rows, cols)

	top := Max((screenH-needH)/2, 0)
	left := Max((screenW-bw)/2, 0)

	l := Layout{
		Rows:     rows,
		Cols:     cols,
		TitleY:   top,
		PreviewY: top + 2,
		Board:    NewRect(left, top+3, bw, bh),
	}
	l.LabelsY = l.Board.Bottom()
	l.StatusY = l.LabelsY + 2

	restartW := len(RestartLabel)
	quitW := len(QuitLabel)
	bannerW := Max(bannerMinWidth, restartW+quitW+buttonGap+4)
	bx := Max((screenW-bannerW)/2, 0)
	by := Max(l.Board.Y+(bh-bannerHeight)/2, 0)
	l.Banner = NewRect(bx, by, bannerW, bannerHeight)

	buttonsW := restartW + buttonGap + quitW
	btnX := bx + (bannerW-buttonsW)/2
	btnY := by + bannerHeight - 3
	l.Restart = NewRect(btnX, btnY, restartW, 1)
	l.Quit = NewRect(btnX+restartW+buttonGap, btnY, quitW, 1)

	return l
}

// DiscX returns the screen column where discs of board column col are drawn.
func (l Layout) DiscX(col int) int {
	return l.Board.X + 1 + col*CellWidth + CellWidth/2
}

// DiscY returns the screen row of board row row. Row 0 is the top row.
func (l Layout) DiscY(row int) int {
	return l.Board.Y + 1 + row
}

// ColumnAt maps a pointer position to a board column. Any y from the
// preview row down to the column labels selects the column under x.
func (l Layout) ColumnAt(x, y int) (int, bool) {
	if y < l.PreviewY || y > l.LabelsY {
		return 0, false
	}
	ox := x - (l.Board.X + 1)
	if ox < 0 || ox > l.Cols*CellWidth {
		return 0, false
	}
	return Min(ox/CellWidth, l.Cols-1), true
}
