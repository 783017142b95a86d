package core

import "testing"

func TestBoardSize(t *testing.T) {
	w, h := BoardSize(6, 7)
	if w != 31 || h != 8 {
		t.Errorf("BoardSize(6, 7) = %dx%d, expected 31x8", w, h)
	}

	w, h = MinScreenSize(6, 7)
	if w != 32 || h != 15 {
		t.Errorf("MinScreenSize(6, 7) = %dx%d, expected 32x15", w, h)
	}

	w, h = MinScreenSize(16, 16)
	if w != 67 || h != 25 {
		t.Errorf("MinScreenSize(16, 16) = %dx%d, expected 67x25", w, h)
	}
}

func TestLayoutCentered(t *testing.T) {
	l := NewLayout(80, 24, 6, 7)

	// needH = 15, top = (24-15)/2 = 4; bw = 31, left = (80-31)/2 = 24
	if l.TitleY != 4 {
		t.Errorf("TitleY = %d, expected 4", l.TitleY)
	}
	if l.PreviewY != 6 {
		t.Errorf("PreviewY = %d, expected 6", l.PreviewY)
	}
	if l.Board != NewRect(24, 7, 31, 8) {
		t.Errorf("Board = %+v", l.Board)
	}
	if l.LabelsY != 15 {
		t.Errorf("LabelsY = %d, expected 15", l.LabelsY)
	}
	if l.StatusY != 17 {
		t.Errorf("StatusY = %d, expected 17", l.StatusY)
	}
	if l.StatusY >= 24 {
		t.Error("status line falls off the screen")
	}
}

func TestLayoutSmallScreenClampsToOrigin(t *testing.T) {
	l := NewLayout(10, 5, 6, 7)
	if l.Board.X != 0 || l.TitleY != 0 {
		t.Errorf("Board.X = %d, TitleY = %d, expected 0, 0", l.Board.X, l.TitleY)
	}
}

func TestLayoutDiscPositions(t *testing.T) {
	l := NewLayout(80, 24, 6, 7)

	if x := l.DiscX(0); x != l.Board.X+3 {
		t.Errorf("DiscX(0) = %d, expected %d", x, l.Board.X+3)
	}
	if x := l.DiscX(6); x != l.Board.Right()-4 {
		t.Errorf("DiscX(6) = %d, expected %d", x, l.Board.Right()-4)
	}
	if y := l.DiscY(0); y != l.Board.Y+1 {
		t.Errorf("DiscY(0) = %d, expected %d", y, l.Board.Y+1)
	}
	if y := l.DiscY(5); y != l.Board.Bottom()-2 {
		t.Errorf("DiscY(5) = %d, expected %d", y, l.Board.Bottom()-2)
	}
}

func TestLayoutColumnAt(t *testing.T) {
	l := NewLayout(80, 24, 6, 7)

	// Every disc position maps back to its own column.
	for col := 0; col < 7; col++ {
		got, ok := l.ColumnAt(l.DiscX(col), l.DiscY(3))
		if !ok || got != col {
			t.Errorf("ColumnAt(DiscX(%d)) = %d, %v", col, got, ok)
		}
	}

	tests := []struct {
		name   string
		x, y   int
		col    int
		wantOK bool
	}{
		{"preview row", l.DiscX(2), l.PreviewY, 2, true},
		{"labels row", l.DiscX(4), l.LabelsY, 4, true},
		{"left border", l.Board.X, l.PreviewY, 0, false},
		{"first interior cell", l.Board.X + 1, l.PreviewY, 0, true},
		{"last interior cell", l.Board.Right() - 2, l.PreviewY, 6, true},
		{"right border", l.Board.Right() - 1, l.PreviewY, 0, false},
		{"above preview", l.DiscX(1), l.PreviewY - 1, 0, false},
		{"below labels", l.DiscX(1), l.LabelsY + 1, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			col, ok := l.ColumnAt(tc.x, tc.y)
			if ok != tc.wantOK {
				t.Fatalf("ColumnAt(%d, %d) ok = %v, expected %v", tc.x, tc.y, ok, tc.wantOK)
			}
			if ok && col != tc.col {
				t.Errorf("ColumnAt(%d, %d) = %d, expected %d", tc.x, tc.y, col, tc.col)
			}
		})
	}
}

func TestLayoutButtons(t *testing.T) {
	l := NewLayout(80, 24, 6, 7)

	if l.Restart.W != len(RestartLabel) || l.Quit.W != len(QuitLabel) {
		t.Errorf("button widths = %d, %d", l.Restart.W, l.Quit.W)
	}
	if l.Restart.Y != l.Quit.Y {
		t.Error("buttons should share a row")
	}
	if l.Restart.Right() > l.Quit.X {
		t.Error("buttons overlap")
	}
	for _, r := range []Rect{l.Restart, l.Quit} {
		if r.X < l.Banner.X || r.Right() > l.Banner.Right() || r.Y <= l.Banner.Y || r.Bottom() >= l.Banner.Bottom() {
			t.Errorf("button %+v is not inside banner %+v", r, l.Banner)
		}
	}
	x, y := l.Restart.Center()
	if !l.Restart.Contains(x, y) || l.Quit.Contains(x, y) {
		t.Error("restart button center should hit only restart")
	}
}
