package core

// RuntimeConfig contains the settings the platform passes to a game view.
type RuntimeConfig struct {
	ScreenW int // Screen width in characters
	ScreenH int // Screen height in characters
	Rows    int // Board rows, fixed for the lifetime of a game
	Cols    int // Board columns, fixed for the lifetime of a game
}
