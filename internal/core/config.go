package core

// RuntimeConfig contains configuration passed to a frontend at startup.
// Frontends use this to size the grid and seed food placement.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Cols    int   // Grid columns, 0 = fit the screen
	Rows    int   // Grid rows, 0 = fit the screen
	Seed    int64 // RNG seed, 0 = time based
}

// Chrome is the screen space the board needs besides its cells:
// a HUD line, a help line and the two border rows/columns.
const (
	ChromeW = 2
	ChromeH = 4
)

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// GridSize resolves the grid dimensions. Explicit Cols/Rows win; zero
// values fit the grid inside the screen, leaving room for the chrome.
func (c RuntimeConfig) GridSize() (cols, rows int) {
	cols, rows = c.Cols, c.Rows
	if cols <= 0 {
		cols = max(MinCols, c.ScreenW-ChromeW)
	}
	if rows <= 0 {
		rows = max(MinRows, c.ScreenH-ChromeH)
	}
	return cols, rows
}

// Smallest grid the game accepts.
const (
	MinCols = 4
	MinRows = 3
)
