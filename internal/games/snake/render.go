package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Glyphs used on the board.
const (
	glyphHead = 'O'
	glyphBody = 'o'
	glyphFood = '*'
)

// DrawOptions controls Draw. ToggleKey names the start/pause key in overlays.
type DrawOptions struct {
	Palette   config.Palette
	ToggleKey string
}

// Draw paints snap into dst: a HUD line, the bordered board centred below
// it, and an overlay for every status except Running. The last screen row
// is left free for the frontend's help line. Cells that do not fit are clipped.
func Draw(dst *core.Screen, snap Snapshot, opts DrawOptions) {
	dst.Clear()
	pal := opts.Palette

	hud := fmt.Sprintf(" Score: %d  Speed: %d  Length: %d  [%s]", snap.Score, snap.Speed, len(snap.Snake), snap.Status)
	dst.DrawText(0, 0, hud, pal.Text)

	box := core.NewRect(max(0, (dst.Width()-snap.Cols-2)/2), 1, snap.Cols+2, snap.Rows+2)
	dst.DrawBox(box, pal.Border)
	ox, oy := box.X+1, box.Y+1

	if snap.Food.In(snap.Cols, snap.Rows) {
		dst.SetWithColor(ox+snap.Food.X, oy+snap.Food.Y, glyphFood, pal.Food)
	}

	// Draw tail first so the head wins if the fallback put food under the snake.
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		seg := snap.Snake[i]
		switch {
		case i == 0:
			dst.SetWithColor(ox+seg.X, oy+seg.Y, glyphHead, pal.Head)
		case i*3 >= len(snap.Snake)*2:
			// Fade the last third of the body.
			dst.SetWithColor(ox+seg.X, oy+seg.Y, glyphBody, pal.Tail)
		default:
			dst.SetWithColor(ox+seg.X, oy+seg.Y, glyphBody, pal.Body)
		}
	}

	key := opts.ToggleKey
	if key == "" {
		key = "space"
	}
	switch snap.Status {
	case StatusIdle:
		drawOverlay(dst, box, pal, "Snake", fmt.Sprintf("Press %s to start", key))
	case StatusPaused:
		drawOverlay(dst, box, pal, "Paused", fmt.Sprintf("Press %s to continue", key))
	case StatusGameOver:
		drawOverlay(dst, box, pal, "Game Over", fmt.Sprintf("Score: %d", snap.Score))
	}
}

// drawOverlay draws a two-line message box centred on the board.
func drawOverlay(dst *core.Screen, board core.Rect, pal config.Palette, line1, line2 string) {
	w := max(len(line1), len(line2)) + 4
	h := 5
	r := core.NewRect(board.X+(board.W-w)/2, board.Y+(board.H-h)/2, w, h)

	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, pal.Border)
	dst.DrawText(r.X+(w-len(line1))/2, r.Y+1, line1, pal.Text)
	dst.DrawText(r.X+(w-len(line2))/2, r.Y+3, line2, pal.Text)
}
