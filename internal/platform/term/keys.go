package term

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// keyName converts a tcell key to the key notation used in the config
// file, so both frontends share one set of bindings.
func keyName(k tcell.Key, r rune) string {
	switch k {
	case tcell.KeyRune:
		return string(r)
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyTab:
		return "tab"
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return "ctrl+" + string(rune('a'+k-tcell.KeyCtrlA))
	}
	return ""
}

// styleFor returns the tcell style of a core color.
func styleFor(c core.Color) tcell.Style {
	code := c.ANSI()
	if code < 0 {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.PaletteColor(code))
}

// helpLine summarises the control keys.
func helpLine(keys config.KeysConfig) string {
	label := func(names []string) string {
		if len(names) == 0 {
			return "-"
		}
		if names[0] == " " {
			return "space"
		}
		return names[0]
	}
	return fmt.Sprintf(" %s start/pause • %s reset • %s quit • %s",
		label(keys.Toggle), label(keys.Reset), label(keys.Quit),
		strings.Join([]string{label(keys.Up), label(keys.Down), label(keys.Left), label(keys.Right)}, "/"))
}
