// Package config provides YAML-based game configuration loading and
// the speed progression rules for the snake game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid  GridConfig  `yaml:"grid"`
	Rules Rules       `yaml:"rules"`
	Theme ThemeConfig `yaml:"theme"`
	Keys  KeysConfig  `yaml:"keys"`
}

// GridConfig fixes the board size. Zero means fit the terminal.
type GridConfig struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// ThemeConfig names the colors used to draw the board.
type ThemeConfig struct {
	Head   string `yaml:"head"`
	Body   string `yaml:"body"`
	Tail   string `yaml:"tail"` // Body color towards the end of the snake
	Food   string `yaml:"food"`
	Border string `yaml:"border"`
	Text   string `yaml:"text"`
}

// KeysConfig lists key names (Bubble Tea notation) per action.
type KeysConfig struct {
	Up     []string `yaml:"up"`
	Down   []string `yaml:"down"`
	Left   []string `yaml:"left"`
	Right  []string `yaml:"right"`
	Toggle []string `yaml:"toggle"`
	Reset  []string `yaml:"reset"`
	Quit   []string `yaml:"quit"`
	Help   []string `yaml:"help"`
}

// Bindings returns the configured keys keyed by action.
func (k KeysConfig) Bindings() map[core.Action][]string {
	return map[core.Action][]string{
		core.ActionUp:     k.Up,
		core.ActionDown:   k.Down,
		core.ActionLeft:   k.Left,
		core.ActionRight:  k.Right,
		core.ActionToggle: k.Toggle,
		core.ActionReset:  k.Reset,
		core.ActionQuit:   k.Quit,
		core.ActionHelp:   k.Help,
	}
}

// Validate checks the whole configuration and reports every problem found.
func (c SnakeConfig) Validate() error {
	var errs []error

	if c.Grid.Cols < 0 || c.Grid.Rows < 0 {
		errs = append(errs, fmt.Errorf("grid: negative size %dx%d", c.Grid.Cols, c.Grid.Rows))
	}
	if c.Grid.Cols > 0 && c.Grid.Cols < core.MinCols {
		errs = append(errs, fmt.Errorf("grid: cols must be 0 or at least %d, got %d", core.MinCols, c.Grid.Cols))
	}
	if c.Grid.Rows > 0 && c.Grid.Rows < core.MinRows {
		errs = append(errs, fmt.Errorf("grid: rows must be 0 or at least %d, got %d", core.MinRows, c.Grid.Rows))
	}
	if c.Grid.Cols > 0 && c.Rules.InitialLength >= c.Grid.Cols {
		errs = append(errs, fmt.Errorf("grid: %d cols cannot hold a snake of length %d", c.Grid.Cols, c.Rules.InitialLength))
	}

	if err := c.Rules.Validate(); err != nil {
		errs = append(errs, err)
	}

	if _, err := c.Theme.Palette(); err != nil {
		errs = append(errs, err)
	}

	for action, keys := range c.Keys.Bindings() {
		if len(keys) == 0 {
			errs = append(errs, fmt.Errorf("keys: no key bound to %s", action))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// Palette is a resolved ThemeConfig.
type Palette struct {
	Head, Body, Tail, Food, Border, Text core.Color
}

// Palette resolves the theme's color names.
func (t ThemeConfig) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		dst  *core.Color
	}{
		{t.Head, &p.Head},
		{t.Body, &p.Body},
		{t.Tail, &p.Tail},
		{t.Food, &p.Food},
		{t.Border, &p.Border},
		{t.Text, &p.Text},
	}
	for _, f := range fields {
		c, err := core.ParseColor(f.name)
		if err != nil {
			return Palette{}, fmt.Errorf("theme: %w", err)
		}
		*f.dst = c
	}
	return p, nil
}
