package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration.
// It mirrors defaults/snake.yaml and is used when the embedded file cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Rules: DefaultRules(),
		Theme: ThemeConfig{
			Head:   "bright_green",
			Body:   "green",
			Tail:   "gray",
			Food:   "bright_red",
			Border: "gray",
			Text:   "white",
		},
		Keys: KeysConfig{
			Up:     []string{"up", "w", "W"},
			Down:   []string{"down", "s", "S"},
			Left:   []string{"left", "a", "A"},
			Right:  []string{"right", "d", "D"},
			Toggle: []string{" ", "enter"},
			Reset:  []string{"r", "R"},
			Quit:   []string{"q", "ctrl+c"},
			Help:   []string{"?"},
		},
	}
}
