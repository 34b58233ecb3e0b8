package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/audio"
	"github.com/vovakirdan/tui-snake/internal/platform/notify"
	termui "github.com/vovakirdan/tui-snake/internal/platform/term"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagUI    string
	flagCols  int
	flagRows  int
	flagSound bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in this terminal",
	Long: `Start a game in the current terminal.

Controls (configurable):
  Arrows/WASD  - Steer
  Space/Enter  - Start/Pause
  R            - Reset
  ?            - Toggle full help
  Q/Ctrl+C     - Quit

The grid fits the terminal unless --cols/--rows or the config file fix it.

Examples:
  snake play
  snake play --cols 20 --rows 10
  snake play --ui tcell --sound
  snake play --seed 42 --log-file snake.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagUI, "ui", "tea", "Terminal frontend: tea or tcell")
	playCmd.Flags().IntVar(&flagCols, "cols", 0, "Grid columns (0 = fit terminal)")
	playCmd.Flags().IntVar(&flagRows, "rows", 0, "Grid rows (0 = fit terminal)")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if flagUI != "tea" && flagUI != "tcell" {
		return fmt.Errorf("unknown --ui %q (want tea or tcell)", flagUI)
	}

	// Printed before the alternate screen, so it is visible after quitting.
	cfg, err := loadConfig(stderrLogger())
	if err != nil {
		return err
	}
	if flagCols != 0 {
		cfg.Grid.Cols = flagCols
	}
	if flagRows != 0 {
		cfg.Grid.Rows = flagRows
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// The terminal belongs to the game: logs go to --log-file or nowhere.
	logger, closer, err := newLogger(io.Discard, "snake")
	if err != nil {
		return err
	}
	defer closer.Close()

	listeners := []snake.Listener{notify.Log(logger)}
	if flagSound {
		player := audio.NewPlayer()
		if err := player.Init(); err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			defer player.Close()
			listeners = append(listeners, player)
		}
	}

	// Get terminal size; the frontends track resizes from here on.
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	rt := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	logger.Info("starting game", "ui", flagUI, "seed", flagSeed, "cols", cfg.Grid.Cols, "rows", cfg.Grid.Rows)

	events := []snake.Listener{notify.Multi(listeners...)}
	if flagUI == "tcell" {
		err = termui.Run(termui.Options{Runtime: rt, Config: cfg, Listeners: events})
	} else {
		err = tui.Run(tui.Options{Runtime: rt, Config: cfg, Listeners: events})
	}
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
