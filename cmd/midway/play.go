package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/midway/internal/core"
	"github.com/vovakirdan/midway/internal/platform/tui"
	"github.com/vovakirdan/midway/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <edition>",
	Short: "Play an edition in the terminal",
	Long: `Start playing the specified edition.

Controls:
  W/A/S/D, arrows  - Fly
  J                - Fire
  Space            - Start / restart
  Enter            - Key list
  B/Esc            - Leave
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 lives, fewer enemies, slow progression
  normal - configured lives and wave, enemies speed up with score
  hard   - 2 lives, more enemies, starts fast
  fixed  - No progression, enemies keep their configured speed

Examples:
  midway play midway
  midway play midway_coins --difficulty easy
  midway play midway --config ./my-midway.yaml --seed 42`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// terminalConfig sizes the runtime from the terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown edition %q; run 'midway list' to see available editions", gameID)
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	applyGameFlags()
	defer startAudio(logger)()

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	var saver tui.ScoreSaver
	if store := openStore(logger); store != nil {
		defer store.Close()
		saver = store
	}

	if _, err := tui.Run(game, saver, logger, terminalConfig()); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
