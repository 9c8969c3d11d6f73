package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/midway/internal/platform/tui"
	"github.com/vovakirdan/midway/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick an edition from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select an edition.
Leaving a game with B or Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select edition
  Tab          - High scores
  Q            - Quit

Examples:
  midway menu
  midway menu --fps 30 --mute`,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	applyGameFlags()
	defer startAudio(logger)()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	var saver tui.ScoreSaver
	if store != nil {
		saver = store
	}

	cfg := terminalConfig()
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return fmt.Errorf("scoreboard: %w", sbErr)
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("cannot create game", "game", menuResult.GameID, "err", err)
			continue
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		backToMenu, err := tui.Run(game, saver, logger, cfg)
		if err != nil {
			return fmt.Errorf("error running game: %w", err)
		}
		if !backToMenu {
			return nil
		}
	}
}
