package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/midway/internal/core"
	"github.com/vovakirdan/midway/internal/games/midway"
	"github.com/vovakirdan/midway/internal/platform/window"
	"github.com/vovakirdan/midway/internal/registry"
	"github.com/vovakirdan/midway/internal/storage"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window <edition>",
	Short: "Play an edition in a desktop window",
	Long: `Open a desktop window and play the specified edition. Sprites are drawn
as coloured boxes at their true footprint.

Controls are the same as in the terminal; Esc or Q closes the window.

Examples:
  midway window midway
  midway window midway_squadron --scale 0.8`,
	Args: cobra.ExactArgs(1),
	RunE: runWindow,
}

func init() {
	addGameFlags(windowCmd)
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale factor")
}

func runWindow(_ *cobra.Command, args []string) error {
	gi, err := registry.Create(args[0])
	if err != nil {
		return fmt.Errorf("unknown edition %q: %w", args[0], err)
	}
	game, ok := gi.(*midway.Game)
	if !ok {
		return fmt.Errorf("edition %q cannot be drawn in a window", args[0])
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	applyGameFlags()
	defer startAudio(logger)()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	host := window.NewHost(game, seed, logger)

	if store := openStore(logger); store != nil {
		defer store.Close()
		host.OnGameOver(func(st core.GameState) {
			if st.Score <= 0 {
				return
			}
			sum := game.Summary()
			run := storage.Run{
				Variant:          game.ID(),
				Score:            st.Score,
				LivesLeft:        st.Lives,
				Ticks:            sum.Ticks,
				PowerUpCollected: sum.PowerUpCollected,
				Seed:             sum.Seed,
				Hash:             sum.Hash,
			}
			if _, err := store.SaveRun(run); err != nil {
				logger.Error("cannot save run", "err", err)
			}
		})
	}

	return window.Run(host, flagScale)
}
