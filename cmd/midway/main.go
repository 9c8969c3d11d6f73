// midway plays 1943: The Battle of Midway in the terminal, over SSH or in a
// desktop window.
//
// Usage:
//
//	midway list                - List the editions
//	midway play <edition>      - Play an edition in the terminal
//	midway menu                - Pick editions interactively
//	midway window <edition>    - Play an edition in a desktop window
//	midway serve               - Start SSH server for remote play
//	midway scores <edition>    - Show high scores for an edition
//	midway check               - Validate a config file and sprite catalog
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.arcade/midway.db)
//	--log-level <level> - debug, info, warn or error (default: info)
//	--log-file <path>   - Log destination while a game owns the terminal
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/midway/internal/audio"
	"github.com/vovakirdan/midway/internal/games/midway"
	"github.com/vovakirdan/midway/internal/storage"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string

	// Shared by play, menu and window.
	flagConfig     string
	flagAssets     string
	flagDifficulty string
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "midway",
	Short: "1943: The Battle of Midway - a vertical shoot-em-up for your terminal",
	Long: `A vertically scrolling shoot-em-up. Fly over the Pacific, shoot down
the incoming squadrons, clip the mini-boss for a spread-shot power-up and
survive as long as you can.

Available commands:
  list     - Show all editions
  play     - Play an edition in the terminal
  menu     - Interactive edition picker
  window   - Play an edition in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores
  check    - Validate configuration and sprites

Examples:
  midway list
  midway play midway
  midway play midway_classic --difficulty hard
  midway window midway --scale 1.5
  midway serve --ssh :2222
  midway scores midway`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.arcade/midway.log", "Log file used while a game owns the terminal (empty = discard)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(checkCmd)
}

// addGameFlags registers the flags that shape a game session.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom midway.yaml")
	cmd.Flags().StringVar(&flagAssets, "assets", "", "Path to custom sprite catalog YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

// applyGameFlags hands the session flags to the game package.
func applyGameFlags() {
	midway.SetConfigPath(flagConfig)
	midway.SetAssetPath(flagAssets)
	midway.SetDifficultyPreset(flagDifficulty)
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// newLogger builds the logger. With toTerminal false the output goes to the
// log file so it never draws over a full-screen game. The returned closer
// releases the file.
func newLogger(toTerminal bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	closer := func() {}
	if !toTerminal {
		w = io.Discard
		if flagLogFile != "" {
			path := expandHome(flagLogFile)
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
			}
			f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
			if err != nil {
				return nil, nil, fmt.Errorf("cannot open log file: %w", err)
			}
			w = f
			closer = func() { f.Close() }
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "midway",
		Level:           level,
	})
	return logger, closer, nil
}

// startAudio routes engine cues to the speaker unless muted. Audio is
// optional: failures are logged and play continues silently.
func startAudio(logger *log.Logger) func() {
	if flagMute {
		midway.SetCuePlayer(nil)
		return func() {}
	}
	sm := audio.NewSoundManager(audio.DefaultConfig())
	if err := sm.Initialize(); err != nil {
		logger.Warn("sound disabled", "err", err)
		midway.SetCuePlayer(nil)
		return func() {}
	}
	midway.SetCuePlayer(sm)
	return func() {
		midway.SetCuePlayer(nil)
		sm.Close()
	}
}

// openStore opens the score database. A failure is logged and the session
// continues without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
