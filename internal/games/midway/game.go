// Package midway implements 1943: The Battle of Midway, a vertically
// scrolling shoot-em-up. One engine serves every edition of the game; the
// editions differ only in configuration.
package midway

import (
	"fmt"

	"github.com/vovakirdan/midway/internal/assets"
	"github.com/vovakirdan/midway/internal/config"
	"github.com/vovakirdan/midway/internal/core"
	"github.com/vovakirdan/midway/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// assetPath stores the custom sprite catalog path set via CLI
var assetPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// cuePlayer receives the sound cues of every game instance.
var cuePlayer core.CuePlayer = core.NopCuePlayer{}

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetAssetPath sets a custom sprite catalog file.
func SetAssetPath(path string) {
	assetPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParseDifficultyPreset(preset)
}

// SetCuePlayer routes sound cues to p. A nil player silences them.
func SetCuePlayer(p core.CuePlayer) {
	if p == nil {
		p = core.NopCuePlayer{}
	}
	cuePlayer = p
}

// Edition describes one registered variant.
type Edition struct {
	ID          string
	Title       string
	Description string
	Variant     config.Variant
}

// Editions lists every registered variant.
var Editions = []Edition{
	{"midway", "1943: Midway", "Full campaign: squadron, clouds, mini-boss and power-up", config.VariantMidway},
	{"midway_classic", "1943: Classic", "The first edition: a single falling wave", config.VariantClassic},
	{"midway_coins", "1943: Coin Run", "Collect every coin while dodging fighters", config.VariantCoins},
	{"midway_squadron", "1943: Squadron", "Red fighter column and drifting clouds", config.VariantSquadron},
}

func init() {
	for _, ed := range Editions {
		registry.Register(ed.ID, func() registry.Game { return New(ed) })
	}
}

// Game adapts the engine to the arcade platform.
type Game struct {
	edition Edition
	runtime core.RuntimeConfig
	engine  *Engine
	dt      float64
}

// New creates a game for the edition.
func New(ed Edition) *Game {
	return &Game{edition: ed}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return g.edition.ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return g.edition.Title }

// Description returns a one-line summary for menus.
func (g *Game) Description() string { return g.edition.Description }

// Reset loads configuration and assets and returns to the title page.
// Load failures leave the game on an error page instead of failing.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.dt = runtime.TickDuration().Seconds()

	cfg, err := LoadConfig(g.edition.Variant)
	var provider assets.Provider = assets.Default()
	if assetPath != "" {
		if cat, aerr := assets.Load(assetPath); aerr == nil {
			provider = cat
		} else if err == nil {
			err = aerr
		}
	}

	g.engine = NewEngine(cfg, provider, runtime.Seed)
	if err != nil {
		g.engine.err = fmt.Errorf("%w: %w", ErrNotReady, err)
	}
}

// LoadConfig resolves the configuration for a variant: file or embedded
// defaults, then the variant switches, then the difficulty preset.
func LoadConfig(v config.Variant) (config.MidwayConfig, error) {
	cfg, err := config.LoadMidway(configPath)
	if err != nil {
		return config.DefaultMidwayConfig(), err
	}
	config.ApplyVariant(&cfg, v)
	if difficultyPreset != "" {
		config.ApplyMidwayPreset(&cfg, difficultyPreset)
	}
	return cfg, nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine == nil {
		return core.StepResult{State: g.State()}
	}
	g.engine.Update(g.dt, in.Events)
	for _, c := range g.engine.DrainCues() {
		cuePlayer.Play(c)
	}
	return core.StepResult{State: g.State()}
}

// Render draws the current frame.
func (g *Game) Render(dst *core.Screen) {
	if g.engine == nil {
		dst.Clear()
		return
	}
	g.engine.Render(dst)
}

// State returns the platform view of the game.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{Paused: true}
	}
	st := g.engine.State()
	return core.GameState{
		Score:    g.engine.Score(),
		Lives:    g.engine.Health(),
		GameOver: st == StateGameOver,
		Paused:   st != StateRunning,
	}
}

// Engine exposes the underlying engine to hosts that draw it themselves.
func (g *Game) Engine() *Engine { return g.engine }

// CursorVisible reports whether the host should show the pointer.
func (g *Game) CursorVisible() bool {
	return g.engine == nil || g.engine.CursorVisible()
}

// Summary describes the current run for the score store.
func (g *Game) Summary() core.RunSummary {
	if g.engine == nil {
		return core.RunSummary{Seed: g.runtime.Seed}
	}
	snap := g.engine.Snapshot()
	return core.RunSummary{
		Seed:             g.runtime.Seed,
		Ticks:            uint64(g.engine.Tick()), //#nosec G115
		PowerUpCollected: g.engine.PowerUpCollected(),
		Hash:             snap.Hash(),
	}
}
