// Package config provides YAML-based game configuration loading,
// variant presets and difficulty management for the arcade platform.
package config

// MidwayConfig contains all tunables of the shoot-em-up engine.
// Distances are world units (the default play field is 562x644) and
// speeds are world units per tick.
type MidwayConfig struct {
	Screen      ScreenConfig     `yaml:"screen"`
	Player      PlayerConfig     `yaml:"player"`
	Enemies     EnemyConfig      `yaml:"enemies"`
	RedFighters SquadronConfig   `yaml:"red_fighters"`
	Clouds      CloudConfig      `yaml:"clouds"`
	MiniBoss    MiniBossConfig   `yaml:"mini_boss"`
	PowerUp     PowerUpConfig    `yaml:"power_up"`
	Coins       CoinConfig       `yaml:"coins"`
	Bullets     BulletConfig     `yaml:"bullets"`
	Explosion   ExplosionConfig  `yaml:"explosion"`
	Background  BackgroundConfig `yaml:"background"`
	Flow        FlowConfig       `yaml:"flow"`
	Scoring     ScoringConfig    `yaml:"scoring"`
	Difficulty  DifficultyConfig `yaml:"difficulty"`
}

// ScreenConfig defines the world-space play field.
type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player aircraft.
type PlayerConfig struct {
	Lives        int     `yaml:"lives"`
	Speed        float64 `yaml:"speed"`
	StartY       float64 `yaml:"start_y"`
	MinBottom    float64 `yaml:"min_bottom"` // Lowest allowed bottom edge (HUD strip below)
	Asset        string  `yaml:"asset"`
	AnimInterval int     `yaml:"anim_interval"` // Ticks per animation frame
}

// EnemyConfig defines the falling wave fighters.
type EnemyConfig struct {
	Count      int     `yaml:"count"`
	Speed      float64 `yaml:"speed"`
	SpawnDepth float64 `yaml:"spawn_depth"` // Spawn band height in screens above the field
	Asset      string  `yaml:"asset"`
}

// SquadronConfig defines the diagonal red fighter column.
type SquadronConfig struct {
	Count   int     `yaml:"count"`
	DX      float64 `yaml:"dx"`
	DY      float64 `yaml:"dy"`
	Spacing float64 `yaml:"spacing"`
	Asset   string  `yaml:"asset"`
}

// CloudConfig defines decorative clouds drifting along both edges.
type CloudConfig struct {
	PerSide    int     `yaml:"per_side"`
	Speed      float64 `yaml:"speed"`
	RowSpacing float64 `yaml:"row_spacing"`
	Jitter     float64 `yaml:"jitter"`
	AssetLeft  string  `yaml:"asset_left"`
	AssetRight string  `yaml:"asset_right"`
}

// MiniBossConfig defines the scripted mini-boss.
type MiniBossConfig struct {
	Enabled      bool    `yaml:"enabled"`
	DX           float64 `yaml:"dx"`
	DY           float64 `yaml:"dy"`
	Offset       float64 `yaml:"offset"` // Start distance beyond the top-right corner
	Asset        string  `yaml:"asset"`
	AnimInterval int     `yaml:"anim_interval"`
}

// PowerUpConfig defines the power-up dropped by the mini-boss.
type PowerUpConfig struct {
	Enabled      bool    `yaml:"enabled"`
	Speed        float64 `yaml:"speed"`
	SpreadShot   bool    `yaml:"spread_shot"` // Collecting it widens every later volley
	SpreadDX     float64 `yaml:"spread_dx"`
	Asset        string  `yaml:"asset"`
	AnimInterval int     `yaml:"anim_interval"`
}

// CoinConfig defines collectibles for the coin-collection variant.
type CoinConfig struct {
	Enabled bool    `yaml:"enabled"`
	Count   int     `yaml:"count"`
	Points  int     `yaml:"points"`
	Speed   float64 `yaml:"speed"`
	MinY    float64 `yaml:"min_y"`
	Asset   string  `yaml:"asset"`
}

// BulletConfig defines player shots.
type BulletConfig struct {
	Speed float64 `yaml:"speed"`
	Asset string  `yaml:"asset"`
}

// ExplosionConfig defines the kill marker animation.
type ExplosionConfig struct {
	Asset      string `yaml:"asset"`
	FrameTicks int    `yaml:"frame_ticks"`
}

// BackgroundConfig defines the two-tile sea scroll.
type BackgroundConfig struct {
	Speed        float64 `yaml:"speed"`
	GapThreshold float64 `yaml:"gap_threshold"` // Must be >= Speed
	Asset        string  `yaml:"asset"`
}

// Flow modes for the INSTRUCTIONS page.
const (
	FlowToggle  = "toggle"  // ConfirmSecondary returns to the start screen
	FlowAdvance = "advance" // ConfirmSecondary starts the game
)

// FlowConfig defines title/instruction paging and the game-over pause.
type FlowConfig struct {
	Mode          string  `yaml:"mode"`
	RestartDelay  float64 `yaml:"restart_delay"` // Seconds before restart input is accepted
	IdleAnimation bool    `yaml:"idle_animation"`
}

// Scoring modes for bullet kills.
const (
	ScoreBullets = "bullets" // +1 per bullet consumed by a kill
	ScoreKills   = "kills"   // +1 per hostile killed
)

// ScoringConfig defines how kills and pickups are scored.
type ScoringConfig struct {
	Mode           string `yaml:"mode"`
	MiniBossPoints int    `yaml:"mini_boss_points"`
	PowerUpPoints  int    `yaml:"power_up_points"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to wave speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset maps a CLI string to a preset; unknown strings yield "".
func ParseDifficultyPreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	}
	return ""
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
