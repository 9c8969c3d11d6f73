package config

import (
	_ "embed"
)

//go:embed defaults/midway.yaml
var defaultMidwayYAML []byte

// DefaultMidwayConfig returns the built-in configuration of the richest
// variant. It mirrors defaults/midway.yaml and is used when the embedded
// document cannot be decoded.
func DefaultMidwayConfig() MidwayConfig {
	return MidwayConfig{
		Screen: ScreenConfig{Width: 562, Height: 644},
		Player: PlayerConfig{
			Lives:        3,
			Speed:        5,
			StartY:       50,
			MinBottom:    60,
			Asset:        "plane",
			AnimInterval: 8,
		},
		Enemies: EnemyConfig{
			Count:      50,
			Speed:      5,
			SpawnDepth: 30,
			Asset:      "fighter",
		},
		RedFighters: SquadronConfig{
			Count:   5,
			DX:      1,
			DY:      -2,
			Spacing: 30,
			Asset:   "red-fighter",
		},
		Clouds: CloudConfig{
			PerSide:    5,
			Speed:      2,
			RowSpacing: 300,
			Jitter:     1000,
			AssetLeft:  "cloud-left",
			AssetRight: "cloud-right",
		},
		MiniBoss: MiniBossConfig{
			Enabled:      true,
			DX:           -1,
			DY:           -1,
			Offset:       30,
			Asset:        "boss",
			AnimInterval: 8,
		},
		PowerUp: PowerUpConfig{
			Enabled:      true,
			Speed:        2,
			SpreadShot:   true,
			SpreadDX:     3,
			Asset:        "pow",
			AnimInterval: 8,
		},
		Coins: CoinConfig{
			Enabled: false,
			Count:   50,
			Points:  1,
			MinY:    120,
			Asset:   "coin",
		},
		Bullets:    BulletConfig{Speed: 20, Asset: "shot"},
		Explosion:  ExplosionConfig{Asset: "explode", FrameTicks: 1},
		Background: BackgroundConfig{Speed: 10, GapThreshold: 80, Asset: "sea"},
		Flow: FlowConfig{
			Mode:          FlowAdvance,
			RestartDelay:  3,
			IdleAnimation: true,
		},
		Scoring: ScoringConfig{Mode: ScoreBullets},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 100,
			},
			Scaling: ScalingConfig{SpeedMultiplier: 0.6},
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultMidwayYAML
}
