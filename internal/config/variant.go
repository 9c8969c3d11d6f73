package config

import "fmt"

// Variant names one of the four editions of the game. Every edition runs on
// the same engine; a variant only switches features and tunables.
type Variant string

const (
	// VariantClassic is the earliest edition: one falling wave, toggling
	// instruction page, no decorations.
	VariantClassic Variant = "classic"
	// VariantCoins collects coins while dodging a thin wave; the run ends when
	// every coin is gone.
	VariantCoins Variant = "coins"
	// VariantSquadron adds the red fighter column and the drifting clouds.
	VariantSquadron Variant = "squadron"
	// VariantMidway is the full edition with the mini-boss and its power-up.
	VariantMidway Variant = "midway"
)

// Variants lists every edition in release order.
var Variants = []Variant{VariantClassic, VariantCoins, VariantSquadron, VariantMidway}

// ParseVariant maps a string to a Variant.
func ParseVariant(s string) (Variant, error) {
	for _, v := range Variants {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: unknown variant %q", ErrInvalidConfig, s)
}

// ApplyVariant switches the features of cfg to match the edition.
// Tunables that are not feature switches (speeds, assets) are left as loaded.
func ApplyVariant(cfg *MidwayConfig, v Variant) {
	switch v {
	case VariantClassic:
		cfg.RedFighters.Count = 0
		cfg.Clouds.PerSide = 0
		cfg.MiniBoss.Enabled = false
		cfg.PowerUp.Enabled = false
		cfg.Coins.Enabled = false
		cfg.Flow.Mode = FlowToggle
		cfg.Flow.IdleAnimation = false
		cfg.Background.Speed = 5

	case VariantCoins:
		cfg.Enemies.Count = 10
		cfg.RedFighters.Count = 0
		cfg.Clouds.PerSide = 0
		cfg.MiniBoss.Enabled = false
		cfg.PowerUp.Enabled = false
		cfg.Coins.Enabled = true
		cfg.Flow.Mode = FlowToggle
		cfg.Flow.IdleAnimation = false

	case VariantSquadron:
		cfg.MiniBoss.Enabled = false
		cfg.PowerUp.Enabled = false
		cfg.Coins.Enabled = false
		cfg.Flow.Mode = FlowAdvance

	case VariantMidway:
		cfg.MiniBoss.Enabled = true
		cfg.PowerUp.Enabled = true
		cfg.Coins.Enabled = false
		cfg.Flow.Mode = FlowAdvance
	}
}
