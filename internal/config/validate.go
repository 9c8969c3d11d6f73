package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig marks every configuration error reported by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the configuration and returns every problem found,
// joined into one error. Each wrapped error matches ErrInvalidConfig.
func (c MidwayConfig) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		fail("screen must have positive size, got %vx%v", c.Screen.Width, c.Screen.Height)
	}
	if c.Player.Lives <= 0 {
		fail("player.lives must be positive, got %d", c.Player.Lives)
	}
	if c.Player.Speed < 0 {
		fail("player.speed must not be negative")
	}
	if c.Enemies.Count < 0 || c.RedFighters.Count < 0 || c.Clouds.PerSide < 0 || c.Coins.Count < 0 {
		fail("entity counts must not be negative")
	}
	if c.Enemies.Count > 0 && c.Enemies.SpawnDepth < 1 {
		fail("enemies.spawn_depth must be at least 1 screen, got %v", c.Enemies.SpawnDepth)
	}
	if c.Bullets.Speed <= 0 {
		fail("bullets.speed must be positive, got %v", c.Bullets.Speed)
	}
	if c.Background.Speed < 0 {
		fail("background.speed must not be negative")
	}
	// The seam left by a recycled tile grows by at most one tick of scroll,
	// so a smaller threshold lets it show for a frame.
	if c.Background.GapThreshold < c.Background.Speed {
		fail("background.gap_threshold (%v) must be at least background.speed (%v)",
			c.Background.GapThreshold, c.Background.Speed)
	}
	if c.Explosion.FrameTicks <= 0 {
		fail("explosion.frame_ticks must be positive")
	}
	if c.Flow.Mode != FlowToggle && c.Flow.Mode != FlowAdvance {
		fail("flow.mode must be %q or %q, got %q", FlowToggle, FlowAdvance, c.Flow.Mode)
	}
	if c.Flow.RestartDelay < 0 {
		fail("flow.restart_delay must not be negative")
	}
	if c.Scoring.Mode != ScoreBullets && c.Scoring.Mode != ScoreKills {
		fail("scoring.mode must be %q or %q, got %q", ScoreBullets, ScoreKills, c.Scoring.Mode)
	}
	if c.PowerUp.Enabled && !c.MiniBoss.Enabled {
		fail("power_up requires mini_boss: it is only dropped by the mini-boss")
	}
	if c.Coins.Enabled && c.Coins.Count == 0 {
		fail("coins.count must be positive when coins are enabled")
	}

	for field, id := range c.assetRefs() {
		if id == "" {
			fail("%s must name an asset", field)
		}
	}

	return errors.Join(errs...)
}

// assetRefs returns the asset ids the current feature set needs, keyed by field.
func (c MidwayConfig) assetRefs() map[string]string {
	refs := map[string]string{
		"player.asset":     c.Player.Asset,
		"bullets.asset":    c.Bullets.Asset,
		"explosion.asset":  c.Explosion.Asset,
		"background.asset": c.Background.Asset,
	}
	if c.Enemies.Count > 0 {
		refs["enemies.asset"] = c.Enemies.Asset
	}
	if c.RedFighters.Count > 0 {
		refs["red_fighters.asset"] = c.RedFighters.Asset
	}
	if c.Clouds.PerSide > 0 {
		refs["clouds.asset_left"] = c.Clouds.AssetLeft
		refs["clouds.asset_right"] = c.Clouds.AssetRight
	}
	if c.MiniBoss.Enabled {
		refs["mini_boss.asset"] = c.MiniBoss.Asset
	}
	if c.PowerUp.Enabled {
		refs["power_up.asset"] = c.PowerUp.Asset
	}
	if c.Coins.Enabled {
		refs["coins.asset"] = c.Coins.Asset
	}
	return refs
}

// AssetIDs returns the asset ids the configuration refers to.
func (c MidwayConfig) AssetIDs() []string {
	refs := c.assetRefs()
	ids := make([]string, 0, len(refs))
	for _, id := range refs {
		ids = append(ids, id)
	}
	return ids
}
