package midway

import (
	"github.com/vovakirdan/midway/internal/config"
	"github.com/vovakirdan/midway/internal/core"
)

// Session is the mutable state of one play-through that the resolver
// reads and writes. The engine owns it and lends it for one call.
type Session struct {
	World    *World
	Player   *Entity
	MiniBoss *Entity // nil when the variant has none
	PowerUp  *Entity // nil until the mini-boss is shot down

	Score int

	Grazed           bool // Mini-boss destroyed by contact
	PowerUpDropped   bool
	PowerUpCollected bool
	SpreadShot       bool

	Cues []core.Cue
}

func (s *Session) cue(c core.Cue) {
	s.Cues = append(s.Cues, c)
}

// Sprite is the spawn template for one kind.
type Sprite struct {
	Asset         string
	W, H          float64
	FrameCount    int
	FrameInterval int
}

func (sp Sprite) entity(x, y float64) Entity {
	return Entity{
		X: x, Y: y, W: sp.W, H: sp.H,
		Asset:         sp.Asset,
		FrameCount:    sp.FrameCount,
		FrameInterval: sp.FrameInterval,
	}
}

// Resolver applies the per-tick collision phases in a fixed order.
// Later phases see the deaths caused by earlier ones.
type Resolver struct {
	Explosion Sprite
	PowerUp   Sprite

	ScoringMode    string
	MiniBossPoints int
	PowerUpPoints  int
	PowerUpEnabled bool
	PowerUpSpeed   float64
	SpreadOnPickup bool
	CoinsEnabled   bool
	CoinPoints     int
}

// NewResolver builds a resolver from the engine configuration.
func NewResolver(cfg config.MidwayConfig, explosion, powerUp Sprite) *Resolver {
	return &Resolver{
		Explosion:      explosion,
		PowerUp:        powerUp,
		ScoringMode:    cfg.Scoring.Mode,
		MiniBossPoints: cfg.Scoring.MiniBossPoints,
		PowerUpPoints:  cfg.Scoring.PowerUpPoints,
		PowerUpEnabled: cfg.PowerUp.Enabled,
		PowerUpSpeed:   cfg.PowerUp.Speed,
		SpreadOnPickup: cfg.PowerUp.SpreadShot,
		CoinsEnabled:   cfg.Coins.Enabled,
		CoinPoints:     cfg.Coins.Points,
	}
}

// Resolve runs every phase once and reports whether the run has ended.
func (r *Resolver) Resolve(s *Session) (gameOver bool) {
	r.playerVsHostiles(s)
	r.powerUpDescent(s)
	if r.CoinsEnabled {
		r.coinPickup(s)
	}
	r.miniBossGraze(s)
	r.miniBossShot(s)
	r.hostilesVsBullets(s)
	return r.endCheck(s)
}

func (r *Resolver) explode(s *Session, at *Entity) {
	s.World.Spawn(KindExplosion, r.Explosion.entity(at.X, at.Y))
	s.cue(core.CueExplosion)
}

// Phase 1: every hostile touching the player dies and costs one health.
func (r *Resolver) playerVsHostiles(s *Session) {
	p := s.Player
	if !p.Alive || p.Health <= 0 {
		return
	}
	for _, kind := range [...]Kind{KindEnemy, KindRedFighter} {
		s.World.ForEachAlive(kind, func(h *Entity) {
			if !h.Overlaps(p) {
				return
			}
			h.Kill()
			p.Health--
			if p.Health < 0 && p.Kill() {
				r.explode(s, p)
			}
			r.explode(s, h)
		})
	}
}

// Phase 2: the dropped power-up falls on its own and is either caught
// by the player or lost below the field.
func (r *Resolver) powerUpDescent(s *Session) {
	pu := s.PowerUp
	if pu == nil || !pu.Alive {
		return
	}
	pu.Y -= r.PowerUpSpeed
	pu.animate()

	if pu.Overlaps(s.Player) {
		pu.Kill()
		s.PowerUpCollected = true
		s.Score += r.PowerUpPoints
		if r.SpreadOnPickup {
			s.SpreadShot = true
		}
		s.cue(core.CuePowerUp)
		return
	}
	if pu.Top() < 0 {
		pu.Kill()
	}
}

// coinPickup collects every coin the player touches.
func (r *Resolver) coinPickup(s *Session) {
	s.World.ForEachAlive(KindCoin, func(c *Entity) {
		if c.Overlaps(s.Player) {
			c.Kill()
			s.Score += r.CoinPoints
			s.cue(core.CuePowerUp)
		}
	})
}

// Phase 3: the first contact between player and mini-boss destroys the
// mini-boss without dropping the power-up.
func (r *Resolver) miniBossGraze(s *Session) {
	mb := s.MiniBoss
	if mb == nil || s.Grazed || !mb.Overlaps(s.Player) {
		return
	}
	s.Grazed = true
	mb.Kill()
	r.explode(s, mb)
}

// Phase 4: shooting the mini-boss down is the only way to get the power-up.
func (r *Resolver) miniBossShot(s *Session) {
	mb := s.MiniBoss
	if mb == nil || !mb.Alive {
		return
	}
	hit := false
	s.World.ForEachAlive(KindBullet, func(b *Entity) {
		if b.Overlaps(mb) {
			b.Kill()
			hit = true
		}
	})
	if !hit {
		return
	}
	mb.Kill()
	r.explode(s, mb)
	s.Score += r.MiniBossPoints

	if r.PowerUpEnabled && !s.PowerUpDropped {
		s.PowerUpDropped = true
		pu := r.PowerUp.entity(mb.X, mb.Y)
		pu.Loop = true
		s.PowerUp = s.World.Spawn(KindPowerUp, pu)
	}
}

// Phase 5: a hostile absorbs every bullet overlapping it.
func (r *Resolver) hostilesVsBullets(s *Session) {
	for _, kind := range [...]Kind{KindEnemy, KindRedFighter} {
		s.World.ForEachAlive(kind, func(h *Entity) {
			consumed := 0
			s.World.ForEachAlive(KindBullet, func(b *Entity) {
				if b.Overlaps(h) {
					b.Kill()
					consumed++
				}
			})
			if consumed == 0 {
				return
			}
			h.Kill()
			if r.ScoringMode == config.ScoreKills {
				s.Score++
			} else {
				s.Score += consumed
			}
			r.explode(s, h)
		})
	}
}

// Phase 6: the run ends when health is gone or every coin is collected.
func (r *Resolver) endCheck(s *Session) bool {
	p := s.Player
	over := p.Health <= 0
	if r.CoinsEnabled && s.World.Count(KindCoin) == 0 {
		over = true
	}
	if !over {
		return false
	}
	if p.Health <= 0 && p.Kill() {
		r.explode(s, p)
	}
	return true
}
