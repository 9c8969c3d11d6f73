package midway

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/midway/internal/assets"
	"github.com/vovakirdan/midway/internal/config"
	"github.com/vovakirdan/midway/internal/core"
)

// ErrNotReady is returned by Err when the engine was built from an
// invalid configuration or an incomplete asset catalog.
var ErrNotReady = errors.New("midway: engine not ready")

// Engine is the frame driver. Hosts call Update once per tick and then read
// the world through the accessors; nothing is mutated outside Update.
type Engine struct {
	cfg     config.MidwayConfig
	sprites map[string]assets.Asset
	err     error

	rng        *rand.Rand
	world      *World
	bg         *Background
	flow       *Flow
	intents    IntentMapper
	resolver   *Resolver
	motion     MotionTable
	difficulty *config.DifficultyManager
	bounds     Bounds
	session    Session

	tick          int
	runs          int
	cursorVisible bool
	pendingCues   []core.Cue
}

// NewEngine builds an engine in START. Configuration and asset problems do
// not panic: the engine stays on an error page and Err reports them.
func NewEngine(cfg config.MidwayConfig, provider assets.Provider, seed int64) *Engine {
	e := &Engine{
		cfg:           cfg,
		rng:           rand.New(rand.NewSource(seed)), //#nosec G404 -- gameplay randomness
		world:         NewWorld(),
		flow:          NewFlow(cfg.Flow),
		motion:        DefaultMotion(),
		difficulty:    config.NewDifficultyManager(cfg.Difficulty),
		cursorVisible: true,
		bounds: Bounds{
			W:            cfg.Screen.Width,
			H:            cfg.Screen.Height,
			MinBottom:    cfg.Player.MinBottom,
			HostileScale: 1,
		},
	}

	if err := cfg.Validate(); err != nil {
		e.err = fmt.Errorf("%w: %w", ErrNotReady, err)
		return e
	}
	sprites, err := assets.Resolve(provider, cfg.AssetIDs())
	if err != nil {
		e.err = fmt.Errorf("%w: %w", ErrNotReady, err)
		return e
	}
	e.sprites = sprites
	e.resolver = NewResolver(cfg, e.sprite(cfg.Explosion.Asset, cfg.Explosion.FrameTicks), e.sprite(cfg.PowerUp.Asset, cfg.PowerUp.AnimInterval))

	// The title page shows the aircraft idling over the sea.
	e.bg = NewBackground(e.world, cfg.Screen.Width, cfg.Screen.Height, cfg.Background.Speed, cfg.Background.GapThreshold, cfg.Background.Asset)
	e.session = Session{World: e.world, Player: e.spawnPlayer()}
	return e
}

// Err returns the configuration error that keeps the engine from running.
func (e *Engine) Err() error { return e.err }

// Update processes the key events buffered since the last tick and then
// advances the simulation by one tick of dt seconds.
func (e *Engine) Update(dt float64, events []core.KeyEvent) {
	if e.err != nil {
		return
	}

	for _, ev := range events {
		e.handleEvent(ev)
	}

	switch e.flow.State() {
	case StateStart:
		if e.cfg.Flow.IdleAnimation {
			e.session.Player.animate()
		}
	case StateGameOver:
		e.flow.Tick(dt)
	case StateRunning:
		e.step()
	}
}

func (e *Engine) handleEvent(ev core.KeyEvent) {
	if ev.Down {
		switch ev.Key {
		case core.KeyConfirmPrimary:
			if e.flow.Primary() {
				e.setup()
			}
			return
		case core.KeyConfirmSecondary:
			if e.flow.Secondary() {
				e.setup()
			}
			return
		}
	}
	// Movement and fire outside a run are ignored.
	if e.flow.State() == StateRunning {
		e.intents.Apply(ev)
	}
}

// step runs one simulation tick in RUNNING.
func (e *Engine) step() {
	s := &e.session
	p := s.Player

	in := e.intents.Take()
	if p.Alive {
		p.DX = float64(in.DX) * e.cfg.Player.Speed
		p.DY = float64(in.DY) * e.cfg.Player.Speed
		for range in.Fire {
			e.fire()
		}
	}

	e.bounds.HostileScale = e.difficulty.Speed(1, s.Score, e.tick)
	e.world.AdvanceAll(e.motion, e.bounds)
	e.bg.Advance()

	over := e.resolver.Resolve(s)
	e.world.CullDead()
	e.checkInvariants()

	e.pendingCues = append(e.pendingCues, s.Cues...)
	s.Cues = s.Cues[:0]
	e.tick++

	if over {
		e.flow.GameOver()
		e.cursorVisible = true
		e.pendingCues = append(e.pendingCues, core.CueGameOver)
	}
}

// fire launches one volley from the aircraft's nose.
func (e *Engine) fire() {
	p := e.session.Player
	shot := e.sprite(e.cfg.Bullets.Asset, 0)
	spawn := func(dx float64) {
		b := shot.entity(p.X, p.Y)
		b.DX = dx
		b.DY = e.cfg.Bullets.Speed
		e.world.Spawn(KindBullet, b)
	}
	spawn(0)
	if e.session.SpreadShot {
		spawn(-e.cfg.PowerUp.SpreadDX)
		spawn(e.cfg.PowerUp.SpreadDX)
	}
	e.pendingCues = append(e.pendingCues, core.CueShot)
}

// setup resets score, health and every registry to a fresh run.
func (e *Engine) setup() {
	cfg := e.cfg
	w, h := cfg.Screen.Width, cfg.Screen.Height

	e.world.Reset()
	e.intents.Reset()
	e.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	e.bounds.HostileScale = 1
	e.tick = 0
	e.runs++
	e.cursorVisible = false

	e.bg = NewBackground(e.world, w, h, cfg.Background.Speed, cfg.Background.GapThreshold, cfg.Background.Asset)

	if cfg.Clouds.PerSide > 0 {
		left := e.sprite(cfg.Clouds.AssetLeft, 0)
		right := e.sprite(cfg.Clouds.AssetRight, 0)
		for i := range cfg.Clouds.PerSide {
			inset := float64(10*i) + e.randRange(10, 50)
			y := h + cfg.Clouds.RowSpacing*float64(i) + e.randRange(0, cfg.Clouds.Jitter)
			c := right.entity(w-inset, y)
			c.DY = -cfg.Clouds.Speed
			e.world.Spawn(KindCloud, c)
		}
		for i := range cfg.Clouds.PerSide {
			inset := float64(10*i) + e.randRange(10, 50)
			y := h + cfg.Clouds.RowSpacing*float64(i) + e.randRange(0, cfg.Clouds.Jitter)
			c := left.entity(inset, y)
			c.DY = -cfg.Clouds.Speed
			e.world.Spawn(KindCloud, c)
		}
	}

	if cfg.Enemies.Count > 0 {
		fighter := e.sprite(cfg.Enemies.Asset, 0)
		for range cfg.Enemies.Count {
			en := fighter.entity(e.randRange(0, w), e.randRange(h, h*cfg.Enemies.SpawnDepth))
			en.DY = -cfg.Enemies.Speed
			e.world.Spawn(KindEnemy, en)
		}
	}

	if cfg.RedFighters.Count > 0 {
		red := e.sprite(cfg.RedFighters.Asset, 0)
		for i := range cfg.RedFighters.Count {
			rf := red.entity(0, h-cfg.RedFighters.Spacing*float64(i))
			rf.DX = cfg.RedFighters.DX
			rf.DY = cfg.RedFighters.DY
			e.world.Spawn(KindRedFighter, rf)
		}
	}

	if cfg.Coins.Enabled {
		coin := e.sprite(cfg.Coins.Asset, 0)
		for range cfg.Coins.Count {
			c := coin.entity(e.randRange(0, w), e.randRange(cfg.Coins.MinY, h))
			c.DY = -cfg.Coins.Speed
			e.world.Spawn(KindCoin, c)
		}
	}

	e.session = Session{World: e.world}
	if cfg.MiniBoss.Enabled {
		mb := e.sprite(cfg.MiniBoss.Asset, cfg.MiniBoss.AnimInterval).entity(w+cfg.MiniBoss.Offset, h+cfg.MiniBoss.Offset)
		mb.DX = cfg.MiniBoss.DX
		mb.DY = cfg.MiniBoss.DY
		mb.Loop = true
		e.session.MiniBoss = e.world.Spawn(KindMiniBoss, mb)
	}
	e.session.Player = e.spawnPlayer()
}

func (e *Engine) spawnPlayer() *Entity {
	cfg := e.cfg
	p := e.sprite(cfg.Player.Asset, cfg.Player.AnimInterval).entity(cfg.Screen.Width/2, cfg.Player.StartY)
	p.Health = cfg.Player.Lives
	p.Loop = true
	return e.world.Spawn(KindPlayer, p)
}

// sprite returns the spawn template for an asset id the config refers to.
func (e *Engine) sprite(id string, frameInterval int) Sprite {
	a := e.sprites[id]
	sp := Sprite{Asset: id, W: a.Width, H: a.Height, FrameInterval: frameInterval}
	if frameInterval > 0 {
		sp.FrameCount = a.FrameCount
	}
	return sp
}

// randRange returns an integer-valued float in [lo, hi).
func (e *Engine) randRange(lo, hi float64) float64 {
	n := int(hi - lo)
	if n <= 0 {
		return lo
	}
	return lo + float64(e.rng.Intn(n))
}

func (e *Engine) checkInvariants() {
	if dead, ok := e.world.checkCulled(); !ok {
		invariant(false, "dead %s #%d survived cull", dead.Kind, dead.ID)
	}
	if p := e.session.Player; p.Health < 0 {
		invariant(!p.Alive, "player alive with health %d", p.Health)
	}
	if seam := e.bg.Seam(); seam > 0 || seam < -e.cfg.Screen.Height {
		invariant(false, "background seam %v outside [-%v, 0]", seam, e.cfg.Screen.Height)
	}
	if debugChecks {
		invariant(e.world.Count(KindPowerUp) <= 1, "%d power-ups alive", e.world.Count(KindPowerUp))
	}
}

// State returns the current flow state.
func (e *Engine) State() State { return e.flow.State() }

// Score returns the score of the current run.
func (e *Engine) Score() int { return e.session.Score }

// Health returns player health as displayed; it never goes below zero.
func (e *Engine) Health() int {
	if e.session.Player == nil {
		return 0
	}
	return max(e.session.Player.Health, 0)
}

// Player returns a copy of the player entity.
func (e *Engine) Player() Entity {
	if e.session.Player == nil {
		return Entity{}
	}
	return *e.session.Player
}

// CursorVisible reports whether the host should show the pointer.
func (e *Engine) CursorVisible() bool { return e.cursorVisible }

// Tick returns the number of simulated ticks in the current run.
func (e *Engine) Tick() int { return e.tick }

// RestartRemaining returns the seconds left before GAME_OVER accepts input.
func (e *Engine) RestartRemaining() float64 { return e.flow.Remaining() }

// PowerUpCollected reports whether the power-up was caught this run.
func (e *Engine) PowerUpCollected() bool { return e.session.PowerUpCollected }

// Config returns the configuration the engine runs with.
func (e *Engine) Config() config.MidwayConfig { return e.cfg }

// Visit calls fn for every live entity in draw order.
func (e *Engine) Visit(fn func(Entity)) { e.world.Visit(fn) }

// View returns copies of the live entities of one kind.
func (e *Engine) View(kind Kind) []Entity { return e.world.View(kind) }

// Count returns the number of live entities of one kind.
func (e *Engine) Count(kind Kind) int { return e.world.Count(kind) }

// Seam returns the current background seam.
func (e *Engine) Seam() float64 {
	if e.bg == nil {
		return 0
	}
	return e.bg.Seam()
}

// Asset returns a resolved asset by id.
func (e *Engine) Asset(id string) (assets.Asset, bool) {
	a, ok := e.sprites[id]
	return a, ok
}

// DrainCues returns the sound cues raised since the last call.
func (e *Engine) DrainCues() []core.Cue {
	out := e.pendingCues
	e.pendingCues = nil
	return out
}
