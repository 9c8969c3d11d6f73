package midway

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/midway/internal/assets"
	"github.com/vovakirdan/midway/internal/config"
	"github.com/vovakirdan/midway/internal/core"
)

const testDT = 1.0 / 60

func testConfig() config.MidwayConfig {
	cfg := config.DefaultMidwayConfig()
	cfg.Difficulty.Enabled = false
	cfg.Player.StartY = 200
	return cfg
}

func newTestEngine(t *testing.T, cfg config.MidwayConfig) *Engine {
	t.Helper()
	e := NewEngine(cfg, assets.Default(), 42)
	if err := e.Err(); err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

func press(k core.Key) []core.KeyEvent {
	return []core.KeyEvent{{Key: k, Down: true}}
}

func release(k core.Key) []core.KeyEvent {
	return []core.KeyEvent{{Key: k, Down: false}}
}

// startRun enters RUNNING without simulating a tick.
func startRun(e *Engine) {
	if e.flow.Primary() {
		e.setup()
	}
}

func TestStartPrimaryBeginsFreshRun(t *testing.T) {
	cfg := testConfig()
	e := newTestEngine(t, cfg)

	e.Update(testDT, press(core.KeyConfirmPrimary))

	if e.State() != StateRunning {
		t.Fatalf("State() = %s, expected running", e.State())
	}
	if e.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", e.Score())
	}
	if e.Health() != 3 {
		t.Errorf("Health() = %d, expected 3", e.Health())
	}

	counts := []struct {
		kind Kind
		want int
	}{
		{KindEnemy, cfg.Enemies.Count},
		{KindRedFighter, cfg.RedFighters.Count},
		{KindCloud, 2 * cfg.Clouds.PerSide},
		{KindMiniBoss, 1},
		{KindBackground, 2},
		{KindPlayer, 1},
		{KindPowerUp, 0},
	}
	for _, c := range counts {
		if got := e.Count(c.kind); got != c.want {
			t.Errorf("Count(%s) = %d, expected %d", c.kind, got, c.want)
		}
	}
	if e.CursorVisible() {
		t.Error("cursor visible during a run")
	}
}

func TestRunEndsOnTheTickHealthDrops(t *testing.T) {
	e := newTestEngine(t, testConfig())
	startRun(e)

	p := e.session.Player
	p.Health = 1
	for range 2 {
		e.world.Spawn(KindEnemy, Entity{X: p.X, Y: p.Y, W: 40, H: 32})
	}

	e.Update(testDT, nil)

	if e.State() != StateGameOver {
		t.Fatalf("State() = %s, expected gameover", e.State())
	}
	if e.Player().Alive {
		t.Error("player still alive")
	}
	if e.Health() != 0 {
		t.Errorf("Health() = %d, display must clamp at 0", e.Health())
	}
	if !e.CursorVisible() {
		t.Error("cursor hidden after game over")
	}
	if countCue(e.DrainCues(), core.CueGameOver) != 1 {
		t.Error("expected one game-over cue")
	}

	// Nothing moves while the restart delay runs.
	before := e.Snapshot()
	e.Update(testDT, press(core.KeyFire))
	after := e.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("simulation advanced during GAME_OVER")
	}
}

func TestRestartAfterDelay(t *testing.T) {
	cfg := testConfig()
	e := newTestEngine(t, cfg)
	startRun(e)
	e.session.Player.Health = 0
	e.Update(testDT, nil)
	if e.State() != StateGameOver {
		t.Fatalf("State() = %s, expected gameover", e.State())
	}

	e.Update(1, press(core.KeyConfirmPrimary))
	if e.State() != StateGameOver {
		t.Fatal("restart accepted during the delay")
	}

	e.Update(2.5, nil)
	e.Update(testDT, press(core.KeyConfirmPrimary))
	if e.State() != StateRunning {
		t.Fatalf("State() = %s after the delay, expected running", e.State())
	}
	if e.Health() != cfg.Player.Lives || e.Score() != 0 {
		t.Errorf("health=%d score=%d, expected a fresh run", e.Health(), e.Score())
	}
	if got := e.Count(KindEnemy); got != cfg.Enemies.Count {
		t.Errorf("Count(enemy) = %d, expected %d", got, cfg.Enemies.Count)
	}
}

func TestFireIgnoredOutsideRun(t *testing.T) {
	e := newTestEngine(t, testConfig())
	e.Update(testDT, press(core.KeyFire))
	e.Update(testDT, press(core.KeyLeft))

	if got := e.Count(KindBullet); got != 0 {
		t.Errorf("Count(bullet) = %d on the title page, expected 0", got)
	}
	if e.State() != StateStart {
		t.Errorf("State() = %s, expected start", e.State())
	}
}

func TestFireAndMove(t *testing.T) {
	cfg := testConfig()
	e := newTestEngine(t, cfg)
	startRun(e)
	x0 := e.Player().X

	e.Update(testDT, []core.KeyEvent{{Key: core.KeyRight, Down: true}, {Key: core.KeyFire, Down: true}})
	if got := e.Count(KindBullet); got != 1 {
		t.Errorf("Count(bullet) = %d, expected 1", got)
	}
	if got := e.Player().X; got != x0+cfg.Player.Speed {
		t.Errorf("player X = %v, expected %v", got, x0+cfg.Player.Speed)
	}
	if countCue(e.DrainCues(), core.CueShot) != 1 {
		t.Error("expected one shot cue")
	}

	// Held key keeps moving, release stops.
	e.Update(testDT, nil)
	if got := e.Player().X; got != x0+2*cfg.Player.Speed {
		t.Errorf("player X = %v while held, expected %v", got, x0+2*cfg.Player.Speed)
	}
	e.Update(testDT, release(core.KeyRight))
	if got := e.Player().X; got != x0+2*cfg.Player.Speed {
		t.Errorf("player X = %v after release, expected %v", got, x0+2*cfg.Player.Speed)
	}
}

func TestSpreadShotAfterPowerUp(t *testing.T) {
	e := newTestEngine(t, testConfig())
	startRun(e)
	e.session.SpreadShot = true

	e.Update(testDT, press(core.KeyFire))

	bullets := e.View(KindBullet)
	if len(bullets) != 3 {
		t.Fatalf("Count(bullet) = %d, expected 3", len(bullets))
	}
	if bullets[0].DX != 0 || bullets[1].DX >= 0 || bullets[2].DX <= 0 {
		t.Errorf("spread DX = %v %v %v", bullets[0].DX, bullets[1].DX, bullets[2].DX)
	}
}

func TestNoDeadEntitySurvivesATick(t *testing.T) {
	e := newTestEngine(t, testConfig())
	startRun(e)

	keys := []core.Key{core.KeyLeft, core.KeyRight, core.KeyUp, core.KeyDown}
	for tick := range 3000 {
		var events []core.KeyEvent
		if tick%4 == 0 {
			events = append(events, core.KeyEvent{Key: core.KeyFire, Down: true})
		}
		if tick%90 == 0 {
			events = append(events, core.KeyEvent{Key: keys[(tick/90)%len(keys)], Down: true})
		}
		e.Update(testDT, events)

		if dead, ok := e.world.checkCulled(); !ok {
			t.Fatalf("tick %d: dead %s #%d still registered", tick, dead.Kind, dead.ID)
		}
		if e.Count(KindPowerUp) > 1 {
			t.Fatalf("tick %d: %d power-ups alive", tick, e.Count(KindPowerUp))
		}
		if seam := e.Seam(); seam > 0 || seam < -e.cfg.Screen.Height {
			t.Fatalf("tick %d: seam %v", tick, seam)
		}
		if e.State() != StateRunning {
			break
		}
	}
}

func TestPowerUpNeverSpontaneous(t *testing.T) {
	cfg := testConfig()
	cfg.Enemies.Count = 0
	cfg.RedFighters.Count = 0
	e := newTestEngine(t, cfg)
	startRun(e)

	for tick := range 1500 {
		e.Update(testDT, nil)
		if e.Count(KindPowerUp) != 0 {
			t.Fatalf("tick %d: power-up appeared without the mini-boss being shot", tick)
		}
	}
	if e.Count(KindMiniBoss) != 0 {
		t.Error("mini-boss should have left the field by now")
	}
}

func TestDeterminism(t *testing.T) {
	inputs := make([][]core.KeyEvent, 600)
	inputs[0] = press(core.KeyConfirmPrimary)
	for i := 1; i < len(inputs); i++ {
		switch {
		case i%7 == 0:
			inputs[i] = press(core.KeyFire)
		case i%50 == 0:
			inputs[i] = press(core.KeyLeft)
		case i%50 == 25:
			inputs[i] = press(core.KeyRight)
		}
	}

	run := func() Snapshot {
		e := NewEngine(testConfig(), assets.Default(), 12345)
		for _, in := range inputs {
			e.Update(testDT, in)
		}
		return e.Snapshot()
	}

	snap1, snap2 := run(), run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", snap1.Tick, snap2.Tick)
	}
}

func TestSeedChangesWave(t *testing.T) {
	a := NewEngine(testConfig(), assets.Default(), 1)
	b := NewEngine(testConfig(), assets.Default(), 2)
	startRun(a)
	startRun(b)
	sa, sb := a.Snapshot(), b.Snapshot()
	if sa.Hash() == sb.Hash() {
		t.Error("different seeds produced the same wave")
	}
}

func TestIdleAnimationOnTitle(t *testing.T) {
	cfg := testConfig()
	cfg.Player.AnimInterval = 1
	e := newTestEngine(t, cfg)
	f0 := e.Player().Frame
	e.Update(testDT, nil)
	if e.Player().Frame == f0 {
		t.Error("player does not animate on the title page")
	}

	cfg.Flow.IdleAnimation = false
	still := newTestEngine(t, cfg)
	still.Update(testDT, nil)
	if still.Player().Frame != 0 {
		t.Error("player animates with idle animation off")
	}
}

func TestInvalidConfigStaysOnErrorPage(t *testing.T) {
	cfg := testConfig()
	cfg.Background.GapThreshold = 1

	e := NewEngine(cfg, assets.Default(), 1)
	err := e.Err()
	if !errors.Is(err, ErrNotReady) || !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("Err() = %v, expected ErrNotReady wrapping ErrInvalidConfig", err)
	}

	e.Update(testDT, press(core.KeyConfirmPrimary))
	if e.State() != StateStart {
		t.Errorf("State() = %s, engine must not start", e.State())
	}

	screen := core.NewScreen(80, 24)
	e.Render(screen)
	if !strings.Contains(screen.String(), "configuration error") {
		t.Error("error page not rendered")
	}
}

func TestMissingAssetStaysOnErrorPage(t *testing.T) {
	cfg := testConfig()
	cfg.MiniBoss.Asset = "zeppelin"

	e := NewEngine(cfg, assets.Default(), 1)
	if !errors.Is(e.Err(), assets.ErrUnknownAsset) {
		t.Errorf("Err() = %v, expected ErrUnknownAsset", e.Err())
	}
}

func TestRenderPages(t *testing.T) {
	e := newTestEngine(t, testConfig())
	screen := core.NewScreen(80, 24)

	e.Render(screen)
	if out := screen.String(); !strings.Contains(out, TitleText) || !strings.Contains(out, PromptPlay) {
		t.Errorf("title page missing text:\n%s", out)
	}

	e.Update(testDT, press(core.KeyConfirmSecondary))
	e.Render(screen)
	if out := screen.String(); !strings.Contains(out, InstructionsText) {
		t.Errorf("instructions page missing key list:\n%s", out)
	}

	e.Update(testDT, press(core.KeyConfirmPrimary))
	e.Render(screen)
	if out := screen.String(); !strings.Contains(out, "Kills: 0, Lives: 3") {
		t.Errorf("HUD missing:\n%s", out)
	}
}

func TestProjection(t *testing.T) {
	p := Projection{WorldW: 562, WorldH: 644, Cols: 80, Rows: 24}
	tests := []struct {
		x, y   float64
		cx, cy int
	}{
		{0, 0, 0, 23},
		{561, 643, 79, 0},
		{281, 322, 40, 11},
	}
	for _, tt := range tests {
		cx, cy := p.Cell(tt.x, tt.y)
		if cx != tt.cx || cy != tt.cy {
			t.Errorf("Cell(%v, %v) = (%d, %d), expected (%d, %d)", tt.x, tt.y, cx, cy, tt.cx, tt.cy)
		}
	}
}

func TestPageText(t *testing.T) {
	cfg := testConfig()
	cfg.Player.Lives = 1
	e := newTestEngine(t, cfg)

	if lines := e.PageText(); len(lines) == 0 || lines[0] != TitleText {
		t.Errorf("PageText() = %q on the title page", lines)
	}
	startRun(e)
	if lines := e.PageText(); lines != nil {
		t.Errorf("PageText() = %q during a run, expected none", lines)
	}

	e.flow.GameOver()
	lines := e.PageText()
	if len(lines) != 2 || lines[0] != GameOverText || lines[1] != "3..." {
		t.Errorf("PageText() = %q right after game over", lines)
	}
	e.flow.Tick(5)
	if lines := e.PageText(); lines[1] != PromptRestart {
		t.Errorf("prompt = %q after the delay, expected %q", lines[1], PromptRestart)
	}
}
