// Package window hosts midway in a desktop window through Ebitengine.
// Unlike a terminal it reports real key releases, so the engine receives
// key-up events as they happen.
package window

import (
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/midway/internal/core"
	"github.com/vovakirdan/midway/internal/games/midway"
)

// glyph metrics of ebitenutil's debug font.
const (
	glyphW = 6
	glyphH = 16
)

// bindings maps physical keys to symbolic keys.
var bindings = []struct {
	phys ebiten.Key
	key  core.Key
}{
	{ebiten.KeyW, core.KeyUp}, {ebiten.KeyArrowUp, core.KeyUp},
	{ebiten.KeyS, core.KeyDown}, {ebiten.KeyArrowDown, core.KeyDown},
	{ebiten.KeyA, core.KeyLeft}, {ebiten.KeyArrowLeft, core.KeyLeft},
	{ebiten.KeyD, core.KeyRight}, {ebiten.KeyArrowRight, core.KeyRight},
	{ebiten.KeyJ, core.KeyFire},
	{ebiten.KeySpace, core.KeyConfirmPrimary},
	{ebiten.KeyEnter, core.KeyConfirmSecondary},
}

var palette = map[core.Color]color.RGBA{
	core.ColorDefault:      {0xc0, 0xc0, 0xc0, 0xff},
	core.ColorRed:          {0xb0, 0x20, 0x20, 0xff},
	core.ColorGreen:        {0x30, 0xb0, 0x40, 0xff},
	core.ColorYellow:       {0xd0, 0xb0, 0x20, 0xff},
	core.ColorBlue:         {0x30, 0x50, 0xd0, 0xff},
	core.ColorMagenta:      {0xb0, 0x30, 0xb0, 0xff},
	core.ColorCyan:         {0x30, 0xb0, 0xc0, 0xff},
	core.ColorWhite:        {0xe0, 0xe0, 0xe0, 0xff},
	core.ColorBrightRed:    {0xff, 0x40, 0x40, 0xff},
	core.ColorBrightYellow: {0xff, 0xf0, 0x40, 0xff},
	core.ColorBrightWhite:  {0xff, 0xff, 0xff, 0xff},
	core.ColorOrange:       {0xff, 0x88, 0x00, 0xff},
	core.ColorGray:         {0x80, 0x80, 0x88, 0xff},
	core.ColorNavy:         {0x10, 0x30, 0x60, 0xff},
}

// Host adapts a midway game to ebiten.Game.
type Host struct {
	game       *midway.Game
	logger     *log.Logger
	frame      core.InputFrame
	state      core.GameState
	cursor     bool
	onGameOver func(core.GameState)
}

// NewHost resets game for a window of the world's size. logger may be nil.
func NewHost(game *midway.Game, seed int64, logger *log.Logger) *Host {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	game.Reset(core.RuntimeConfig{TickRate: ebiten.DefaultTPS, Seed: seed})
	return &Host{game: game, logger: logger.With("game", game.ID()), cursor: true}
}

// OnGameOver registers fn to run once at the start of every GAME_OVER.
func (h *Host) OnGameOver(fn func(core.GameState)) { h.onGameOver = fn }

// Update implements ebiten.Game.
func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	h.frame.Clear()
	for _, b := range bindings {
		if inpututil.IsKeyJustPressed(b.phys) {
			h.frame.Press(b.key)
		}
		if inpututil.IsKeyJustReleased(b.phys) {
			h.frame.Release(b.key)
		}
	}

	prev := h.state
	h.state = h.game.Step(h.frame).State
	if h.state.GameOver && !prev.GameOver {
		h.logger.Info("game over", "score", h.state.Score)
		if h.onGameOver != nil {
			h.onGameOver(h.state)
		}
	}

	if want := h.game.CursorVisible(); want != h.cursor {
		h.cursor = want
		mode := ebiten.CursorModeHidden
		if want {
			mode = ebiten.CursorModeVisible
		}
		ebiten.SetCursorMode(mode)
	}
	return nil
}

// Draw implements ebiten.Game.
func (h *Host) Draw(screen *ebiten.Image) {
	e := h.game.Engine()
	screen.Fill(palette[core.ColorNavy])
	if e == nil {
		return
	}
	if err := e.Err(); err != nil {
		ebitenutil.DebugPrintAt(screen, "Cannot start: configuration error\n\n"+err.Error(), 8, 8)
		return
	}

	worldH := e.Config().Screen.Height
	gameOver := e.State() == midway.StateGameOver
	e.Visit(func(ent midway.Entity) {
		if ent.Kind == midway.KindBackground || (gameOver && ent.Kind == midway.KindPlayer) {
			return
		}
		c := palette[core.ColorDefault]
		if a, ok := e.Asset(ent.Asset); ok {
			c = palette[a.Color]
		}
		// World y grows upward; image y grows downward.
		x := float32(ent.Left())
		y := float32(worldH - ent.Top())
		vector.DrawFilledRect(screen, x, y, float32(ent.W), float32(ent.H), c, false)
	})

	if st := e.State(); st == midway.StateRunning || st == midway.StateGameOver {
		ebitenutil.DebugPrintAt(screen, e.HUDText(), 8, int(worldH)-glyphH-4)
	}
	h.drawPage(screen, e)
}

func (h *Host) drawPage(screen *ebiten.Image, e *midway.Engine) {
	lines := e.PageText()
	if len(lines) == 0 {
		return
	}
	w, hgt := screen.Bounds().Dx(), screen.Bounds().Dy()
	top := hgt/2 - len(lines)*glyphH/2
	for i, l := range lines {
		x := (w - len(l)*glyphW) / 2
		ebitenutil.DebugPrintAt(screen, l, x, top+i*glyphH)
	}
}

// Layout implements ebiten.Game. The logical screen is the world.
func (h *Host) Layout(_, _ int) (int, int) {
	e := h.game.Engine()
	if e == nil {
		return 562, 644
	}
	cfg := e.Config()
	return int(cfg.Screen.Width), int(cfg.Screen.Height)
}

// Run opens a window and plays until it is closed or Escape is pressed.
func Run(host *Host, scale float64) error {
	w, hgt := host.Layout(0, 0)
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(float64(w)*scale), int(float64(hgt)*scale))
	ebiten.SetWindowTitle(midway.TitleText)

	if err := ebiten.RunGame(host); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
