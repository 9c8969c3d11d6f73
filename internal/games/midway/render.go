package midway

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/midway/internal/config"
	"github.com/vovakirdan/midway/internal/core"
)

// Page text shown outside a run.
const (
	TitleText        = "1943: The Battle of Midway"
	PromptKeys       = "Press Enter for Keys"
	PromptPlay       = "Press SPACE to play"
	PromptRestart    = "Press SPACE to restart"
	InstructionsText = "W: up, S: down, A: left, D: right, J: fire"
	GameOverText     = "Game Over"
)

// Projection maps world coordinates onto a cell grid. World y grows upward,
// cell rows grow downward.
type Projection struct {
	WorldW, WorldH float64
	Cols, Rows     int
}

// Cell returns the cell containing world point (x, y).
func (p Projection) Cell(x, y float64) (int, int) {
	cx := int(x * float64(p.Cols) / p.WorldW)
	cy := p.Rows - 1 - int(y*float64(p.Rows)/p.WorldH)
	return cx, cy
}

// RowCenterY returns the world y at the middle of cell row cy.
func (p Projection) RowCenterY(cy int) float64 {
	return (float64(p.Rows-1-cy) + 0.5) * p.WorldH / float64(p.Rows)
}

// Render draws the current state into dst. It does not mutate the engine.
func (e *Engine) Render(dst *core.Screen) {
	dst.Clear()

	if e.err != nil {
		e.renderError(dst)
		return
	}

	proj := Projection{
		WorldW: e.cfg.Screen.Width,
		WorldH: e.cfg.Screen.Height,
		Cols:   dst.Width(),
		Rows:   dst.Height(),
	}

	e.renderSea(dst, proj)
	e.world.Visit(func(ent Entity) {
		if ent.Kind == KindBackground {
			return
		}
		if ent.Kind == KindPlayer && e.flow.State() == StateGameOver {
			return // replaced by its explosion
		}
		e.drawEntity(dst, proj, ent)
	})

	switch e.flow.State() {
	case StateRunning:
		e.renderHUD(dst)
	case StateGameOver:
		e.renderHUD(dst)
		drawPanel(dst, dst.Height()/2-1, e.PageText()...)
	default:
		drawPanel(dst, dst.Height()/2-2, e.PageText()...)
	}
}

// PageText returns the lines of the page shown in the current state, title
// first. A run has no page.
func (e *Engine) PageText() []string {
	switch e.flow.State() {
	case StateStart:
		return []string{TitleText, PromptKeys, PromptPlay}
	case StateInstructions:
		back := "Press Enter to go back"
		if e.cfg.Flow.Mode == config.FlowAdvance {
			back = "Press Enter to play"
		}
		return []string{"Keys", InstructionsText, back, PromptPlay}
	case StateGameOver:
		prompt := PromptRestart
		if e.flow.Waiting() {
			prompt = fmt.Sprintf("%.0f...", e.flow.Remaining()+0.49)
		}
		return []string{GameOverText, prompt}
	}
	return nil
}

// HUDText returns the status line shown during a run.
func (e *Engine) HUDText() string {
	return fmt.Sprintf("Kills: %d, Lives: %d", e.session.Score, e.Health())
}

func (e *Engine) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(1, dst.Height()-1, " "+e.HUDText()+" ", core.ColorBrightWhite)
	if e.session.SpreadShot {
		label := " SPREAD "
		dst.DrawTextColored(dst.Width()-len(label)-1, dst.Height()-1, label, core.ColorGreen)
	}
}

// renderSea paints the two background tiles. Each screen row samples the
// tile covering it, so the pattern scrolls with the tiles.
func (e *Engine) renderSea(dst *core.Screen, proj Projection) {
	if e.bg == nil {
		return
	}
	a, ok := e.sprites[e.cfg.Background.Asset]
	if !ok {
		return
	}
	pattern := a.Frame(0)
	if len(pattern) == 0 {
		return
	}
	cellH := proj.WorldH / float64(proj.Rows)
	leading, trailing := e.bg.Tiles()

	for cy := 0; cy < proj.Rows; cy++ {
		y := proj.RowCenterY(cy)
		var tile *Entity
		switch {
		case y >= leading.Bottom() && y < leading.Top():
			tile = leading
		case y >= trailing.Bottom() && y < trailing.Top():
			tile = trailing
		default:
			continue // seam
		}
		idx := int((y - tile.Bottom()) / cellH)
		row := []rune(pattern[idx%len(pattern)])
		if len(row) == 0 {
			continue
		}
		for cx := 0; cx < proj.Cols; cx++ {
			if r := row[cx%len(row)]; r != ' ' {
				dst.SetColored(cx, cy, r, a.Color)
			}
		}
	}
}

func (e *Engine) drawEntity(dst *core.Screen, proj Projection, ent Entity) {
	a, ok := e.sprites[ent.Asset]
	if !ok {
		return
	}
	rows := a.Frame(ent.Frame)
	if len(rows) == 0 {
		return
	}
	cx, cy := proj.Cell(ent.X, ent.Y)
	top := cy - len(rows)/2
	for i, line := range rows {
		glyphs := []rune(line)
		left := cx - len(glyphs)/2
		for j, r := range glyphs {
			if r != ' ' {
				dst.SetColored(left+j, top+i, r, a.Color)
			}
		}
	}
}

func (e *Engine) renderError(dst *core.Screen) {
	lines := []string{"Cannot start: configuration error", ""}
	for _, l := range strings.Split(e.err.Error(), "\n") {
		if w := dst.Width() - 2; w > 0 && len(l) > w {
			l = l[:w]
		}
		lines = append(lines, l)
	}
	start := max((dst.Height()-len(lines))/2, 0)
	for i, l := range lines {
		c := core.ColorDefault
		if i == 0 {
			c = core.ColorBrightRed
		}
		dst.DrawTextCenteredColored(start+i, l, c)
	}
}

// drawPanel draws centred lines inside a box.
func drawPanel(dst *core.Screen, y int, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	width += 4
	x := (dst.Width() - width) / 2
	box := core.NewRect(x, y-1, width, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = core.ColorBrightYellow
		}
		dst.DrawTextCenteredColored(y+i, l, c)
	}
}
