package render

import (
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/neon-serpent/core"
	"github.com/lixenwraith/neon-serpent/engine"
	"github.com/lixenwraith/neon-serpent/vmath"
)

const hudRows = 3

// Renderer draws simulation snapshots onto a tcell screen
// World coordinates are scaled to the terminal cell grid each frame, so
// resizing just changes the scale; the simulation itself is unaffected
type Renderer struct {
	screen tcell.Screen

	worldWidth  float64
	worldHeight float64
}

func NewRenderer(screen tcell.Screen, worldWidth, worldHeight float64) *Renderer {
	return &Renderer{
		screen:      screen,
		worldWidth:  worldWidth,
		worldHeight: worldHeight,
	}
}

// Draw renders one frame: playfield entities, particles and the HUD
func (r *Renderer) Draw(snap *engine.Snapshot, particles *ParticlePool) {
	r.screen.Clear()

	width, height := r.screen.Size()
	fieldHeight := height - hudRows
	if width < 10 || fieldHeight < 5 {
		r.screen.Show()
		return
	}

	sx := float64(width) / r.worldWidth
	sy := float64(fieldHeight) / r.worldHeight

	// Shake displaces the whole playfield by up to one cell per axis
	shakeX, shakeY := 0, 0
	if snap.Shake > 0 {
		shakeX = int(snap.Shake*sx) % 2
		shakeY = int(snap.Shake*sy) % 2
	}

	plot := func(pos vmath.Vec2, ch rune, color core.RGB) {
		x := int(pos.X*sx) + shakeX
		y := int(pos.Y*sy) + hudRows + shakeY
		if x < 0 || x >= width || y < hudRows || y >= height {
			return
		}
		r.screen.SetContent(x, y, ch, nil, styleFor(color))
	}

	particles.Each(func(pos vmath.Vec2, color core.RGB, life float64) {
		ch := '·'
		if life > 0.5 {
			ch = '•'
		}
		plot(pos, ch, color)
	})

	for _, pos := range snap.Pickups {
		plot(pos.Pos, '+', pos.Color)
	}
	for _, m := range snap.Mines {
		ch := 'x'
		if m.HealthRatio >= 1 { // armed
			ch = 'X'
		}
		plot(m.Pos, ch, m.Color)
	}
	for _, p := range snap.Projectiles {
		plot(p.Pos, '∙', p.Color)
	}
	for _, e := range snap.Enemies {
		plot(e.Pos, enemyRune(e), e.Color)
	}
	for _, seg := range snap.Body {
		plot(seg, 'o', core.ColorPlayer)
	}
	plot(snap.Player.Pos, '@', snap.Player.Color)

	r.drawHud(snap, width)

	if snap.Hud.Announcement != "" {
		r.drawCentered(height/2, width, snap.Hud.Announcement, core.RGB{R: 250, G: 250, B: 160})
	}
	if snap.Hud.GameOver {
		r.drawCentered(height/2, width, "GAME OVER - press R to restart", core.ColorHostile)
	} else if snap.Hud.Paused {
		r.drawCentered(height/2, width, "PAUSED", core.RGB{R: 200, G: 200, B: 200})
	}

	r.screen.Show()
}

func (r *Renderer) drawHud(snap *engine.Snapshot, width int) {
	line := fmt.Sprintf("SCORE %d  LVL %d  HP %.0f/%.0f  SH %.0f  COMBO x%.1f  XP %.0f/%.0f",
		snap.Hud.Score, snap.Hud.Level,
		snap.Hud.Health, snap.Hud.MaxHealth, snap.Hud.Shield,
		snap.Hud.Combo, snap.Hud.Experience, snap.Hud.XPNeeded)
	r.drawText(0, 0, width, line, core.RGB{R: 220, G: 220, B: 220})

	cd := snap.Cooldowns
	line = fmt.Sprintf("FIRE %s  DASH %s  BURST %s  MINE %s",
		meter(cd.Primary), meter(cd.Dash), meter(cd.Burst), meter(cd.Mine))
	r.drawText(0, 1, width, line, core.RGB{R: 160, G: 200, B: 160})

	missions := ""
	for i, m := range snap.Hud.Missions {
		if i > 0 {
			missions += "  |  "
		}
		missions += m
	}
	r.drawText(0, 2, width, missions, core.RGB{R: 180, G: 180, B: 250})
}

// drawText advances one cell per rune; ranging over the string yields
// byte offsets, which would leave gaps after multi-byte glyphs like the
// cooldown meter blocks
func (r *Renderer) drawText(x, y, maxWidth int, text string, color core.RGB) {
	style := styleFor(color)
	col := x
	for _, ch := range text {
		if col >= maxWidth {
			return
		}
		r.screen.SetContent(col, y, ch, nil, style)
		col++
	}
}

func (r *Renderer) drawCentered(y, width int, text string, color core.RGB) {
	x := (width - utf8.RuneCountInString(text)) / 2
	if x < 0 {
		x = 0
	}
	r.drawText(x, y, width, text, color)
}

// meter renders a readiness ratio as a 4-cell bar
func meter(ratio float64) string {
	filled := int(ratio * 4)
	bar := ""
	for i := 0; i < 4; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	return bar
}

func enemyRune(e engine.EntityView) rune {
	switch e.Color {
	case core.ColorRunner:
		return 'r'
	case core.ColorTank:
		return 'T'
	case core.ColorSniper:
		return 's'
	case core.ColorBoss:
		return 'B'
	default:
		return 'e'
	}
}

func styleFor(c core.RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}
