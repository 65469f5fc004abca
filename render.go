package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/danmaku/assets"
	"github.com/milk9111/danmaku/common"
	"github.com/milk9111/danmaku/component"
	"github.com/milk9111/danmaku/session"
	"github.com/milk9111/danmaku/state"
	"go.uber.org/zap"
	"golang.org/x/image/colornames"
)

const (
	playerSize     = 20
	enemySize      = 40
	bulletRadius   = 4
	particleRadius = 3
	healthBarWidth = 80
	lineHeight     = 18
)

func factionColor(f component.Faction) color.RGBA {
	if f == component.FactionPlayer {
		return colornames.Deepskyblue
	}
	return colornames.Crimson
}

func (g *Game) drawBackground(screen *ebiten.Image, name string) {
	if name != g.backgroundName {
		g.backgroundName = name
		g.background = nil
		if name != "" {
			img, err := assets.LoadImage(g.assetDir, name)
			if err != nil {
				g.logger.Warn("background not loaded", zap.String("name", name), zap.Error(err))
			}
			g.background = img
		}
	}

	if g.background == nil {
		screen.Fill(colornames.Midnightblue)
		return
	}
	b := g.background.Bounds()
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(sw)/float64(b.Dx()), float64(sh)/float64(b.Dy()))
	screen.DrawImage(g.background, op)
}

func (g *Game) drawWorld(screen *ebiten.Image, snap session.Snapshot) {
	for _, p := range snap.Particles {
		alpha := uint8(common.Lerp(255, 0, float32(p.Age)))
		c := colornames.Orange
		c.A = alpha
		vector.FillCircle(screen, float32(p.X), float32(p.Y), particleRadius, premultiply(c), true)
	}

	for _, b := range snap.Bodies {
		size := float32(playerSize)
		if b.Faction == component.FactionEnemy {
			size = enemySize
		}
		x, y := float32(b.X)-size/2, float32(b.Y)-size/2
		vector.FillRect(screen, x, y, size, size, factionColor(b.Faction), false)

		if b.Faction == component.FactionEnemy {
			drawHealthBar(screen, float32(b.X), y-10, float32(b.Health))
		}
	}

	for _, b := range snap.Bullets {
		vector.FillCircle(screen, float32(b.X), float32(b.Y), bulletRadius, colornames.White, true)
		vector.FillCircle(screen, float32(b.X), float32(b.Y), bulletRadius-1.5, factionColor(b.Faction), true)
	}
}

func drawHealthBar(screen *ebiten.Image, cx, top, pct float32) {
	left := cx - healthBarWidth/2
	vector.FillRect(screen, left, top, healthBarWidth, 5, colornames.Dimgray, false)
	vector.FillRect(screen, left, top, healthBarWidth*pct, 5, colornames.Limegreen, false)
}

// premultiply converts a straight-alpha color for vector drawing.
func premultiply(c color.RGBA) color.RGBA {
	a := uint16(c.A)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
		A: c.A,
	}
}

// drawStory shows the current line at the bottom, aligned to the speaker's
// side.
func (g *Game) drawStory(screen *ebiten.Image, snap session.Snapshot) {
	if snap.State != state.Cinematic || !snap.HasLine {
		return
	}
	sw, sh := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	boxH := 3.0 * lineHeight
	vector.FillRect(screen, 0, float32(sh-boxH), float32(sw), float32(boxH), color.RGBA{A: 200}, false)

	label := string(snap.Line.Speaker) + ": " + snap.Line.Text
	w, _ := text.Measure(label, g.face, lineHeight)
	x := 20.0
	if snap.Line.Speaker == state.SpeakerEnemy {
		x = sw - w - 20
	}
	g.drawText(screen, label, x, sh-boxH+lineHeight, factionColorFor(snap.Line.Speaker))
	g.drawText(screen, "Enter to continue", sw/2-60, sh-lineHeight, colornames.Gray)
}

func factionColorFor(s state.Speaker) color.RGBA {
	if s == state.SpeakerEnemy {
		return factionColor(component.FactionEnemy)
	}
	return factionColor(component.FactionPlayer)
}

func (g *Game) drawMessages(screen *ebiten.Image, messages []string) {
	sw, sh := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	y := sh/2 - float64(len(messages))*lineHeight/2
	for _, msg := range messages {
		w, _ := text.Measure(msg, g.face, lineHeight)
		g.drawText(screen, msg, sw/2-w/2, y, colornames.White)
		y += lineHeight
	}
}

func (g *Game) drawText(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = lineHeight
	text.Draw(screen, s, g.face, op)
}

func (g *Game) drawDebug(screen *ebiten.Image, snap session.Snapshot) {
	msg := fmt.Sprintf(
		"FPS: %.2f  TPS: %.2f\nstate: %s  outcome: %s\nbullets: %d  particles: %d\nrun: %s",
		ebiten.ActualFPS(), ebiten.ActualTPS(), snap.State, snap.Outcome,
		len(snap.Bullets), len(snap.Particles), g.session.RunID(),
	)
	for _, b := range snap.Bodies {
		msg += fmt.Sprintf("\n%s %d: %d/%d hp", b.Faction, b.ID, b.HP, b.MaxHP)
	}
	ebitenutil.DebugPrint(screen, msg)
}
