package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/danmaku/common"
	"github.com/milk9111/danmaku/component"
	"github.com/milk9111/danmaku/session"
	"github.com/milk9111/danmaku/state"
)

var (
	playerStyle = tcell.StyleDefault.Foreground(tcell.ColorDeepSkyBlue)
	enemyStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

func styleFor(f component.Faction) tcell.Style {
	if f == component.FactionPlayer {
		return playerStyle
	}
	return enemyStyle
}

// cell maps play-area coordinates onto the terminal grid. The whole play area
// is always visible regardless of the terminal size.
func cell(x, y, width, height float64, cols, rows int) (int, int, bool) {
	if width <= 0 || height <= 0 || x < 0 || y < 0 || x >= width || y >= height {
		return 0, 0, false
	}
	return int(x / width * float64(cols)), int(y / height * float64(rows)), true
}

func draw(s tcell.Screen, snap session.Snapshot) {
	s.Clear()
	cols, rows := s.Size()
	put := func(x, y float64, r rune, style tcell.Style) {
		if c, row, ok := cell(x, y, snap.Width, snap.Height, cols, rows); ok {
			s.SetContent(c, row, r, nil, style)
		}
	}

	for _, p := range snap.Particles {
		level := int32(common.Lerp(255, 40, float32(p.Age)))
		put(p.X, p.Y, '+', tcell.StyleDefault.Foreground(tcell.NewRGBColor(level, level/2, 0)))
	}
	for _, b := range snap.Bullets {
		r := '|'
		if b.Faction == component.FactionEnemy {
			r = '*'
		}
		put(b.X, b.Y, r, styleFor(b.Faction))
	}

	enemies := 0
	for _, b := range snap.Bodies {
		if b.Faction == component.FactionPlayer {
			put(b.X, b.Y, '@', playerStyle)
			continue
		}
		put(b.X, b.Y, 'W', enemyStyle)
		drawText(s, 0, enemies, fmt.Sprintf("%s %d/%d", healthBar(b.Health, 20), b.HP, b.MaxHP), enemyStyle)
		enemies++
	}

	y := rows/2 - len(snap.Messages)/2
	for _, msg := range snap.Messages {
		drawText(s, cols/2-len(msg)/2, y, msg, textStyle)
		y++
	}

	switch snap.State {
	case state.Cinematic:
		if snap.HasLine {
			line := string(snap.Line.Speaker) + ": " + snap.Line.Text
			x := 1
			if snap.Line.Speaker == state.SpeakerEnemy {
				x = cols - len(line) - 1
			}
			drawText(s, x, rows-2, line, styleFor(speakerFaction(snap.Line.Speaker)))
			drawText(s, 1, rows-1, "Enter to continue", dimStyle)
		}
	case state.Paused:
		menu := "Paused  [Enter] resume  [R] reset  [Q] quit"
		drawText(s, cols/2-len(menu)/2, rows/2+len(snap.Messages)+1, menu, textStyle.Reverse(true))
	}

	s.Show()
}

func speakerFaction(sp state.Speaker) component.Faction {
	if sp == state.SpeakerEnemy {
		return component.FactionEnemy
	}
	return component.FactionPlayer
}

func healthBar(pct float64, width int) string {
	filled := int(pct*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return fmt.Sprintf("[%s%s] %3.0f%%", strings.Repeat("#", filled), strings.Repeat("-", width-filled), pct*100)
}

func drawText(s tcell.Screen, x, y int, str string, style tcell.Style) {
	for i, r := range []rune(str) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
