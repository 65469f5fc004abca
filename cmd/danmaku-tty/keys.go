package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/danmaku/input"
)

// Terminals report presses and auto-repeat but never releases, so a
// direction counts as held for keyTimeout after its last press.
const keyTimeout = 150 * time.Millisecond

const (
	up = iota
	down
	left
	right
)

type keyboard struct {
	held    [4]time.Time
	pending input.Input
}

func (k *keyboard) handle(ev *tcell.EventKey, now time.Time) {
	switch ev.Key() {
	case tcell.KeyUp:
		k.held[up] = now
	case tcell.KeyDown:
		k.held[down] = now
	case tcell.KeyLeft:
		k.held[left] = now
	case tcell.KeyRight:
		k.held[right] = now
	case tcell.KeyEnter:
		k.pending.ConfirmPressed = true
	case tcell.KeyEscape:
		k.pending.MenuPressed = true
	case tcell.KeyCtrlC:
		k.pending.QuitPressed = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			k.held[up] = now
		case 's', 'S':
			k.held[down] = now
		case 'a', 'A':
			k.held[left] = now
		case 'd', 'D':
			k.held[right] = now
		case ' ':
			k.pending.ConfirmPressed = true
		case 'r', 'R':
			k.pending.RestartPressed = true
		case 'q', 'Q':
			k.pending.QuitPressed = true
		}
	}
}

// input returns the frame's input and clears the one-shot presses.
func (k *keyboard) input(now time.Time) input.Input {
	in := k.pending
	k.pending = input.Input{}

	isHeld := func(i int) bool {
		return !k.held[i].IsZero() && now.Sub(k.held[i]) < keyTimeout
	}
	in.Up = isHeld(up)
	in.Down = isHeld(down)
	in.Left = isHeld(left)
	in.Right = isHeld(right)
	return in
}
