package system

import (
	"github.com/milk9111/danmaku/common"
	"github.com/milk9111/danmaku/ecs"
)

// PlayerControllerSystem moves every player one step per held direction key,
// in up, down, left, right order.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	in := w.Input()
	if !in.Moving() {
		return
	}

	held := [4]bool{in.Up, in.Down, in.Left, in.Right}
	for i, dir := range common.Cardinals {
		if !held[i] {
			continue
		}
		for _, player := range w.Players {
			player.Move(dir)
		}
	}
}
