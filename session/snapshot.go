package session

import (
	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/state"
)

// Snapshot extends the world view with what only the session knows.
type Snapshot struct {
	ecs.Snapshot
	State      state.State
	Line       state.Line
	HasLine    bool
	Background string
}

func (s *Session) Snapshot() Snapshot {
	line, ok := s.machine.Story().Current()
	return Snapshot{
		Snapshot:   s.world.Snapshot(),
		State:      s.machine.State(),
		Line:       line,
		HasLine:    ok,
		Background: s.values.String("background", ""),
	}
}
