package component

// MovementPattern is a ring of horizontal velocity multipliers. The cursor
// marks the front; Rotate moves it one step to the left.
type MovementPattern struct {
	steps  []float64
	cursor int
}

func NewMovementPattern(steps []float64) MovementPattern {
	return MovementPattern{steps: append([]float64(nil), steps...)}
}

// Front returns the current multiplier, or 0 for an empty pattern.
func (p *MovementPattern) Front() float64 {
	if p == nil || len(p.steps) == 0 {
		return 0
	}
	return p.steps[p.cursor]
}

func (p *MovementPattern) Rotate() {
	if p == nil || len(p.steps) == 0 {
		return
	}
	p.cursor = (p.cursor + 1) % len(p.steps)
}

func (p *MovementPattern) Len() int {
	if p == nil {
		return 0
	}
	return len(p.steps)
}
