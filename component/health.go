package component

// Health is a saturating damage accumulator. An entity is alive while Current
// is above zero; once it reaches zero it stays there.
type Health struct {
	Max     uint32
	Current uint32
}

// HealthChange describes the outcome of a TakeDamage call. Callers use it in
// place of an on-hit callback.
type HealthChange struct {
	Previous uint32
	Current  uint32
	Died     bool
}

// Applied reports whether the call changed the health value.
func (c HealthChange) Applied() bool {
	return c.Previous != c.Current
}

// NewHealth creates a Health component with max/current initialized.
func NewHealth(max uint32) *Health {
	if max == 0 {
		max = 1
	}
	return &Health{Max: max, Current: max}
}

// IsAlive reports whether the entity is alive.
func (h *Health) IsAlive() bool {
	return h != nil && h.Current > 0
}

// TakeDamage subtracts amount without underflowing. Died is set only on the
// call that brings Current to zero.
func (h *Health) TakeDamage(amount uint32) HealthChange {
	if h == nil {
		return HealthChange{}
	}
	change := HealthChange{Previous: h.Current}
	if amount >= h.Current {
		h.Current = 0
	} else {
		h.Current -= amount
	}
	change.Current = h.Current
	change.Died = change.Previous > 0 && h.Current == 0
	return change
}

// Percentage returns Current/Max for health bars.
func (h *Health) Percentage() float64 {
	if h == nil || h.Max == 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}

// CurrentHP returns the current health value.
func (h *Health) CurrentHP() uint32 {
	if h == nil {
		return 0
	}
	return h.Current
}

// MaxHP returns the maximum health value.
func (h *Health) MaxHP() uint32 {
	if h == nil {
		return 0
	}
	return h.Max
}
