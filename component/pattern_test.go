package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMovementPatternRotates(t *testing.T) {
	p := NewMovementPattern([]float64{-1, 0, 1, 0, 1, 0, -1, 0})

	var got []float64
	for i := 0; i < 9; i++ {
		got = append(got, p.Front())
		p.Rotate()
	}
	assert.Equal(t, []float64{-1, 0, 1, 0, 1, 0, -1, 0, -1}, got)
}

func TestMovementPatternEmptyDefaultsToZero(t *testing.T) {
	p := NewMovementPattern(nil)
	p.Rotate()
	assert.Zero(t, p.Front())
	assert.Zero(t, p.Len())
}

func TestMovementPatternCopiesInput(t *testing.T) {
	steps := []float64{1, 2}
	p := NewMovementPattern(steps)
	steps[0] = 9
	assert.Equal(t, 1.0, p.Front())
}
