package common

const (
	BaseWidth  = 800
	BaseHeight = 800
)

// Screen is the play area. Only Height matters to the simulation: bullets
// leaving [0, Height] vertically are retired.
type Screen struct {
	Width  float64
	Height float64
}

func DefaultScreen() Screen {
	return Screen{Width: BaseWidth, Height: BaseHeight}
}

// OutOfBoundsY reports whether y lies outside the vertical play area.
func (s Screen) OutOfBoundsY(y float64) bool {
	return y < 0 || y > s.Height
}
