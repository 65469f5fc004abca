package common

import "github.com/jakecoffman/cp"

// Unit direction vectors in screen space (y grows downwards).
var (
	DirUp    = cp.Vector{X: 0, Y: -1}
	DirDown  = cp.Vector{X: 0, Y: 1}
	DirLeft  = cp.Vector{X: -1, Y: 0}
	DirRight = cp.Vector{X: 1, Y: 0}
)

// Cardinals lists the four directions in the order death particles are emitted.
var Cardinals = [4]cp.Vector{DirUp, DirDown, DirLeft, DirRight}

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}
