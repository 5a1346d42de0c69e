package navigation

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const epsilon = 1e-4

var (
	up      = mgl64.Vec3{0, 1, 0}
	forward = mgl64.Vec3{0, 0, 1}
)

// WithHeight returns p with its vertical coordinate replaced.
func WithHeight(p mgl64.Vec3, y float64) mgl64.Vec3 {
	return mgl64.Vec3{p.X(), y, p.Z()}
}

// Lift returns a copy of path raised by dy.
func Lift(path []mgl64.Vec3, dy float64) []mgl64.Vec3 {
	if path == nil {
		return nil
	}
	out := make([]mgl64.Vec3, len(path))
	for i, p := range path {
		out[i] = mgl64.Vec3{p.X(), p.Y() + dy, p.Z()}
	}
	return out
}

func clonePath(path []mgl64.Vec3) []mgl64.Vec3 {
	if path == nil {
		return nil
	}
	return append([]mgl64.Vec3(nil), path...)
}

func finite(p mgl64.Vec3) bool {
	for _, c := range p {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

func horizontal(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}
