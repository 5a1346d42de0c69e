// Package navigation turns a coarse pathfinder polyline into a corridor
// centered, smoothed guide path and picks the point a directional indicator
// should aim at each frame.
package navigation

import "github.com/go-gl/mathgl/mgl64"

// WalkableOracle answers nearest-walkable-point queries.
//
// Sample returns the walkable point nearest to p within radius, or false when
// nothing walkable lies within radius. Implementations must be fast and
// synchronous; the centering sweep calls Sample many times per corner.
type WalkableOracle interface {
	Sample(p mgl64.Vec3, radius float64) (mgl64.Vec3, bool)
}

// OracleFunc adapts a plain function to WalkableOracle.
type OracleFunc func(p mgl64.Vec3, radius float64) (mgl64.Vec3, bool)

func (f OracleFunc) Sample(p mgl64.Vec3, radius float64) (mgl64.Vec3, bool) {
	return f(p, radius)
}

// CountingOracle wraps an oracle and counts queries.
type CountingOracle struct {
	Oracle  WalkableOracle
	Queries int
}

func (c *CountingOracle) Sample(p mgl64.Vec3, radius float64) (mgl64.Vec3, bool) {
	c.Queries++
	if c.Oracle == nil {
		return mgl64.Vec3{}, false
	}
	return c.Oracle.Sample(p, radius)
}
