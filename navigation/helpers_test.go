package navigation

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// rect is an axis aligned walkable area on the y=0 floor.
type rect struct {
	minX, maxX, minZ, maxZ float64
}

// rectOracle returns the nearest point inside any rect within radius.
func rectOracle(rects ...rect) OracleFunc {
	return func(p mgl64.Vec3, radius float64) (mgl64.Vec3, bool) {
		best := mgl64.Vec3{}
		bestDist := math.Inf(1)
		for _, r := range rects {
			q := mgl64.Vec3{
				math.Max(r.minX, math.Min(r.maxX, p.X())),
				0,
				math.Max(r.minZ, math.Min(r.maxZ, p.Z())),
			}
			d := mgl64.Vec3{q.X() - p.X(), 0, q.Z() - p.Z()}.Len()
			if d < bestDist {
				best, bestDist = q, d
			}
		}
		if bestDist > radius {
			return mgl64.Vec3{}, false
		}
		return best, true
	}
}

// corridorX is a straight corridor along +X of the given width centered on z=0.
func corridorX(width float64) OracleFunc {
	return rectOracle(rect{minX: -100, maxX: 100, minZ: -width / 2, maxZ: width / 2})
}

func noWalkable() OracleFunc {
	return func(mgl64.Vec3, float64) (mgl64.Vec3, bool) { return mgl64.Vec3{}, false }
}

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }
