package walkable

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

// Surface answers nearest-walkable-point queries against a floor plan. Each
// level is a chipmunk space of static boxes; queries run against the level
// whose height is closest to the query point.
type Surface struct {
	levels    []surfaceLevel
	tolerance float64
}

type surfaceLevel struct {
	level Level
	space *cp.Space
	// bounds of all regions, used for grid rasterisation.
	bounds cp.BB
}

func NewSurface(plan FloorPlan) (*Surface, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	tolerance := plan.FloorTolerance
	if tolerance <= 0 {
		tolerance = defaultFloorTolerance
	}

	s := &Surface{tolerance: tolerance}
	for _, lvl := range plan.Levels {
		space := cp.NewSpace()
		bounds := cp.BB{L: math.Inf(1), B: math.Inf(1), R: math.Inf(-1), T: math.Inf(-1)}
		for _, r := range lvl.Regions {
			bb := cp.BB{L: r.MinX, B: r.MinZ, R: r.MaxX, T: r.MaxZ}
			space.AddShape(cp.NewBox2(space.StaticBody, bb, 0))
			bounds = mergeBB(bounds, bb)
		}
		s.levels = append(s.levels, surfaceLevel{level: lvl, space: space, bounds: bounds})
	}
	return s, nil
}

// Sample returns the walkable point nearest to p within radius. Points
// already on the surface come back with only their height adjusted.
func (s *Surface) Sample(p mgl64.Vec3, radius float64) (mgl64.Vec3, bool) {
	lvl, ok := s.levelFor(p.Y())
	if !ok || radius < 0 {
		return mgl64.Vec3{}, false
	}

	info := lvl.space.PointQueryNearest(cp.Vector{X: p.X(), Y: p.Z()}, radius, cp.SHAPE_FILTER_ALL)
	if info == nil || info.Shape == nil {
		return mgl64.Vec3{}, false
	}
	if info.Distance <= 0 {
		return mgl64.Vec3{p.X(), lvl.level.Height, p.Z()}, true
	}
	return mgl64.Vec3{info.Point.X, lvl.level.Height, info.Point.Y}, true
}

// Walkable reports whether p lies inside a region of its level.
func (s *Surface) Walkable(p mgl64.Vec3) bool {
	lvl, ok := s.levelFor(p.Y())
	if !ok {
		return false
	}
	return lvl.walkable(p.X(), p.Z())
}

// Levels returns the number of levels.
func (s *Surface) Levels() int {
	return len(s.levels)
}

// Level returns level i of the floor plan.
func (s *Surface) Level(i int) Level {
	return s.levels[i].level
}

// LevelIndex resolves a height to a level index.
func (s *Surface) LevelIndex(y float64) (int, bool) {
	best := -1
	bestDist := math.Inf(1)
	for i, lvl := range s.levels {
		d := math.Abs(lvl.level.Height - y)
		if d <= s.tolerance && d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, best >= 0
}

func (s *Surface) levelFor(y float64) (*surfaceLevel, bool) {
	i, ok := s.LevelIndex(y)
	if !ok {
		return nil, false
	}
	return &s.levels[i], true
}

func (l *surfaceLevel) walkable(x, z float64) bool {
	for _, r := range l.level.Regions {
		if r.contains(x, z) {
			return true
		}
	}
	return false
}

func mergeBB(a, b cp.BB) cp.BB {
	return cp.BB{
		L: math.Min(a.L, b.L),
		B: math.Min(a.B, b.B),
		R: math.Max(a.R, b.R),
		T: math.Max(a.T, b.T),
	}
}
