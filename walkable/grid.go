package walkable

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const defaultCellSize = 0.25

type gridPos struct {
	x int
	y int
}

// Grid is a rasterised level: a cell is open when its center is walkable.
type Grid struct {
	MinX, MinZ float64
	CellSize   float64
	W, H       int
	Height     float64

	blocked []bool
}

func newGrid(lvl *surfaceLevel, cellSize float64) *Grid {
	if cellSize <= 0 {
		cellSize = defaultCellSize
	}
	b := lvl.bounds
	w := int(math.Ceil((b.R - b.L) / cellSize))
	h := int(math.Ceil((b.T - b.B) / cellSize))
	g := &Grid{
		MinX:     b.L,
		MinZ:     b.B,
		CellSize: cellSize,
		W:        w,
		H:        h,
		Height:   lvl.level.Height,
		blocked:  make([]bool, w*h),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := g.center(gridPos{x: x, y: y})
			g.blocked[y*w+x] = !lvl.walkable(c.X(), c.Z())
		}
	}
	return g
}

// Blocked reports whether cell (x, y) is outside the walkable surface.
func (g *Grid) Blocked(x, y int) bool {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return true
	}
	return g.blocked[y*g.W+x]
}

func (g *Grid) cell(p mgl64.Vec3) (gridPos, bool) {
	gx := int(math.Floor((p.X() - g.MinX) / g.CellSize))
	gy := int(math.Floor((p.Z() - g.MinZ) / g.CellSize))
	if gx < 0 || gy < 0 || gx >= g.W || gy >= g.H {
		return gridPos{}, false
	}
	return gridPos{x: gx, y: gy}, true
}

func (g *Grid) center(c gridPos) mgl64.Vec3 {
	half := g.CellSize * 0.5
	return mgl64.Vec3{
		g.MinX + float64(c.x)*g.CellSize + half,
		g.Height,
		g.MinZ + float64(c.y)*g.CellSize + half,
	}
}

// nearestOpen finds the closest open cell to c by ring search.
func (g *Grid) nearestOpen(c gridPos, maxRing int) (gridPos, bool) {
	if !g.Blocked(c.x, c.y) {
		return c, true
	}
	for r := 1; r <= maxRing; r++ {
		best := gridPos{}
		bestD := math.Inf(1)
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if max(abs(dx), abs(dy)) != r {
					continue
				}
				n := gridPos{x: c.x + dx, y: c.y + dy}
				if g.Blocked(n.x, n.y) {
					continue
				}
				d := float64(dx*dx + dy*dy)
				if d < bestD {
					best, bestD = n, d
				}
			}
		}
		if !math.IsInf(bestD, 1) {
			return best, true
		}
	}
	return gridPos{}, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
