package walkable

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

const snapRings = 4

// Pathfinder produces coarse corner polylines across a Surface.
type Pathfinder struct {
	surface *Surface
	grids   []*Grid
}

func NewPathfinder(surface *Surface, cellSize float64) *Pathfinder {
	pf := &Pathfinder{surface: surface}
	for i := range surface.levels {
		pf.grids = append(pf.grids, newGrid(&surface.levels[i], cellSize))
	}
	return pf
}

// Grid returns the rasterised grid for level i.
func (pf *Pathfinder) Grid(i int) *Grid {
	return pf.grids[i]
}

// FindPath returns the corners of a walkable route from start to goal: the
// start point, every cell where the route turns, and the goal point. Both
// ends must resolve to the same level.
func (pf *Pathfinder) FindPath(start, goal mgl64.Vec3) ([]mgl64.Vec3, error) {
	li, ok := pf.surface.LevelIndex(start.Y())
	if !ok {
		return nil, fmt.Errorf("%w: start %v", ErrOffSurface, start)
	}
	gi, ok := pf.surface.LevelIndex(goal.Y())
	if !ok {
		return nil, fmt.Errorf("%w: goal %v", ErrOffSurface, goal)
	}
	if li != gi {
		return nil, fmt.Errorf("%w: start and goal are on different levels", ErrNoPath)
	}

	g := pf.grids[li]
	startCell, err := pf.openCell(g, start)
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	goalCell, err := pf.openCell(g, goal)
	if err != nil {
		return nil, fmt.Errorf("goal: %w", err)
	}

	cells := astarPath(g, startCell, goalCell)
	if len(cells) == 0 {
		return nil, fmt.Errorf("%w: %v to %v", ErrNoPath, start, goal)
	}

	startPt := pf.endpoint(g, start, startCell)
	goalPt := pf.endpoint(g, goal, goalCell)
	corners := []mgl64.Vec3{startPt}
	for i := 1; i < len(cells)-1; i++ {
		in := gridPos{x: cells[i].x - cells[i-1].x, y: cells[i].y - cells[i-1].y}
		out := gridPos{x: cells[i+1].x - cells[i].x, y: cells[i+1].y - cells[i].y}
		if in != out {
			corners = append(corners, g.center(cells[i]))
		}
	}
	return append(corners, goalPt), nil
}

func (pf *Pathfinder) openCell(g *Grid, p mgl64.Vec3) (gridPos, error) {
	c, ok := g.cell(p)
	if !ok {
		return gridPos{}, fmt.Errorf("%w: %v outside level bounds", ErrOffSurface, p)
	}
	open, ok := g.nearestOpen(c, snapRings)
	if !ok {
		return gridPos{}, fmt.Errorf("%w: no open cell near %v", ErrOffSurface, p)
	}
	return open, nil
}

// endpoint keeps p when it is walkable and otherwise uses the snapped cell.
func (pf *Pathfinder) endpoint(g *Grid, p mgl64.Vec3, c gridPos) mgl64.Vec3 {
	flat := mgl64.Vec3{p.X(), g.Height, p.Z()}
	if pf.surface.Walkable(flat) {
		return flat
	}
	return g.center(c)
}
