// Package walkable models the walkable floor of a building: a floor plan of
// rectangular regions per level, a nearest-walkable-point oracle and the grid
// pathfinder that produces coarse routes across it.
package walkable

import (
	"errors"
	"fmt"
)

var (
	ErrNoLevels      = errors.New("walkable: floor plan has no levels")
	ErrInvalidRegion = errors.New("walkable: invalid region")
	ErrNoPath        = errors.New("walkable: no path")
	ErrOffSurface    = errors.New("walkable: point is not on the walkable surface")
)

// Region is an axis aligned walkable rectangle in the XZ plane.
type Region struct {
	Name       string
	MinX, MinZ float64
	MaxX, MaxZ float64
}

func (r Region) contains(x, z float64) bool {
	return x >= r.MinX && x <= r.MaxX && z >= r.MinZ && z <= r.MaxZ
}

// Level is one floor at a fixed height.
type Level struct {
	Name    string
	Height  float64
	Regions []Region
}

// FloorPlan is the whole walkable surface.
type FloorPlan struct {
	Levels []Level
	// FloorTolerance is how far above or below a level a query may be and
	// still resolve to it.
	FloorTolerance float64
}

const defaultFloorTolerance = 1.5

// Validate reports the first malformed level or region.
func (p FloorPlan) Validate() error {
	if len(p.Levels) == 0 {
		return ErrNoLevels
	}
	for li, lvl := range p.Levels {
		if len(lvl.Regions) == 0 {
			return fmt.Errorf("%w: level %d (%s) has no regions", ErrInvalidRegion, li, lvl.Name)
		}
		for ri, r := range lvl.Regions {
			if r.MaxX <= r.MinX || r.MaxZ <= r.MinZ {
				return fmt.Errorf("%w: level %d region %d (%s) has empty bounds", ErrInvalidRegion, li, ri, r.Name)
			}
		}
	}
	return nil
}
