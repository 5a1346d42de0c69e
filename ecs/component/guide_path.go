package component

import "github.com/go-gl/mathgl/mgl64"

// GuidePath is the corridor centered and smoothed path derived from the
// entity's Pathfinding.Path.
type GuidePath struct {
	Centered []mgl64.Vec3
	// Render is what the line renderer draws, with height offset applied.
	Render     []mgl64.Vec3
	Recomputes int
}

var GuidePathComponent = NewComponent[GuidePath]("guide_path")
