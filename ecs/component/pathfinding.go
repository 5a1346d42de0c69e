package component

import "github.com/go-gl/mathgl/mgl64"

// Pathfinding holds the raw corner path from the pathfinder and its repath
// bookkeeping.
type Pathfinding struct {
	RepathFrames int
	FrameCounter int
	LastStart    mgl64.Vec3
	LastGoal     mgl64.Vec3
	// Path is the raw corner polyline. It is replaced wholesale on repath.
	Path []mgl64.Vec3
	Err  error
}

var PathfindingComponent = NewComponent[Pathfinding]("pathfinding")
