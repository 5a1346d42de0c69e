package component

import "github.com/go-gl/mathgl/mgl64"

// Input stores per-frame input state for the viewer.
type Input struct {
	MoveForward float64
	MoveRight   float64
	Turn        float64

	ToggleMode      bool
	ToggleCentering bool
	ToggleSmoothing bool
	ClearTarget     bool

	// Pick is a world-space point chosen this frame, if PickSet.
	Pick    mgl64.Vec3
	PickSet bool
}

var InputComponent = NewComponent[Input]("input")
