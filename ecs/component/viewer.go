package component

import "github.com/go-gl/mathgl/mgl64"

// Viewer marks the tracked device. Its Transform is the device position.
type Viewer struct {
	Facing mgl64.Vec3
	// EyeHeight is the device height above the floor it stands on.
	EyeHeight float64
}

var ViewerComponent = NewComponent[Viewer]("viewer")
