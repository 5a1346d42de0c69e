package component

import "github.com/go-gl/mathgl/mgl64"

// Transform is a world-space position and heading. Y is up.
type Transform struct {
	Position mgl64.Vec3
	// Yaw is the heading in radians around +Y, zero along +Z.
	Yaw float64
}

var TransformComponent = NewComponent[Transform]("transform")
