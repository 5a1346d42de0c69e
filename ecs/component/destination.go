package component

import "github.com/go-gl/mathgl/mgl64"

// Destination is where the viewer is being guided. Clearing Active ends the
// navigation session.
type Destination struct {
	Name   string
	Point  mgl64.Vec3
	Active bool
}

var DestinationComponent = NewComponent[Destination]("destination")
