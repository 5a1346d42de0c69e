package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/arguide/navigation"
)

// Indicator is the directional arrow that points along the viewer's guide
// path.
type Indicator struct {
	Mode    navigation.Mode
	Height  float64
	Offsets navigation.PlacementOffsets

	Target    mgl64.Vec3
	HasTarget bool
	Placement navigation.Placement
}

var IndicatorComponent = NewComponent[Indicator]("indicator")
