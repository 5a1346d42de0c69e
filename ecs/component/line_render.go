package component

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// LineRender defines a world-space polyline to render.
type LineRender struct {
	Points    []mgl64.Vec3
	Width     float32
	Color     color.Color
	AntiAlias bool
}

var LineRenderComponent = NewComponent[LineRender]("line_render")
