package system

import (
	"github.com/milk9111/arguide/common"
	"github.com/milk9111/arguide/ecs"
	"github.com/milk9111/arguide/ecs/component"
)

const defaultCameraSmoothness = 0.15

// CameraSystem eases the top-down camera toward the viewer and keeps the
// view inside the floor's bounds.
type CameraSystem struct {
	viewW, viewH float64
}

// NewCameraSystem takes the viewport size in screen pixels.
func NewCameraSystem(viewW, viewH float64) *CameraSystem {
	return &CameraSystem{viewW: viewW, viewH: viewH}
}

func (cs *CameraSystem) SetViewport(viewW, viewH float64) {
	cs.viewW = viewW
	cs.viewH = viewH
}

func (cs *CameraSystem) Update(w *ecs.World) {
	camEnt, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return
	}
	cam, _ := ecs.Get(w, camEnt, component.CameraComponent.Kind())

	viewerEnt, ok := ecs.First(w, component.ViewerComponent.Kind())
	if !ok {
		return
	}
	target, ok := ecs.Get(w, viewerEnt, component.TransformComponent.Kind())
	if !ok {
		return
	}

	smooth := cam.Smoothness
	if smooth <= 0 || smooth > 1 {
		smooth = defaultCameraSmoothness
	}
	cam.CenterX = common.Lerp(cam.CenterX, target.Position.X(), smooth)
	cam.CenterZ = common.Lerp(cam.CenterZ, target.Position.Z(), smooth)

	boundsEnt, ok := ecs.First(w, component.LevelBoundsComponent.Kind())
	if !ok || cam.Zoom <= 0 {
		return
	}
	bounds, _ := ecs.Get(w, boundsEnt, component.LevelBoundsComponent.Kind())
	halfW := cs.viewW / cam.Zoom / 2
	halfD := cs.viewH / cam.Zoom / 2
	cam.CenterX = clampAxis(cam.CenterX, bounds.MinX, bounds.MaxX, halfW)
	cam.CenterZ = clampAxis(cam.CenterZ, bounds.MinZ, bounds.MaxZ, halfD)
}

// clampAxis keeps a view of half-extent half inside [lo, hi], centering it
// when the view is wider than the range.
func clampAxis(center, lo, hi, half float64) float64 {
	if hi-lo <= 2*half {
		return (lo + hi) / 2
	}
	return common.Clamp(center, lo+half, hi-half)
}
