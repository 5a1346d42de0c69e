package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/arguide/ecs"
	"github.com/milk9111/arguide/ecs/component"
	"github.com/milk9111/arguide/navigation"
)

// IndicatorSystem aims every Indicator along the viewer's guide path.
type IndicatorSystem struct {
	moveOnDistance float64
	selectors      map[ecs.Entity]*navigation.Selector
}

func NewIndicatorSystem(moveOnDistance float64) *IndicatorSystem {
	return &IndicatorSystem{
		moveOnDistance: moveOnDistance,
		selectors:      make(map[ecs.Entity]*navigation.Selector),
	}
}

// SetMoveOnDistance changes the look-ahead distance for all indicators.
func (s *IndicatorSystem) SetMoveOnDistance(d float64) {
	s.moveOnDistance = d
	clear(s.selectors)
}

func (s *IndicatorSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	for _, evt := range w.Events().Peek() {
		if evt.Type == ecs.EventSessionEnded {
			for _, sel := range s.selectors {
				sel.Reset()
			}
		}
	}

	viewerEnt, ok := ecs.First(w, component.ViewerComponent.Kind())
	if !ok {
		return
	}
	viewer, _ := ecs.Get(w, viewerEnt, component.ViewerComponent.Kind())
	vt, ok := ecs.Get(w, viewerEnt, component.TransformComponent.Kind())
	if !ok {
		return
	}

	var path []mgl64.Vec3
	if gp, ok := ecs.Get(w, viewerEnt, component.GuidePathComponent.Kind()); ok {
		path = gp.Render
		if len(path) == 0 {
			path = gp.Centered
		}
	}

	pose := navigation.Pose{
		Position: vt.Position.Add(mgl64.Vec3{0, viewer.EyeHeight, 0}),
		Facing:   viewer.Facing,
	}

	ecs.ForEach2(w, component.IndicatorComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, ind *component.Indicator, t *component.Transform) {
		base := navigation.WithHeight(vt.Position, vt.Position.Y()+ind.Height)
		target, ok := s.selector(e).Select(path, base, base.Y())
		ind.HasTarget = ok
		if !ok {
			return
		}
		ind.Target = target
		ind.Placement = navigation.Place(ind.Mode, target, base, pose, ind.Offsets)
		t.Position = ind.Placement.Position
		t.Yaw = ind.Placement.Yaw
	})
}

func (s *IndicatorSystem) selector(e ecs.Entity) *navigation.Selector {
	sel, ok := s.selectors[e]
	if !ok {
		sel = navigation.NewSelector(s.moveOnDistance)
		s.selectors[e] = sel
	}
	return sel
}
