package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/arguide/ecs"
	"github.com/milk9111/arguide/ecs/component"
	"github.com/milk9111/arguide/logging"
	"github.com/milk9111/arguide/navigation"
)

const (
	frameTime        = 1.0 / 60.0
	defaultWalkSpeed = 1.4
	defaultTurnSpeed = math.Pi / 2
	// stepRadius bounds how far a blocked step may slide along a wall.
	stepRadius = 0.5
)

// ViewerControlSystem applies the frame's Input to the viewer: walking and
// turning on the walkable surface, picking destinations, and flipping the
// navigation switches.
type ViewerControlSystem struct {
	oracle    navigation.WalkableOracle
	log       logging.Logger
	WalkSpeed float64
	TurnSpeed float64
}

func NewViewerControlSystem(oracle navigation.WalkableOracle, log logging.Logger) *ViewerControlSystem {
	if log == nil {
		log = logging.Nop()
	}
	return &ViewerControlSystem{
		oracle:    oracle,
		log:       log,
		WalkSpeed: defaultWalkSpeed,
		TurnSpeed: defaultTurnSpeed,
	}
}

func (s *ViewerControlSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach3(w, component.InputComponent.Kind(), component.ViewerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, in *component.Input, v *component.Viewer, t *component.Transform) {
		if in.Turn != 0 {
			t.Yaw += in.Turn * s.TurnSpeed * frameTime
		}
		v.Facing = mgl64.Vec3{math.Sin(t.Yaw), 0, math.Cos(t.Yaw)}

		if in.MoveForward != 0 || in.MoveRight != 0 {
			right := mgl64.Vec3{v.Facing.Z(), 0, -v.Facing.X()}
			step := v.Facing.Mul(in.MoveForward).Add(right.Mul(in.MoveRight))
			if step.Len() > 1 {
				step = step.Normalize()
			}
			s.move(t, step.Mul(s.WalkSpeed*frameTime))
		}

		if in.PickSet {
			s.pick(w, e, in.Pick)
		}
		if in.ClearTarget {
			if dest, ok := ecs.Get(w, e, component.DestinationComponent.Kind()); ok && dest.Active {
				dest.Active = false
				s.log.Infof("viewer: destination %q cleared", dest.Name)
			}
		}
		if in.ToggleCentering {
			w.Events().Push(ecs.Event{Type: ecs.EventSettingToggled, Data: ecs.SettingCentering})
		}
		if in.ToggleSmoothing {
			w.Events().Push(ecs.Event{Type: ecs.EventSettingToggled, Data: ecs.SettingSmoothing})
		}
		if in.ToggleMode {
			ecs.ForEach(w, component.IndicatorComponent.Kind(), func(_ ecs.Entity, ind *component.Indicator) {
				ind.Mode = ind.Mode.Toggle()
				s.log.Infof("viewer: indicator mode %s", ind.Mode)
			})
		}

		*in = component.Input{}
	})
}

// move slides the viewer to the walkable point nearest the requested step.
func (s *ViewerControlSystem) move(t *component.Transform, delta mgl64.Vec3) {
	want := t.Position.Add(delta)
	if s.oracle == nil {
		t.Position = want
		return
	}
	if p, ok := s.oracle.Sample(want, stepRadius); ok {
		t.Position = p
	}
}

func (s *ViewerControlSystem) pick(w *ecs.World, e ecs.Entity, p mgl64.Vec3) {
	point := p
	if s.oracle != nil {
		snapped, ok := s.oracle.Sample(p, stepRadius)
		if !ok {
			s.log.Debugf("viewer: pick %v is off the walkable surface", p)
			return
		}
		point = snapped
	}

	dest, ok := ecs.Get(w, e, component.DestinationComponent.Kind())
	if !ok {
		dest = &component.Destination{}
		if err := ecs.Add(w, e, component.DestinationComponent.Kind(), dest); err != nil {
			s.log.Errorf("viewer: add destination: %v", err)
			return
		}
	}
	dest.Name = "picked"
	dest.Point = point
	dest.Active = true
	s.log.Infof("viewer: destination set to (%.2f, %.2f, %.2f)", point.X(), point.Y(), point.Z())
}
