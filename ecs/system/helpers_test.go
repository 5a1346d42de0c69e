package system

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/arguide/ecs"
	"github.com/milk9111/arguide/ecs/component"
	"github.com/milk9111/arguide/navigation"
)

var errUnreachable = errors.New("unreachable")

// boxOracle is walkable inside minX..maxX, minZ..maxZ on the y=0 floor.
func boxOracle(minX, minZ, maxX, maxZ float64) navigation.OracleFunc {
	return func(p mgl64.Vec3, radius float64) (mgl64.Vec3, bool) {
		q := mgl64.Vec3{
			math.Max(minX, math.Min(maxX, p.X())),
			0,
			math.Max(minZ, math.Min(maxZ, p.Z())),
		}
		if (mgl64.Vec3{q.X() - p.X(), 0, q.Z() - p.Z()}).Len() > radius {
			return mgl64.Vec3{}, false
		}
		return q, true
	}
}

// fakeFinder returns a straight two point path unless err is set.
type fakeFinder struct {
	calls int
	err   error
}

func (f *fakeFinder) FindPath(start, goal mgl64.Vec3) ([]mgl64.Vec3, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return []mgl64.Vec3{start, goal}, nil
}

func eventsOfType(w *ecs.World, typ string) []ecs.Event {
	var out []ecs.Event
	for _, evt := range w.Events().Peek() {
		if evt.Type == typ {
			out = append(out, evt)
		}
	}
	return out
}

func addViewer(w *ecs.World, pos mgl64.Vec3) ecs.Entity {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: pos})
	_ = ecs.Add(w, e, component.ViewerComponent.Kind(), &component.Viewer{Facing: mgl64.Vec3{0, 0, 1}, EyeHeight: 1.5})
	return e
}
