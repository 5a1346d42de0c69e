package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/arguide/ecs"
	"github.com/milk9111/arguide/ecs/component"
	"github.com/milk9111/arguide/logging"
)

const (
	defaultPathRepathFrames = 30
	goalMovedThreshold      = 0.01
)

// PathFinder produces raw corner paths. walkable.Pathfinder satisfies it.
type PathFinder interface {
	FindPath(start, goal mgl64.Vec3) ([]mgl64.Vec3, error)
}

// PathfindingSystem keeps each navigating entity's raw path current: it
// repaths when the destination moves and every RepathFrames frames while the
// entity walks.
type PathfindingSystem struct {
	finder PathFinder
	log    logging.Logger
}

func NewPathfindingSystem(finder PathFinder, log logging.Logger) *PathfindingSystem {
	if log == nil {
		log = logging.Nop()
	}
	return &PathfindingSystem{finder: finder, log: log}
}

func (ps *PathfindingSystem) Update(w *ecs.World) {
	if ps == nil || w == nil || ps.finder == nil {
		return
	}

	ecs.ForEach3(w, component.PathfindingComponent.Kind(), component.TransformComponent.Kind(), component.DestinationComponent.Kind(), func(e ecs.Entity, pf *component.Pathfinding, t *component.Transform, dest *component.Destination) {
		if !dest.Active {
			if len(pf.Path) > 0 || pf.Err != nil {
				pf.Path = nil
				pf.Err = nil
				pf.FrameCounter = 0
				w.Events().Push(ecs.Event{Type: ecs.EventSessionEnded, Data: e})
			}
			return
		}

		if pf.RepathFrames <= 0 {
			pf.RepathFrames = defaultPathRepathFrames
		}

		goalMoved := dest.Point.Sub(pf.LastGoal).Len() > goalMovedThreshold
		fresh := len(pf.Path) == 0 && pf.Err == nil
		pf.FrameCounter++
		if !fresh && !goalMoved && pf.FrameCounter < pf.RepathFrames {
			return
		}
		pf.FrameCounter = 0

		start := t.Position
		path, err := ps.finder.FindPath(start, dest.Point)
		pf.LastStart = start
		pf.LastGoal = dest.Point
		if goalMoved {
			w.Events().Push(ecs.Event{Type: ecs.EventPathChanged, Data: e})
		}
		if err != nil {
			pf.Path = nil
			pf.Err = err
			ps.log.Debugf("pathfinding: %s: %v", dest.Name, err)
			return
		}
		pf.Path = path
		pf.Err = nil
	})
}
