package system

import (
	"github.com/milk9111/arguide/ecs"
	"github.com/milk9111/arguide/ecs/component"
	"github.com/milk9111/arguide/logging"
	"github.com/milk9111/arguide/navigation"
)

// GuidePathSystem runs one navigation session per navigating entity and
// turns its raw path into the centered, smoothed guide line.
type GuidePathSystem struct {
	oracle   navigation.WalkableOracle
	settings navigation.Settings
	log      logging.Logger
	opts     []navigation.CacheOption
	sessions map[ecs.Entity]*navigation.Navigator
}

func NewGuidePathSystem(oracle navigation.WalkableOracle, settings navigation.Settings, log logging.Logger, opts ...navigation.CacheOption) *GuidePathSystem {
	if log == nil {
		log = logging.Nop()
	}
	return &GuidePathSystem{
		oracle:   oracle,
		settings: settings,
		log:      log,
		opts:     opts,
		sessions: make(map[ecs.Entity]*navigation.Navigator),
	}
}

// Settings returns the settings new sessions are built with.
func (s *GuidePathSystem) Settings() navigation.Settings {
	return s.settings
}

// SetSettings replaces the settings and ends every running session.
func (s *GuidePathSystem) SetSettings(settings navigation.Settings) {
	s.settings = settings
	clear(s.sessions)
}

func (s *GuidePathSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	for _, evt := range w.Events().Peek() {
		switch evt.Type {
		case ecs.EventPathChanged, ecs.EventSessionEnded:
			if e, ok := evt.Data.(ecs.Entity); ok {
				delete(s.sessions, e)
			}
		case ecs.EventSettingToggled:
			s.toggle(evt.Data)
		}
	}

	ecs.ForEach2(w, component.PathfindingComponent.Kind(), component.GuidePathComponent.Kind(), func(e ecs.Entity, pf *component.Pathfinding, gp *component.GuidePath) {
		line, hasLine := ecs.Get(w, e, component.LineRenderComponent.Kind())

		if len(pf.Path) < 2 {
			gp.Centered = nil
			gp.Render = nil
			if hasLine {
				line.Points = nil
			}
			return
		}

		nav := s.session(e)
		gp.Render = nav.Update(pf.Path)
		gp.Centered = nav.CenteredPath(pf.Path)
		gp.Recomputes = nav.Cache().Recomputes()
		if hasLine {
			line.Points = gp.Render
		}
	})

	for e := range s.sessions {
		if !ecs.IsAlive(w, e) {
			delete(s.sessions, e)
		}
	}
}

func (s *GuidePathSystem) session(e ecs.Entity) *navigation.Navigator {
	nav, ok := s.sessions[e]
	if !ok {
		nav = navigation.NewNavigator(s.oracle, s.settings, s.log.WithField("entity", e), s.opts...)
		s.sessions[e] = nav
	}
	return nav
}

func (s *GuidePathSystem) toggle(data any) {
	name, _ := data.(string)
	settings := s.settings
	switch name {
	case ecs.SettingCentering:
		settings.CenteringEnabled = !settings.CenteringEnabled
	case ecs.SettingSmoothing:
		settings.SmoothingEnabled = !settings.SmoothingEnabled
	default:
		return
	}
	s.log.Infof("guide path: %s centering=%v smoothing=%v", name, settings.CenteringEnabled, settings.SmoothingEnabled)
	s.SetSettings(settings)
}
