package main

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/arguide/config"
	"github.com/milk9111/arguide/ecs"
	"github.com/milk9111/arguide/ecs/component"
	"github.com/milk9111/arguide/ecs/system"
	"github.com/milk9111/arguide/logging"
	"github.com/milk9111/arguide/navigation"
	"github.com/milk9111/arguide/walkable"
	"golang.org/x/image/colornames"
)

const (
	defaultZoom = 32
	eyeHeight   = 1.5
)

// Level is a loaded floor with its world and systems.
type Level struct {
	Name    string
	Surface *walkable.Surface
	Bounds  component.LevelBounds

	World     *ecs.World
	Scheduler *ecs.Scheduler
	Camera    *system.CameraSystem
	Guide     *system.GuidePathSystem

	Viewer    ecs.Entity
	Indicator ecs.Entity
}

// LoadLevel reads both config files and builds a world around the viewer.
// The viewer starts at the centre of the first region on the ground level.
func LoadLevel(log logging.Logger, modeOverride navigation.Mode) (*Level, error) {
	navSpec, err := config.LoadNavigationSpec()
	if err != nil {
		return nil, err
	}
	floorSpec, err := config.LoadFloorSpec()
	if err != nil {
		return nil, err
	}

	surface, err := walkable.NewSurface(floorSpec.FloorPlan())
	if err != nil {
		return nil, fmt.Errorf("level: %s: %w", floorSpec.Name, err)
	}
	finder := walkable.NewPathfinder(surface, floorSpec.CellSize)

	lvl := &Level{
		Name:    floorSpec.Name,
		Surface: surface,
		Bounds:  floorBounds(floorSpec),
		World:   ecs.NewWorld(),
		Camera:  system.NewCameraSystem(baseWidth, baseHeight),
		Guide:   system.NewGuidePathSystem(surface, navSpec.Settings(), log.WithField("system", "guide_path")),
	}
	lvl.Scheduler = ecs.NewScheduler(
		system.NewViewerControlSystem(surface, log.WithField("system", "viewer")),
		system.NewPathfindingSystem(finder, log.WithField("system", "pathfinding")),
		lvl.Guide,
		system.NewIndicatorSystem(navSpec.MoveOnDistance),
		lvl.Camera,
	)

	mode := navSpec.Mode()
	if modeOverride != 0 {
		mode = modeOverride
	}
	if err := lvl.spawn(navSpec, floorSpec, mode); err != nil {
		return nil, err
	}

	log.Infof("level: loaded %s (%d levels, mode %s)", lvl.Name, surface.Levels(), mode)
	return lvl, nil
}

func (l *Level) spawn(navSpec *config.NavigationSpec, floorSpec *config.FloorSpec, mode navigation.Mode) error {
	w := l.World
	start := spawnPoint(floorSpec)

	l.Viewer = ecs.CreateEntity(w)
	viewerComponents := []error{
		ecs.Add(w, l.Viewer, component.TransformComponent.Kind(), &component.Transform{Position: start}),
		ecs.Add(w, l.Viewer, component.ViewerComponent.Kind(), &component.Viewer{Facing: mgl64.Vec3{0, 0, 1}, EyeHeight: eyeHeight}),
		ecs.Add(w, l.Viewer, component.InputComponent.Kind(), &component.Input{}),
		ecs.Add(w, l.Viewer, component.PathfindingComponent.Kind(), &component.Pathfinding{RepathFrames: floorSpec.RepathFrames}),
		ecs.Add(w, l.Viewer, component.GuidePathComponent.Kind(), &component.GuidePath{}),
		ecs.Add(w, l.Viewer, component.LineRenderComponent.Kind(), &component.LineRender{Width: 3, Color: colornames.Deepskyblue, AntiAlias: true}),
	}
	for _, err := range viewerComponents {
		if err != nil {
			return fmt.Errorf("level: spawn viewer: %w", err)
		}
	}

	l.Indicator = ecs.CreateEntity(w)
	if err := ecs.Add(w, l.Indicator, component.IndicatorComponent.Kind(), &component.Indicator{
		Mode:    mode,
		Height:  navSpec.Indicator.Height,
		Offsets: navSpec.Offsets(),
	}); err != nil {
		return fmt.Errorf("level: spawn indicator: %w", err)
	}
	if err := ecs.Add(w, l.Indicator, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
		return fmt.Errorf("level: spawn indicator: %w", err)
	}

	cam := ecs.CreateEntity(w)
	if err := ecs.Add(w, cam, component.CameraComponent.Kind(), &component.Camera{
		Zoom:       defaultZoom,
		Smoothness: 0.15,
		CenterX:    start.X(),
		CenterZ:    start.Z(),
	}); err != nil {
		return fmt.Errorf("level: spawn camera: %w", err)
	}

	bounds := ecs.CreateEntity(w)
	if err := ecs.Add(w, bounds, component.LevelBoundsComponent.Kind(), &l.Bounds); err != nil {
		return fmt.Errorf("level: spawn bounds: %w", err)
	}
	return nil
}

func spawnPoint(spec *config.FloorSpec) mgl64.Vec3 {
	if len(spec.Levels) == 0 || len(spec.Levels[0].Regions) == 0 {
		return mgl64.Vec3{}
	}
	lvl := spec.Levels[0]
	r := lvl.Regions[0]
	return mgl64.Vec3{(r.MinX + r.MaxX) / 2, lvl.Height, (r.MinZ + r.MaxZ) / 2}
}

func floorBounds(spec *config.FloorSpec) component.LevelBounds {
	var b component.LevelBounds
	first := true
	for _, lvl := range spec.Levels {
		for _, r := range lvl.Regions {
			if first {
				b = component.LevelBounds{MinX: r.MinX, MinZ: r.MinZ, MaxX: r.MaxX, MaxZ: r.MaxZ}
				first = false
				continue
			}
			b.MinX = min(b.MinX, r.MinX)
			b.MinZ = min(b.MinZ, r.MinZ)
			b.MaxX = max(b.MaxX, r.MaxX)
			b.MaxZ = max(b.MaxZ, r.MaxZ)
		}
	}
	// A little margin so walls are visible at the edges.
	b.MinX--
	b.MinZ--
	b.MaxX++
	b.MaxZ++
	return b
}

// regionColor shades regions by level so stacked floors stay apart.
func regionColor(level int) color.Color {
	palette := []color.Color{colornames.Lightgrey, colornames.Lightsteelblue, colornames.Wheat}
	return palette[level%len(palette)]
}
