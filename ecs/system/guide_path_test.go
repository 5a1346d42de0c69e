package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/arguide/ecs"
	"github.com/milk9111/arguide/ecs/component"
	"github.com/milk9111/arguide/navigation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guideSettings(centering, smoothing bool) navigation.Settings {
	return navigation.Settings{
		CenteringEnabled: centering,
		SmoothingEnabled: smoothing,
		LineHeightOffset: 0.05,
	}
}

func addGuided(w *ecs.World, raw []mgl64.Vec3) (ecs.Entity, *component.GuidePath, *component.LineRender) {
	e := ecs.CreateEntity(w)
	gp := &component.GuidePath{}
	line := &component.LineRender{Width: 3}
	_ = ecs.Add(w, e, component.PathfindingComponent.Kind(), &component.Pathfinding{Path: raw})
	_ = ecs.Add(w, e, component.GuidePathComponent.Kind(), gp)
	_ = ecs.Add(w, e, component.LineRenderComponent.Kind(), line)
	return e, gp, line
}

func TestGuidePathCentersInCorridor(t *testing.T) {
	w := ecs.NewWorld()
	raw := []mgl64.Vec3{{0, 0, 0.5}, {5, 0, 0.5}, {10, 0, 0.5}}
	_, gp, line := addGuided(w, raw)
	sys := NewGuidePathSystem(boxOracle(-20, -1, 20, 1), guideSettings(true, false), nil)

	sys.Update(w)

	require.Len(t, gp.Centered, len(raw))
	for i, p := range gp.Centered {
		assert.InDelta(t, raw[i].X(), p.X(), 1e-9)
		assert.InDelta(t, 0, p.Z(), 0.1)
	}
	require.Len(t, gp.Render, len(raw))
	assert.InDelta(t, 0.05, gp.Render[0].Y(), 1e-9)
	assert.Equal(t, gp.Render, line.Points)
	assert.Equal(t, 1, gp.Recomputes)
}

func TestGuidePathReusesSession(t *testing.T) {
	w := ecs.NewWorld()
	raw := []mgl64.Vec3{{0, 0, 0}, {5, 0, 0}}
	e, gp, _ := addGuided(w, raw)
	sys := NewGuidePathSystem(boxOracle(-20, -1, 20, 1), guideSettings(true, true), nil)

	sys.Update(w)
	first := sys.sessions[e]
	sys.Update(w)

	assert.Same(t, first, sys.sessions[e])
	assert.Equal(t, 1, gp.Recomputes)

	w.Events().Push(ecs.Event{Type: ecs.EventPathChanged, Data: e})
	sys.Update(w)
	assert.NotSame(t, first, sys.sessions[e])
}

func TestGuidePathShortPathClearsLine(t *testing.T) {
	w := ecs.NewWorld()
	_, gp, line := addGuided(w, []mgl64.Vec3{{1, 0, 0}})
	line.Points = []mgl64.Vec3{{9, 9, 9}}
	gp.Render = line.Points

	NewGuidePathSystem(boxOracle(-20, -1, 20, 1), guideSettings(true, true), nil).Update(w)

	assert.Nil(t, gp.Render)
	assert.Nil(t, gp.Centered)
	assert.Nil(t, line.Points)
}

func TestGuidePathSettingToggles(t *testing.T) {
	tests := []struct {
		name          string
		setting       string
		wantCentering bool
		wantSmoothing bool
	}{
		{name: "centering", setting: ecs.SettingCentering, wantCentering: false, wantSmoothing: true},
		{name: "smoothing", setting: ecs.SettingSmoothing, wantCentering: true, wantSmoothing: false},
		{name: "unknown", setting: "fog", wantCentering: true, wantSmoothing: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			sys := NewGuidePathSystem(boxOracle(-20, -1, 20, 1), guideSettings(true, true), nil)
			w.Events().Push(ecs.Event{Type: ecs.EventSettingToggled, Data: tt.setting})

			sys.Update(w)

			assert.Equal(t, tt.wantCentering, sys.Settings().CenteringEnabled)
			assert.Equal(t, tt.wantSmoothing, sys.Settings().SmoothingEnabled)
		})
	}
}

func TestGuidePathCenteringDisabledPassesRawThrough(t *testing.T) {
	w := ecs.NewWorld()
	raw := []mgl64.Vec3{{0, 0, 0.5}, {5, 0, 0.5}}
	_, gp, _ := addGuided(w, raw)

	NewGuidePathSystem(boxOracle(-20, -1, 20, 1), guideSettings(false, false), nil).Update(w)

	assert.Equal(t, raw, gp.Centered)
	assert.Equal(t, 0, gp.Recomputes)
}

func TestGuidePathPrunesDeadEntities(t *testing.T) {
	w := ecs.NewWorld()
	e, _, _ := addGuided(w, []mgl64.Vec3{{0, 0, 0}, {5, 0, 0}})
	sys := NewGuidePathSystem(boxOracle(-20, -1, 20, 1), guideSettings(true, false), nil)
	sys.Update(w)
	require.Len(t, sys.sessions, 1)

	ecs.DestroyEntity(w, e)
	sys.Update(w)

	assert.Empty(t, sys.sessions)
}
