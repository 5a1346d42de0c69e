package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/arguide/config"
	"github.com/milk9111/arguide/ecs"
	"github.com/milk9111/arguide/ecs/component"
	"github.com/milk9111/arguide/walkable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemsGuideAcrossDemoFloor(t *testing.T) {
	navSpec, err := config.LoadNavigationSpec()
	require.NoError(t, err)
	floorSpec, err := config.LoadFloorSpec()
	require.NoError(t, err)
	surface, err := walkable.NewSurface(floorSpec.FloorPlan())
	require.NoError(t, err)
	finder := walkable.NewPathfinder(surface, floorSpec.CellSize)

	w := ecs.NewWorld()
	start := mgl64.Vec3{2, 0, 2}
	goal := mgl64.Vec3{6, 0, 19}
	viewer := addViewer(w, start)
	_ = ecs.Add(w, viewer, component.PathfindingComponent.Kind(), &component.Pathfinding{RepathFrames: floorSpec.RepathFrames})
	_ = ecs.Add(w, viewer, component.DestinationComponent.Kind(), &component.Destination{Name: "library", Point: goal, Active: true})
	gp := &component.GuidePath{}
	_ = ecs.Add(w, viewer, component.GuidePathComponent.Kind(), gp)
	line := &component.LineRender{}
	_ = ecs.Add(w, viewer, component.LineRenderComponent.Kind(), line)
	ind, _ := addIndicator(w, navSpec.Mode())

	scheduler := ecs.NewScheduler(
		NewPathfindingSystem(finder, nil),
		NewGuidePathSystem(surface, navSpec.Settings(), nil),
		NewIndicatorSystem(navSpec.MoveOnDistance),
	)
	scheduler.Update(w)

	pf, _ := ecs.Get(w, viewer, component.PathfindingComponent.Kind())
	require.NoError(t, pf.Err)
	require.GreaterOrEqual(t, len(pf.Path), 3)

	require.Len(t, gp.Centered, len(pf.Path))
	require.Len(t, gp.Render, (len(gp.Centered)-1)*navSpec.Smoothness+1)
	assert.Equal(t, gp.Render, line.Points)
	for _, p := range gp.Render {
		assert.InDelta(t, navSpec.LineHeightOffset, p.Y(), 1e-9)
	}
	assert.Less(t, gp.Render[0].Sub(start).Len(), 2.5)
	assert.Less(t, gp.Render[len(gp.Render)-1].Sub(goal).Len(), 2.5)

	assert.True(t, ind.HasTarget)
	assert.Empty(t, w.Events().Peek())
}

func TestSystemsUnreachableGoal(t *testing.T) {
	floorSpec, err := config.LoadFloorSpec()
	require.NoError(t, err)
	surface, err := walkable.NewSurface(floorSpec.FloorPlan())
	require.NoError(t, err)

	w := ecs.NewWorld()
	viewer := addViewer(w, mgl64.Vec3{2, 0, 2})
	_ = ecs.Add(w, viewer, component.PathfindingComponent.Kind(), &component.Pathfinding{})
	_ = ecs.Add(w, viewer, component.DestinationComponent.Kind(), &component.Destination{Point: mgl64.Vec3{2, 40, 2}, Active: true})
	gp := &component.GuidePath{}
	_ = ecs.Add(w, viewer, component.GuidePathComponent.Kind(), gp)

	ecs.NewScheduler(
		NewPathfindingSystem(walkable.NewPathfinder(surface, floorSpec.CellSize), nil),
		NewGuidePathSystem(surface, guideSettings(true, true), nil),
	).Update(w)

	pf, _ := ecs.Get(w, viewer, component.PathfindingComponent.Kind())
	assert.ErrorIs(t, pf.Err, walkable.ErrOffSurface)
	assert.Nil(t, gp.Render)
}
