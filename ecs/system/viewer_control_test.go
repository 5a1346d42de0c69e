package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/arguide/ecs"
	"github.com/milk9111/arguide/ecs/component"
	"github.com/milk9111/arguide/navigation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func controlledViewer(w *ecs.World, pos mgl64.Vec3) (ecs.Entity, *component.Input, *component.Transform) {
	e := addViewer(w, pos)
	in := &component.Input{}
	_ = ecs.Add(w, e, component.InputComponent.Kind(), in)
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	return e, in, tr
}

func TestViewerControlWalks(t *testing.T) {
	tests := []struct {
		name  string
		start mgl64.Vec3
		in    component.Input
		want  mgl64.Vec3
	}{
		{name: "forward", in: component.Input{MoveForward: 1}, want: mgl64.Vec3{0, 0, 1.4 / 60}},
		{name: "strafe_right", in: component.Input{MoveRight: 1}, want: mgl64.Vec3{1.4 / 60, 0, 0}},
		{name: "blocked_by_wall", start: mgl64.Vec3{0, 0, 1}, in: component.Input{MoveForward: 1}, want: mgl64.Vec3{0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			_, in, tr := controlledViewer(w, tt.start)
			*in = tt.in

			NewViewerControlSystem(boxOracle(-5, -1, 5, 1), nil).Update(w)

			assert.InDelta(t, tt.want.X(), tr.Position.X(), 1e-9)
			assert.InDelta(t, tt.want.Z(), tr.Position.Z(), 1e-9)
			assert.Equal(t, component.Input{}, *in)
		})
	}
}

func TestViewerControlTurnsFacing(t *testing.T) {
	w := ecs.NewWorld()
	e, in, tr := controlledViewer(w, mgl64.Vec3{})
	in.Turn = 1
	sys := NewViewerControlSystem(boxOracle(-5, -1, 5, 1), nil)
	sys.TurnSpeed = math.Pi / 2 * 60

	sys.Update(w)

	v, _ := ecs.Get(w, e, component.ViewerComponent.Kind())
	assert.InDelta(t, math.Pi/2, tr.Yaw, 1e-9)
	assert.InDelta(t, 1, v.Facing.X(), 1e-9)
	assert.InDelta(t, 0, v.Facing.Z(), 1e-9)
}

func TestViewerControlPickAndClear(t *testing.T) {
	w := ecs.NewWorld()
	e, in, _ := controlledViewer(w, mgl64.Vec3{})
	sys := NewViewerControlSystem(boxOracle(-5, -1, 5, 1), nil)

	in.Pick = mgl64.Vec3{4, 0, 1.2}
	in.PickSet = true
	sys.Update(w)

	dest, ok := ecs.Get(w, e, component.DestinationComponent.Kind())
	require.True(t, ok)
	assert.True(t, dest.Active)
	assert.Equal(t, mgl64.Vec3{4, 0, 1}, dest.Point)

	in.ClearTarget = true
	sys.Update(w)
	assert.False(t, dest.Active)
}

func TestViewerControlIgnoresOffSurfacePick(t *testing.T) {
	w := ecs.NewWorld()
	e, in, _ := controlledViewer(w, mgl64.Vec3{})
	in.Pick = mgl64.Vec3{0, 0, 10}
	in.PickSet = true

	NewViewerControlSystem(boxOracle(-5, -1, 5, 1), nil).Update(w)

	assert.False(t, ecs.Has(w, e, component.DestinationComponent.Kind()))
}

func TestViewerControlToggles(t *testing.T) {
	w := ecs.NewWorld()
	_, in, _ := controlledViewer(w, mgl64.Vec3{})
	ind, _ := addIndicator(w, navigation.ModeGroundAnchored)
	in.ToggleCentering = true
	in.ToggleSmoothing = true
	in.ToggleMode = true

	NewViewerControlSystem(boxOracle(-5, -1, 5, 1), nil).Update(w)

	toggled := eventsOfType(w, ecs.EventSettingToggled)
	require.Len(t, toggled, 2)
	assert.Equal(t, ecs.SettingCentering, toggled[0].Data)
	assert.Equal(t, ecs.SettingSmoothing, toggled[1].Data)
	assert.Equal(t, navigation.ModeCameraRelative, ind.Mode)
}
