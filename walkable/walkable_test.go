package walkable

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testPlan is an L shaped hallway on the ground floor and one room upstairs.
func testPlan() FloorPlan {
	return FloorPlan{
		Levels: []Level{
			{
				Name:   "ground",
				Height: 0,
				Regions: []Region{
					{Name: "hall", MinX: 0, MinZ: 0, MaxX: 10, MaxZ: 2},
					{Name: "wing", MinX: 8, MinZ: 0, MaxX: 10, MaxZ: 10},
				},
			},
			{
				Name:    "first",
				Height:  4,
				Regions: []Region{{Name: "room", MinX: 0, MinZ: 0, MaxX: 4, MaxZ: 4}},
			},
		},
	}
}

func TestFloorPlanValidate(t *testing.T) {
	cases := []struct {
		name string
		plan FloorPlan
		want error
	}{
		{"ok", testPlan(), nil},
		{"no_levels", FloorPlan{}, ErrNoLevels},
		{"no_regions", FloorPlan{Levels: []Level{{Name: "x"}}}, ErrInvalidRegion},
		{"empty_bounds", FloorPlan{Levels: []Level{{Regions: []Region{{MinX: 1, MaxX: 1, MinZ: 0, MaxZ: 2}}}}}, ErrInvalidRegion},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.plan.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}

	_, err := NewSurface(FloorPlan{})
	assert.ErrorIs(t, err, ErrNoLevels)
}

func TestSurfaceSample(t *testing.T) {
	s, err := NewSurface(testPlan())
	require.NoError(t, err)

	cases := []struct {
		name   string
		p      mgl64.Vec3
		radius float64
		want   mgl64.Vec3
		ok     bool
	}{
		{"inside", mgl64.Vec3{5, 0.2, 1}, 0.1, mgl64.Vec3{5, 0, 1}, true},
		{"near_edge", mgl64.Vec3{5, 0, 2.3}, 0.5, mgl64.Vec3{5, 0, 2}, true},
		{"too_far", mgl64.Vec3{5, 0, 3}, 0.5, mgl64.Vec3{}, false},
		{"wing_edge", mgl64.Vec3{7.9, 0, 2.5}, 0.5, mgl64.Vec3{8, 0, 2.5}, true},
		{"upstairs", mgl64.Vec3{2, 3.8, 2}, 0.1, mgl64.Vec3{2, 4, 2}, true},
		{"between_floors", mgl64.Vec3{2, 2, 2}, 0.1, mgl64.Vec3{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := s.Sample(tc.p, tc.radius)
			require.Equal(t, tc.ok, ok)
			if !ok {
				return
			}
			for i := range tc.want {
				assert.InDelta(t, tc.want[i], got[i], 1e-9)
			}
		})
	}
}

func TestSurfaceWalkableAndLevels(t *testing.T) {
	s, err := NewSurface(testPlan())
	require.NoError(t, err)

	assert.True(t, s.Walkable(mgl64.Vec3{9, 0, 9}))
	assert.False(t, s.Walkable(mgl64.Vec3{5, 0, 5}))
	assert.True(t, s.Walkable(mgl64.Vec3{1, 4, 1}))
	assert.Equal(t, 2, s.Levels())
	assert.Equal(t, "first", s.Level(1).Name)

	i, ok := s.LevelIndex(4.9)
	assert.True(t, ok)
	assert.Equal(t, 1, i)
}

func TestGridRasterisation(t *testing.T) {
	s, err := NewSurface(testPlan())
	require.NoError(t, err)
	pf := NewPathfinder(s, 1)

	g := pf.Grid(0)
	assert.Equal(t, 10, g.W)
	assert.Equal(t, 10, g.H)
	assert.False(t, g.Blocked(0, 0))
	assert.True(t, g.Blocked(0, 5))
	assert.False(t, g.Blocked(9, 9))
	assert.True(t, g.Blocked(-1, 0))
}

func TestFindPathCorners(t *testing.T) {
	s, err := NewSurface(testPlan())
	require.NoError(t, err)
	pf := NewPathfinder(s, 0.5)

	start := mgl64.Vec3{1, 0, 1}
	goal := mgl64.Vec3{9, 0, 9}
	path, err := pf.FindPath(start, goal)
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(path), 3)
	assert.Equal(t, start, path[0])
	assert.Equal(t, goal, path[len(path)-1])
	for i, p := range path {
		assert.True(t, s.Walkable(p), "corner %d %v not walkable", i, p)
	}
}

func TestFindPathStraightLine(t *testing.T) {
	s, err := NewSurface(testPlan())
	require.NoError(t, err)
	pf := NewPathfinder(s, 0.5)

	path, err := pf.FindPath(mgl64.Vec3{0.25, 0, 0.75}, mgl64.Vec3{6.25, 0, 0.75})
	require.NoError(t, err)
	assert.Len(t, path, 2)
}

func TestFindPathErrors(t *testing.T) {
	s, err := NewSurface(testPlan())
	require.NoError(t, err)
	pf := NewPathfinder(s, 0.5)

	_, err = pf.FindPath(mgl64.Vec3{1, 0, 1}, mgl64.Vec3{1, 4, 1})
	assert.ErrorIs(t, err, ErrNoPath)

	_, err = pf.FindPath(mgl64.Vec3{1, 0, 1}, mgl64.Vec3{50, 0, 50})
	assert.ErrorIs(t, err, ErrOffSurface)

	_, err = pf.FindPath(mgl64.Vec3{1, 2, 1}, mgl64.Vec3{1, 0, 1})
	assert.ErrorIs(t, err, ErrOffSurface)
}

func TestFindPathSnapsBlockedEndpoint(t *testing.T) {
	s, err := NewSurface(testPlan())
	require.NoError(t, err)
	pf := NewPathfinder(s, 0.5)

	// Just outside the hall, inside the level bounds.
	path, err := pf.FindPath(mgl64.Vec3{1, 0, 1}, mgl64.Vec3{5, 0, 2.6})
	require.NoError(t, err)

	last := path[len(path)-1]
	assert.True(t, s.Walkable(last))
	assert.InDelta(t, 5.25, last.X(), 1e-9)
}
