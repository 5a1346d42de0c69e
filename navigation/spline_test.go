package navigation

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVecNear(t *testing.T, want, got mgl64.Vec3, delta float64) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], delta, "component %d of %v vs %v", i, want, got)
	}
}

func TestSmoothLengthAndEndpoints(t *testing.T) {
	cases := []struct {
		name       string
		path       []mgl64.Vec3
		smoothness int
	}{
		{"two_points", []mgl64.Vec3{{0, 0, 0}, {4, 0, 0}}, 5},
		{"l_shape", []mgl64.Vec3{{0, 0, 0}, {5, 0, 0}, {5, 0, 5}}, 10},
		{"zigzag", []mgl64.Vec3{{0, 0, 0}, {1, 0, 0.5}, {2, 0, -0.5}, {3, 0, 0.5}, {4, 0, 0}}, 4},
		{"one_step", []mgl64.Vec3{{0, 0, 0}, {1, 0, 1}, {2, 0, 0}}, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSmoother(rectOracle(rect{-10, 10, -10, 10}), SmoothingSettings{Smoothness: tc.smoothness, HeightOffset: 0.05})
			out := s.Smooth(tc.path)

			require.Len(t, out, (len(tc.path)-1)*tc.smoothness+1)
			lift := mgl64.Vec3{0, 0.05, 0}
			assertVecNear(t, tc.path[0].Add(lift), out[0], 1e-9)
			assertVecNear(t, tc.path[len(tc.path)-1].Add(lift), out[len(out)-1], 1e-9)
		})
	}
}

func TestSmoothPassesThroughControlPoints(t *testing.T) {
	path := []mgl64.Vec3{{0, 0, 0}, {5, 0, 0}, {5, 0, 5}, {0, 0, 5}}
	s := NewSmoother(nil, SmoothingSettings{Smoothness: 8})

	out := s.Smooth(path)

	for i, p := range path {
		assertVecNear(t, p, out[i*8], 1e-9)
	}
}

func TestSmoothShortPathUnchanged(t *testing.T) {
	s := NewSmoother(noWalkable(), SmoothingSettings{HeightOffset: 1})

	assert.Nil(t, s.Smooth(nil))
	single := []mgl64.Vec3{{1, 2, 3}}
	assert.Equal(t, single, s.Smooth(single))
}

func TestSmoothSnapsControlPoints(t *testing.T) {
	// Floor at z in [0, 1]; the middle control point sits 0.3 outside it.
	s := NewSmoother(rectOracle(rect{-10, 10, 0, 1}), SmoothingSettings{Smoothness: 2, SnapRadius: 0.5})

	out := s.Smooth([]mgl64.Vec3{{0, 0, 0.5}, {2, 0, 1.3}, {4, 0, 0.5}})

	assertVecNear(t, mgl64.Vec3{2, 0, 1}, out[2], 1e-9)
}

func TestSmoothFailedSnapUsesOriginal(t *testing.T) {
	path := []mgl64.Vec3{{0, 3, 0}, {2, 3, 0}}
	s := NewSmoother(noWalkable(), SmoothingSettings{Smoothness: 3})

	out := s.Smooth(path)

	require.Len(t, out, 4)
	assertVecNear(t, path[0], out[0], 1e-12)
	assertVecNear(t, path[1], out[3], 1e-12)
	// Duplicated end tangents ease in: at t=1/3 the blend weight is 8/27.
	assertVecNear(t, mgl64.Vec3{2 * 8.0 / 27, 3, 0}, out[1], 1e-9)
}

func TestCatmullRomEndpoints(t *testing.T) {
	p0 := mgl64.Vec3{-1, 0, 2}
	p1 := mgl64.Vec3{0, 1, 0}
	p2 := mgl64.Vec3{3, 0, 1}
	p3 := mgl64.Vec3{4, 4, 4}

	assertVecNear(t, p1, CatmullRom(p0, p1, p2, p3, 0), 1e-12)
	assertVecNear(t, p2, CatmullRom(p0, p1, p2, p3, 1), 1e-12)
}
