package navigation

import "github.com/go-gl/mathgl/mgl64"

const (
	defaultSmoothness = 10
	defaultSnapRadius = 0.5
)

// SmoothingSettings tunes Catmull-Rom output density and snapping.
type SmoothingSettings struct {
	// Smoothness is the number of samples emitted per segment.
	Smoothness int
	SnapRadius float64
	// HeightOffset raises every control point after snapping.
	HeightOffset float64
}

func (s SmoothingSettings) withDefaults() SmoothingSettings {
	if s.Smoothness < 1 {
		s.Smoothness = defaultSmoothness
	}
	if s.SnapRadius <= 0 {
		s.SnapRadius = defaultSnapRadius
	}
	return s
}

// Smoother interpolates a sparse path into a dense Catmull-Rom curve.
type Smoother struct {
	oracle   WalkableOracle
	settings SmoothingSettings
}

func NewSmoother(oracle WalkableOracle, settings SmoothingSettings) *Smoother {
	return &Smoother{oracle: oracle, settings: settings.withDefaults()}
}

// Settings returns the effective settings after defaults.
func (s *Smoother) Settings() SmoothingSettings {
	return s.settings
}

// Smooth returns (len(path)-1)*Smoothness+1 points starting at the first and
// ending at the last snapped control point. Paths shorter than two points are
// returned unchanged.
func (s *Smoother) Smooth(path []mgl64.Vec3) []mgl64.Vec3 {
	if len(path) < 2 {
		return clonePath(path)
	}

	ctrl := make([]mgl64.Vec3, len(path))
	for i, p := range path {
		ctrl[i] = s.snap(p).Add(mgl64.Vec3{0, s.settings.HeightOffset, 0})
	}

	n := len(ctrl)
	steps := s.settings.Smoothness
	out := make([]mgl64.Vec3, 0, (n-1)*steps+1)
	for i := 0; i < n-1; i++ {
		p0 := ctrl[max(i-1, 0)]
		p1 := ctrl[i]
		p2 := ctrl[i+1]
		p3 := ctrl[min(i+2, n-1)]
		for k := 0; k < steps; k++ {
			t := float64(k) / float64(steps)
			out = append(out, CatmullRom(p0, p1, p2, p3, t))
		}
	}
	return append(out, ctrl[n-1])
}

func (s *Smoother) snap(p mgl64.Vec3) mgl64.Vec3 {
	if s.oracle == nil {
		return p
	}
	if snapped, ok := s.oracle.Sample(p, s.settings.SnapRadius); ok {
		return snapped
	}
	return p
}

// CatmullRom evaluates the uniform Catmull-Rom segment between p1 and p2.
func CatmullRom(p0, p1, p2, p3 mgl64.Vec3, t float64) mgl64.Vec3 {
	t2 := t * t
	t3 := t2 * t
	a := p1.Mul(2)
	b := p2.Sub(p0).Mul(t)
	c := p0.Mul(2).Sub(p1.Mul(5)).Add(p2.Mul(4)).Sub(p3).Mul(t2)
	d := p0.Mul(-1).Add(p1.Mul(3)).Sub(p2.Mul(3)).Add(p3).Mul(t3)
	return a.Add(b).Add(c).Add(d).Mul(0.5)
}
