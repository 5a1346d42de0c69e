package navigation

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/arguide/logging"
)

const (
	defaultSweepStep        = 0.1
	defaultMaxSweepDistance = 2.0
	defaultSampleRadius     = 0.2
)

// CenteringSettings tunes the perpendicular sweep.
type CenteringSettings struct {
	SweepStep        float64
	MaxSweepDistance float64
	SampleRadius     float64
	// EdgeNudge is how far a one-sided result is pushed toward the side that
	// found nothing. Zero means half a sweep step.
	EdgeNudge float64
	// StopAtGap ends a side's sweep at its first miss instead of walking on
	// to the farthest walkable sample.
	StopAtGap bool
}

func (s CenteringSettings) withDefaults() CenteringSettings {
	if s.SweepStep <= 0 {
		s.SweepStep = defaultSweepStep
	}
	if s.MaxSweepDistance <= 0 {
		s.MaxSweepDistance = defaultMaxSweepDistance
	}
	if s.SampleRadius <= 0 {
		s.SampleRadius = defaultSampleRadius
	}
	if s.EdgeNudge <= 0 {
		s.EdgeNudge = s.SweepStep * 0.5
	}
	return s
}

// Centerer pulls each waypoint to the middle of the walkable corridor around it.
type Centerer struct {
	oracle   WalkableOracle
	settings CenteringSettings
	log      logging.Logger
}

func NewCenterer(oracle WalkableOracle, settings CenteringSettings, log logging.Logger) *Centerer {
	if log == nil {
		log = logging.Nop()
	}
	return &Centerer{oracle: oracle, settings: settings.withDefaults(), log: log}
}

// Settings returns the effective settings after defaults.
func (c *Centerer) Settings() CenteringSettings {
	return c.settings
}

// Center returns a new path with one centered point per input corner.
func (c *Centerer) Center(corners []mgl64.Vec3) []mgl64.Vec3 {
	if len(corners) == 0 {
		return nil
	}
	out := make([]mgl64.Vec3, len(corners))
	for i := range corners {
		out[i] = c.centerCorner(corners, i)
	}
	return out
}

type sweepSample struct {
	point mgl64.Vec3
	found bool
}

func (c *Centerer) centerCorner(corners []mgl64.Vec3, i int) mgl64.Vec3 {
	corner := corners[i]
	if c.oracle == nil {
		return corner
	}

	perp := sweepAxis(tangentAt(corners, i))
	r := c.settings.SampleRadius

	var left, right sweepSample
	if p, ok := c.oracle.Sample(corner, r); ok {
		left = sweepSample{point: p, found: true}
		right = left
	}

	c.sweep(corner, perp, &left)
	c.sweep(corner, perp.Mul(-1), &right)

	var centered mgl64.Vec3
	switch {
	case left.found && right.found:
		centered = left.point.Add(right.point).Mul(0.5)
	case left.found:
		centered = left.point.Sub(perp.Mul(c.settings.EdgeNudge))
	case right.found:
		centered = right.point.Add(perp.Mul(c.settings.EdgeNudge))
	default:
		if p, ok := c.oracle.Sample(corner, r*2); ok {
			centered = p
		} else {
			c.log.Debugf("navigation: no walkable sample near corner %d %v", i, corner)
			return corner
		}
	}

	if !finite(centered) {
		return corner
	}
	return centered
}

// sweep walks from origin along dir and keeps the farthest walkable sample.
func (c *Centerer) sweep(origin, dir mgl64.Vec3, side *sweepSample) {
	step := c.settings.SweepStep
	steps := int(math.Floor(c.settings.MaxSweepDistance/step + 1e-9))
	for s := 1; s <= steps; s++ {
		probe := origin.Add(dir.Mul(float64(s) * step))
		p, ok := c.oracle.Sample(probe, c.settings.SampleRadius)
		if !ok {
			if c.settings.StopAtGap && side.found {
				return
			}
			continue
		}
		side.point = p
		side.found = true
	}
}

func tangentAt(corners []mgl64.Vec3, i int) mgl64.Vec3 {
	var t mgl64.Vec3
	switch {
	case i+1 < len(corners):
		t = corners[i+1].Sub(corners[i])
	case i > 0:
		t = corners[i].Sub(corners[i-1])
	default:
		return forward
	}
	if t.Len() < epsilon {
		return forward
	}
	return t.Normalize()
}

// sweepAxis is the horizontal axis perpendicular to the tangent.
func sweepAxis(tangent mgl64.Vec3) mgl64.Vec3 {
	perp := up.Cross(tangent)
	if perp.Len() < epsilon {
		perp = up.Cross(forward)
	}
	return perp.Normalize()
}
