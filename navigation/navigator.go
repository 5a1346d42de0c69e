package navigation

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/arguide/logging"
)

// Settings collects everything a Navigator needs.
type Settings struct {
	Centering CenteringSettings
	Cache     CacheSettings
	Smoothing SmoothingSettings

	CenteringEnabled bool
	SmoothingEnabled bool

	// LineHeightOffset raises the render path. It is applied after
	// centering and smoothing and never reaches the oracle.
	LineHeightOffset float64
}

// Navigator is one navigation session. Call Update once per frame with the
// current raw path and hand the result to the renderer.
type Navigator struct {
	settings Settings
	cache    *CenterCache
	smoother *Smoother
	log      logging.Logger
}

func NewNavigator(oracle WalkableOracle, settings Settings, log logging.Logger, opts ...CacheOption) *Navigator {
	if log == nil {
		log = logging.Nop()
	}
	centerer := NewCenterer(oracle, settings.Centering, log)
	opts = append([]CacheOption{WithCacheLogger(log)}, opts...)

	// Height is applied by Update, not by the smoother.
	smoothing := settings.Smoothing
	smoothing.HeightOffset = 0

	return &Navigator{
		settings: settings,
		cache:    NewCenterCache(centerer, settings.Cache, opts...),
		smoother: NewSmoother(oracle, smoothing),
		log:      log,
	}
}

// Update returns the render path for raw. Raw paths with fewer than two
// points produce nothing to draw.
func (n *Navigator) Update(raw []mgl64.Vec3) []mgl64.Vec3 {
	if len(raw) < 2 {
		return nil
	}

	path := raw
	if n.settings.CenteringEnabled {
		path = n.cache.CenteredPath(raw)
	}
	if n.settings.SmoothingEnabled {
		path = n.smoother.Smooth(path)
	}
	return Lift(path, n.settings.LineHeightOffset)
}

// CenteredPath exposes the cached centering result without smoothing.
func (n *Navigator) CenteredPath(raw []mgl64.Vec3) []mgl64.Vec3 {
	if !n.settings.CenteringEnabled {
		return raw
	}
	return n.cache.CenteredPath(raw)
}

// Cache returns the session's recalculation cache.
func (n *Navigator) Cache() *CenterCache {
	return n.cache
}

// Settings returns the settings the navigator was built with.
func (n *Navigator) Settings() Settings {
	return n.settings
}

// Reset ends the session.
func (n *Navigator) Reset() {
	n.cache.Reset()
}
