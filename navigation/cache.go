package navigation

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/arguide/logging"
)

const (
	defaultRecenterInterval = 500 * time.Millisecond
	defaultChangeThreshold  = 0.1
)

// CacheSettings controls how often centering may re-run.
type CacheSettings struct {
	RecenterInterval time.Duration
	// ChangeThreshold is the distance a corner must move to count as changed.
	ChangeThreshold float64
}

func (s CacheSettings) withDefaults() CacheSettings {
	if s.RecenterInterval <= 0 {
		s.RecenterInterval = defaultRecenterInterval
	}
	if s.ChangeThreshold <= 0 {
		s.ChangeThreshold = defaultChangeThreshold
	}
	return s
}

// CacheOption configures a CenterCache.
type CacheOption func(*CenterCache)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) CacheOption {
	return func(c *CenterCache) {
		if now != nil {
			c.now = now
		}
	}
}

// WithCacheLogger attaches a logger for recompute events.
func WithCacheLogger(log logging.Logger) CacheOption {
	return func(c *CenterCache) {
		if log != nil {
			c.log = log
		}
	}
}

// CenterCache serves the last centered path and re-runs the Centerer only
// when the raw path changed and the recenter interval has elapsed.
//
// A CenterCache belongs to one navigation session and is not safe for
// concurrent use.
type CenterCache struct {
	centerer *Centerer
	settings CacheSettings
	now      func() time.Time
	log      logging.Logger

	lastCorners  []mgl64.Vec3
	lastCentered []mgl64.Vec3
	lastRun      time.Time
	hasRun       bool
	recomputes   int
}

func NewCenterCache(centerer *Centerer, settings CacheSettings, opts ...CacheOption) *CenterCache {
	c := &CenterCache{
		centerer: centerer,
		settings: settings.withDefaults(),
		now:      time.Now,
		log:      logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CenteredPath returns the centered path for raw, recomputing it only when
// needed. The returned slice is shared with the cache and must not be
// modified; it is replaced, never mutated, on recompute.
//
// Within RecenterInterval of the last recompute the previous result is
// returned as is, so its length can differ from len(raw) when the corner
// count changed in the meantime.
func (c *CenterCache) CenteredPath(raw []mgl64.Vec3) []mgl64.Vec3 {
	if len(raw) == 0 {
		return nil
	}
	if !c.needsRecompute(raw) {
		return c.lastCentered
	}

	c.lastCentered = c.centerer.Center(raw)
	c.lastCorners = clonePath(raw)
	c.lastRun = c.now()
	c.hasRun = true
	c.recomputes++
	c.log.Debugf("navigation: recentered %d corners (run %d)", len(raw), c.recomputes)
	return c.lastCentered
}

func (c *CenterCache) needsRecompute(raw []mgl64.Vec3) bool {
	if !c.hasRun {
		return true
	}
	if c.now().Sub(c.lastRun) < c.settings.RecenterInterval {
		return false
	}
	return c.changed(raw)
}

func (c *CenterCache) changed(raw []mgl64.Vec3) bool {
	if len(raw) != len(c.lastCorners) {
		return true
	}
	for i := range raw {
		if raw[i].Sub(c.lastCorners[i]).Len() > c.settings.ChangeThreshold {
			return true
		}
	}
	return false
}

// Recomputes reports how many full sweeps have run.
func (c *CenterCache) Recomputes() int {
	return c.recomputes
}

// Reset discards all cached state, as at the start of a new session.
func (c *CenterCache) Reset() {
	c.lastCorners = nil
	c.lastCentered = nil
	c.lastRun = time.Time{}
	c.hasRun = false
}
