package navigation

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

const defaultMoveOnDistance = 1.0

// Mode selects how the indicator is placed relative to the viewer.
type Mode int

const (
	// ModeGroundAnchored keeps the indicator at its own position and turns it
	// toward the target.
	ModeGroundAnchored Mode = iota + 1
	// ModeCameraRelative holds the indicator in front of the viewer and aims
	// it from the viewer's position.
	ModeCameraRelative
)

func (m Mode) String() string {
	switch m {
	case ModeGroundAnchored:
		return "ground"
	case ModeCameraRelative:
		return "camera"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Toggle switches between the two placement modes.
func (m Mode) Toggle() Mode {
	if m == ModeCameraRelative {
		return ModeGroundAnchored
	}
	return ModeCameraRelative
}

// ParseMode accepts "ground" or "camera" (case-insensitive). Empty means ground.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ground", "ground_anchored":
		return ModeGroundAnchored, nil
	case "camera", "camera_relative":
		return ModeCameraRelative, nil
	default:
		return 0, fmt.Errorf("navigation: unknown indicator mode %q", s)
	}
}

// Selector picks the path point the indicator should look at.
type Selector struct {
	MoveOnDistance float64

	last    mgl64.Vec3
	hasLast bool
}

func NewSelector(moveOnDistance float64) *Selector {
	if moveOnDistance <= 0 {
		moveOnDistance = defaultMoveOnDistance
	}
	return &Selector{MoveOnDistance: moveOnDistance}
}

// Select flattens path to height and returns the first point farther than
// MoveOnDistance from position, or the final point when none is. With an
// empty path it returns the last selected point and false.
func (s *Selector) Select(path []mgl64.Vec3, position mgl64.Vec3, height float64) (mgl64.Vec3, bool) {
	if len(path) == 0 {
		return s.last, s.hasLast
	}

	target := WithHeight(path[len(path)-1], height)
	for _, p := range path {
		flat := WithHeight(p, height)
		if flat.Sub(position).Len() > s.MoveOnDistance {
			target = flat
			break
		}
	}

	s.last = target
	s.hasLast = true
	return target, true
}

// Reset forgets the last selected point.
func (s *Selector) Reset() {
	s.last = mgl64.Vec3{}
	s.hasLast = false
}

// Pose is a tracked position and facing direction.
type Pose struct {
	Position mgl64.Vec3
	Facing   mgl64.Vec3
}

// PlacementOffsets are the user-adjustable indicator offsets.
type PlacementOffsets struct {
	// VerticalOffset raises a ground anchored indicator.
	VerticalOffset float64
	// ForwardDistance is how far in front of the viewer a camera relative
	// indicator floats.
	ForwardDistance float64
	// CameraHeightOffset is added to the viewer height in camera mode.
	CameraHeightOffset float64
}

// Placement is where the indicator goes and how it is turned.
type Placement struct {
	Position mgl64.Vec3
	// Orientation rotates the indicator's local +Z axis onto the aim direction.
	Orientation mgl64.Quat
	// Yaw is the heading in radians around +Y, zero along +Z.
	Yaw float64
}

// Place positions and orients the indicator for mode.
func Place(mode Mode, target mgl64.Vec3, indicator mgl64.Vec3, viewer Pose, offsets PlacementOffsets) Placement {
	var pos, eye mgl64.Vec3
	switch mode {
	case ModeCameraRelative:
		facing := horizontal(viewer.Facing)
		if facing.Len() < epsilon {
			facing = forward
		}
		pos = viewer.Position.Add(facing.Normalize().Mul(offsets.ForwardDistance))
		pos = WithHeight(pos, viewer.Position.Y()+offsets.CameraHeightOffset)
		eye = viewer.Position
	default:
		pos = indicator.Add(mgl64.Vec3{0, offsets.VerticalOffset, 0})
		eye = pos
	}
	return Placement{
		Position:    pos,
		Orientation: lookAt(eye, target),
		Yaw:         yawTowards(eye, target),
	}
}

// lookAt turns the local +Z axis from eye toward target.
func lookAt(eye, target mgl64.Vec3) mgl64.Quat {
	d := target.Sub(eye)
	if d.Len() < epsilon {
		return mgl64.QuatIdent()
	}
	yaw := math.Atan2(d.X(), d.Z())
	pitch := math.Atan2(d.Y(), horizontal(d).Len())
	return mgl64.QuatRotate(yaw, up).Mul(mgl64.QuatRotate(-pitch, mgl64.Vec3{1, 0, 0}))
}

func yawTowards(eye, target mgl64.Vec3) float64 {
	d := horizontal(target.Sub(eye))
	if d.Len() < epsilon {
		return 0
	}
	return math.Atan2(d.X(), d.Z())
}
