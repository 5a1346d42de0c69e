package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/milk9111/arguide/navigation"
	"github.com/milk9111/arguide/walkable"
	"gopkg.in/yaml.v3"
)

const (
	NavigationFile = "navigation.yaml"
	FloorFile      = "floor.yaml"
)

var ErrInvalidSetting = errors.New("config: invalid setting")

func LoadSpec[T any](filename string) (T, error) {
	var spec T
	if err := decodeSpec(filename, &spec); err != nil {
		var zero T
		return zero, err
	}
	return spec, nil
}

// decodeSpec unmarshals filename over spec. Keys missing from the file keep
// the values spec already holds.
func decodeSpec[T any](filename string, spec *T) error {
	data, err := Load(filename)
	if err != nil {
		return fmt.Errorf("config: load %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, spec); err != nil {
		return fmt.Errorf("config: unmarshal %s: %w", filename, err)
	}
	return nil
}

type NavigationSpec struct {
	RecenterInterval time.Duration `yaml:"recenter_interval"`
	ChangeThreshold  float64       `yaml:"change_threshold"`

	Centering        bool    `yaml:"centering"`
	SweepStep        float64 `yaml:"sweep_step"`
	MaxSweepDistance float64 `yaml:"max_sweep_distance"`
	SampleRadius     float64 `yaml:"sample_radius"`
	EdgeNudge        float64 `yaml:"edge_nudge"`
	StopAtGap        bool    `yaml:"stop_at_gap"`

	Smoothing        bool    `yaml:"smoothing"`
	Smoothness       int     `yaml:"smoothness"`
	SnapRadius       float64 `yaml:"snap_radius"`
	LineHeightOffset float64 `yaml:"line_height_offset"`

	MoveOnDistance float64       `yaml:"move_on_distance"`
	Indicator      IndicatorSpec `yaml:"indicator"`
}

type IndicatorSpec struct {
	Mode               string  `yaml:"mode"`
	Height             float64 `yaml:"height"`
	VerticalOffset     float64 `yaml:"vertical_offset"`
	ForwardDistance    float64 `yaml:"forward_distance"`
	CameraHeightOffset float64 `yaml:"camera_height_offset"`
}

// DefaultNavigationSpec holds the values used for keys a navigation file
// leaves out. EdgeNudge stays zero so it follows SweepStep.
func DefaultNavigationSpec() NavigationSpec {
	return NavigationSpec{
		RecenterInterval: 500 * time.Millisecond,
		ChangeThreshold:  0.1,
		Centering:        true,
		SweepStep:        0.1,
		MaxSweepDistance: 2,
		SampleRadius:     0.2,
		Smoothing:        true,
		Smoothness:       10,
		SnapRadius:       0.5,
		LineHeightOffset: 0.05,
		MoveOnDistance:   1,
		Indicator: IndicatorSpec{
			Mode:               "ground",
			Height:             1,
			VerticalOffset:     0.2,
			ForwardDistance:    1.5,
			CameraHeightOffset: -0.3,
		},
	}
}

func LoadNavigationSpec() (*NavigationSpec, error) {
	spec := DefaultNavigationSpec()
	if err := decodeSpec(NavigationFile, &spec); err != nil {
		return nil, err
	}
	spec.ApplyDefaults()
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", NavigationFile, err)
	}
	return &spec, nil
}

// ApplyDefaults fills numeric fields that were set to zero.
func (s *NavigationSpec) ApplyDefaults() {
	if s.RecenterInterval == 0 {
		s.RecenterInterval = 500 * time.Millisecond
	}
	if s.ChangeThreshold == 0 {
		s.ChangeThreshold = 0.1
	}
	if s.SweepStep == 0 {
		s.SweepStep = 0.1
	}
	if s.MaxSweepDistance == 0 {
		s.MaxSweepDistance = 2
	}
	if s.SampleRadius == 0 {
		s.SampleRadius = 0.2
	}
	if s.EdgeNudge == 0 {
		s.EdgeNudge = s.SweepStep / 2
	}
	if s.Smoothness == 0 {
		s.Smoothness = 10
	}
	if s.SnapRadius == 0 {
		s.SnapRadius = 0.5
	}
	if s.MoveOnDistance == 0 {
		s.MoveOnDistance = 1
	}
	if s.Indicator.ForwardDistance == 0 {
		s.Indicator.ForwardDistance = 1.5
	}
}

func (s *NavigationSpec) Validate() error {
	switch {
	case s.RecenterInterval < 0:
		return fmt.Errorf("%w: recenter_interval %s", ErrInvalidSetting, s.RecenterInterval)
	case s.ChangeThreshold < 0:
		return fmt.Errorf("%w: change_threshold %v", ErrInvalidSetting, s.ChangeThreshold)
	case s.SweepStep <= 0:
		return fmt.Errorf("%w: sweep_step %v", ErrInvalidSetting, s.SweepStep)
	case s.MaxSweepDistance < s.SweepStep:
		return fmt.Errorf("%w: max_sweep_distance %v shorter than sweep_step", ErrInvalidSetting, s.MaxSweepDistance)
	case s.SampleRadius <= 0:
		return fmt.Errorf("%w: sample_radius %v", ErrInvalidSetting, s.SampleRadius)
	case s.Smoothness < 1:
		return fmt.Errorf("%w: smoothness %d", ErrInvalidSetting, s.Smoothness)
	case s.SnapRadius <= 0:
		return fmt.Errorf("%w: snap_radius %v", ErrInvalidSetting, s.SnapRadius)
	case s.MoveOnDistance <= 0:
		return fmt.Errorf("%w: move_on_distance %v", ErrInvalidSetting, s.MoveOnDistance)
	}
	if _, err := navigation.ParseMode(s.Indicator.Mode); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSetting, err)
	}
	return nil
}

// Settings converts the loaded values into navigator settings.
func (s *NavigationSpec) Settings() navigation.Settings {
	return navigation.Settings{
		Centering: navigation.CenteringSettings{
			SweepStep:        s.SweepStep,
			MaxSweepDistance: s.MaxSweepDistance,
			SampleRadius:     s.SampleRadius,
			EdgeNudge:        s.EdgeNudge,
			StopAtGap:        s.StopAtGap,
		},
		Cache: navigation.CacheSettings{
			RecenterInterval: s.RecenterInterval,
			ChangeThreshold:  s.ChangeThreshold,
		},
		Smoothing: navigation.SmoothingSettings{
			Smoothness: s.Smoothness,
			SnapRadius: s.SnapRadius,
		},
		CenteringEnabled: s.Centering,
		SmoothingEnabled: s.Smoothing,
		LineHeightOffset: s.LineHeightOffset,
	}
}

// Mode returns the configured indicator mode; Validate guarantees it parses.
func (s *NavigationSpec) Mode() navigation.Mode {
	m, err := navigation.ParseMode(s.Indicator.Mode)
	if err != nil {
		return navigation.ModeGroundAnchored
	}
	return m
}

func (s *NavigationSpec) Offsets() navigation.PlacementOffsets {
	return navigation.PlacementOffsets{
		VerticalOffset:     s.Indicator.VerticalOffset,
		ForwardDistance:    s.Indicator.ForwardDistance,
		CameraHeightOffset: s.Indicator.CameraHeightOffset,
	}
}

type FloorSpec struct {
	Name           string      `yaml:"name"`
	CellSize       float64     `yaml:"cell_size"`
	FloorTolerance float64     `yaml:"floor_tolerance"`
	RepathFrames   int         `yaml:"repath_frames"`
	Levels         []LevelSpec `yaml:"levels"`
}

type LevelSpec struct {
	Name    string       `yaml:"name"`
	Height  float64      `yaml:"height"`
	Regions []RegionSpec `yaml:"regions"`
}

type RegionSpec struct {
	Name string  `yaml:"name"`
	MinX float64 `yaml:"min_x"`
	MinZ float64 `yaml:"min_z"`
	MaxX float64 `yaml:"max_x"`
	MaxZ float64 `yaml:"max_z"`
}

func LoadFloorSpec() (*FloorSpec, error) {
	spec, err := LoadSpec[FloorSpec](FloorFile)
	if err != nil {
		return nil, err
	}
	if err := spec.FloorPlan().Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", FloorFile, err)
	}
	return &spec, nil
}

func (s *FloorSpec) FloorPlan() walkable.FloorPlan {
	plan := walkable.FloorPlan{FloorTolerance: s.FloorTolerance}
	for _, l := range s.Levels {
		lvl := walkable.Level{Name: l.Name, Height: l.Height}
		for _, r := range l.Regions {
			lvl.Regions = append(lvl.Regions, walkable.Region{
				Name: r.Name,
				MinX: r.MinX,
				MinZ: r.MinZ,
				MaxX: r.MaxX,
				MaxZ: r.MaxZ,
			})
		}
		plan.Levels = append(plan.Levels, lvl)
	}
	return plan
}
