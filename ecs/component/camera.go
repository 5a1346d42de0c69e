package component

// Camera is the top-down demo view. It follows the viewer entity.
type Camera struct {
	Zoom       float64
	Smoothness float64
	CenterX    float64
	CenterZ    float64
}

var CameraComponent = NewComponent[Camera]("camera")
