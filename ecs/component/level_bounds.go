package component

// LevelBounds stores the world-space XZ bounds of the current floor.
type LevelBounds struct {
	MinX, MinZ float64
	MaxX, MaxZ float64
}

func (b LevelBounds) Width() float64 {
	return b.MaxX - b.MinX
}

func (b LevelBounds) Depth() float64 {
	return b.MaxZ - b.MinZ
}

var LevelBoundsComponent = NewComponent[LevelBounds]("level_bounds")
