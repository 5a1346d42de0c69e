package main

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/arguide/ecs"
	"github.com/milk9111/arguide/ecs/component"
)

// pollInput copies keyboard and mouse state into the viewer's Input.
func pollInput(lvl *Level) {
	in, ok := ecs.Get(lvl.World, lvl.Viewer, component.InputComponent.Kind())
	if !ok {
		return
	}

	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		in.MoveForward += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		in.MoveForward -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		in.MoveRight += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		in.MoveRight -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyE) {
		in.Turn += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		in.Turn -= 1
	}

	in.ToggleMode = in.ToggleMode || inpututil.IsKeyJustPressed(ebiten.KeyM)
	in.ToggleCentering = in.ToggleCentering || inpututil.IsKeyJustPressed(ebiten.KeyC)
	in.ToggleSmoothing = in.ToggleSmoothing || inpututil.IsKeyJustPressed(ebiten.KeyX)
	in.ClearTarget = in.ClearTarget || inpututil.IsKeyJustPressed(ebiten.KeyBackspace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		x, z := screenToWorld(lvl, float64(mx), float64(my))
		floorY := 0.0
		if t, ok := ecs.Get(lvl.World, lvl.Viewer, component.TransformComponent.Kind()); ok {
			floorY = t.Position.Y()
		}
		in.Pick = mgl64.Vec3{x, floorY, z}
		in.PickSet = true
	}
}
