package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/arguide/ecs"
	"github.com/milk9111/arguide/ecs/component"
	"golang.org/x/image/colornames"
)

var (
	backgroundColor = color.NRGBA{R: 0x20, G: 0x22, B: 0x28, A: 0xff}
	rawPathColor    = color.NRGBA{R: 0xff, G: 0xa5, B: 0x00, A: 0x90}
)

// view returns the camera centre and zoom, defaulting to the bounds centre.
func view(lvl *Level) (cx, cz, zoom float64) {
	cx = (lvl.Bounds.MinX + lvl.Bounds.MaxX) / 2
	cz = (lvl.Bounds.MinZ + lvl.Bounds.MaxZ) / 2
	zoom = defaultZoom
	if e, ok := ecs.First(lvl.World, component.CameraComponent.Kind()); ok {
		cam, _ := ecs.Get(lvl.World, e, component.CameraComponent.Kind())
		cx, cz = cam.CenterX, cam.CenterZ
		if cam.Zoom > 0 {
			zoom = cam.Zoom
		}
	}
	return cx, cz, zoom
}

// worldToScreen maps the XZ plane onto the screen with north (+Z) up.
func worldToScreen(lvl *Level, x, z float64) (float32, float32) {
	cx, cz, zoom := view(lvl)
	sx := (x-cx)*zoom + baseWidth/2
	sy := baseHeight/2 - (z-cz)*zoom
	return float32(sx), float32(sy)
}

func screenToWorld(lvl *Level, sx, sy float64) (float64, float64) {
	cx, cz, zoom := view(lvl)
	return (sx-baseWidth/2)/zoom + cx, cz - (sy-baseHeight/2)/zoom
}

func drawLevel(screen *ebiten.Image, lvl *Level) {
	screen.Fill(backgroundColor)
	_, _, zoom := view(lvl)
	w := lvl.World

	viewerY := 0.0
	if t, ok := ecs.Get(w, lvl.Viewer, component.TransformComponent.Kind()); ok {
		viewerY = t.Position.Y()
	}
	current, ok := lvl.Surface.LevelIndex(viewerY)
	if !ok {
		current = 0
	}
	regions := lvl.Surface.Level(current).Regions
	for _, r := range regions {
		x0, y0 := worldToScreen(lvl, r.MinX, r.MaxZ)
		x1, y1 := worldToScreen(lvl, r.MaxX, r.MinZ)
		vector.FillRect(screen, x0, y0, x1-x0, y1-y0, regionColor(current), false)
	}
	for _, r := range regions {
		x0, y0 := worldToScreen(lvl, r.MinX, r.MaxZ)
		x1, y1 := worldToScreen(lvl, r.MaxX, r.MinZ)
		vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 1, colornames.Dimgray, false)
	}

	if pf, ok := ecs.Get(w, lvl.Viewer, component.PathfindingComponent.Kind()); ok {
		drawPolyline(screen, lvl, pf.Path, 1, rawPathColor, false)
	}
	ecs.ForEach(w, component.LineRenderComponent.Kind(), func(_ ecs.Entity, line *component.LineRender) {
		clr := line.Color
		if clr == nil {
			clr = colornames.Deepskyblue
		}
		drawPolyline(screen, lvl, line.Points, line.Width, clr, line.AntiAlias)
	})

	if d, ok := ecs.Get(w, lvl.Viewer, component.DestinationComponent.Kind()); ok && d.Active {
		drawMarker(screen, lvl, d.Point, float32(0.3*zoom), colornames.Crimson)
	}

	if t, ok := ecs.Get(w, lvl.Viewer, component.TransformComponent.Kind()); ok {
		drawMarker(screen, lvl, t.Position, float32(0.25*zoom), colornames.White)
		drawHeading(screen, lvl, t.Position, t.Yaw, 0.8, colornames.White)
	}

	ecs.ForEach2(w, component.IndicatorComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, ind *component.Indicator, t *component.Transform) {
		if !ind.HasTarget {
			return
		}
		drawMarker(screen, lvl, t.Position, float32(0.15*zoom), colornames.Gold)
		drawHeading(screen, lvl, t.Position, t.Yaw, 1.2, colornames.Gold)
	})
}

func drawPolyline(screen *ebiten.Image, lvl *Level, points []mgl64.Vec3, width float32, clr color.Color, aa bool) {
	if width <= 0 {
		width = 1
	}
	for i := 1; i < len(points); i++ {
		x0, y0 := worldToScreen(lvl, points[i-1].X(), points[i-1].Z())
		x1, y1 := worldToScreen(lvl, points[i].X(), points[i].Z())
		vector.StrokeLine(screen, x0, y0, x1, y1, width, clr, aa)
	}
}

func drawMarker(screen *ebiten.Image, lvl *Level, p mgl64.Vec3, size float32, clr color.Color) {
	x, y := worldToScreen(lvl, p.X(), p.Z())
	vector.FillRect(screen, x-size/2, y-size/2, size, size, clr, true)
}

func drawHeading(screen *ebiten.Image, lvl *Level, p mgl64.Vec3, yaw, length float64, clr color.Color) {
	x0, y0 := worldToScreen(lvl, p.X(), p.Z())
	x1, y1 := worldToScreen(lvl, p.X()+math.Sin(yaw)*length, p.Z()+math.Cos(yaw)*length)
	vector.StrokeLine(screen, x0, y0, x1, y1, 2, clr, true)
}

func drawHUD(screen *ebiten.Image, face ebtext.Face, lvl *Level, frames int) {
	settings := lvl.Guide.Settings()
	lines := []string{
		fmt.Sprintf("%s    frames: %d    FPS: %.1f", lvl.Name, frames, ebiten.ActualFPS()),
		fmt.Sprintf("centering [C]: %v    smoothing [X]: %v", settings.CenteringEnabled, settings.SmoothingEnabled),
	}

	if ind, ok := ecs.Get(lvl.World, lvl.Indicator, component.IndicatorComponent.Kind()); ok {
		lines = append(lines, fmt.Sprintf("indicator [M]: %s", ind.Mode))
	}
	if gp, ok := ecs.Get(lvl.World, lvl.Viewer, component.GuidePathComponent.Kind()); ok {
		lines = append(lines, fmt.Sprintf("render points: %d    recenters: %d", len(gp.Render), gp.Recomputes))
	}
	if pf, ok := ecs.Get(lvl.World, lvl.Viewer, component.PathfindingComponent.Kind()); ok && pf.Err != nil {
		lines = append(lines, fmt.Sprintf("no route: %v", pf.Err))
	}
	lines = append(lines, "WASD move  Q/E turn  click: destination  right click: clear  Esc: settings")

	for i, line := range lines {
		op := &ebtext.DrawOptions{}
		op.GeoM.Translate(8, float64(8+i*16))
		op.ColorScale.ScaleWithColor(colornames.White)
		ebtext.Draw(screen, line, face, op)
	}
}
