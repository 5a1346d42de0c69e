package main

import (
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/arguide/config"
	"github.com/milk9111/arguide/ecs"
	"github.com/milk9111/arguide/ecs/component"
	"github.com/milk9111/arguide/logging"
	"github.com/milk9111/arguide/navigation"
	"golang.org/x/image/font/basicfont"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Game struct {
	frames int

	log          logging.Logger
	modeOverride navigation.Mode
	level        *Level
	watcher      *config.Watcher

	ui     *ebitenui.UI
	paused bool
	face   ebtext.Face
}

func NewGame(log logging.Logger, modeOverride navigation.Mode, watch bool) (*Game, error) {
	lvl, err := LoadLevel(log, modeOverride)
	if err != nil {
		return nil, err
	}

	g := &Game{
		log:          log,
		modeOverride: modeOverride,
		level:        lvl,
		face:         ebtext.NewGoXFace(basicfont.Face7x13),
	}
	g.ui = NewSettingsUI(g)

	if watch {
		w, err := config.NewWatcher(config.Dir)
		if err != nil {
			log.Warnf("game: config watcher disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	g.reloadChanged()

	if g.paused {
		g.ui.Update()
		return nil
	}

	pollInput(g.level)
	g.level.Scheduler.Update(g.level.World)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawLevel(screen, g.level)
	drawHUD(screen, g.face, g.level, g.frames)

	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// reloadChanged rebuilds the level when a config file changed on disk. The
// viewer keeps its position and destination across the reload.
func (g *Game) reloadChanged() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			g.log.Warnf("game: config watcher: %v", err)
		}
	default:
	}

	changed := g.watcher.Poll()
	if len(changed) == 0 {
		return
	}
	g.log.Infof("game: reloading after change to %v", changed)

	lvl, err := LoadLevel(g.log, g.modeOverride)
	if err != nil {
		g.log.Errorf("game: reload: %v", err)
		return
	}
	carryViewer(g.level, lvl)
	g.level = lvl
}

func carryViewer(from, to *Level) {
	if t, ok := ecs.Get(from.World, from.Viewer, component.TransformComponent.Kind()); ok {
		if p, ok := to.Surface.Sample(t.Position, 1); ok {
			nt, _ := ecs.Get(to.World, to.Viewer, component.TransformComponent.Kind())
			nt.Position = p
			nt.Yaw = t.Yaw
		}
	}
	if d, ok := ecs.Get(from.World, from.Viewer, component.DestinationComponent.Kind()); ok && d.Active {
		dest := *d
		_ = ecs.Add(to.World, to.Viewer, component.DestinationComponent.Kind(), &dest)
	}
}

// toggle queues a one-frame input flag on the viewer, as if the key had been
// pressed. Used by the settings panel.
func (g *Game) toggle(set func(in *component.Input)) {
	if in, ok := ecs.Get(g.level.World, g.level.Viewer, component.InputComponent.Kind()); ok {
		set(in)
	}
}
