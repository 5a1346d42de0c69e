package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/arguide/config"
	"github.com/milk9111/arguide/logging"
	"github.com/milk9111/arguide/navigation"
)

func main() {
	configDir := flag.String("config", config.Dir, "directory holding navigation.yaml and floor.yaml overrides")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	logDir := flag.String("log-dir", "", "also write logs to this directory")
	mode := flag.String("mode", "", "indicator mode override (ground or camera)")
	watch := flag.Bool("watch", true, "reload config files when they change on disk")
	flag.Parse()

	logger, err := logging.NewLogrusLogger(*logLevel, *logDir)
	if err != nil {
		log.Fatal(err)
	}
	config.Dir = *configDir

	var modeOverride navigation.Mode
	if *mode != "" {
		m, err := navigation.ParseMode(*mode)
		if err != nil {
			logger.Fatalf("arguide: %v", err)
		}
		modeOverride = m
	}

	game, err := NewGame(logger, modeOverride, *watch)
	if err != nil {
		logger.Fatalf("arguide: %v", err)
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("arguide")

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatalf("arguide: %v", err)
	}
}
