package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/lanedefense/internal/bootstrap"
	"github.com/decker502/lanedefense/pkg/app"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

func main() {
	flags := bootstrap.RegisterFlags(flag.CommandLine)
	flag.Parse()

	settings, err := flags.Settings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load settings: %v\n", err)
		os.Exit(1)
	}

	logger, err := bootstrap.NewLogger(settings.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create logger: %v\n", err)
		os.Exit(1)
	}

	session, err := bootstrap.New(settings, logger)
	if err != nil {
		logger.Fatal("session setup failed", zap.Error(err))
	}
	defer session.Close()

	gameApp := app.NewApp(session)
	w, h := gameApp.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(app.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		logger.Error("game loop exited", zap.Error(err))
		session.Close()
		os.Exit(1)
	}
}
