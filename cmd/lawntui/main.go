// Command lawntui 在终端中运行草坪对战模拟
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/lanedefense/internal/bootstrap"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

var logFileFlag = flag.String("log-file", "", "write logs to this file (default: logging disabled)")

func main() {
	flags := bootstrap.RegisterFlags(flag.CommandLine)
	flag.Parse()

	settings, err := flags.Settings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load settings: %v\n", err)
		os.Exit(1)
	}

	logger := zap.NewNop()
	if *logFileFlag != "" {
		logger, err = bootstrap.NewFileLogger(settings.Logging, *logFileFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "create logger: %v\n", err)
			os.Exit(1)
		}
	}

	session, err := bootstrap.New(settings, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "session setup failed: %v\n", err)
		os.Exit(1)
	}
	defer session.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "init screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()

	// 崩溃时终端已由 screen.Fini 恢复，再打印错误
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "lawntui crashed: %v\n", r)
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	newTerminalUI(screen, session).run()
}
