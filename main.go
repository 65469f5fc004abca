package main

import (
	"errors"
	"flag"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/danmaku/common"
	"github.com/milk9111/danmaku/logging"
	"github.com/milk9111/danmaku/prefabs"
	"github.com/milk9111/danmaku/session"
	"go.uber.org/zap"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	configPath := flag.String("config", prefabs.DefaultName, "configuration file (.yaml, .toml, .tengo or .lua)")
	watch := flag.Bool("watch", false, "restart the run when the configuration file changes")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	logFormat := flag.String("log-format", "console", "log format (console or json)")
	flag.Parse()

	level := *logLevel
	if *debug {
		level = "debug"
	}
	logger, err := logging.New(logging.Config{Level: level, Format: *logFormat})
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("danmaku")

	sess, err := session.New(session.FileLoader{Name: *configPath}, logger, common.DefaultScreen())
	if err != nil {
		logger.Fatal("load config", zap.String("path", *configPath), zap.Error(err))
	}
	defer func() { _ = sess.Close() }()

	if *watch {
		if err := sess.WatchConfig(*configPath); err != nil {
			logger.Warn("config watch disabled", zap.Error(err))
		}
	}

	game := NewGame(sess, logger, filepath.Dir(*configPath), *debug)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game loop", zap.Error(err))
	}
}
