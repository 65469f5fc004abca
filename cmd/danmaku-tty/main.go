// Command danmaku-tty plays the game in a terminal.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/danmaku/common"
	"github.com/milk9111/danmaku/logging"
	"github.com/milk9111/danmaku/prefabs"
	"github.com/milk9111/danmaku/session"
	"go.uber.org/zap"
)

const frame = 16 * time.Millisecond

func main() {
	configPath := flag.String("config", prefabs.DefaultName, "configuration file (.yaml, .toml, .tengo or .lua)")
	watch := flag.Bool("watch", false, "restart the run when the configuration file changes")
	logFile := flag.String("log", "danmaku-tty.log", "log file (the terminal is busy drawing)")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	logger, err := logging.New(logging.Config{Level: *logLevel, File: *logFile})
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

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

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Fatal("terminal", zap.Error(err))
	}
	if err := screen.Init(); err != nil {
		logger.Fatal("terminal", zap.Error(err))
	}
	defer screen.Fini()

	run(screen, sess)
}

func run(screen tcell.Screen, sess *session.Session) {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	var keys keyboard
	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				keys.handle(ev, time.Now())
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			sess.PollReload()
			sess.HandleInput(keys.input(now))
			if sess.Quitting() {
				return
			}
			sess.Tick(now.Sub(last))
			last = now
			draw(screen, sess.Snapshot())
		}
	}
}
