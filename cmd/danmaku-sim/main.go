// Command danmaku-sim runs a configuration headless with a fixed delta and
// reports how the run ended. The player never moves.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/milk9111/danmaku/common"
	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/input"
	"github.com/milk9111/danmaku/logging"
	"github.com/milk9111/danmaku/prefabs"
	"github.com/milk9111/danmaku/session"
	"github.com/milk9111/danmaku/state"
	"go.uber.org/zap"
)

type result struct {
	Ticks    int
	Outcome  ecs.Outcome
	Messages []string
}

// simulate skips the story, then ticks until the run ends or maxTicks pass.
func simulate(sess *session.Session, maxTicks int, dt time.Duration) result {
	for sess.State() == state.Cinematic {
		sess.HandleInput(input.Input{ConfirmPressed: true})
	}

	var r result
	for r.Ticks < maxTicks && !sess.World().Finished() {
		sess.Tick(dt)
		r.Ticks++
	}
	r.Outcome = sess.World().Outcome
	r.Messages = append(r.Messages, sess.World().Messages...)
	return r
}

func main() {
	configPath := flag.String("config", prefabs.DefaultName, "configuration file (.yaml, .toml, .tengo or .lua)")
	ticks := flag.Int("ticks", 36000, "maximum number of ticks")
	dt := flag.Duration("dt", time.Second/60, "simulated time per tick")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	logFormat := flag.String("log-format", "console", "log format (console or json)")
	flag.Parse()

	logger, err := logging.New(logging.Config{Level: *logLevel, Format: *logFormat})
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	sess, err := session.New(session.FileLoader{Name: *configPath}, logger, common.DefaultScreen())
	if err != nil {
		logger.Fatal("load config", zap.String("path", *configPath), zap.Error(err))
	}

	r := simulate(sess, *ticks, *dt)
	logger.Info("simulation done",
		zap.Int("ticks", r.Ticks),
		zap.Duration("elapsed", time.Duration(r.Ticks)*(*dt)),
		zap.Stringer("outcome", r.Outcome),
		zap.Strings("messages", r.Messages),
	)
	if r.Outcome == ecs.OutcomeNone {
		os.Exit(2)
	}
}
