package session

import (
	"fmt"

	"github.com/milk9111/danmaku/prefabs"
	"go.uber.org/zap"
)

// WatchConfig restarts the run whenever path is modified. PollReload must be
// called once per frame to apply changes.
func (s *Session) WatchConfig(path string) error {
	w, err := prefabs.NewWatcher(path)
	if err != nil {
		return fmt.Errorf("session: watch %s: %w", path, err)
	}
	if s.watcher != nil {
		_ = s.watcher.Close()
	}
	s.watcher = w
	s.watchPath = path
	s.lastMod, _ = prefabs.ModTime(path)
	return nil
}

// PollReload drains pending watcher events without blocking and reports
// whether a restart happened. Events that do not change the file's
// modification time are ignored.
func (s *Session) PollReload() bool {
	if s.watcher == nil {
		return false
	}

	changed := false
	for {
		select {
		case <-s.watcher.Events:
			mod, ok := prefabs.ModTime(s.watchPath)
			if ok && mod.After(s.lastMod) {
				s.lastMod = mod
				changed = true
			}
		case err := <-s.watcher.Errors:
			s.log.Warn("config watcher", zap.Error(err))
		default:
			if changed {
				s.log.Info("config changed, restarting", zap.String("path", s.watchPath))
				s.Restart()
			}
			return changed
		}
	}
}

func (s *Session) Close() error {
	if s.watcher == nil {
		return nil
	}
	err := s.watcher.Close()
	s.watcher = nil
	return err
}
