// monitor.go
package file

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"FlightDelays/src/utils"
)

// Monitor watches the dataset files and reports fresh writes so the caller
// can re-run the whole batch. Mod times are tracked per file because editors
// and downloads fire several Write events for one save.
type Monitor struct {
	paths   []string
	watcher *fsnotify.Watcher
	lastMod map[string]time.Time
	mu      sync.Mutex
}

func NewMonitor(paths []string) (*Monitor, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs := make([]string, 0, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		a, err := filepath.Abs(p)
		if err != nil {
			watcher.Close()
			return nil, err
		}
		abs = append(abs, a)
		dirs[filepath.Dir(a)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, err
		}
	}

	return &Monitor{
		paths:   abs,
		watcher: watcher,
		lastMod: make(map[string]time.Time),
	}, nil
}

func (m *Monitor) Close() error {
	return m.watcher.Close()
}

// Watch blocks until ctx is done, invoking handler once per fresh write to
// one of the watched dataset files.
func (m *Monitor) Watch(ctx context.Context, handler func(string)) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-m.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Write != fsnotify.Write {
				continue
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || !utils.Contains(m.paths, name) {
				continue
			}
			info, err := os.Stat(name)
			if err != nil {
				continue
			}
			m.mu.Lock()
			fresh := info.ModTime().After(m.lastMod[name])
			if fresh {
				m.lastMod[name] = info.ModTime()
			}
			m.mu.Unlock()
			if fresh {
				handler(name)
			}
		case err, ok := <-m.watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}
