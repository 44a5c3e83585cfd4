package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a path must stay quiet before its change is
// reported. Editors emit a burst of writes on save.
const DefaultDebounce = 100 * time.Millisecond

type ChangeKind int

const (
	SpecChanged ChangeKind = iota
	ScriptChanged
)

type Change struct {
	Path string
	Kind ChangeKind
}

// Watcher reports edits to world specs and spawn scripts.
type Watcher struct {
	watcher  *fsnotify.Watcher
	Changes  chan Change
	Errors   chan error
	debounce time.Duration
	closeCh  chan struct{}
	done     chan struct{}
	once     sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	return newWatcher(DefaultDebounce, dirs...)
}

func newWatcher(debounce time.Duration, dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher:  w,
		Changes:  make(chan Change, 16),
		Errors:   make(chan error, 1),
		debounce: debounce,
		closeCh:  make(chan struct{}),
		done:     make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Changes)
		close(w.Errors)
	})
	return err
}

type pendingChange struct {
	timer *time.Timer
	gen   int
}

type firedChange struct {
	change Change
	gen    int
}

// run reports each path once its events stop for the debounce window, so
// the last write of a burst is always the one reloaded.
func (w *Watcher) run() {
	defer close(w.done)
	pending := make(map[string]*pendingChange)
	fired := make(chan firedChange)
	defer func() {
		for _, p := range pending {
			p.timer.Stop()
		}
	}()

	schedule := func(change Change, gen int) *time.Timer {
		return time.AfterFunc(w.debounce, func() {
			select {
			case fired <- firedChange{change: change, gen: gen}:
			case <-w.closeCh:
			}
		})
	}

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			kind, ok := classify(event.Name)
			if !ok {
				continue
			}
			change := Change{Path: event.Name, Kind: kind}
			if p, seen := pending[event.Name]; seen {
				p.timer.Stop()
				p.gen++
				p.timer = schedule(change, p.gen)
				continue
			}
			pending[event.Name] = &pendingChange{timer: schedule(change, 0)}
		case f := <-fired:
			p, seen := pending[f.change.Path]
			if !seen || p.gen != f.gen {
				continue
			}
			delete(pending, f.change.Path)
			select {
			case w.Changes <- f.change:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func classify(path string) (ChangeKind, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return SpecChanged, true
	case ".tengo":
		return ScriptChanged, true
	}
	return 0, false
}
