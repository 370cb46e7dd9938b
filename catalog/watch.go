package catalog

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher rebuilds a Catalog whenever the mapper CSV changes on disk,
// debouncing rapid editor saves. The rebuilt catalog is handed to the
// OnReload callback; the Watcher itself never mutates a live Catalog,
// keeping the load-then-freeze discipline intact.
type Watcher struct {
	mapperPath string
	clipsDir   string
	opts       []Option
	onReload   func(*Catalog)
	debounce   time.Duration
	log        *zap.Logger

	mu      sync.Mutex
	fw      *fsnotify.Watcher
	running bool
}

// NewWatcher watches mapperPath and calls onReload with each successfully
// rebuilt catalog. The load Options are reapplied on every reload.
func NewWatcher(mapperPath, clipsDir string, onReload func(*Catalog), opts ...Option) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		mapperPath: mapperPath,
		clipsDir:   clipsDir,
		opts:       opts,
		onReload:   onReload,
		debounce:   500 * time.Millisecond,
		log:        zap.NewNop(),
		fw:         fw,
	}, nil
}

// SetLogger attaches a logger. Must be called before Start.
func (w *Watcher) SetLogger(log *zap.Logger) { w.log = log }

// SetDebounce overrides the save-coalescing interval. Must be called
// before Start.
func (w *Watcher) SetDebounce(d time.Duration) { w.debounce = d }

// Start begins watching; it is non-blocking and returns once the watch is
// registered. Watching stops when ctx is cancelled or Close is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}
	// watch the directory, not the file: editors replace files on save
	if err := w.fw.Add(filepath.Dir(w.mapperPath)); err != nil {
		return err
	}
	w.running = true
	go w.loop(ctx)
	return nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fw.Close()
}

func (w *Watcher) loop(ctx context.Context) {
	var timer *time.Timer
	reload := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.mapperPath) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				select {
				case reload <- struct{}{}:
				default:
				}
			})
		case <-reload:
			c, err := Load(w.mapperPath, w.clipsDir, w.opts...)
			if err != nil {
				w.log.Warn("mapper reload failed", zap.Error(err))
				continue
			}
			w.log.Info("mapper reloaded", zap.Int("signs", c.Size()))
			if w.onReload != nil {
				w.onReload(c)
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", zap.Error(err))
		}
	}
}
