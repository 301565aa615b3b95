package relay

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/zoobzio/clockz"
)

// DefaultDebounce is the default debounce duration for file change triggers.
const DefaultDebounce = 100 * time.Millisecond

// FileSource fires the trigger when a file changes on disk. It watches the
// file's parent directory rather than the file itself, because editors and
// config writers typically replace files by writing a temp file and renaming
// it over the target, which drops watches held on the old inode.
//
// Bursts of filesystem events are coalesced: the trigger fires once per
// quiet debounce window.
type FileSource struct {
	path     string
	debounce time.Duration
	clock    clockz.Clock
}

// NewFileSource creates a FileSource for the given file path.
func NewFileSource(path string) *FileSource {
	return &FileSource{
		path:     path,
		debounce: DefaultDebounce,
		clock:    clockz.RealClock,
	}
}

// Debounce sets the debounce duration for change coalescing.
// Default: 100ms.
func (s *FileSource) Debounce(d time.Duration) *FileSource {
	s.debounce = d
	return s
}

// Clock sets a custom clock for time operations.
// Use this with clockz.FakeClock for deterministic debounce testing.
func (s *FileSource) Clock(clock clockz.Clock) *FileSource {
	s.clock = clock
	return s
}

// Watch fires the trigger after each debounced write or create of the file.
// Filesystem watch errors are reported and watching continues. Watch blocks
// until the context is canceled.
func (s *FileSource) Watch(ctx context.Context, trigger func(), report func(error)) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		report(fmt.Errorf("failed to create fsnotify watcher: %w", err))
		return
	}
	defer watcher.Close()

	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		report(fmt.Errorf("failed to watch directory %s: %w", dir, err))
		return
	}

	base := filepath.Base(s.path)

	var timer clockz.Timer
	for {
		var timerC <-chan time.Time
		if timer != nil {
			timerC = timer.C()
		}

		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			// Only fire on write or create events
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			// Reset or start debounce timer
			if timer == nil {
				timer = s.clock.NewTimer(s.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C():
					default:
					}
				}
				timer.Reset(s.debounce)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			report(err)

		case <-timerC:
			trigger()
		}
	}
}
