package scan

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/zerr"

	"github.com/agiangrant/twconv/css"
)

// DefaultDebounce groups bursts of writes (editor saves, git checkouts)
// into one rescan.
const DefaultDebounce = 150 * time.Millisecond

// Watch rescans changed files until ctx is done. Each batch of changes
// produces one call to onChange with only the rules that were not yet in
// injected; batches with no new rules are skipped.
func (s *Scanner) Watch(ctx context.Context, injected *css.Injected, debounce time.Duration, onChange func(Result)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, "failed to create watcher")
	}
	defer w.Close()

	if err := s.addDirs(w); err != nil {
		return err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	pending := make(map[string]struct{})
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			s.handle(w, ev, pending)
			if len(pending) > 0 {
				timer.Reset(debounce)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.log.Error(err, "watch error")

		case <-timer.C:
			files := make([]string, 0, len(pending))
			for f := range pending {
				files = append(files, f)
			}
			clear(pending)
			sort.Strings(files)

			res, err := s.ScanFiles(ctx, files, injected)
			if err != nil {
				s.log.Error(err, "rescan failed")
				continue
			}
			if len(res.Rules) > 0 {
				onChange(res)
			}
		}
	}
}

func (s *Scanner) handle(w *fsnotify.Watcher, ev fsnotify.Event, pending map[string]struct{}) {
	rel, err := filepath.Rel(s.opts.Root, ev.Name)
	if err != nil {
		return
	}
	if ev.Has(fsnotify.Create) {
		// New directories need their own watch.
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() && !s.excluded(rel) {
			if err := w.Add(ev.Name); err != nil {
				s.log.Warn("failed to watch " + ev.Name)
			}
			return
		}
	}
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return
	}
	if s.Match(rel) {
		pending[ev.Name] = struct{}{}
	}
}

func (s *Scanner) addDirs(w *fsnotify.Watcher) error {
	return filepath.WalkDir(s.opts.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if rel, _ := filepath.Rel(s.opts.Root, path); rel != "." && s.excluded(rel) {
			return filepath.SkipDir
		}
		if err := w.Add(path); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to watch"), "path", path)
		}
		return nil
	})
}
