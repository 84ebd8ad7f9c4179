package worker

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"
)

// settle is how long a file must stay quiet before it is converted. Editors
// often write a file in several steps.
const settle = 250 * time.Millisecond

// WatchOptions configures Watch.
type WatchOptions struct {
	Options
	Dir string
	// Ext selects the source files to convert, e.g. ".txt".
	Ext string
}

// Watch converts files with the source extension in Dir whenever they are
// created or written, until ctx is cancelled. Conversion failures are logged
// and do not stop the watch.
func Watch(ctx context.Context, wo WatchOptions) error {
	d, ok := DirectionFor("x" + wo.Ext)
	if !ok {
		return fmt.Errorf("unsupported source extension %q", wo.Ext)
	}
	wo.Direction = d
	wo.OutputPath = ""

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(wo.Dir); err != nil {
		return fmt.Errorf("watch %s: %w", wo.Dir, err)
	}

	perSec := 2.0
	if wo.Config != nil && wo.Config.WatchRate > 0 {
		perSec = wo.Config.WatchRate
	}
	limiter := rate.NewLimiter(rate.Limit(perSec), 1)

	slog.Info("watching directory", "dir", wo.Dir, "ext", wo.Ext, "rate_per_sec", perSec)

	pending := make(map[string]struct{})
	var flush <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
				continue
			}
			if !matchesExt(ev.Name, wo.Ext) {
				continue
			}
			pending[ev.Name] = struct{}{}
			flush = time.After(settle)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watcher error", "err", err)

		case <-flush:
			flush = nil
			for _, path := range drain(pending) {
				if err := limiter.Wait(ctx); err != nil {
					return nil
				}
				o := wo.Options
				o.InputPath = path
				if err := Run(ctx, o); err != nil {
					slog.Error("conversion failed", "file", filepath.Base(path), "err", err)
				}
			}
		}
	}
}

func matchesExt(path, ext string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return false
	}
	return strings.EqualFold(filepath.Ext(base), ext)
}

// drain empties the set and returns its members in a stable order.
func drain(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for p := range set {
		out = append(out, p)
		delete(set, p)
	}
	sort.Strings(out)
	return out
}
