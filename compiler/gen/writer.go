package gen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Writer persists generated units to disk with parallel writes.
type Writer struct {
	workers int
}

// NewWriter creates a writer with one worker per CPU.
func NewWriter() *Writer {
	return &Writer{workers: runtime.GOMAXPROCS(0)}
}

// WithWorkers sets the number of parallel workers.
func (w *Writer) WithWorkers(n int) *Writer {
	if n > 0 {
		w.workers = n
	}
	return w
}

// Write persists every unit. Unit names are write-once keys: two units
// sharing a name mean the emitter was fed colliding factory symbols, and
// the whole write is rejected before anything touches disk.
func (w *Writer) Write(ctx context.Context, units []*Unit) error {
	seen := make(map[string]*Unit, len(units))
	for _, u := range units {
		prev, ok := seen[u.Name]
		if ok {
			return fmt.Errorf("%w: duplicate generated unit %q (%s and %s)",
				ErrGenerationFailed, u.Name, filepath.Join(prev.Dir, prev.File), filepath.Join(u.Dir, u.File))
		}
		seen[u.Name] = u
	}

	eg, _ := errgroup.WithContext(ctx)
	eg.SetLimit(w.workers)
	for _, u := range units {
		u := u
		eg.Go(func() error {
			if u.Dir != "" {
				if err := os.MkdirAll(u.Dir, 0o755); err != nil {
					return fmt.Errorf("create unit directory: %w", err)
				}
			}
			if err := os.WriteFile(filepath.Join(u.Dir, u.File), u.Content, 0o644); err != nil {
				return fmt.Errorf("write unit %q: %w", u.Name, err)
			}
			return nil
		})
	}
	return eg.Wait()
}
