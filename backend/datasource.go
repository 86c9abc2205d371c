package backend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.sr.ht/~whereswaldon/simchart/loader"
)

// Results are the similarity scores read from one version of a results file.
type Results struct {
	Source   string
	Columns  []string
	Values   []float64
	LoadedAt time.Time
	Err      error
}

// ReadResults parses a results CSV from r. Parse failures are reported in
// the Err field.
func ReadResults(source string, r io.Reader) Results {
	columns, values, err := loader.ReadCSV(r)
	if err != nil {
		err = fmt.Errorf("failed reading %s: %w", source, err)
	}
	return Results{
		Source:   source,
		Columns:  columns,
		Values:   values,
		LoadedAt: time.Now(),
		Err:      err,
	}
}

// ReadFile reads the results file at path.
func ReadFile(path string) Results {
	f, err := os.Open(path)
	if err != nil {
		return Results{Source: path, LoadedAt: time.Now(), Err: fmt.Errorf("failed opening results: %w", err)}
	}
	defer f.Close()
	return ReadResults(path, f)
}

// Datasource loads results files and reloads them when they are rewritten.
type Datasource struct {
	newWatcher func() (*fsnotify.Watcher, error)
}

func NewDatasource() *Datasource {
	return &Datasource{newWatcher: fsnotify.NewWatcher}
}

// Watch returns a provider emitting the contents of path once immediately
// and again after every write to it. The provider's channel closes when its
// context is cancelled.
func (d *Datasource) Watch(path string) func(ctx context.Context) <-chan Results {
	return func(ctx context.Context) <-chan Results {
		out := make(chan Results, 1)
		go func() {
			defer close(out)
			watcher, err := d.newWatcher()
			if err != nil {
				log.Printf("failed creating file watcher: %v", err)
				out <- ReadFile(path)
				return
			}
			defer watcher.Close()
			// Watch the directory so that editors replacing the file are
			// noticed too.
			if err := watcher.Add(filepath.Dir(path)); err != nil {
				log.Printf("failed watching %s: %v", path, err)
			}
			out <- ReadFile(path)
			target := filepath.Clean(path)
			for {
				select {
				case <-ctx.Done():
					return
				case ev, ok := <-watcher.Events:
					if !ok {
						return
					}
					if filepath.Clean(ev.Name) != target || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
						continue
					}
					select {
					case out <- ReadFile(path):
					case <-ctx.Done():
						return
					}
				case err, ok := <-watcher.Errors:
					if !ok {
						return
					}
					log.Printf("file watcher error: %v", err)
				}
			}
		}()
		return out
	}
}

// Once returns a provider emitting the results read from rc, which it
// closes afterwards.
func (d *Datasource) Once(source string, rc io.ReadCloser) func(ctx context.Context) <-chan Results {
	return func(ctx context.Context) <-chan Results {
		out := make(chan Results, 1)
		go func() {
			defer close(out)
			res := ReadResults(source, rc)
			if err := rc.Close(); err != nil {
				res.Err = errors.Join(res.Err, err)
			}
			select {
			case out <- res:
			case <-ctx.Done():
			}
		}()
		return out
	}
}
