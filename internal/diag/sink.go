// Package diag provides pluggable sinks for the loop's periodic diagnostic line.
// Sinks register themselves by name, allowing the CLI to select one without
// hardcoded dependencies.
package diag

import (
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
)

// Sink receives one line per diagnostic tick.
type Sink func(line string)

// Console writes each line to w followed by a newline.
func Console(w io.Writer) Sink {
	return func(line string) {
		//nolint:errcheck // Best-effort diagnostics
		fmt.Fprintln(w, line)
	}
}

// Logger emits each line as an info record on l.
func Logger(l *log.Logger) Sink {
	return func(line string) {
		l.Info("diagnostic", "stats", line)
	}
}

// Discard drops every line.
func Discard(string) {}

// Tee fans a line out to every non-nil sink.
func Tee(sinks ...Sink) Sink {
	return func(line string) {
		for _, s := range sinks {
			if s != nil {
				s(line)
			}
		}
	}
}

// FormatFrames renders the frames-rendered counter as a diagnostic line.
func FormatFrames(frames int) string {
	return fmt.Sprintf("FPS: %d", frames)
}

// Options carries the collaborators a sink factory may need.
type Options struct {
	Out    io.Writer   // Console destination, defaults to stdout
	Logger *log.Logger // Logger destination, defaults to a stderr logger
}

// Factory creates a sink from options.
type Factory func(opts Options) Sink

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a sink factory to the registry.
// Panics if a sink with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("diag: sink %q already registered", name))
	}
	factories[name] = f
}

// List returns the names of all registered sinks, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Exists checks if a sink with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}

// Create instantiates a sink by name.
// Returns an error if the name is not registered.
func Create(name string, opts Options) (Sink, error) {
	mu.RLock()
	f, ok := factories[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("diag: unknown sink %q", name)
	}
	return f(opts), nil
}

func init() {
	Register("console", func(opts Options) Sink {
		if opts.Out == nil {
			return Console(os.Stdout)
		}
		return Console(opts.Out)
	})
	Register("log", func(opts Options) Sink {
		if opts.Logger == nil {
			return Logger(log.NewWithOptions(os.Stderr, log.Options{Prefix: "keyloop"}))
		}
		return Logger(opts.Logger)
	})
	Register("discard", func(Options) Sink {
		return Discard
	})
}
