// Package applog wraps log/slog with a handler that mirrors every
// record to an optional log file while always surfacing warnings and
// above on stderr, following the same wrapping convention the rest of
// this codebase's lineage uses for structured logging.
package applog

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// handler writes records as "time level message attr=val ...", mirrored
// to both the configured file (if any) and stderr for anything at
// LevelWarn or above.
type handler struct {
	out *os.File
	mu  *sync.Mutex
}

// NewHandler builds an slog.Handler that writes to file (which may be
// nil to disable file logging) and always surfaces LevelWarn+ on
// stderr.
func NewHandler(file *os.File) slog.Handler {
	return &handler{out: file, mu: &sync.Mutex{}}
}

func (h *handler) Enabled(_ context.Context, _ slog.Level) bool { return true }

func (h *handler) WithAttrs(_ []slog.Attr) slog.Handler { return h }

func (h *handler) WithGroup(_ string) slog.Handler { return h }

func (h *handler) Handle(_ context.Context, r slog.Record) error {
	parts := []string{r.Time.Format("15:04:05.000"), r.Level.String() + ":", r.Message}
	r.Attrs(func(a slog.Attr) bool {
		parts = append(parts, a.Key+"="+a.Value.String())
		return true
	})
	line := strings.Join(parts, " ") + "\n"

	h.mu.Lock()
	defer h.mu.Unlock()

	var err error
	if h.out != nil {
		_, err = h.out.WriteString(line)
	}
	if r.Level >= slog.LevelWarn {
		_, werr := io.WriteString(os.Stderr, line)
		if err == nil {
			err = werr
		}
	}
	return err
}

// New builds a *slog.Logger writing through NewHandler. file may be nil.
func New(file *os.File) *slog.Logger {
	return slog.New(NewHandler(file))
}
