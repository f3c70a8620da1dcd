package testutil

import (
	"context"
	"log/slog"
	"sync"
)

// LogEntry is one record captured by CaptureHandler
type LogEntry struct {
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

// CaptureHandler records every log entry in memory
type CaptureHandler struct {
	mu      *sync.Mutex
	entries *[]LogEntry
	attrs   []slog.Attr
}

// NewCaptureLogger returns a debug-level logger and the handler behind it
func NewCaptureLogger() (*slog.Logger, *CaptureHandler) {
	h := &CaptureHandler{mu: &sync.Mutex{}, entries: &[]LogEntry{}}
	return slog.New(h), h
}

func (h *CaptureHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *CaptureHandler) Handle(_ context.Context, r slog.Record) error {
	attrs := make(map[string]any, len(h.attrs)+r.NumAttrs())
	for _, a := range h.attrs {
		attrs[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})

	h.mu.Lock()
	*h.entries = append(*h.entries, LogEntry{Level: r.Level, Message: r.Message, Attrs: attrs})
	h.mu.Unlock()
	return nil
}

func (h *CaptureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &CaptureHandler{mu: h.mu, entries: h.entries, attrs: merged}
}

// WithGroup is a no-op; groups are flattened
func (h *CaptureHandler) WithGroup(string) slog.Handler { return h }

// Entries returns a copy of everything logged so far
func (h *CaptureHandler) Entries() []LogEntry {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]LogEntry, len(*h.entries))
	copy(out, *h.entries)
	return out
}

// Find returns the first entry with the given message
func (h *CaptureHandler) Find(message string) (LogEntry, bool) {
	for _, e := range h.Entries() {
		if e.Message == message {
			return e, true
		}
	}
	return LogEntry{}, false
}

// Has reports whether message was logged
func (h *CaptureHandler) Has(message string) bool {
	_, ok := h.Find(message)
	return ok
}
