// seehuhn.de/go/cgm - read and write CGM graphics for NITF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package logging

import (
	"context"
	"log/slog"
	"sync"
)

// Record is a log record captured by a [RecordingHandler].
type Record struct {
	Level   slog.Level
	Message string
	Attrs   map[string]string
}

// RecordingHandler is a [slog.Handler] which keeps all records in memory.
// It is used in tests to check which commands the reader traced.
type RecordingHandler struct {
	level slog.Leveler
	attrs []slog.Attr
	group string
	store *recordStore
}

type recordStore struct {
	mu      sync.Mutex
	records []Record
}

// NewRecordingHandler returns a handler capturing records at or above
// the given level.  A nil level captures everything.
func NewRecordingHandler(level slog.Leveler) *RecordingHandler {
	return &RecordingHandler{
		level: level,
		store: &recordStore{},
	}
}

// Enabled implements [slog.Handler].
func (h *RecordingHandler) Enabled(_ context.Context, level slog.Level) bool {
	if h.level == nil {
		return true
	}
	return level >= h.level.Level()
}

// Handle implements [slog.Handler].
func (h *RecordingHandler) Handle(_ context.Context, r slog.Record) error {
	rec := Record{
		Level:   r.Level,
		Message: r.Message,
		Attrs:   make(map[string]string, len(h.attrs)+r.NumAttrs()),
	}
	for _, a := range h.attrs {
		rec.Attrs[a.Key] = a.Value.String()
	}
	r.Attrs(func(a slog.Attr) bool {
		key := a.Key
		if h.group != "" {
			key = h.group + "." + key
		}
		rec.Attrs[key] = a.Value.String()
		return true
	})

	h.store.mu.Lock()
	h.store.records = append(h.store.records, rec)
	h.store.mu.Unlock()
	return nil
}

// WithAttrs implements [slog.Handler].
func (h *RecordingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := *h
	h2.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	h2.attrs = append(h2.attrs, h.attrs...)
	for _, a := range attrs {
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}
		h2.attrs = append(h2.attrs, a)
	}
	return &h2
}

// WithGroup implements [slog.Handler].
func (h *RecordingHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	if h.group != "" {
		h2.group = h.group + "." + name
	} else {
		h2.group = name
	}
	return &h2
}

// Records returns a copy of all records captured so far.
func (h *RecordingHandler) Records() []Record {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	res := make([]Record, len(h.store.records))
	copy(res, h.store.records)
	return res
}

// Count returns the number of captured records with the given message.
func (h *RecordingHandler) Count(msg string) int {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	n := 0
	for _, r := range h.store.records {
		if r.Message == msg {
			n++
		}
	}
	return n
}

// Reset discards all captured records.
func (h *RecordingHandler) Reset() {
	h.store.mu.Lock()
	h.store.records = nil
	h.store.mu.Unlock()
}
