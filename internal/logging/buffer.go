// seehuhn.de/go/haru - Go bindings for the libharu PDF library
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
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
)

// Buffer is a [slog.Handler] which keeps log records in memory.
// Each record is stored as one line of the form
//
//	LEVEL message key=value ...
//
// Buffer is used by tests to check which events were logged.
type Buffer struct {
	level slog.Leveler
	attrs []slog.Attr

	mu  *sync.Mutex
	buf *bytes.Buffer
}

// NewBuffer returns a new, empty Buffer.  Records below the given level are
// dropped.  If level is nil, all records are kept.
func NewBuffer(level slog.Leveler) *Buffer {
	return &Buffer{
		level: level,
		mu:    &sync.Mutex{},
		buf:   &bytes.Buffer{},
	}
}

// Enabled implements the [slog.Handler] interface.
func (b *Buffer) Enabled(_ context.Context, level slog.Level) bool {
	if b.level == nil {
		return true
	}
	return level >= b.level.Level()
}

// Handle implements the [slog.Handler] interface.
func (b *Buffer) Handle(_ context.Context, r slog.Record) error {
	var line strings.Builder
	line.WriteString(r.Level.String())
	line.WriteByte(' ')
	line.WriteString(r.Message)
	for _, a := range b.attrs {
		line.WriteByte(' ')
		line.WriteString(a.String())
	}
	r.Attrs(func(a slog.Attr) bool {
		line.WriteByte(' ')
		line.WriteString(a.String())
		return true
	})
	line.WriteByte('\n')

	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf.WriteString(line.String())
	return nil
}

// WithAttrs implements the [slog.Handler] interface.
func (b *Buffer) WithAttrs(attrs []slog.Attr) slog.Handler {
	all := make([]slog.Attr, 0, len(b.attrs)+len(attrs))
	all = append(all, b.attrs...)
	all = append(all, attrs...)
	return &Buffer{level: b.level, attrs: all, mu: b.mu, buf: b.buf}
}

// WithGroup implements the [slog.Handler] interface.
// Groups are flattened; the group name is ignored.
func (b *Buffer) WithGroup(string) slog.Handler {
	return b
}

// String returns all records logged so far.
func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// Contains reports whether any logged record contains s.
func (b *Buffer) Contains(s string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return bytes.Contains(b.buf.Bytes(), []byte(s))
}

// Reset discards all records logged so far.
func (b *Buffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf.Reset()
}
