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
	"log/slog"
	"strings"
	"testing"
)

func TestDefaultLoggerDiscards(t *testing.T) {
	SetLogger(nil)
	l := Logger()
	if l == nil {
		t.Fatal("Logger returned nil")
	}
	if l.Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger should discard all records")
	}
}

func TestSetLogger(t *testing.T) {
	buf := NewBuffer(nil)
	SetLogger(slog.New(buf))
	defer SetLogger(nil)

	Logger().Debug("document created", "pages", 3)
	if !buf.Contains("DEBUG document created pages=3") {
		t.Errorf("unexpected log output %q", buf.String())
	}
}

func TestBufferLevel(t *testing.T) {
	buf := NewBuffer(slog.LevelInfo)
	l := slog.New(buf)

	l.Debug("hidden")
	l.Info("shown")
	l.Warn("also shown", "code", "0x1016")

	got := buf.String()
	if strings.Contains(got, "hidden") {
		t.Errorf("debug record was not filtered: %q", got)
	}
	want := "INFO shown\nWARN also shown code=0x1016\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	buf.Reset()
	if buf.String() != "" {
		t.Error("Reset did not clear the buffer")
	}
}

func TestBufferWithAttrs(t *testing.T) {
	buf := NewBuffer(nil)
	l := slog.New(buf).With("doc", 1)

	l.Info("saved", "bytes", 1024)
	if got, want := buf.String(), "INFO saved doc=1 bytes=1024\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
