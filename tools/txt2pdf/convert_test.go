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

package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/pagetree"

	"seehuhn.de/go/haru"
	"seehuhn.de/go/haru/font/gofont"
)

func lines(n int) string {
	var b strings.Builder
	for i := range n {
		fmt.Fprintf(&b, "line %d\twith a tab\n", i+1)
	}
	return b.String()
}

func numPages(t *testing.T, data []byte) int {
	t.Helper()
	r, err := pdf.NewReader(bytes.NewReader(data), nil)
	if err != nil {
		t.Fatal(err)
	}
	n, err := pagetree.NumPages(r)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestConvert(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Page = PageConfig{Width: 300, Height: 400, Margin: 20}
	// (400 - 2*20) / 12 = 30 lines per page

	cases := []struct {
		numLines int
		numPages int
	}{
		{0, 0},
		{1, 1},
		{30, 1},
		{31, 2},
		{61, 3},
	}
	for _, c := range cases {
		j := &job{cfg: cfg, title: "test"}
		out := &bytes.Buffer{}
		err := j.convert(strings.NewReader(lines(c.numLines)), out)
		if err != nil {
			t.Fatal(err)
		}
		if got := numPages(t, out.Bytes()); got != c.numPages {
			t.Errorf("%d lines: %d pages, want %d", c.numLines, got, c.numPages)
		}
	}
}

func TestConvertPageSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Page = PageConfig{Width: 300, Height: 400, Margin: 20}
	j := &job{cfg: cfg, title: "test"}
	out := &bytes.Buffer{}
	if err := j.convert(strings.NewReader("hello\n"), out); err != nil {
		t.Fatal(err)
	}

	r, err := pdf.NewReader(bytes.NewReader(out.Bytes()), nil)
	if err != nil {
		t.Fatal(err)
	}
	_, dict, err := pagetree.GetPage(r, 0)
	if err != nil {
		t.Fatal(err)
	}
	box, err := pdf.GetRectangle(r, dict["MediaBox"])
	if err != nil {
		t.Fatal(err)
	}
	if box.URx-box.LLx != 300 || box.URy-box.LLy != 400 {
		t.Errorf("unexpected media box %v", box)
	}
}

func TestConvertFontFile(t *testing.T) {
	data, err := gofont.Regular.TTF()
	if err != nil {
		t.Fatal(err)
	}
	fname := filepath.Join(t.TempDir(), "font.ttf")
	if err := os.WriteFile(fname, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	cfg.Font.File = fname
	j := &job{cfg: cfg, title: "test"}
	out := &bytes.Buffer{}
	if err := j.convert(strings.NewReader(lines(3)), out); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(out.Bytes(), []byte("GoRegular")) {
		t.Error("font name not found in output")
	}
}

func TestConvertBadFont(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "font.ttf")
	if err := os.WriteFile(fname, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	cfg.Font.File = fname
	j := &job{cfg: cfg, title: "test"}
	err := j.convert(strings.NewReader("x\n"), &bytes.Buffer{})
	var herr *haru.Error
	if !errors.As(err, &herr) {
		t.Errorf("expected a libharu error, got %v", err)
	}
}

func TestConvertLocked(t *testing.T) {
	j := &job{cfg: DefaultConfig(), title: "test", ownerPassword: "secret"}
	out := &bytes.Buffer{}
	if err := j.convert(strings.NewReader("x\n"), out); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(out.Bytes(), []byte("/Encrypt")) {
		t.Error("output is not encrypted")
	}
}

func TestExpandTabs(t *testing.T) {
	cases := []struct{ in, out string }{
		{"", ""},
		{"abc", "abc"},
		{"\tx", "    x"},
		{"ab\tc", "ab  c"},
		{"abcd\te", "abcd    e"},
		{"ä\tb", "ä   b"},
	}
	for _, c := range cases {
		if got := expandTabs(c.in, 4); got != c.out {
			t.Errorf("expandTabs(%q) = %q, want %q", c.in, got, c.out)
		}
	}
}
