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

package haru

import (
	"errors"
	"strings"
	"testing"
)

func TestPreparePassword(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{"secret", "secret"},
		{"I\u00adX", "IX"},        // soft hyphen is mapped to nothing
		{"\u00aa", "a"},           // compatibility mapping
		{"cafe\u0301", "caf\xe9"}, // composed, then Windows-1252
		{"a\u00a0b", "a b"},       // non-ASCII space
		{strings.Repeat("x", 40), strings.Repeat("x", 32)},
	}
	for _, c := range cases {
		got, err := preparePassword(c.in)
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
			continue
		}
		if string(got) != c.out {
			t.Errorf("%q: got %q, want %q", c.in, got, c.out)
		}
	}

	for _, in := range []string{"a\u0007b", "日本"} {
		_, err := preparePassword(in)
		if !errors.Is(err, ErrEncryptInvalidPassword) {
			t.Errorf("%q: unexpected error %v", in, err)
		}
	}
}
