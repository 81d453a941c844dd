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

package buildinfo

import (
	"runtime/debug"

	"seehuhn.de/go/haru"
)

// Short returns a short version string for a CLI tool, e.g.
// "txt2pdf (seehuhn.de/go/haru v0.1.0, libharu 2.4.4)".
func Short(toolName string) string {
	mod := module()
	lib := "libharu " + haru.Version()
	if mod == "" {
		return toolName + " (" + lib + ")"
	}
	return toolName + " (" + mod + ", " + lib + ")"
}

// module describes the main module, or returns the empty string if
// no version information is embedded in the binary.
func module() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}

	version := info.Main.Version
	if version != "" && version != "(devel)" {
		return info.Main.Path + " " + version
	}

	// fall back to VCS revision
	var rev string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if rev == "" {
		return ""
	}
	if len(rev) > 8 {
		rev = rev[:8]
	}
	if dirty {
		rev += "+dirty"
	}
	return info.Main.Path + " " + rev
}
