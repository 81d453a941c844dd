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
	"log/slog"

	"seehuhn.de/go/haru/internal/logging"
)

// SetLogger sets the logger used for debug output.  By default,
// no output is generated.  A nil logger disables logging.
//
// Events are logged at level [slog.LevelDebug]: creation and release of
// native documents, errors reported by libharu, loaded fonts, saved
// documents, and text clipped by [Page.TextRect].
func SetLogger(l *slog.Logger) {
	logging.SetLogger(l)
}
