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

// Package haru provides Go bindings for libharu, a C library for
// generating PDF files.
//
// A [Document] owns the native libharu document.  Pages and fonts are
// obtained from a document and remain valid as long as the document is
// open:
//
//	doc, err := haru.New(nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer doc.Close()
//
//	font, err := doc.LoadTTFont(bytes.NewReader(ttfData))
//	...
//	page, err := doc.AddPage()
//	...
//	page.BeginText()
//	page.SetFontAndSize(font, 24)
//	page.MoveTextPos(72, page.Height()-72)
//	page.ShowText("Hello, World!")
//	page.EndText()
//
//	err = doc.Save(out)
//
// Errors reported by libharu are returned as [*Error] values.  The
// [ErrorCode] of an error can be tested using [errors.Is]:
//
//	if errors.Is(err, haru.ErrFileIO) {
//	    ...
//	}
//
// TrueType fonts are read from an [io.ReadSeeker] and documents are
// written to an [io.Writer]; libharu accesses both through callbacks.
//
// This package uses cgo and requires libharu to be installed.
package haru
