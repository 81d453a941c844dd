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

/*
#include "haru.h"
*/
import "C"

const (
	encodingUTF8    = "UTF-8"
	encodingWinAnsi = "WinAnsiEncoding"
)

// Font is a font registered with a document.
// Fonts are obtained from [Document.LoadTTFont], [Document.LoadSFNT]
// and [Document.StandardFont].
type Font struct {
	ptr C.HPDF_Font
	doc *docHandle

	name     string
	encoding string
}

// Name returns the PostScript name of the font.
func (f *Font) Name() string {
	return f.name
}

// EncodingName returns the name of the encoding used for text set in
// this font, for example "UTF-8" or "WinAnsiEncoding".
func (f *Font) EncodingName() string {
	return f.encoding
}

func (f *Font) String() string {
	return f.name + " (" + f.encoding + ")"
}
