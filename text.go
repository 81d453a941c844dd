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

import (
	"errors"
	"strings"
	"unsafe"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/haru/internal/logging"
)

// Font returns the current font, or nil if no font has been set.
func (p *Page) Font() *Font {
	if p.doc.closed() {
		return nil
	}
	defer p.doc.keepAlive()
	return p.doc.font(C.HPDF_Page_GetCurrentFont(p.ptr))
}

// FontSize returns the current font size, or 0 if no font has been set.
func (p *Page) FontSize() float64 {
	if p.doc.closed() {
		return 0
	}
	defer p.doc.keepAlive()
	return float64(C.HPDF_Page_GetCurrentFontSize(p.ptr))
}

// SetFontAndSize selects the font and font size used for text.
func (p *Page) SetFontAndSize(font *Font, size float64) error {
	if p.doc.closed() {
		return ErrClosed
	}
	if font == nil || font.doc != p.doc {
		return &Error{Code: ErrPageInvalidFont}
	}
	return p.doc.checkStatus(C.HPDF_Page_SetFontAndSize(p.ptr, font.ptr, C.HPDF_REAL(size)))
}

// TextLeading returns the distance between the baselines of consecutive
// lines of text.
func (p *Page) TextLeading() float64 {
	if p.doc.closed() {
		return 0
	}
	defer p.doc.keepAlive()
	return float64(C.HPDF_Page_GetTextLeading(p.ptr))
}

// SetTextLeading sets the distance between the baselines of consecutive
// lines of text.
func (p *Page) SetTextLeading(leading float64) error {
	if p.doc.closed() {
		return ErrClosed
	}
	return p.doc.checkStatus(C.HPDF_Page_SetTextLeading(p.ptr, C.HPDF_REAL(leading)))
}

// BeginText starts a text object.  Text can only be shown between
// BeginText and EndText.
func (p *Page) BeginText() error {
	if p.doc.closed() {
		return ErrClosed
	}
	return p.doc.checkStatus(C.HPDF_Page_BeginText(p.ptr))
}

// EndText ends the current text object.
func (p *Page) EndText() error {
	if p.doc.closed() {
		return ErrClosed
	}
	return p.doc.checkStatus(C.HPDF_Page_EndText(p.ptr))
}

// TextPosition returns the start of the current line of text.
func (p *Page) TextPosition() vec.Vec2 {
	if p.doc.closed() {
		return vec.Vec2{}
	}
	defer p.doc.keepAlive()
	pt := C.HPDF_Page_GetCurrentTextPos(p.ptr)
	return vec.Vec2{X: float64(pt.x), Y: float64(pt.y)}
}

// MoveTextPos moves the start of the current line by (dx, dy).
func (p *Page) MoveTextPos(dx, dy float64) error {
	if p.doc.closed() {
		return ErrClosed
	}
	return p.doc.checkStatus(C.HPDF_Page_MoveTextPos(p.ptr, C.HPDF_REAL(dx), C.HPDF_REAL(dy)))
}

// MoveToNextLine moves to the start of the next line, using the current
// text leading.
func (p *Page) MoveToNextLine() error {
	if p.doc.closed() {
		return ErrClosed
	}
	return p.doc.checkStatus(C.HPDF_Page_MoveToNextLine(p.ptr))
}

// ShowText shows text at the current text position.
func (p *Page) ShowText(text string) error {
	if p.doc.closed() {
		return ErrClosed
	}
	cText, err := p.encodeText(text)
	if err != nil {
		return err
	}
	defer C.free(unsafe.Pointer(cText))
	return p.doc.checkStatus(C.HPDF_Page_ShowText(p.ptr, cText))
}

// TextOut shows text with its start at (x, y).
func (p *Page) TextOut(x, y float64, text string) error {
	if p.doc.closed() {
		return ErrClosed
	}
	cText, err := p.encodeText(text)
	if err != nil {
		return err
	}
	defer C.free(unsafe.Pointer(cText))
	return p.doc.checkStatus(C.HPDF_Page_TextOut(p.ptr, C.HPDF_REAL(x), C.HPDF_REAL(y), cText))
}

// TextRect lays out text inside the rectangle r, breaking lines as
// needed.  Text which does not fit into r is silently dropped.
// An undefined alignment is reported as ErrInvalidParameter.
func (p *Page) TextRect(r rect.Rect, text string, align TextAlignment) error {
	if p.doc.closed() {
		return ErrClosed
	}
	cAlign, ok := align.native()
	if !ok {
		return &Error{Code: ErrInvalidParameter}
	}
	cText, err := p.encodeText(text)
	if err != nil {
		return err
	}
	defer C.free(unsafe.Pointer(cText))

	err = p.doc.checkStatus(C.HPDF_Page_TextRect(p.ptr,
		C.HPDF_REAL(r.LLx), C.HPDF_REAL(r.URy), C.HPDF_REAL(r.URx), C.HPDF_REAL(r.LLy),
		cText, cAlign, nil))
	if errors.Is(err, ErrPageInsufficientSpace) {
		logging.Logger().Debug("text clipped", "rect", r)
		return nil
	}
	return err
}

// TextWidth returns the width of text when set in the current font and
// font size.
func (p *Page) TextWidth(text string) (float64, error) {
	if p.doc.closed() {
		return 0, ErrClosed
	}
	defer p.doc.keepAlive()
	cText, err := p.encodeText(text)
	if err != nil {
		return 0, err
	}
	defer C.free(unsafe.Pointer(cText))

	w := C.HPDF_Page_TextWidth(p.ptr, cText)
	if err := p.doc.checkStatus(C.HPDF_GetError(p.doc.ptr)); err != nil {
		return 0, err
	}
	return float64(w), nil
}

// encodeText converts text to the encoding of the current font.
// The result must be freed by the caller.
func (p *Page) encodeText(text string) (*C.char, error) {
	if strings.IndexByte(text, 0) >= 0 {
		return nil, &Error{Code: ErrStringWithNUL}
	}

	var encoding string
	if f := p.Font(); f != nil {
		encoding = f.encoding
	}
	switch encoding {
	case encodingUTF8:
		text = norm.NFC.String(text)
	case encodingWinAnsi:
		text = winAnsi(text)
	}
	return C.CString(text), nil
}

// winAnsi converts text to WinAnsiEncoding.  Characters which cannot be
// represented are replaced by "?".
func winAnsi(text string) string {
	buf := make([]byte, 0, len(text))
	for _, r := range text {
		c, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			c = '?'
		}
		buf = append(buf, c)
	}
	return string(buf)
}
