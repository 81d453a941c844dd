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
	"unsafe"

	"seehuhn.de/go/geom/rect"
)

// Page is a page of a document.
//
// Setters forward their arguments to libharu without validation, and
// report any error libharu detects.  Getters return the libharu defaults
// for values which have not been set.
type Page struct {
	ptr C.HPDF_Page
	doc *docHandle
}

// RGB is a colour in the DeviceRGB colour space.  Components range from
// 0 to 1.
type RGB struct {
	R, G, B float64
}

// CMYK is a colour in the DeviceCMYK colour space.  Components range from
// 0 to 1.
type CMYK struct {
	C, M, Y, K float64
}

// maxDashSegments is the capacity of the dash pattern in the libharu
// graphics state.
const maxDashSegments = 8

// Width returns the page width in PDF units.  The default is 595.
func (p *Page) Width() float64 {
	if p.doc.closed() {
		return 0
	}
	defer p.doc.keepAlive()
	return float64(C.HPDF_Page_GetWidth(p.ptr))
}

// SetWidth changes the page width.
func (p *Page) SetWidth(width float64) error {
	if p.doc.closed() {
		return ErrClosed
	}
	return p.doc.checkStatus(C.HPDF_Page_SetWidth(p.ptr, C.HPDF_REAL(width)))
}

// Height returns the page height in PDF units.  The default is 841.
func (p *Page) Height() float64 {
	if p.doc.closed() {
		return 0
	}
	defer p.doc.keepAlive()
	return float64(C.HPDF_Page_GetHeight(p.ptr))
}

// SetHeight changes the page height.
func (p *Page) SetHeight(height float64) error {
	if p.doc.closed() {
		return ErrClosed
	}
	return p.doc.checkStatus(C.HPDF_Page_SetHeight(p.ptr, C.HPDF_REAL(height)))
}

// MediaBox returns the page boundaries.
func (p *Page) MediaBox() rect.Rect {
	return rect.Rect{URx: p.Width(), URy: p.Height()}
}

// LineWidth returns the current line width.  The default is 1.
func (p *Page) LineWidth() float64 {
	if p.doc.closed() {
		return 0
	}
	defer p.doc.keepAlive()
	return float64(C.HPDF_Page_GetLineWidth(p.ptr))
}

// SetLineWidth sets the line width.
func (p *Page) SetLineWidth(width float64) error {
	if p.doc.closed() {
		return ErrClosed
	}
	return p.doc.checkStatus(C.HPDF_Page_SetLineWidth(p.ptr, C.HPDF_REAL(width)))
}

// LineCap returns the current line cap style.  The default is CapButt.
func (p *Page) LineCap() LineCap {
	if p.doc.closed() {
		return CapButt
	}
	defer p.doc.keepAlive()
	return lineCapFromNative(C.HPDF_Page_GetLineCap(p.ptr))
}

// SetLineCap sets the line cap style.
func (p *Page) SetLineCap(lineCap LineCap) error {
	if p.doc.closed() {
		return ErrClosed
	}
	return p.doc.checkStatus(C.HPDF_Page_SetLineCap(p.ptr, lineCap.native()))
}

// LineJoin returns the current line join style.  The default is JoinMiter.
func (p *Page) LineJoin() LineJoin {
	if p.doc.closed() {
		return JoinMiter
	}
	defer p.doc.keepAlive()
	return lineJoinFromNative(C.HPDF_Page_GetLineJoin(p.ptr))
}

// SetLineJoin sets the line join style.
func (p *Page) SetLineJoin(join LineJoin) error {
	if p.doc.closed() {
		return ErrClosed
	}
	return p.doc.checkStatus(C.HPDF_Page_SetLineJoin(p.ptr, join.native()))
}

// MiterLimit returns the current miter limit.  The default is 10.
func (p *Page) MiterLimit() float64 {
	if p.doc.closed() {
		return 0
	}
	defer p.doc.keepAlive()
	return float64(C.HPDF_Page_GetMiterLimit(p.ptr))
}

// SetMiterLimit sets the miter limit.
func (p *Page) SetMiterLimit(limit float64) error {
	if p.doc.closed() {
		return ErrClosed
	}
	return p.doc.checkStatus(C.HPDF_Page_SetMiterLimit(p.ptr, C.HPDF_REAL(limit)))
}

// Dash returns the current dash pattern and phase.  The default is a
// solid line, represented by an empty pattern and phase 0.
func (p *Page) Dash() (pattern []uint16, phase uint) {
	if p.doc.closed() {
		return nil, 0
	}
	defer p.doc.keepAlive()
	mode := C.HPDF_Page_GetDash(p.ptr)
	n := min(int(mode.num_ptn), maxDashSegments)
	for i := range n {
		pattern = append(pattern, uint16(mode.ptn[i]))
	}
	return pattern, uint(mode.phase)
}

// SetDash sets the dash pattern.  The pattern alternates between the
// lengths of dashes and gaps.  It must be empty, have a single element,
// or have an even number of at most 8 elements.  An empty pattern
// selects solid lines.
func (p *Page) SetDash(pattern []uint16, phase uint) error {
	if p.doc.closed() {
		return ErrClosed
	}
	if len(pattern) > maxDashSegments {
		return &Error{Code: ErrPageInvalidParamCount}
	}

	var ptr *C.HPDF_UINT16
	if len(pattern) > 0 {
		ptr = (*C.HPDF_UINT16)(unsafe.Pointer(&pattern[0]))
	}
	return p.doc.checkStatus(C.HPDF_Page_SetDash(p.ptr, ptr,
		C.HPDF_UINT(len(pattern)), C.HPDF_UINT(phase)))
}

// Flatness returns the current flatness tolerance.  The default is 1.
func (p *Page) Flatness() float64 {
	if p.doc.closed() {
		return 0
	}
	defer p.doc.keepAlive()
	return float64(C.HPDF_Page_GetFlat(p.ptr))
}

// SetFlatness sets the flatness tolerance, between 0 and 100.
func (p *Page) SetFlatness(flatness float64) error {
	if p.doc.closed() {
		return ErrClosed
	}
	return p.doc.checkStatus(C.HPDF_Page_SetFlat(p.ptr, C.HPDF_REAL(flatness)))
}

// GSave pushes the current graphics state onto the graphics state stack.
func (p *Page) GSave() error {
	if p.doc.closed() {
		return ErrClosed
	}
	return p.doc.checkStatus(C.HPDF_Page_GSave(p.ptr))
}

// GRestore restores the graphics state saved by the matching GSave.
func (p *Page) GRestore() error {
	if p.doc.closed() {
		return ErrClosed
	}
	return p.doc.checkStatus(C.HPDF_Page_GRestore(p.ptr))
}

// GStateDepth returns the number of graphics states on the stack.
// A fresh page has depth 1.
func (p *Page) GStateDepth() int {
	if p.doc.closed() {
		return 0
	}
	defer p.doc.keepAlive()
	return int(C.HPDF_Page_GetGStateDepth(p.ptr))
}

// GrayStroke returns the gray level used for stroking.
func (p *Page) GrayStroke() float64 {
	if p.doc.closed() {
		return 0
	}
	defer p.doc.keepAlive()
	return float64(C.HPDF_Page_GetGrayStroke(p.ptr))
}

// SetGrayStroke selects DeviceGray for stroking and sets the gray level.
func (p *Page) SetGrayStroke(gray float64) error {
	if p.doc.closed() {
		return ErrClosed
	}
	return p.doc.checkStatus(C.HPDF_Page_SetGrayStroke(p.ptr, C.HPDF_REAL(gray)))
}

// GrayFill returns the gray level used for filling.
func (p *Page) GrayFill() float64 {
	if p.doc.closed() {
		return 0
	}
	defer p.doc.keepAlive()
	return float64(C.HPDF_Page_GetGrayFill(p.ptr))
}

// SetGrayFill selects DeviceGray for filling and sets the gray level.
func (p *Page) SetGrayFill(gray float64) error {
	if p.doc.closed() {
		return ErrClosed
	}
	return p.doc.checkStatus(C.HPDF_Page_SetGrayFill(p.ptr, C.HPDF_REAL(gray)))
}

// RGBStroke returns the RGB colour used for stroking.
func (p *Page) RGBStroke() RGB {
	if p.doc.closed() {
		return RGB{}
	}
	defer p.doc.keepAlive()
	c := C.HPDF_Page_GetRGBStroke(p.ptr)
	return RGB{float64(c.r), float64(c.g), float64(c.b)}
}

// SetRGBStroke selects DeviceRGB for stroking and sets the colour.
func (p *Page) SetRGBStroke(c RGB) error {
	if p.doc.closed() {
		return ErrClosed
	}
	return p.doc.checkStatus(C.HPDF_Page_SetRGBStroke(p.ptr,
		C.HPDF_REAL(c.R), C.HPDF_REAL(c.G), C.HPDF_REAL(c.B)))
}

// RGBFill returns the RGB colour used for filling.
func (p *Page) RGBFill() RGB {
	if p.doc.closed() {
		return RGB{}
	}
	defer p.doc.keepAlive()
	c := C.HPDF_Page_GetRGBFill(p.ptr)
	return RGB{float64(c.r), float64(c.g), float64(c.b)}
}

// SetRGBFill selects DeviceRGB for filling and sets the colour.
func (p *Page) SetRGBFill(c RGB) error {
	if p.doc.closed() {
		return ErrClosed
	}
	return p.doc.checkStatus(C.HPDF_Page_SetRGBFill(p.ptr,
		C.HPDF_REAL(c.R), C.HPDF_REAL(c.G), C.HPDF_REAL(c.B)))
}

// CMYKStroke returns the CMYK colour used for stroking.
func (p *Page) CMYKStroke() CMYK {
	if p.doc.closed() {
		return CMYK{}
	}
	defer p.doc.keepAlive()
	c := C.HPDF_Page_GetCMYKStroke(p.ptr)
	return CMYK{float64(c.c), float64(c.m), float64(c.y), float64(c.k)}
}

// SetCMYKStroke selects DeviceCMYK for stroking and sets the colour.
func (p *Page) SetCMYKStroke(c CMYK) error {
	if p.doc.closed() {
		return ErrClosed
	}
	return p.doc.checkStatus(C.HPDF_Page_SetCMYKStroke(p.ptr,
		C.HPDF_REAL(c.C), C.HPDF_REAL(c.M), C.HPDF_REAL(c.Y), C.HPDF_REAL(c.K)))
}

// CMYKFill returns the CMYK colour used for filling.
func (p *Page) CMYKFill() CMYK {
	if p.doc.closed() {
		return CMYK{}
	}
	defer p.doc.keepAlive()
	c := C.HPDF_Page_GetCMYKFill(p.ptr)
	return CMYK{float64(c.c), float64(c.m), float64(c.y), float64(c.k)}
}

// SetCMYKFill selects DeviceCMYK for filling and sets the colour.
func (p *Page) SetCMYKFill(c CMYK) error {
	if p.doc.closed() {
		return ErrClosed
	}
	return p.doc.checkStatus(C.HPDF_Page_SetCMYKFill(p.ptr,
		C.HPDF_REAL(c.C), C.HPDF_REAL(c.M), C.HPDF_REAL(c.Y), C.HPDF_REAL(c.K)))
}

// StrokeColorSpace returns the colour space used for stroking.
// The default is DeviceGray.
func (p *Page) StrokeColorSpace() (ColorSpace, error) {
	if p.doc.closed() {
		return 0, ErrClosed
	}
	defer p.doc.keepAlive()
	cs, ok := colorSpaceFromNative(C.HPDF_Page_GetStrokingColorSpace(p.ptr))
	if !ok {
		return 0, p.doc.lastError(ErrInvalidPage)
	}
	return cs, nil
}

// FillColorSpace returns the colour space used for filling.
// The default is DeviceGray.
func (p *Page) FillColorSpace() (ColorSpace, error) {
	if p.doc.closed() {
		return 0, ErrClosed
	}
	defer p.doc.keepAlive()
	cs, ok := colorSpaceFromNative(C.HPDF_Page_GetFillingColorSpace(p.ptr))
	if !ok {
		return 0, p.doc.lastError(ErrInvalidPage)
	}
	return cs, nil
}
