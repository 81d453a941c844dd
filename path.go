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

import "seehuhn.de/go/geom/vec"

// MoveTo starts a new subpath at (x, y).
func (p *Page) MoveTo(x, y float64) error {
	if p.doc.closed() {
		return ErrClosed
	}
	return p.doc.checkStatus(C.HPDF_Page_MoveTo(p.ptr, C.HPDF_REAL(x), C.HPDF_REAL(y)))
}

// LineTo appends a straight line segment from the current point to (x, y).
func (p *Page) LineTo(x, y float64) error {
	if p.doc.closed() {
		return ErrClosed
	}
	return p.doc.checkStatus(C.HPDF_Page_LineTo(p.ptr, C.HPDF_REAL(x), C.HPDF_REAL(y)))
}

// Rectangle appends a closed rectangle with lower left corner (x, y).
func (p *Page) Rectangle(x, y, width, height float64) error {
	if p.doc.closed() {
		return ErrClosed
	}
	return p.doc.checkStatus(C.HPDF_Page_Rectangle(p.ptr,
		C.HPDF_REAL(x), C.HPDF_REAL(y), C.HPDF_REAL(width), C.HPDF_REAL(height)))
}

// Circle appends a circle with centre (x, y) and the given radius.
func (p *Page) Circle(x, y, radius float64) error {
	if p.doc.closed() {
		return ErrClosed
	}
	return p.doc.checkStatus(C.HPDF_Page_Circle(p.ptr,
		C.HPDF_REAL(x), C.HPDF_REAL(y), C.HPDF_REAL(radius)))
}

// Arc appends a circular arc with centre (x, y).  Angles are given in
// degrees, measured clockwise from the positive y-axis.
func (p *Page) Arc(x, y, radius, from, to float64) error {
	if p.doc.closed() {
		return ErrClosed
	}
	return p.doc.checkStatus(C.HPDF_Page_Arc(p.ptr,
		C.HPDF_REAL(x), C.HPDF_REAL(y), C.HPDF_REAL(radius),
		C.HPDF_REAL(from), C.HPDF_REAL(to)))
}

// CurveTo appends a cubic Bézier curve with control points (x1, y1) and
// (x2, y2), ending at (x3, y3).
func (p *Page) CurveTo(x1, y1, x2, y2, x3, y3 float64) error {
	if p.doc.closed() {
		return ErrClosed
	}
	return p.doc.checkStatus(C.HPDF_Page_CurveTo(p.ptr,
		C.HPDF_REAL(x1), C.HPDF_REAL(y1), C.HPDF_REAL(x2), C.HPDF_REAL(y2),
		C.HPDF_REAL(x3), C.HPDF_REAL(y3)))
}

// CurveTo2 appends a cubic Bézier curve which uses the current point as
// the first control point.
func (p *Page) CurveTo2(x2, y2, x3, y3 float64) error {
	if p.doc.closed() {
		return ErrClosed
	}
	return p.doc.checkStatus(C.HPDF_Page_CurveTo2(p.ptr,
		C.HPDF_REAL(x2), C.HPDF_REAL(y2), C.HPDF_REAL(x3), C.HPDF_REAL(y3)))
}

// CurveTo3 appends a cubic Bézier curve which uses the end point as the
// second control point.
func (p *Page) CurveTo3(x1, y1, x3, y3 float64) error {
	if p.doc.closed() {
		return ErrClosed
	}
	return p.doc.checkStatus(C.HPDF_Page_CurveTo3(p.ptr,
		C.HPDF_REAL(x1), C.HPDF_REAL(y1), C.HPDF_REAL(x3), C.HPDF_REAL(y3)))
}

// ClosePath closes the current subpath.
func (p *Page) ClosePath() error {
	if p.doc.closed() {
		return ErrClosed
	}
	return p.doc.checkStatus(C.HPDF_Page_ClosePath(p.ptr))
}

// Stroke strokes the current path.
func (p *Page) Stroke() error {
	if p.doc.closed() {
		return ErrClosed
	}
	return p.doc.checkStatus(C.HPDF_Page_Stroke(p.ptr))
}

// ClosePathStroke closes and strokes the current path.
func (p *Page) ClosePathStroke() error {
	if p.doc.closed() {
		return ErrClosed
	}
	return p.doc.checkStatus(C.HPDF_Page_ClosePathStroke(p.ptr))
}

// Fill fills the current path using the nonzero winding number rule.
func (p *Page) Fill() error {
	if p.doc.closed() {
		return ErrClosed
	}
	return p.doc.checkStatus(C.HPDF_Page_Fill(p.ptr))
}

// EOFill fills the current path using the even-odd rule.
func (p *Page) EOFill() error {
	if p.doc.closed() {
		return ErrClosed
	}
	return p.doc.checkStatus(C.HPDF_Page_Eofill(p.ptr))
}

// FillStroke fills and then strokes the current path.
func (p *Page) FillStroke() error {
	if p.doc.closed() {
		return ErrClosed
	}
	return p.doc.checkStatus(C.HPDF_Page_FillStroke(p.ptr))
}

// EOFillStroke fills the current path using the even-odd rule, and then
// strokes it.
func (p *Page) EOFillStroke() error {
	if p.doc.closed() {
		return ErrClosed
	}
	return p.doc.checkStatus(C.HPDF_Page_EofillStroke(p.ptr))
}

// ClosePathFillStroke closes, fills and strokes the current path.
func (p *Page) ClosePathFillStroke() error {
	if p.doc.closed() {
		return ErrClosed
	}
	return p.doc.checkStatus(C.HPDF_Page_ClosePathFillStroke(p.ptr))
}

// ClosePathEOFillStroke closes the current path, fills it using the
// even-odd rule, and strokes it.
func (p *Page) ClosePathEOFillStroke() error {
	if p.doc.closed() {
		return ErrClosed
	}
	return p.doc.checkStatus(C.HPDF_Page_ClosePathEofillStroke(p.ptr))
}

// EndPath ends the current path without painting it.
func (p *Page) EndPath() error {
	if p.doc.closed() {
		return ErrClosed
	}
	return p.doc.checkStatus(C.HPDF_Page_EndPath(p.ptr))
}

// CurrentPoint returns the current point of the path under construction.
// Outside of path construction, the zero vector is returned.
func (p *Page) CurrentPoint() vec.Vec2 {
	if p.doc.closed() {
		return vec.Vec2{}
	}
	defer p.doc.keepAlive()
	pt := C.HPDF_Page_GetCurrentPos(p.ptr)
	return vec.Vec2{X: float64(pt.x), Y: float64(pt.y)}
}
