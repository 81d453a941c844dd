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

package haru_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/haru"
	"seehuhn.de/go/haru/font/gofont"
)

func newPage(t *testing.T) (*haru.Document, *haru.Page) {
	t.Helper()
	doc, err := haru.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { doc.Close() })
	page, err := doc.AddPage()
	if err != nil {
		t.Fatal(err)
	}
	return doc, page
}

func TestPageDefaults(t *testing.T) {
	_, page := newPage(t)

	if page.Width() != 595 || page.Height() != 841 {
		t.Errorf("page size %gx%g", page.Width(), page.Height())
	}
	if d := cmp.Diff(rect.Rect{URx: 595, URy: 841}, page.MediaBox()); d != "" {
		t.Errorf("media box (-want +got):\n%s", d)
	}
	if page.LineWidth() != 1 {
		t.Errorf("line width %g", page.LineWidth())
	}
	if page.LineCap() != haru.CapButt {
		t.Errorf("line cap %d", page.LineCap())
	}
	if page.LineJoin() != haru.JoinMiter {
		t.Errorf("line join %d", page.LineJoin())
	}
	if page.MiterLimit() != 10 {
		t.Errorf("miter limit %g", page.MiterLimit())
	}
	pattern, phase := page.Dash()
	if len(pattern) != 0 || phase != 0 {
		t.Errorf("dash %v %d", pattern, phase)
	}
	if page.GrayStroke() != 0 || page.GrayFill() != 0 {
		t.Error("gray levels are not 0")
	}
	if page.RGBStroke() != (haru.RGB{}) || page.RGBFill() != (haru.RGB{}) {
		t.Error("RGB colours are not 0")
	}
	if page.CMYKStroke() != (haru.CMYK{}) || page.CMYKFill() != (haru.CMYK{}) {
		t.Error("CMYK colours are not 0")
	}
	for _, get := range []func() (haru.ColorSpace, error){page.StrokeColorSpace, page.FillColorSpace} {
		cs, err := get()
		if err != nil {
			t.Fatal(err)
		}
		if cs != haru.DeviceGray {
			t.Errorf("colour space %s", cs)
		}
	}
	if page.Font() != nil || page.FontSize() != 0 {
		t.Error("page has a font")
	}
	if page.GStateDepth() != 1 {
		t.Errorf("graphics state depth %d", page.GStateDepth())
	}
}

func TestPageSize(t *testing.T) {
	_, page := newPage(t)

	if err := page.SetWidth(200); err != nil {
		t.Fatal(err)
	}
	if err := page.SetHeight(300); err != nil {
		t.Fatal(err)
	}
	if page.Width() != 200 || page.Height() != 300 {
		t.Errorf("page size %gx%g", page.Width(), page.Height())
	}

	// libharu limits page sizes to the range 3 to 14400
	err := page.SetWidth(1)
	if !errors.Is(err, haru.ErrPageInvalidSize) {
		t.Errorf("SetWidth(1): %v", err)
	}
	if page.Width() != 200 {
		t.Errorf("invalid width was applied: %g", page.Width())
	}
}

func TestLineStyle(t *testing.T) {
	_, page := newPage(t)

	if err := page.SetLineWidth(2.5); err != nil {
		t.Fatal(err)
	}
	if err := page.SetLineCap(haru.CapRound); err != nil {
		t.Fatal(err)
	}
	if err := page.SetLineJoin(haru.JoinBevel); err != nil {
		t.Fatal(err)
	}
	if err := page.SetMiterLimit(4); err != nil {
		t.Fatal(err)
	}
	if err := page.SetFlatness(50); err != nil {
		t.Fatal(err)
	}

	if page.LineWidth() != 2.5 {
		t.Errorf("line width %g", page.LineWidth())
	}
	if page.LineCap() != haru.CapRound {
		t.Errorf("line cap %d", page.LineCap())
	}
	if page.LineJoin() != haru.JoinBevel {
		t.Errorf("line join %d", page.LineJoin())
	}
	if page.MiterLimit() != 4 {
		t.Errorf("miter limit %g", page.MiterLimit())
	}
	if page.Flatness() != 50 {
		t.Errorf("flatness %g", page.Flatness())
	}

	if err := page.SetLineWidth(-1); err == nil {
		t.Error("negative line width accepted")
	}
	if err := page.SetLineCap(haru.LineCap(7)); err == nil {
		t.Error("invalid line cap accepted")
	}
}

func TestDash(t *testing.T) {
	_, page := newPage(t)

	if err := page.SetDash([]uint16{3, 7}, 2); err != nil {
		t.Fatal(err)
	}
	pattern, phase := page.Dash()
	if d := cmp.Diff([]uint16{3, 7}, pattern); d != "" || phase != 2 {
		t.Errorf("dash %v %d", pattern, phase)
	}

	if err := page.SetDash([]uint16{4}, 0); err != nil {
		t.Fatal(err)
	}
	pattern, _ = page.Dash()
	if d := cmp.Diff([]uint16{4}, pattern); d != "" {
		t.Errorf("dash %v", pattern)
	}

	if err := page.SetDash(nil, 0); err != nil {
		t.Fatal(err)
	}
	pattern, _ = page.Dash()
	if len(pattern) != 0 {
		t.Errorf("dash %v", pattern)
	}

	bad := [][]uint16{
		{1, 2, 3},
		{1, 2, 3, 4, 5, 6, 7, 8, 9},
		{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
	}
	for _, pattern := range bad {
		err := page.SetDash(pattern, 0)
		if !errors.Is(err, haru.ErrPageInvalidParamCount) {
			t.Errorf("SetDash(%v): %v", pattern, err)
		}
	}
}

func TestColors(t *testing.T) {
	_, page := newPage(t)

	if err := page.SetGrayStroke(0.25); err != nil {
		t.Fatal(err)
	}
	if err := page.SetGrayFill(0.5); err != nil {
		t.Fatal(err)
	}
	if page.GrayStroke() != 0.25 || page.GrayFill() != 0.5 {
		t.Errorf("gray %g %g", page.GrayStroke(), page.GrayFill())
	}

	rgb := haru.RGB{R: 1, G: 0.5, B: 0.25}
	if err := page.SetRGBStroke(rgb); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(rgb, page.RGBStroke()); d != "" {
		t.Errorf("RGB stroke (-want +got):\n%s", d)
	}
	if cs, err := page.StrokeColorSpace(); err != nil || cs != haru.DeviceRGB {
		t.Errorf("stroke colour space %s %v", cs, err)
	}

	cmyk := haru.CMYK{C: 0.5, M: 0.25, Y: 0.125, K: 1}
	if err := page.SetCMYKFill(cmyk); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(cmyk, page.CMYKFill()); d != "" {
		t.Errorf("CMYK fill (-want +got):\n%s", d)
	}
	if cs, err := page.FillColorSpace(); err != nil || cs != haru.DeviceCMYK {
		t.Errorf("fill colour space %s %v", cs, err)
	}

	if err := page.SetRGBFill(haru.RGB{R: 2}); !errors.Is(err, haru.ErrPageOutOfRange) {
		t.Errorf("out of range colour: %v", err)
	}
}

func TestGState(t *testing.T) {
	_, page := newPage(t)

	if err := page.GRestore(); !errors.Is(err, haru.ErrPageCannotRestoreGState) {
		t.Errorf("GRestore on empty stack: %v", err)
	}
	if err := page.GSave(); err != nil {
		t.Fatal(err)
	}
	if err := page.SetLineWidth(5); err != nil {
		t.Fatal(err)
	}
	if page.GStateDepth() != 2 {
		t.Errorf("depth %d", page.GStateDepth())
	}
	if err := page.GRestore(); err != nil {
		t.Fatal(err)
	}
	if page.LineWidth() != 1 {
		t.Errorf("line width after restore %g", page.LineWidth())
	}
}

func TestPath(t *testing.T) {
	doc, page := newPage(t)

	if err := page.MoveTo(10, 20); err != nil {
		t.Fatal(err)
	}
	if err := page.LineTo(30, 40); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(vec.Vec2{X: 30, Y: 40}, page.CurrentPoint()); d != "" {
		t.Errorf("current point (-want +got):\n%s", d)
	}
	if err := page.CurveTo(40, 40, 50, 50, 60, 40); err != nil {
		t.Fatal(err)
	}
	if err := page.CurveTo2(70, 30, 80, 40); err != nil {
		t.Fatal(err)
	}
	if err := page.CurveTo3(90, 50, 100, 40); err != nil {
		t.Fatal(err)
	}
	if err := page.ClosePathStroke(); err != nil {
		t.Fatal(err)
	}
	if page.CurrentPoint() != (vec.Vec2{}) {
		t.Errorf("current point outside a path: %v", page.CurrentPoint())
	}

	paint := []func() error{
		page.Fill, page.EOFill, page.FillStroke, page.EOFillStroke,
		page.ClosePathFillStroke, page.ClosePathEOFillStroke, page.EndPath,
		page.Stroke,
	}
	for i, op := range paint {
		if err := page.Rectangle(10, 10, 50, 50); err != nil {
			t.Fatal(err)
		}
		if err := page.Circle(100, 100, 20); err != nil {
			t.Fatal(err)
		}
		if err := page.Arc(200, 200, 30, 0, 90); err != nil {
			t.Fatal(err)
		}
		if err := op(); err != nil {
			t.Errorf("painting operator %d: %v", i, err)
		}
	}

	// painting without a path is not allowed
	if err := page.Stroke(); !errors.Is(err, haru.ErrPageInvalidGMode) {
		t.Errorf("Stroke without a path: %v", err)
	}
	// the failure does not affect the next operation
	if err := page.MoveTo(0, 0); err != nil {
		t.Errorf("MoveTo after a failure: %v", err)
	}
	if err := page.EndPath(); err != nil {
		t.Fatal(err)
	}

	save(t, doc)
}

func TestTextPosition(t *testing.T) {
	_, page := newPage(t)

	if err := page.BeginText(); err != nil {
		t.Fatal(err)
	}
	if err := page.MoveTextPos(20, 10); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(vec.Vec2{X: 20, Y: 10}, page.TextPosition()); d != "" {
		t.Errorf("text position (-want +got):\n%s", d)
	}
	if err := page.MoveTextPos(30, 35); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(vec.Vec2{X: 50, Y: 45}, page.TextPosition()); d != "" {
		t.Errorf("text position (-want +got):\n%s", d)
	}

	if err := page.SetTextLeading(12); err != nil {
		t.Fatal(err)
	}
	if page.TextLeading() != 12 {
		t.Errorf("text leading %g", page.TextLeading())
	}
	if err := page.MoveToNextLine(); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(vec.Vec2{X: 50, Y: 33}, page.TextPosition()); d != "" {
		t.Errorf("text position (-want +got):\n%s", d)
	}
	if err := page.EndText(); err != nil {
		t.Fatal(err)
	}
}

func TestShowText(t *testing.T) {
	doc, page := newPage(t)

	// text requires a font
	if err := page.BeginText(); err != nil {
		t.Fatal(err)
	}
	if err := page.ShowText("hello"); !errors.Is(err, haru.ErrPageFontNotFound) {
		t.Errorf("ShowText without font: %v", err)
	}

	font, err := gofont.Regular.Load(doc)
	if err != nil {
		t.Fatal(err)
	}
	if err := page.SetFontAndSize(font, 24); err != nil {
		t.Fatal(err)
	}
	if page.Font() != font || page.FontSize() != 24 {
		t.Errorf("font %v, size %g", page.Font(), page.FontSize())
	}
	if err := page.MoveTextPos(72, 700); err != nil {
		t.Fatal(err)
	}
	if err := page.ShowText("Grüße, Welt"); err != nil {
		t.Fatal(err)
	}
	if page.TextPosition().X <= 72 {
		t.Errorf("text position did not advance: %v", page.TextPosition())
	}
	if err := page.ShowText("a\x00b"); !errors.Is(err, haru.ErrStringWithNUL) {
		t.Errorf("text with NUL: %v", err)
	}
	if err := page.EndText(); err != nil {
		t.Fatal(err)
	}

	w1, err := page.TextWidth("m")
	if err != nil {
		t.Fatal(err)
	}
	w3, err := page.TextWidth("mmm")
	if err != nil {
		t.Fatal(err)
	}
	if w1 <= 0 || w3 <= 2*w1 {
		t.Errorf("text widths %g %g", w1, w3)
	}

	if err := page.BeginText(); err != nil {
		t.Fatal(err)
	}
	if err := page.TextOut(72, 100, "Hello"); err != nil {
		t.Fatal(err)
	}
	if err := page.EndText(); err != nil {
		t.Fatal(err)
	}

	save(t, doc)
}

func TestSetFontFromOtherDocument(t *testing.T) {
	_, page := newPage(t)

	other, err := haru.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	defer other.Close()
	font, err := other.StandardFont("Courier")
	if err != nil {
		t.Fatal(err)
	}

	if err := page.SetFontAndSize(font, 10); !errors.Is(err, haru.ErrPageInvalidFont) {
		t.Errorf("font from another document: %v", err)
	}
	if err := page.SetFontAndSize(nil, 10); !errors.Is(err, haru.ErrPageInvalidFont) {
		t.Errorf("nil font: %v", err)
	}
}

func TestWinAnsiText(t *testing.T) {
	doc, page := newPage(t)

	font, err := doc.StandardFont("Helvetica")
	if err != nil {
		t.Fatal(err)
	}
	if err := page.BeginText(); err != nil {
		t.Fatal(err)
	}
	if err := page.SetFontAndSize(font, 12); err != nil {
		t.Fatal(err)
	}
	if err := page.ShowText("café → bar"); err != nil {
		t.Fatal(err)
	}
	if err := page.EndText(); err != nil {
		t.Fatal(err)
	}

	data := save(t, doc)
	// libharu writes bytes outside of printable ASCII as octal escapes
	if !bytes.Contains(data, []byte(`(caf\351 ? bar)`)) {
		t.Error("text was not converted to WinAnsiEncoding")
	}
}

func TestTextRect(t *testing.T) {
	doc, page := newPage(t)

	font, err := gofont.Regular.Load(doc)
	if err != nil {
		t.Fatal(err)
	}
	if err := page.BeginText(); err != nil {
		t.Fatal(err)
	}
	if err := page.SetFontAndSize(font, 12); err != nil {
		t.Fatal(err)
	}

	box := rect.Rect{LLx: 72, LLy: 600, URx: 300, URy: 700}
	for _, align := range []haru.TextAlignment{
		haru.AlignLeft, haru.AlignRight, haru.AlignCenter, haru.AlignJustify,
	} {
		if err := page.TextRect(box, "The quick brown fox jumps over the lazy dog.", align); err != nil {
			t.Errorf("alignment %d: %v", align, err)
		}
	}

	// text which does not fit is clipped without an error
	small := rect.Rect{LLx: 72, LLy: 500, URx: 100, URy: 515}
	long := "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor."
	if err := page.TextRect(small, long, haru.AlignLeft); err != nil {
		t.Errorf("clipped text: %v", err)
	}

	err = page.TextRect(box, "x", haru.TextAlignment(17))
	if !errors.Is(err, haru.ErrInvalidParameter) {
		t.Errorf("undefined alignment: %v", err)
	}

	if err := page.EndText(); err != nil {
		t.Fatal(err)
	}
	save(t, doc)
}
