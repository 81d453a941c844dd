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
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"
	"unsafe"

	"golang.org/x/exp/maps"
	"seehuhn.de/go/sfnt"

	"seehuhn.de/go/haru/internal/logging"
)

// Document is a PDF document under construction.
//
// A Document, and all pages and fonts obtained from it, must only be used
// by one goroutine at a time.  The native resources are released by
// [Document.Close], or by the garbage collector once neither the Document
// nor any of its pages and fonts are reachable.
type Document struct {
	h *docHandle
}

// New creates an empty document.  All text is handled as UTF-8.
// If opt is nil, the libharu defaults are used.
func New(opt *Options) (*Document, error) {
	ptr := C.HPDF_New(nil, nil)
	if ptr == nil {
		return nil, &Error{Code: ErrAllocationFailed}
	}
	doc := &Document{h: newDocHandle(ptr)}

	err := doc.h.checkStatus(C.HPDF_UseUTFEncodings(ptr))
	if err == nil {
		err = opt.apply(doc)
	}
	if err != nil {
		doc.h.free()
		return nil, err
	}
	return doc, nil
}

// Close releases the native document.  After Close, methods of the
// document and of its pages and fonts return ErrClosed, and getters return
// zero values.  Calling Close more than once has no effect.
func (d *Document) Close() error {
	d.h.free()
	return nil
}

// Save writes the document in PDF format to w.
//
// If w returns an error, Save returns an *Error with code ErrFileIO
// which wraps the error from w.
func (d *Document) Save(w io.Writer) error {
	h := d.h
	if h.closed() {
		return ErrClosed
	}

	sw := newSinkWriter(w)
	s, err := newWriterStream(h, sw)
	if err != nil {
		return err
	}
	defer s.release()

	err = h.checkStatus(C.HPDF_SaveToExternalStream(h.ptr, s.ptr))
	if err != nil {
		return withHostError(err, sw.err)
	}
	logging.Logger().Debug("document saved", "bytes", sw.n, "pages", len(h.pages))
	return nil
}

// SetPagesConfiguration limits the number of pages grouped under one node
// of the page tree.  This must be called before the first page is added.
func (d *Document) SetPagesConfiguration(pagesPerNode uint) error {
	h := d.h
	if h.closed() {
		return ErrClosed
	}
	return h.checkStatus(C.HPDF_SetPagesConfiguration(h.ptr, C.HPDF_UINT(pagesPerNode)))
}

// PageLayout returns the page layout of the document.
// If no layout has been set, LayoutDefault is returned.
func (d *Document) PageLayout() PageLayout {
	h := d.h
	if h.closed() {
		return LayoutDefault
	}
	defer h.keepAlive()
	return pageLayoutFromNative(C.HPDF_GetPageLayout(h.ptr))
}

// SetPageLayout sets the page layout of the document.
//
// The layout cannot be reset to LayoutDefault once set; libharu reports
// this as ErrPageLayoutOutOfRange.
func (d *Document) SetPageLayout(layout PageLayout) error {
	h := d.h
	if h.closed() {
		return ErrClosed
	}
	return h.checkStatus(C.HPDF_SetPageLayout(h.ptr, layout.native()))
}

// PageMode returns the page mode of the document.
func (d *Document) PageMode() PageMode {
	h := d.h
	if h.closed() {
		return ModeUseNone
	}
	defer h.keepAlive()
	return pageModeFromNative(C.HPDF_GetPageMode(h.ptr))
}

// SetPageMode sets the page mode of the document.
func (d *Document) SetPageMode(mode PageMode) error {
	h := d.h
	if h.closed() {
		return ErrClosed
	}
	return h.checkStatus(C.HPDF_SetPageMode(h.ptr, mode.native()))
}

// SetCompression selects which parts of the document are compressed.
func (d *Document) SetCompression(mode CompressionMode) error {
	h := d.h
	if h.closed() {
		return ErrClosed
	}
	return h.checkStatus(C.HPDF_SetCompressionMode(h.ptr, C.HPDF_UINT(mode)))
}

// AddPage appends a new page at the end of the document.
func (d *Document) AddPage() (*Page, error) {
	h := d.h
	if h.closed() {
		return nil, ErrClosed
	}
	ptr := C.HPDF_AddPage(h.ptr)
	if err := h.checkNonNull(unsafe.Pointer(ptr)); err != nil {
		return nil, err
	}
	return h.addPage(ptr, len(h.pages)), nil
}

// InsertPage inserts a new page immediately before the given page, which
// must belong to d.
func (d *Document) InsertPage(before *Page) (*Page, error) {
	h := d.h
	if h.closed() {
		return nil, ErrClosed
	}
	if before == nil || before.doc != h {
		return nil, &Error{Code: ErrInvalidPage}
	}
	pos := h.pageIndex(before)
	if pos < 0 {
		return nil, &Error{Code: ErrInvalidPage}
	}

	ptr := C.HPDF_InsertPage(h.ptr, before.ptr)
	if err := h.checkNonNull(unsafe.Pointer(ptr)); err != nil {
		return nil, err
	}
	return h.addPage(ptr, pos), nil
}

// Pages returns the pages of the document, in document order.
func (d *Document) Pages() []*Page {
	return slices.Clone(d.h.pages)
}

// NumPages returns the number of pages in the document.
func (d *Document) NumPages() int {
	return len(d.h.pages)
}

// LoadTTFont reads a TrueType font from r and embeds it into the document.
// The returned font uses UTF-8 encoding.
//
// The document keeps reading from r until it is saved, so r must
// remain valid and must not be used elsewhere until the document is closed.
// If reading fails, the returned *Error wraps the error from r.
func (d *Document) LoadTTFont(r io.ReadSeeker) (*Font, error) {
	h := d.h
	if h.closed() {
		return nil, ErrClosed
	}

	tr := newTellingReader(r)
	s, err := newReaderStream(h, tr)
	if err != nil {
		return nil, err
	}
	defer s.release()

	name := C.HPDF_LoadTTFontFromStream(h.ptr, s.take(), C.HPDF_TRUE, nil)
	if err := h.checkNonNull(unsafe.Pointer(name)); err != nil {
		return nil, withHostError(err, tr.err)
	}

	encoding := C.CString(encodingUTF8)
	defer C.free(unsafe.Pointer(encoding))
	ptr := C.HPDF_GetFont(h.ptr, name, encoding)
	if err := h.checkNonNull(unsafe.Pointer(ptr)); err != nil {
		return nil, err
	}

	f := h.font(ptr)
	logging.Logger().Debug("font loaded", "name", f.name, "bytes", tr.pos)
	return f, nil
}

// LoadSFNT embeds a font which has already been parsed.
// Only fonts with TrueType outlines are supported; for other fonts
// an *Error with code ErrTTFInvalidFormat is returned.
func (d *Document) LoadSFNT(info *sfnt.Font) (*Font, error) {
	if !info.IsGlyf() {
		return nil, &Error{Code: ErrTTFInvalidFormat}
	}
	buf := &bytes.Buffer{}
	if _, err := info.Write(buf); err != nil {
		return nil, fmt.Errorf("haru: encoding font %q: %w", info.PostScriptName(), err)
	}
	return d.LoadTTFont(bytes.NewReader(buf.Bytes()))
}

// StandardFont returns one of the 14 standard PDF fonts, for example
// "Helvetica" or "Times-Bold".  The font uses WinAnsiEncoding.
func (d *Document) StandardFont(name string) (*Font, error) {
	h := d.h
	if h.closed() {
		return nil, ErrClosed
	}
	if strings.IndexByte(name, 0) >= 0 {
		return nil, &Error{Code: ErrStringWithNUL}
	}

	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	encoding := C.CString(encodingWinAnsi)
	defer C.free(unsafe.Pointer(encoding))

	ptr := C.HPDF_GetFont(h.ptr, cName, encoding)
	if err := h.checkNonNull(unsafe.Pointer(ptr)); err != nil {
		return nil, err
	}
	return h.font(ptr), nil
}

// Fonts returns the fonts used by the document so far, sorted by name.
func (d *Document) Fonts() []*Font {
	fonts := maps.Values(d.h.fonts)
	slices.SortFunc(fonts, func(a, b *Font) int {
		if c := strings.Compare(a.name, b.name); c != 0 {
			return c
		}
		return strings.Compare(a.encoding, b.encoding)
	})
	return fonts
}
