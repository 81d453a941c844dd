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
#cgo LDFLAGS: -lhpdf
#include "haru.h"
*/
import "C"

import (
	"runtime"
	"unsafe"

	"seehuhn.de/go/haru/internal/logging"
)

// docHandle owns a native document.  It is shared by a Document and all
// pages and fonts obtained from it, and releases the native document
// exactly once.
//
// All fallible native calls go through checkStatus or checkNonNull, which
// translate the libharu error state and reset it afterwards.
type docHandle struct {
	ptr     C.HPDF_Doc
	cleanup runtime.Cleanup

	pages []*Page
	fonts map[C.HPDF_Font]*Font
}

func newDocHandle(ptr C.HPDF_Doc) *docHandle {
	h := &docHandle{
		ptr:   ptr,
		fonts: make(map[C.HPDF_Font]*Font),
	}
	h.cleanup = runtime.AddCleanup(h, freeDoc, ptr)
	logging.Logger().Debug("document created")
	return h
}

func freeDoc(ptr C.HPDF_Doc) {
	C.HPDF_Free(ptr)
	logging.Logger().Debug("document freed")
}

// free releases the native document.  Calling free more than once has
// no effect.
func (h *docHandle) free() {
	if h.ptr == nil {
		return
	}
	h.cleanup.Stop()
	freeDoc(h.ptr)
	h.ptr = nil
	h.pages = nil
	clear(h.fonts)
}

func (h *docHandle) closed() bool {
	return h.ptr == nil
}

// keepAlive keeps the native document from being released by the cleanup
// until keepAlive is called.  Getters, which do not pass a native status
// through checkStatus, defer a call to keepAlive before using any native
// handle.
func (h *docHandle) keepAlive() {
	runtime.KeepAlive(h)
}

// checkStatus converts the status returned by a native call into an
// error.  On failure the error state of the document is cleared, so that
// the next call starts from a clean state.
func (h *docHandle) checkStatus(status C.HPDF_STATUS) error {
	if status == C.HPDF_OK {
		return nil
	}
	detail := C.HPDF_GetErrorDetail(h.ptr)
	C.HPDF_ResetError(h.ptr)
	runtime.KeepAlive(h)

	err := translate(uint64(status), uint64(detail))
	logging.Logger().Debug("libharu error",
		"status", uint64(status), "detail", uint64(detail), "err", err)
	return err
}

// checkNonNull is used for native calls which signal failure by
// returning NULL.
func (h *docHandle) checkNonNull(p unsafe.Pointer) error {
	if p != nil {
		return nil
	}
	return h.lastError(ErrAllocationFailed)
}

// lastError returns the error recorded in the document's error state.
// If no error is recorded, an *Error with the fallback code is returned.
func (h *docHandle) lastError(fallback ErrorCode) error {
	if err := h.checkStatus(C.HPDF_GetError(h.ptr)); err != nil {
		return err
	}
	return &Error{Code: fallback}
}

func (h *docHandle) addPage(ptr C.HPDF_Page, pos int) *Page {
	p := &Page{ptr: ptr, doc: h}
	h.pages = append(h.pages, nil)
	copy(h.pages[pos+1:], h.pages[pos:])
	h.pages[pos] = p
	return p
}

func (h *docHandle) pageIndex(p *Page) int {
	for i, q := range h.pages {
		if q == p {
			return i
		}
	}
	return -1
}

// font returns the registered *Font for a native font handle, creating
// it on first use.  A nil handle gives a nil *Font.
func (h *docHandle) font(ptr C.HPDF_Font) *Font {
	if ptr == nil {
		return nil
	}
	if f, ok := h.fonts[ptr]; ok {
		return f
	}
	f := &Font{
		ptr:      ptr,
		doc:      h,
		name:     C.GoString(C.HPDF_Font_GetFontName(ptr)),
		encoding: C.GoString(C.HPDF_Font_GetEncodingName(ptr)),
	}
	h.fonts[ptr] = f
	return f
}
