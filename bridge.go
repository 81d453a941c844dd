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
	"runtime/cgo"
	"sync/atomic"
	"unsafe"
)

// nativeStream is a libharu callback stream backed by a Go value.
//
// Ownership of the native stream leaves Go exactly once: either take
// hands it to a native function which consumes it, or release frees it.
// Callers defer release directly after the stream is created.
type nativeStream struct {
	ptr C.HPDF_Stream
}

// liveStreams counts the cgo handles held by native streams.  Each handle
// is deleted exactly once, by the free callback or when the native stream
// could not be allocated.
var liveStreams atomic.Int64

func newStreamHandle(v any) cgo.Handle {
	liveStreams.Add(1)
	return cgo.NewHandle(v)
}

func deleteStreamHandle(handle cgo.Handle) {
	handle.Delete()
	liveStreams.Add(-1)
}

// streamFactory allocates a native stream whose attr field holds handle.
type streamFactory func(h *docHandle, handle uintptr) unsafe.Pointer

func readerFactory(h *docHandle, handle uintptr) unsafe.Pointer {
	return unsafe.Pointer(C.haru_reader_new(h.ptr, C.uintptr_t(handle)))
}

func writerFactory(h *docHandle, handle uintptr) unsafe.Pointer {
	return unsafe.Pointer(C.haru_writer_new(h.ptr, C.uintptr_t(handle)))
}

func newReaderStream(h *docHandle, tr *tellingReader) (*nativeStream, error) {
	return newStream(h, tr, readerFactory)
}

func newWriterStream(h *docHandle, sw *sinkWriter) (*nativeStream, error) {
	return newStream(h, sw, writerFactory)
}

func newStream(h *docHandle, v any, create streamFactory) (*nativeStream, error) {
	handle := newStreamHandle(v)
	ptr := create(h, uintptr(handle))
	if ptr == nil {
		deleteStreamHandle(handle)
		return nil, h.checkNonNull(ptr)
	}
	return &nativeStream{ptr: C.HPDF_Stream(ptr)}, nil
}

// take transfers ownership of the stream to the caller.
func (s *nativeStream) take() C.HPDF_Stream {
	ptr := s.ptr
	s.ptr = nil
	return ptr
}

// release frees the stream, unless ownership has been transferred
// by take.
func (s *nativeStream) release() {
	if s.ptr == nil {
		return
	}
	C.HPDF_Stream_Free(s.ptr)
	s.ptr = nil
}

// withHostError attaches the error returned by a Go reader or writer to
// a file I/O error reported by libharu.
func withHostError(err, hostErr error) error {
	if e, ok := err.(*Error); ok && e.Code == ErrFileIO && e.Err == nil {
		e.Err = hostErr
	}
	return err
}
