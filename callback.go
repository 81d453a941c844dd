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
	"io"
	"runtime/cgo"
	"unsafe"
)

// The functions in this file are called by libharu through the
// trampolines in bridge.c.  A panic must not unwind into C code, so
// panics raised by Go readers and writers are reported as I/O errors.

func streamValue(stream C.HPDF_Stream) any {
	h := C.haru_stream_handle(stream)
	if h == 0 {
		return nil
	}
	return cgo.Handle(h).Value()
}

func raiseIOError(stream C.HPDF_Stream, err error) C.HPDF_STATUS {
	return C.haru_stream_raise(stream, C.HPDF_FILE_IO_ERROR, C.HPDF_STATUS(errno(err)))
}

//export haruStreamRead
func haruStreamRead(stream C.HPDF_Stream, ptr *C.HPDF_BYTE, siz *C.HPDF_UINT) (status C.HPDF_STATUS) {
	tr, ok := streamValue(stream).(*tellingReader)
	if !ok {
		*siz = 0
		return C.haru_stream_raise(stream, C.HPDF_INVALID_STREAM, 0)
	}
	defer func() {
		if r := recover(); r != nil {
			tr.err = panicError(r)
			*siz = 0
			status = raiseIOError(stream, tr.err)
		}
	}()

	buf := unsafe.Slice((*byte)(unsafe.Pointer(ptr)), int(*siz))
	n, err := tr.read(buf)
	*siz = C.HPDF_UINT(n)
	switch err {
	case nil:
		return C.HPDF_OK
	case errStreamEOF:
		return C.HPDF_STREAM_EOF
	default:
		return raiseIOError(stream, err)
	}
}

//export haruStreamSeek
func haruStreamSeek(stream C.HPDF_Stream, pos C.HPDF_INT, mode C.HPDF_WhenceMode) (status C.HPDF_STATUS) {
	tr, ok := streamValue(stream).(*tellingReader)
	if !ok {
		return C.haru_stream_raise(stream, C.HPDF_INVALID_STREAM, 0)
	}
	defer func() {
		if r := recover(); r != nil {
			tr.err = panicError(r)
			status = raiseIOError(stream, tr.err)
		}
	}()

	var whence int
	switch mode {
	case C.HPDF_SEEK_SET:
		whence = io.SeekStart
	case C.HPDF_SEEK_CUR:
		whence = io.SeekCurrent
	case C.HPDF_SEEK_END:
		whence = io.SeekEnd
	default:
		return C.haru_stream_raise(stream, C.HPDF_INVALID_PARAMETER, 0)
	}
	if err := tr.seek(int64(pos), whence); err != nil {
		return raiseIOError(stream, err)
	}
	return C.HPDF_OK
}

//export haruStreamTell
func haruStreamTell(stream C.HPDF_Stream) C.HPDF_INT32 {
	tr, ok := streamValue(stream).(*tellingReader)
	if !ok {
		return C.HPDF_INT32(C.haru_stream_raise(stream, C.HPDF_INVALID_STREAM, 0))
	}
	return C.HPDF_INT32(tr.tell())
}

//export haruStreamSize
func haruStreamSize(stream C.HPDF_Stream) (size C.HPDF_UINT32) {
	tr, ok := streamValue(stream).(*tellingReader)
	if !ok {
		C.haru_stream_set_error(stream, C.HPDF_INVALID_STREAM, 0)
		return 0
	}
	defer func() {
		if r := recover(); r != nil {
			tr.err = panicError(r)
			C.haru_stream_set_error(stream, C.HPDF_FILE_IO_ERROR, 0)
			size = 0
		}
	}()

	n, err := tr.size()
	if err != nil {
		C.haru_stream_set_error(stream, C.HPDF_FILE_IO_ERROR, C.HPDF_STATUS(errno(err)))
		return 0
	}
	return C.HPDF_UINT32(n)
}

//export haruStreamWrite
func haruStreamWrite(stream C.HPDF_Stream, ptr *C.HPDF_BYTE, siz C.HPDF_UINT) (status C.HPDF_STATUS) {
	sw, ok := streamValue(stream).(*sinkWriter)
	if !ok {
		return C.haru_stream_raise(stream, C.HPDF_INVALID_STREAM, 0)
	}
	defer func() {
		if r := recover(); r != nil {
			if sw.err == nil {
				sw.err = panicError(r)
			}
			status = raiseIOError(stream, sw.err)
		}
	}()

	buf := unsafe.Slice((*byte)(unsafe.Pointer(ptr)), int(siz))
	if err := sw.write(buf); err != nil {
		return raiseIOError(stream, err)
	}
	return C.HPDF_OK
}

//export haruStreamFree
func haruStreamFree(stream C.HPDF_Stream) {
	if h := C.haru_stream_handle(stream); h != 0 {
		deleteStreamHandle(cgo.Handle(h))
	}
}
