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

import (
	"errors"
	"fmt"
	"io"
	"syscall"
)

var errStreamEOF = errors.New("end of stream")

// tellingReader adapts an io.ReadSeeker to the random-access stream
// protocol of libharu.  The current position is tracked on the Go side,
// so that tell does not need to touch the underlying reader.
type tellingReader struct {
	r   io.ReadSeeker
	pos int64

	// err is the last error returned by r.
	err error
}

func newTellingReader(r io.ReadSeeker) *tellingReader {
	return &tellingReader{r: r}
}

// read fills buf completely, unless the end of the input is reached first.
// In this case, the number of bytes read is returned together with
// errStreamEOF.
func (tr *tellingReader) read(buf []byte) (int, error) {
	n, err := io.ReadFull(tr.r, buf)
	tr.pos += int64(n)
	switch err {
	case nil:
		return n, nil
	case io.EOF, io.ErrUnexpectedEOF:
		clear(buf[n:])
		return n, errStreamEOF
	default:
		tr.err = err
		return 0, err
	}
}

// seek implements the three libharu whence modes, which coincide with
// io.SeekStart, io.SeekCurrent and io.SeekEnd.
func (tr *tellingReader) seek(offset int64, whence int) error {
	pos, err := tr.r.Seek(offset, whence)
	if err != nil {
		tr.err = err
		return err
	}
	tr.pos = pos
	return nil
}

func (tr *tellingReader) tell() int64 {
	return tr.pos
}

// size returns the total length of the input.  The read position is
// restored before size returns.  If the length cannot be determined, 0 is
// returned.  An error is only returned if the position could not be
// restored.
func (tr *tellingReader) size() (int64, error) {
	end, err := tr.r.Seek(0, io.SeekEnd)
	if err != nil {
		end = 0
	}
	_, err = tr.r.Seek(tr.pos, io.SeekStart)
	if err != nil {
		tr.err = err
		return 0, err
	}
	return end, nil
}

// sinkWriter adapts an io.Writer to the sequential stream protocol of
// libharu.
type sinkWriter struct {
	w io.Writer
	n int64

	// err is the first error returned by w.
	err error
}

func newSinkWriter(w io.Writer) *sinkWriter {
	return &sinkWriter{w: w}
}

// write passes all of buf to the underlying writer.
func (sw *sinkWriter) write(buf []byte) error {
	n, err := sw.w.Write(buf)
	sw.n += int64(n)
	if err == nil && n < len(buf) {
		err = io.ErrShortWrite
	}
	if err != nil && sw.err == nil {
		sw.err = err
	}
	return err
}

// errno extracts the OS error number from err, if there is one.
func errno(err error) uint64 {
	var e syscall.Errno
	if errors.As(err, &e) {
		return uint64(e)
	}
	return 0
}

// panicError converts a value recovered in a stream callback into an error.
func panicError(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("panic in stream callback: %w", err)
	}
	return fmt.Errorf("panic in stream callback: %v", r)
}
