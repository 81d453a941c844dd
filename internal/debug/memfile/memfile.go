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

package memfile

import (
	"errors"
	"io"
)

// MemFile is a temporary in-memory file.
//
// This type implements the [io.ReadWriteSeeker] interface.
type MemFile struct {
	// Data are the file contents.
	Data []byte

	// Offset is the current file offset.
	Offset int64

	// Limit, if positive, is the maximum size of the file.  Writes which
	// would grow the file beyond Limit are truncated and return WriteErr,
	// or io.ErrShortWrite if WriteErr is nil.
	Limit int64

	// ReadErr, WriteErr and SeekErr, if set, are returned by the
	// corresponding methods.  WriteErr is only returned once Limit is
	// reached, if Limit is positive.
	ReadErr  error
	WriteErr error
	SeekErr  error
}

// New creates a new MemFile.
func New() *MemFile {
	return &MemFile{}
}

// NewReader creates a new MemFile with the given contents.
func NewReader(data []byte) *MemFile {
	return &MemFile{Data: data}
}

// Write writes data to the file.
// This implements the [io.Writer] interface.
func (f *MemFile) Write(p []byte) (n int, err error) {
	if f.WriteErr != nil && f.Limit <= 0 {
		return 0, f.WriteErr
	}
	if f.Limit > 0 && f.Offset+int64(len(p)) > f.Limit {
		p = p[:max(f.Limit-f.Offset, 0)]
		err = f.WriteErr
		if err == nil {
			err = io.ErrShortWrite
		}
	}

	if f.Offset > int64(len(f.Data)) {
		f.Data = append(f.Data, make([]byte, f.Offset-int64(len(f.Data)))...)
	}
	n = copy(f.Data[f.Offset:], p)
	f.Data = append(f.Data, p[n:]...)
	n = len(p)

	f.Offset += int64(n)
	return n, err
}

// Read reads data from the file.
// This implements the [io.Reader] interface.
func (f *MemFile) Read(p []byte) (n int, err error) {
	if f.ReadErr != nil {
		return 0, f.ReadErr
	}
	if f.Offset >= int64(len(f.Data)) {
		return 0, io.EOF
	}
	n = copy(p, f.Data[f.Offset:])
	f.Offset += int64(n)
	if n < len(p) {
		err = io.EOF
	}
	return
}

// Seek sets the offset in the file.
// This implements the [io.Seeker] interface.
func (f *MemFile) Seek(offset int64, whence int) (int64, error) {
	if f.SeekErr != nil {
		return 0, f.SeekErr
	}

	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = f.Offset + offset
	case io.SeekEnd:
		newOffset = int64(len(f.Data)) + offset
	default:
		return 0, errInvalidWhence
	}

	if newOffset < 0 {
		return 0, errInvalidOffset
	}

	f.Offset = newOffset
	return newOffset, nil
}

var (
	errInvalidWhence = errors.New("invalid whence")
	errInvalidOffset = errors.New("invalid offset")
)
