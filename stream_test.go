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
	"bytes"
	"errors"
	"io"
	"syscall"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/haru/internal/debug/memfile"
)

func TestTellingReaderRead(t *testing.T) {
	tr := newTellingReader(memfile.NewReader([]byte("0123456789")))

	buf := make([]byte, 4)
	n, err := tr.read(buf)
	if err != nil || n != 4 || string(buf) != "0123" {
		t.Fatalf("read: %d %q %v", n, buf, err)
	}
	if tr.tell() != 4 {
		t.Errorf("tell = %d, want 4", tr.tell())
	}

	n, err = tr.read(buf)
	if err != nil || n != 4 || string(buf) != "4567" {
		t.Fatalf("read: %d %q %v", n, buf, err)
	}

	// a short read at the end of the input reports the partial count
	n, err = tr.read(buf)
	if err != errStreamEOF || n != 2 || string(buf[:n]) != "89" {
		t.Fatalf("read at end: %d %q %v", n, buf[:n], err)
	}
	if tr.tell() != 10 {
		t.Errorf("tell = %d, want 10", tr.tell())
	}

	n, err = tr.read(buf)
	if err != errStreamEOF || n != 0 {
		t.Errorf("read after end: %d %v", n, err)
	}
}

// chunkReader returns at most one byte per call.
type chunkReader struct {
	io.ReadSeeker
}

func (r chunkReader) Read(p []byte) (int, error) {
	if len(p) > 1 {
		p = p[:1]
	}
	return r.ReadSeeker.Read(p)
}

func TestTellingReaderFillsBuffer(t *testing.T) {
	tr := newTellingReader(chunkReader{bytes.NewReader([]byte("abcdef"))})
	buf := make([]byte, 5)
	n, err := tr.read(buf)
	if err != nil || n != 5 || string(buf) != "abcde" {
		t.Errorf("read: %d %q %v", n, buf, err)
	}
}

func TestTellingReaderReadError(t *testing.T) {
	f := memfile.NewReader([]byte("data"))
	f.ReadErr = syscall.Errno(5)
	tr := newTellingReader(f)

	n, err := tr.read(make([]byte, 2))
	if n != 0 || !errors.Is(err, syscall.Errno(5)) {
		t.Errorf("read: %d %v", n, err)
	}
	if errno(tr.err) != 5 {
		t.Errorf("recorded error %v", tr.err)
	}
}

func TestTellingReaderSeek(t *testing.T) {
	tr := newTellingReader(memfile.NewReader([]byte("0123456789")))

	steps := []struct {
		offset int64
		whence int
		want   int64
	}{
		{3, io.SeekStart, 3},
		{2, io.SeekCurrent, 5},
		{-4, io.SeekEnd, 6},
		{0, io.SeekStart, 0},
	}
	for _, s := range steps {
		if err := tr.seek(s.offset, s.whence); err != nil {
			t.Fatal(err)
		}
		if tr.tell() != s.want {
			t.Errorf("seek(%d, %d): tell = %d, want %d",
				s.offset, s.whence, tr.tell(), s.want)
		}
	}

	if err := tr.seek(-1, io.SeekStart); err == nil {
		t.Error("seek to negative offset succeeded")
	}
	if tr.tell() != 0 {
		t.Errorf("failed seek moved the position to %d", tr.tell())
	}
}

func TestTellingReaderSize(t *testing.T) {
	tr := newTellingReader(memfile.NewReader([]byte("0123456789")))
	if err := tr.seek(7, io.SeekStart); err != nil {
		t.Fatal(err)
	}

	size, err := tr.size()
	if err != nil {
		t.Fatal(err)
	}
	if size != 10 {
		t.Errorf("size = %d, want 10", size)
	}
	if tr.tell() != 7 {
		t.Errorf("size moved the position to %d", tr.tell())
	}

	// the underlying reader must be back at the saved position
	buf := make([]byte, 3)
	if n, err := tr.read(buf); n != 3 || err != nil || string(buf) != "789" {
		t.Errorf("read after size: %d %q %v", n, buf, err)
	}
}

// endOnlySeeker can seek to the end, but not back.
type endOnlySeeker struct {
	*bytes.Reader
}

func (s endOnlySeeker) Seek(offset int64, whence int) (int64, error) {
	if whence == io.SeekEnd {
		return s.Reader.Seek(offset, whence)
	}
	return 0, syscall.Errno(29)
}

func TestTellingReaderSizeRestoreFails(t *testing.T) {
	tr := newTellingReader(endOnlySeeker{bytes.NewReader([]byte("abc"))})
	size, err := tr.size()
	if size != 0 || err == nil {
		t.Errorf("size = %d, %v", size, err)
	}
	if errno(err) != 29 {
		t.Errorf("errno = %d, want 29", errno(err))
	}
}

func TestSinkWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	sw := newSinkWriter(buf)
	for _, s := range []string{"%PDF-1.3\n", "", "%%EOF\n"} {
		if err := sw.write([]byte(s)); err != nil {
			t.Fatal(err)
		}
	}
	if d := cmp.Diff("%PDF-1.3\n%%EOF\n", buf.String()); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
	if sw.n != 15 {
		t.Errorf("n = %d, want 15", sw.n)
	}
}

func TestSinkWriterErrors(t *testing.T) {
	sw := newSinkWriter(&memfile.MemFile{WriteErr: syscall.Errno(7)})
	err := sw.write([]byte("x"))
	if errno(err) != 7 {
		t.Errorf("errno = %d, want 7", errno(err))
	}

	// a short write without an error is reported as io.ErrShortWrite
	sw = newSinkWriter(shortWriter{})
	err = sw.write([]byte("abc"))
	if err != io.ErrShortWrite || errno(err) != 0 {
		t.Errorf("short write: %v", err)
	}
	if sw.err != io.ErrShortWrite {
		t.Errorf("recorded error %v", sw.err)
	}
}

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) {
	return len(p) / 2, nil
}

func TestPanicError(t *testing.T) {
	err := panicError(io.ErrClosedPipe)
	if !errors.Is(err, io.ErrClosedPipe) {
		t.Errorf("panic value not wrapped: %v", err)
	}
	err = panicError("boom")
	if err.Error() != "panic in stream callback: boom" {
		t.Errorf("unexpected message %q", err)
	}
}
