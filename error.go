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
	"strconv"
)

// Error is returned when libharu reports a failure.
type Error struct {
	Code ErrorCode

	// Detail is the numeric payload libharu attaches to some error codes,
	// for example the OS error number for ErrFileIO.  For codes without a
	// payload Detail is zero.
	Detail uint64

	// Err, if set, is the error returned by the io.Reader or io.Writer
	// which caused an ErrFileIO.
	Err error
}

func (err *Error) Error() string {
	msg := "haru: " + err.Code.String()
	if err.Code.hasDetail() {
		msg += " (" + strconv.FormatUint(err.Detail, 10) + ")"
	}
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *Error) Unwrap() error {
	return err.Err
}

// Is reports whether target is the ErrorCode of err, or an *Error with
// the same code.  If target has a non-zero Detail, the details must match
// as well.
func (err *Error) Is(target error) bool {
	switch target := target.(type) {
	case ErrorCode:
		return err.Code == target
	case *Error:
		return err.Code == target.Code &&
			(target.Detail == 0 || err.Detail == target.Detail)
	}
	return false
}

func (c ErrorCode) Error() string {
	return "haru: " + c.String()
}

func (c ErrorCode) String() string {
	if c > 0 && c < numErrorCodes {
		return errorText[c]
	}
	return "ErrorCode(" + strconv.Itoa(int(c)) + ")"
}

func (c ErrorCode) hasDetail() bool {
	switch c {
	case ErrJWWCodeNumLimitExceeded, ErrFileIO, ErrFileOpen, ErrLibPNG,
		ErrTTFMissingTable, ErrZlib, ErrPageNumStyleOutOfRange,
		ErrPageInvalidDirection:
		return true
	}
	return false
}

// translate converts a libharu status and its detail value into a Go error.
// Status 0 means success and yields nil.  An unknown status indicates a
// mismatch between this package and the linked library, and causes a
// panic.
func translate(status, detail uint64) error {
	if status == 0 {
		return nil
	}

	if status == statusLibPNG {
		if detail == detailCannotPalette {
			return &Error{Code: ErrCannotGetPalette}
		}
		return &Error{Code: ErrLibPNG, Detail: detail}
	}

	code, ok := nativeCodes[status]
	if !ok {
		panic(fmt.Sprintf("invalid error status from libharu 0x%x", status))
	}
	if !code.hasDetail() {
		detail = 0
	}
	return &Error{Code: code, Detail: detail}
}

// ErrClosed is returned by methods called after [Document.Close].
var ErrClosed = errors.New("haru: document is closed")
