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
	"strings"
	"time"
	"unsafe"

	"github.com/xdg-go/stringprep"
	"golang.org/x/text/encoding/charmap"
)

// SetInfo sets a text entry of the document information dictionary.
// For the date entries, use [Document.SetInfoDate].
func (d *Document) SetInfo(key InfoType, value string) error {
	h := d.h
	if h.closed() {
		return ErrClosed
	}
	if key.isDate() {
		return &Error{Code: ErrInvalidParameter}
	}
	if strings.IndexByte(value, 0) >= 0 {
		return &Error{Code: ErrStringWithNUL}
	}

	cValue := C.CString(value)
	defer C.free(unsafe.Pointer(cValue))
	return h.checkStatus(C.HPDF_SetInfoAttr(h.ptr, key.native(), cValue))
}

// SetInfoDate sets InfoCreationDate or InfoModDate.  The time is stored
// with a precision of one second, together with its offset from UTC.
func (d *Document) SetInfoDate(key InfoType, t time.Time) error {
	h := d.h
	if h.closed() {
		return ErrClosed
	}
	if !key.isDate() {
		return &Error{Code: ErrInvalidParameter}
	}

	var date C.HPDF_Date
	date.year = C.HPDF_INT(t.Year())
	date.month = C.HPDF_INT(t.Month())
	date.day = C.HPDF_INT(t.Day())
	date.hour = C.HPDF_INT(t.Hour())
	date.minutes = C.HPDF_INT(t.Minute())
	date.seconds = C.HPDF_INT(t.Second())

	_, offset := t.Zone()
	switch {
	case offset > 0:
		date.ind = '+'
	case offset < 0:
		date.ind = '-'
		offset = -offset
	default:
		date.ind = 'Z'
	}
	date.off_hour = C.HPDF_INT(offset / 3600)
	date.off_minutes = C.HPDF_INT(offset % 3600 / 60)

	return h.checkStatus(C.HPDF_SetInfoDateAttr(h.ptr, key.native(), date))
}

// SetPassword enables encryption of the document.  The passwords are
// normalised using SASLprep.  The owner password must be non-empty and
// different from the user password.
func (d *Document) SetPassword(owner, user string) error {
	h := d.h
	if h.closed() {
		return ErrClosed
	}

	ownerBytes, err := preparePassword(owner)
	if err != nil {
		return err
	}
	userBytes, err := preparePassword(user)
	if err != nil {
		return err
	}

	cOwner := C.CString(string(ownerBytes))
	defer C.free(unsafe.Pointer(cOwner))
	cUser := C.CString(string(userBytes))
	defer C.free(unsafe.Pointer(cUser))
	return h.checkStatus(C.HPDF_SetPassword(h.ptr, cOwner, cUser))
}

// SetPermission restricts the operations allowed for users who open the
// document with the user password.  SetPassword must be called first.
func (d *Document) SetPermission(perm Permission) error {
	h := d.h
	if h.closed() {
		return ErrClosed
	}
	return h.checkStatus(C.HPDF_SetPermission(h.ptr, C.HPDF_UINT(perm)))
}

// SetEncryptionMode selects the encryption algorithm.  For EncryptR3,
// keyLen is the key length in bytes, between 5 and 16.  SetPassword must
// be called first.
func (d *Document) SetEncryptionMode(mode EncryptMode, keyLen uint) error {
	h := d.h
	if h.closed() {
		return ErrClosed
	}
	return h.checkStatus(C.HPDF_SetEncryptionMode(h.ptr, mode.native(), C.HPDF_UINT(keyLen)))
}

// preparePassword converts a password into the byte string used by the
// RC4 based security handlers.
func preparePassword(passwd string) ([]byte, error) {
	prepped, err := stringprep.SASLprep.Prepare(passwd)
	if err != nil {
		return nil, &Error{Code: ErrEncryptInvalidPassword, Err: err}
	}
	buf, err := charmap.Windows1252.NewEncoder().Bytes([]byte(prepped))
	if err != nil {
		return nil, &Error{Code: ErrEncryptInvalidPassword, Err: err}
	}
	if len(buf) > 32 {
		buf = buf[:32]
	}
	return buf, nil
}
