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
	"fmt"
	"strconv"
)

// PageLayout specifies how a viewer arranges pages when the document is
// opened.
type PageLayout int

// These are the supported page layouts.
const (
	// LayoutDefault means that the document does not specify a layout.
	LayoutDefault PageLayout = iota
	LayoutSinglePage
	LayoutOneColumn
	LayoutTwoColumnLeft
	LayoutTwoColumnRight
)

func (l PageLayout) String() string {
	switch l {
	case LayoutDefault:
		return "default"
	case LayoutSinglePage:
		return "single page"
	case LayoutOneColumn:
		return "one column"
	case LayoutTwoColumnLeft:
		return "two columns left"
	case LayoutTwoColumnRight:
		return "two columns right"
	}
	return "PageLayout(" + strconv.Itoa(int(l)) + ")"
}

func (l PageLayout) native() C.HPDF_PageLayout {
	switch l {
	case LayoutSinglePage:
		return C.HPDF_PAGE_LAYOUT_SINGLE
	case LayoutOneColumn:
		return C.HPDF_PAGE_LAYOUT_ONE_COLUMN
	case LayoutTwoColumnLeft:
		return C.HPDF_PAGE_LAYOUT_TWO_COLUMN_LEFT
	case LayoutTwoColumnRight:
		return C.HPDF_PAGE_LAYOUT_TWO_COLUMN_RIGHT
	}
	return C.HPDF_PAGE_LAYOUT_EOF
}

func pageLayoutFromNative(v C.HPDF_PageLayout) PageLayout {
	switch v {
	case C.HPDF_PAGE_LAYOUT_EOF:
		return LayoutDefault
	case C.HPDF_PAGE_LAYOUT_SINGLE:
		return LayoutSinglePage
	case C.HPDF_PAGE_LAYOUT_ONE_COLUMN:
		return LayoutOneColumn
	case C.HPDF_PAGE_LAYOUT_TWO_COLUMN_LEFT:
		return LayoutTwoColumnLeft
	case C.HPDF_PAGE_LAYOUT_TWO_COLUMN_RIGHT:
		return LayoutTwoColumnRight
	}
	panic(fmt.Sprintf("invalid page layout %d from libharu", v))
}

// PageMode specifies which panels a viewer shows when the document is
// opened.
type PageMode int

// These are the supported page modes.
const (
	ModeUseNone PageMode = iota
	ModeUseOutlines
	ModeUseThumbs
	ModeFullScreen
)

func (m PageMode) native() C.HPDF_PageMode {
	switch m {
	case ModeUseNone:
		return C.HPDF_PAGE_MODE_USE_NONE
	case ModeUseOutlines:
		return C.HPDF_PAGE_MODE_USE_OUTLINE
	case ModeUseThumbs:
		return C.HPDF_PAGE_MODE_USE_THUMBS
	case ModeFullScreen:
		return C.HPDF_PAGE_MODE_FULL_SCREEN
	}
	return C.HPDF_PAGE_MODE_EOF
}

func pageModeFromNative(v C.HPDF_PageMode) PageMode {
	switch v {
	case C.HPDF_PAGE_MODE_USE_NONE:
		return ModeUseNone
	case C.HPDF_PAGE_MODE_USE_OUTLINE:
		return ModeUseOutlines
	case C.HPDF_PAGE_MODE_USE_THUMBS:
		return ModeUseThumbs
	case C.HPDF_PAGE_MODE_FULL_SCREEN:
		return ModeFullScreen
	}
	panic(fmt.Sprintf("invalid page mode %d from libharu", v))
}

// LineCap is the shape used at the ends of open stroked paths.
type LineCap int

// These are the line cap styles.
const (
	CapButt LineCap = iota
	CapRound
	CapProjectingSquare
)

func (c LineCap) native() C.HPDF_LineCap {
	switch c {
	case CapButt:
		return C.HPDF_BUTT_END
	case CapRound:
		return C.HPDF_ROUND_END
	case CapProjectingSquare:
		return C.HPDF_PROJECTING_SCUARE_END
	}
	return C.HPDF_LINECAP_EOF
}

func lineCapFromNative(v C.HPDF_LineCap) LineCap {
	switch v {
	case C.HPDF_BUTT_END:
		return CapButt
	case C.HPDF_ROUND_END:
		return CapRound
	case C.HPDF_PROJECTING_SCUARE_END:
		return CapProjectingSquare
	}
	panic(fmt.Sprintf("invalid line cap %d from libharu", v))
}

// LineJoin is the shape used at the corners of stroked paths.
type LineJoin int

// These are the line join styles.
const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

func (j LineJoin) native() C.HPDF_LineJoin {
	switch j {
	case JoinMiter:
		return C.HPDF_MITER_JOIN
	case JoinRound:
		return C.HPDF_ROUND_JOIN
	case JoinBevel:
		return C.HPDF_BEVEL_JOIN
	}
	return C.HPDF_LINEJOIN_EOF
}

func lineJoinFromNative(v C.HPDF_LineJoin) LineJoin {
	switch v {
	case C.HPDF_MITER_JOIN:
		return JoinMiter
	case C.HPDF_ROUND_JOIN:
		return JoinRound
	case C.HPDF_BEVEL_JOIN:
		return JoinBevel
	}
	panic(fmt.Sprintf("invalid line join %d from libharu", v))
}

// ColorSpace identifies a PDF colour space.
type ColorSpace int

// These are the colour spaces known to libharu.
const (
	DeviceGray ColorSpace = iota
	DeviceRGB
	DeviceCMYK
	CalGray
	CalRGB
	Lab
	ICCBased
	Separation
	DeviceN
	Indexed
	Pattern
)

var colorSpaceNames = [...]string{
	DeviceGray: "DeviceGray",
	DeviceRGB:  "DeviceRGB",
	DeviceCMYK: "DeviceCMYK",
	CalGray:    "CalGray",
	CalRGB:     "CalRGB",
	Lab:        "Lab",
	ICCBased:   "ICCBased",
	Separation: "Separation",
	DeviceN:    "DeviceN",
	Indexed:    "Indexed",
	Pattern:    "Pattern",
}

func (cs ColorSpace) String() string {
	if cs >= 0 && int(cs) < len(colorSpaceNames) {
		return colorSpaceNames[cs]
	}
	return "ColorSpace(" + strconv.Itoa(int(cs)) + ")"
}

// colorSpaceFromNative converts a native colour space.  The second return
// value is false for HPDF_CS_EOF, which libharu returns on failure.
func colorSpaceFromNative(v C.HPDF_ColorSpace) (ColorSpace, bool) {
	switch v {
	case C.HPDF_CS_DEVICE_GRAY:
		return DeviceGray, true
	case C.HPDF_CS_DEVICE_RGB:
		return DeviceRGB, true
	case C.HPDF_CS_DEVICE_CMYK:
		return DeviceCMYK, true
	case C.HPDF_CS_CAL_GRAY:
		return CalGray, true
	case C.HPDF_CS_CAL_RGB:
		return CalRGB, true
	case C.HPDF_CS_LAB:
		return Lab, true
	case C.HPDF_CS_ICC_BASED:
		return ICCBased, true
	case C.HPDF_CS_SEPARATION:
		return Separation, true
	case C.HPDF_CS_DEVICE_N:
		return DeviceN, true
	case C.HPDF_CS_INDEXED:
		return Indexed, true
	case C.HPDF_CS_PATTERN:
		return Pattern, true
	case C.HPDF_CS_EOF:
		return 0, false
	}
	panic(fmt.Sprintf("invalid color space %d from libharu", v))
}

// TextAlignment controls the placement of lines within a text box.
type TextAlignment int

// These are the text alignments for [Page.TextRect].
const (
	AlignLeft TextAlignment = iota
	AlignRight
	AlignCenter
	AlignJustify
)

// native converts a to the libharu value.  The second return value is
// false if a is not one of the defined alignments.
func (a TextAlignment) native() (C.HPDF_TextAlignment, bool) {
	switch a {
	case AlignLeft:
		return C.HPDF_TALIGN_LEFT, true
	case AlignRight:
		return C.HPDF_TALIGN_RIGHT, true
	case AlignCenter:
		return C.HPDF_TALIGN_CENTER, true
	case AlignJustify:
		return C.HPDF_TALIGN_JUSTIFY, true
	}
	return C.HPDF_TALIGN_LEFT, false
}

// CompressionMode selects which parts of a document are compressed.
// The values can be combined with "|".
type CompressionMode uint

// These are the compression flags.
const (
	CompressNone     CompressionMode = C.HPDF_COMP_NONE
	CompressText     CompressionMode = C.HPDF_COMP_TEXT
	CompressImage    CompressionMode = C.HPDF_COMP_IMAGE
	CompressMetadata CompressionMode = C.HPDF_COMP_METADATA
	CompressAll      CompressionMode = C.HPDF_COMP_ALL
)

// InfoType selects an entry of the document information dictionary.
type InfoType int

// These are the document information entries.
const (
	InfoCreationDate InfoType = iota
	InfoModDate
	InfoAuthor
	InfoCreator
	InfoProducer
	InfoTitle
	InfoSubject
	InfoKeywords
)

func (it InfoType) native() C.HPDF_InfoType {
	switch it {
	case InfoCreationDate:
		return C.HPDF_INFO_CREATION_DATE
	case InfoModDate:
		return C.HPDF_INFO_MOD_DATE
	case InfoAuthor:
		return C.HPDF_INFO_AUTHOR
	case InfoCreator:
		return C.HPDF_INFO_CREATOR
	case InfoProducer:
		return C.HPDF_INFO_PRODUCER
	case InfoTitle:
		return C.HPDF_INFO_TITLE
	case InfoSubject:
		return C.HPDF_INFO_SUBJECT
	case InfoKeywords:
		return C.HPDF_INFO_KEYWORDS
	}
	return C.HPDF_INFO_EOF
}

func (it InfoType) isDate() bool {
	return it == InfoCreationDate || it == InfoModDate
}

// Permission lists the operations a reader of an encrypted document may
// perform.  The values can be combined with "|".
type Permission uint

// These are the permission flags.
const (
	PermRead    Permission = C.HPDF_ENABLE_READ
	PermPrint   Permission = C.HPDF_ENABLE_PRINT
	PermEditAll Permission = C.HPDF_ENABLE_EDIT_ALL
	PermCopy    Permission = C.HPDF_ENABLE_COPY
	PermEdit    Permission = C.HPDF_ENABLE_EDIT
)

// EncryptMode selects the revision of the PDF standard security handler.
type EncryptMode int

// These are the supported encryption revisions.
const (
	// EncryptR2 uses 40 bit RC4 keys.
	EncryptR2 EncryptMode = iota
	// EncryptR3 uses RC4 keys of 40 to 128 bits.
	EncryptR3
)

func (m EncryptMode) native() C.HPDF_EncryptMode {
	if m == EncryptR3 {
		return C.HPDF_ENCRYPT_R3
	}
	return C.HPDF_ENCRYPT_R2
}
