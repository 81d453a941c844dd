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

// ErrorCode identifies the kind of failure reported by libharu.
//
// ErrorCode values implement the error interface, so that
// errors.Is(err, ErrPageInsufficientSpace) can be used to test the code
// of an [*Error].
type ErrorCode int

// The error codes known to this package.  Codes marked "detail" carry a
// numeric payload in [Error.Detail].
const (
	_ ErrorCode = iota
	ErrArrayCount
	ErrArrayItemNotFound
	ErrArrayItemUnexpectedType
	ErrBinaryLength
	ErrCannotGetPalette
	ErrDictCount
	ErrDictItemNotFound
	ErrDictItemUnexpectedType
	ErrDictStreamLengthNotFound
	ErrDocEncryptDictNotFound
	ErrDocInvalidObject
	ErrDuplicateRegistration
	ErrJWWCodeNumLimitExceeded // detail
	ErrEncryptInvalidPassword
	ErrUnknownClass
	ErrGStateLimitExceeded
	ErrAllocationFailed
	ErrFileIO   // detail: OS error number
	ErrFileOpen // detail: OS error number
	ErrFontExists
	ErrFontInvalidWidthsTable
	ErrInvalidAFMHeader
	ErrInvalidAnnotation
	ErrInvalidBitPerComponent
	ErrInvalidCharMatricsData
	ErrInvalidColorSpace
	ErrInvalidCompressionMode
	ErrInvalidDateTime
	ErrInvalidDestination
	ErrInvalidDocument
	ErrInvalidDocumentState
	ErrInvalidEncoder
	ErrInvalidEncoderType
	ErrInvalidEncodingName
	ErrInvalidEncryptKeyLen
	ErrInvalidFontDefData
	ErrInvalidFontDefType
	ErrInvalidFontName
	ErrInvalidImage
	ErrInvalidJPEGData
	ErrInvalidNData
	ErrInvalidObject
	ErrInvalidObjectID
	ErrInvalidOperation
	ErrInvalidOutline
	ErrInvalidPage
	ErrInvalidPages
	ErrInvalidParameter
	ErrInvalidPNGImage
	ErrInvalidStream
	ErrMissingFileNameEntry
	ErrInvalidTTCFile
	ErrInvalidTTCIndex
	ErrInvalidWXData
	ErrItemNotFound
	ErrLibPNG // detail
	ErrNameInvalidValue
	ErrNameOutOfRange
	ErrPageInvalidParamCount
	ErrPagesMissingKidsEntry
	ErrPageCannotFindObject
	ErrPageCannotGetRootPages
	ErrPageCannotRestoreGState
	ErrPageCannotSetParent
	ErrPageFontNotFound
	ErrPageInvalidFont
	ErrPageInvalidFontSize
	ErrPageInvalidGMode
	ErrPageInvalidIndex
	ErrPageInvalidRotateValue
	ErrPageInvalidSize
	ErrPageInvalidXObject
	ErrPageOutOfRange
	ErrRealOutOfRange
	ErrStreamEOF
	ErrStreamReadLnContinue
	ErrStringOutOfRange
	ErrFunctionSkipped
	ErrTTFCannotEmbedFont
	ErrTTFInvalidCMap
	ErrTTFInvalidFormat
	ErrTTFMissingTable // detail: table index
	ErrUnsupportedFontType
	ErrUnsupportedFunc
	ErrUnsupportedJPEGFormat
	ErrUnsupportedType1Font
	ErrXRefCount
	ErrZlib // detail: zlib error code
	ErrInvalidPageIndex
	ErrInvalidURI
	ErrPageLayoutOutOfRange
	ErrPageModeOutOfRange
	ErrPageNumStyleOutOfRange // detail
	ErrAnnotInvalidIcon
	ErrAnnotInvalidBorderStyle
	ErrPageInvalidDirection // detail
	ErrInvalidFont
	ErrPageInsufficientSpace
	ErrPageInvalidDisplayTime
	ErrPageInvalidTransitionTime
	ErrInvalidPageSlideshowType
	ErrExtGStateOutOfRange
	ErrInvalidExtGState
	ErrExtGStateReadOnly
	ErrInvalidU3DData
	ErrNameCannotGetNames
	ErrInvalidICCComponentNum

	// ErrStringWithNUL is reported by this package, without calling
	// libharu, when a string argument contains a NUL byte.
	ErrStringWithNUL

	numErrorCodes
)

// nativeCodes maps libharu status values to error codes.
// Status 0x1043 is handled separately, since the code depends on the
// detail value.
var nativeCodes = map[uint64]ErrorCode{
	0x1001: ErrArrayCount,
	0x1002: ErrArrayItemNotFound,
	0x1003: ErrArrayItemUnexpectedType,
	0x1004: ErrBinaryLength,
	0x1007: ErrDictCount,
	0x1008: ErrDictItemNotFound,
	0x1009: ErrDictItemUnexpectedType,
	0x100a: ErrDictStreamLengthNotFound,
	0x100b: ErrDocEncryptDictNotFound,
	0x100c: ErrDocInvalidObject,
	0x100e: ErrDuplicateRegistration,
	0x100f: ErrJWWCodeNumLimitExceeded,
	0x1011: ErrEncryptInvalidPassword,
	0x1013: ErrUnknownClass,
	0x1014: ErrGStateLimitExceeded,
	0x1015: ErrAllocationFailed,
	0x1016: ErrFileIO,
	0x1017: ErrFileOpen,
	0x1019: ErrFontExists,
	0x101a: ErrFontInvalidWidthsTable,
	0x101b: ErrInvalidAFMHeader,
	0x101c: ErrInvalidAnnotation,
	0x101e: ErrInvalidBitPerComponent,
	0x101f: ErrInvalidCharMatricsData,
	0x1020: ErrInvalidColorSpace,
	0x1021: ErrInvalidCompressionMode,
	0x1022: ErrInvalidDateTime,
	0x1023: ErrInvalidDestination,
	0x1025: ErrInvalidDocument,
	0x1026: ErrInvalidDocumentState,
	0x1027: ErrInvalidEncoder,
	0x1028: ErrInvalidEncoderType,
	0x102b: ErrInvalidEncodingName,
	0x102c: ErrInvalidEncryptKeyLen,
	0x102d: ErrInvalidFontDefData,
	0x102e: ErrInvalidFontDefType,
	0x102f: ErrInvalidFontName,
	0x1030: ErrInvalidImage,
	0x1031: ErrInvalidJPEGData,
	0x1032: ErrInvalidNData,
	0x1033: ErrInvalidObject,
	0x1034: ErrInvalidObjectID,
	0x1035: ErrInvalidOperation,
	0x1036: ErrInvalidOutline,
	0x1037: ErrInvalidPage,
	0x1038: ErrInvalidPages,
	0x1039: ErrInvalidParameter,
	0x103b: ErrInvalidPNGImage,
	0x103c: ErrInvalidStream,
	0x103d: ErrMissingFileNameEntry,
	0x103f: ErrInvalidTTCFile,
	0x1040: ErrInvalidTTCIndex,
	0x1041: ErrInvalidWXData,
	0x1042: ErrItemNotFound,
	0x1044: ErrNameInvalidValue,
	0x1045: ErrNameOutOfRange,
	0x1048: ErrPageInvalidParamCount,
	0x1049: ErrPagesMissingKidsEntry,
	0x104a: ErrPageCannotFindObject,
	0x104b: ErrPageCannotGetRootPages,
	0x104c: ErrPageCannotRestoreGState,
	0x104d: ErrPageCannotSetParent,
	0x104e: ErrPageFontNotFound,
	0x104f: ErrPageInvalidFont,
	0x1050: ErrPageInvalidFontSize,
	0x1051: ErrPageInvalidGMode,
	0x1052: ErrPageInvalidIndex,
	0x1053: ErrPageInvalidRotateValue,
	0x1054: ErrPageInvalidSize,
	0x1055: ErrPageInvalidXObject,
	0x1056: ErrPageOutOfRange,
	0x1057: ErrRealOutOfRange,
	0x1058: ErrStreamEOF,
	0x1059: ErrStreamReadLnContinue,
	0x105b: ErrStringOutOfRange,
	0x105c: ErrFunctionSkipped,
	0x105d: ErrTTFCannotEmbedFont,
	0x105e: ErrTTFInvalidCMap,
	0x105f: ErrTTFInvalidFormat,
	0x1060: ErrTTFMissingTable,
	0x1061: ErrUnsupportedFontType,
	0x1062: ErrUnsupportedFunc,
	0x1063: ErrUnsupportedJPEGFormat,
	0x1064: ErrUnsupportedType1Font,
	0x1065: ErrXRefCount,
	0x1066: ErrZlib,
	0x1067: ErrInvalidPageIndex,
	0x1068: ErrInvalidURI,
	0x1069: ErrPageLayoutOutOfRange,
	0x1070: ErrPageModeOutOfRange,
	0x1071: ErrPageNumStyleOutOfRange,
	0x1072: ErrAnnotInvalidIcon,
	0x1073: ErrAnnotInvalidBorderStyle,
	0x1074: ErrPageInvalidDirection,
	0x1075: ErrInvalidFont,
	0x1076: ErrPageInsufficientSpace,
	0x1077: ErrPageInvalidDisplayTime,
	0x1078: ErrPageInvalidTransitionTime,
	0x1079: ErrInvalidPageSlideshowType,
	0x1080: ErrExtGStateOutOfRange,
	0x1081: ErrInvalidExtGState,
	0x1082: ErrExtGStateReadOnly,
	0x1083: ErrInvalidU3DData,
	0x1084: ErrNameCannotGetNames,
	0x1085: ErrInvalidICCComponentNum,
}

const (
	statusLibPNG        = 0x1043
	detailCannotPalette = 0x1005
)

var errorText = [numErrorCodes]string{
	ErrArrayCount:                "internal error: data consistency was lost",
	ErrArrayItemNotFound:         "internal error: data consistency was lost",
	ErrArrayItemUnexpectedType:   "internal error: data consistency was lost",
	ErrBinaryLength:              "data length exceeds the limit",
	ErrCannotGetPalette:          "cannot get palette data from PNG image",
	ErrDictCount:                 "dictionary has too many elements",
	ErrDictItemNotFound:          "internal error: data consistency was lost",
	ErrDictItemUnexpectedType:    "internal error: data consistency was lost",
	ErrDictStreamLengthNotFound:  "internal error: data consistency was lost",
	ErrDocEncryptDictNotFound:    "encryption mode set without a password",
	ErrDocInvalidObject:          "internal error: data consistency was lost",
	ErrDuplicateRegistration:     "object with the same name already registered",
	ErrJWWCodeNumLimitExceeded:   "cannot register a character to the Japanese word wrap table",
	ErrEncryptInvalidPassword:    "owner password is empty or equal to the user password",
	ErrUnknownClass:              "internal error: data consistency was lost",
	ErrGStateLimitExceeded:       "graphics state stack depth exceeded",
	ErrAllocationFailed:          "memory allocation failed",
	ErrFileIO:                    "file I/O error",
	ErrFileOpen:                  "cannot open file",
	ErrFontExists:                "font with the same name already registered",
	ErrFontInvalidWidthsTable:    "invalid font widths table",
	ErrInvalidAFMHeader:          "invalid AFM header",
	ErrInvalidAnnotation:         "invalid annotation",
	ErrInvalidBitPerComponent:    "invalid bits per component",
	ErrInvalidCharMatricsData:    "invalid char matrics data in AFM file",
	ErrInvalidColorSpace:         "invalid color space",
	ErrInvalidCompressionMode:    "invalid compression mode",
	ErrInvalidDateTime:           "invalid date/time value",
	ErrInvalidDestination:        "invalid destination",
	ErrInvalidDocument:           "invalid document handle",
	ErrInvalidDocumentState:      "function invalid in the present document state",
	ErrInvalidEncoder:            "invalid encoder",
	ErrInvalidEncoderType:        "combination of font and encoder is wrong",
	ErrInvalidEncodingName:       "invalid encoding name",
	ErrInvalidEncryptKeyLen:      "invalid encryption key length",
	ErrInvalidFontDefData:        "invalid font definition data",
	ErrInvalidFontDefType:        "internal error: data consistency was lost",
	ErrInvalidFontName:           "font with the specified name is not found",
	ErrInvalidImage:              "unsupported image format",
	ErrInvalidJPEGData:           "unsupported JPEG image format",
	ErrInvalidNData:              "cannot read a PostScript font metrics file",
	ErrInvalidObject:             "invalid object",
	ErrInvalidObjectID:           "internal error: data consistency was lost",
	ErrInvalidOperation:          "invalid image color space operation",
	ErrInvalidOutline:            "invalid outline",
	ErrInvalidPage:               "invalid page",
	ErrInvalidPages:              "invalid pages object",
	ErrInvalidParameter:          "invalid parameter",
	ErrInvalidPNGImage:           "invalid PNG image",
	ErrInvalidStream:             "internal error: data consistency was lost",
	ErrMissingFileNameEntry:      "internal error: _FILE_NAME entry for delayed loading is missing",
	ErrInvalidTTCFile:            "invalid TrueType collection file",
	ErrInvalidTTCIndex:           "TrueType collection index out of range",
	ErrInvalidWXData:             "cannot read a width data in an AFM file",
	ErrItemNotFound:              "item not found",
	ErrLibPNG:                    "libpng error",
	ErrNameInvalidValue:          "internal error: data consistency was lost",
	ErrNameOutOfRange:            "internal error: data consistency was lost",
	ErrPageInvalidParamCount:     "invalid number of parameters",
	ErrPagesMissingKidsEntry:     "internal error: data consistency was lost",
	ErrPageCannotFindObject:      "internal error: data consistency was lost",
	ErrPageCannotGetRootPages:    "internal error: data consistency was lost",
	ErrPageCannotRestoreGState:   "no graphics state to restore",
	ErrPageCannotSetParent:       "internal error: data consistency was lost",
	ErrPageFontNotFound:          "current font is not set",
	ErrPageInvalidFont:           "invalid font handle",
	ErrPageInvalidFontSize:       "invalid font size",
	ErrPageInvalidGMode:          "operator invalid in the current graphics mode",
	ErrPageInvalidIndex:          "internal error: data consistency was lost",
	ErrPageInvalidRotateValue:    "rotation angle is not a multiple of 90",
	ErrPageInvalidSize:           "invalid page size",
	ErrPageInvalidXObject:        "invalid image handle",
	ErrPageOutOfRange:            "value out of range",
	ErrRealOutOfRange:            "value out of range",
	ErrStreamEOF:                 "unexpected end of stream",
	ErrStreamReadLnContinue:      "internal error: data consistency was lost",
	ErrStringOutOfRange:          "text is too long",
	ErrFunctionSkipped:           "function not executed because of other errors",
	ErrTTFCannotEmbedFont:        "font cannot be embedded (license restriction)",
	ErrTTFInvalidCMap:            "unsupported TrueType cmap table",
	ErrTTFInvalidFormat:          "unsupported TrueType format",
	ErrTTFMissingTable:           "missing TrueType table",
	ErrUnsupportedFontType:       "internal error: data consistency was lost",
	ErrUnsupportedFunc:           "unsupported function (library built without the required dependency)",
	ErrUnsupportedJPEGFormat:     "unsupported JPEG format",
	ErrUnsupportedType1Font:      "failed to parse PFB file",
	ErrXRefCount:                 "internal error: data consistency was lost",
	ErrZlib:                      "zlib error",
	ErrInvalidPageIndex:          "invalid page index",
	ErrInvalidURI:                "invalid URI",
	ErrPageLayoutOutOfRange:      "page layout out of range",
	ErrPageModeOutOfRange:        "page mode out of range",
	ErrPageNumStyleOutOfRange:    "page numbering style out of range",
	ErrAnnotInvalidIcon:          "invalid annotation icon",
	ErrAnnotInvalidBorderStyle:   "invalid annotation border style",
	ErrPageInvalidDirection:      "invalid page direction",
	ErrInvalidFont:               "invalid font handle",
	ErrPageInsufficientSpace:     "insufficient space for text",
	ErrPageInvalidDisplayTime:    "invalid display time",
	ErrPageInvalidTransitionTime: "invalid transition time",
	ErrInvalidPageSlideshowType:  "invalid slideshow type",
	ErrExtGStateOutOfRange:       "extended graphics state value out of range",
	ErrInvalidExtGState:          "invalid extended graphics state",
	ErrExtGStateReadOnly:         "extended graphics state is read-only",
	ErrInvalidU3DData:            "invalid U3D data",
	ErrNameCannotGetNames:        "cannot get names",
	ErrInvalidICCComponentNum:    "invalid number of ICC components",
	ErrStringWithNUL:             "string contains a NUL byte",
}
