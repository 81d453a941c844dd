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

// Options allows to customize a new document.
// The zero value of each field leaves the libharu default in place.
type Options struct {
	// Compression selects the parts of the document which are compressed
	// with zlib.
	Compression CompressionMode

	// PageLayout is the layout used by viewers when opening the document.
	PageLayout PageLayout

	// PageMode selects the panels shown by viewers when opening the
	// document.
	PageMode PageMode

	// PagesPerNode, if non-zero, is the maximum number of pages
	// grouped under one node of the page tree.
	PagesPerNode uint
}

func (opt *Options) apply(doc *Document) error {
	if opt == nil {
		return nil
	}
	if opt.Compression != CompressNone {
		if err := doc.SetCompression(opt.Compression); err != nil {
			return err
		}
	}
	if opt.PageLayout != LayoutDefault {
		if err := doc.SetPageLayout(opt.PageLayout); err != nil {
			return err
		}
	}
	if opt.PageMode != ModeUseNone {
		if err := doc.SetPageMode(opt.PageMode); err != nil {
			return err
		}
	}
	if opt.PagesPerNode > 0 {
		if err := doc.SetPagesConfiguration(opt.PagesPerNode); err != nil {
			return err
		}
	}
	return nil
}
