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

package main

import (
	"bufio"
	"io"
	"os"
	"strings"
	"time"

	"seehuhn.de/go/haru"
	"seehuhn.de/go/haru/font/gofont"
)

// job describes one conversion.
type job struct {
	cfg   *Config
	title string

	// ownerPassword, if set, encrypts the output so that it can be printed
	// but not edited.
	ownerPassword string
}

// convert typesets the lines of in and writes the PDF to out.
func (j *job) convert(in io.Reader, out io.Writer) error {
	// The font file must stay open until the document is released.
	var fontFile *os.File
	if j.cfg.Font.File != "" {
		var err error
		fontFile, err = os.Open(j.cfg.Font.File)
		if err != nil {
			return err
		}
		defer fontFile.Close()
	}

	doc, err := haru.New(j.cfg.Options())
	if err != nil {
		return err
	}
	defer doc.Close()

	var font *haru.Font
	if fontFile != nil {
		font, err = doc.LoadTTFont(fontFile)
	} else {
		font, err = gofont.Mono.Load(doc)
	}
	if err != nil {
		return err
	}

	if err := j.setInfo(doc); err != nil {
		return err
	}

	t := &typesetter{doc: doc, cfg: j.cfg, font: font}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		err := t.line(expandTabs(scanner.Text(), j.cfg.TabWidth))
		if err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if err := t.finish(); err != nil {
		return err
	}

	return doc.Save(out)
}

func (j *job) setInfo(doc *haru.Document) error {
	fields := []struct {
		key   haru.InfoType
		value string
	}{
		{haru.InfoTitle, j.title},
		{haru.InfoAuthor, j.cfg.Info.Author},
		{haru.InfoSubject, j.cfg.Info.Subject},
		{haru.InfoKeywords, j.cfg.Info.Keywords},
		{haru.InfoCreator, "seehuhn.de/go/haru/tools/txt2pdf"},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		if err := doc.SetInfo(f.key, f.value); err != nil {
			return err
		}
	}
	if err := doc.SetInfoDate(haru.InfoCreationDate, time.Now()); err != nil {
		return err
	}

	if j.ownerPassword != "" {
		if err := doc.SetPassword(j.ownerPassword, ""); err != nil {
			return err
		}
		if err := doc.SetPermission(haru.PermRead | haru.PermPrint); err != nil {
			return err
		}
	}
	return nil
}

// typesetter fills pages with lines of text.
type typesetter struct {
	doc  *haru.Document
	cfg  *Config
	font *haru.Font

	page      *haru.Page
	pageLines int
}

func (t *typesetter) line(text string) error {
	if t.page == nil {
		if err := t.newPage(); err != nil {
			return err
		}
	}

	if text != "" {
		if err := t.page.ShowText(text); err != nil {
			return err
		}
	}
	if err := t.page.MoveToNextLine(); err != nil {
		return err
	}

	t.pageLines++
	if t.pageLines >= t.cfg.linesPerPage() {
		return t.finish()
	}
	return nil
}

func (t *typesetter) newPage() error {
	page, err := t.doc.AddPage()
	if err != nil {
		return err
	}
	pc := t.cfg.Page
	if err := page.SetWidth(pc.Width); err != nil {
		return err
	}
	if err := page.SetHeight(pc.Height); err != nil {
		return err
	}
	if err := page.BeginText(); err != nil {
		return err
	}
	if err := page.SetFontAndSize(t.font, t.cfg.Font.Size); err != nil {
		return err
	}
	if err := page.SetTextLeading(t.cfg.Font.Leading); err != nil {
		return err
	}
	err = page.MoveTextPos(pc.Margin, pc.Height-pc.Margin-t.cfg.Font.Size)
	if err != nil {
		return err
	}

	t.page = page
	t.pageLines = 0
	return nil
}

// finish closes the text object on the current page, if any.
func (t *typesetter) finish() error {
	if t.page == nil {
		return nil
	}
	err := t.page.EndText()
	t.page = nil
	return err
}

// expandTabs replaces tab characters by spaces, using tab stops every
// width characters.
func expandTabs(s string, width int) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}

	var b strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			for {
				b.WriteByte(' ')
				col++
				if col%width == 0 {
					break
				}
			}
			continue
		}
		b.WriteRune(r)
		col++
	}
	return b.String()
}
