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
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/haru"
)

// ConfigError describes a problem with one field of a layout file.
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error in '%s': %s", e.Field, e.Message)
	}
	return "config error: " + e.Message
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Config describes the page layout used by txt2pdf.
type Config struct {
	Page PageConfig `yaml:"page"`
	Font FontConfig `yaml:"font"`
	Info InfoConfig `yaml:"info"`

	// TabWidth is the distance between tab stops, in characters.
	TabWidth int `yaml:"tab-width"`

	// Compression is one of "none", "text" or "all".
	Compression string `yaml:"compression"`

	// Layout is the page layout requested from PDF viewers.
	Layout string `yaml:"page-layout"`
}

// PageConfig gives the paper size and margin, in PDF units.
type PageConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Margin float64 `yaml:"margin"`
}

// FontConfig selects the font used for the text.
type FontConfig struct {
	// File is the name of a TrueType font file.
	// If this is empty, Go Mono is used.
	File string `yaml:"file"`

	Size    float64 `yaml:"size"`
	Leading float64 `yaml:"leading"`
}

// InfoConfig gives values for the document information dictionary.
type InfoConfig struct {
	Author   string `yaml:"author"`
	Subject  string `yaml:"subject"`
	Keywords string `yaml:"keywords"`
}

// DefaultConfig returns the settings used when no layout file is given.
func DefaultConfig() *Config {
	return &Config{
		Page: PageConfig{
			Width:  595.276,
			Height: 841.89,
			Margin: 72,
		},
		Font: FontConfig{
			Size:    10,
			Leading: 12,
		},
		TabWidth:    4,
		Compression: "all",
		Layout:      "one-column",
	}
}

// LoadConfig reads a layout file.  Fields missing from the file keep their
// default values.
func LoadConfig(fname string) (*Config, error) {
	body, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	return ParseConfig(body)
}

// ParseConfig decodes a layout file from YAML.
func ParseConfig(body []byte) (*Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(body))
	dec.KnownFields(true)
	err := dec.Decode(cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, &ConfigError{Message: "malformed YAML", Err: err}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the layout is usable.
func (c *Config) Validate() error {
	switch {
	case c.Page.Width < 3 || c.Page.Width > 14400:
		return &ConfigError{Field: "page.width", Message: "must be between 3 and 14400"}
	case c.Page.Height < 3 || c.Page.Height > 14400:
		return &ConfigError{Field: "page.height", Message: "must be between 3 and 14400"}
	case c.Page.Margin < 0:
		return &ConfigError{Field: "page.margin", Message: "must not be negative"}
	case c.Font.Size <= 0:
		return &ConfigError{Field: "font.size", Message: "must be positive"}
	case c.Font.Leading <= 0:
		return &ConfigError{Field: "font.leading", Message: "must be positive"}
	case c.TabWidth < 1:
		return &ConfigError{Field: "tab-width", Message: "must be at least 1"}
	}

	if c.linesPerPage() < 1 {
		return &ConfigError{Field: "page", Message: "no room for text inside the margins"}
	}
	if _, ok := compressionModes[c.Compression]; !ok {
		return &ConfigError{
			Field:   "compression",
			Message: fmt.Sprintf("unknown value %q", c.Compression),
		}
	}
	if _, ok := pageLayouts[c.Layout]; !ok {
		return &ConfigError{
			Field:   "page-layout",
			Message: fmt.Sprintf("unknown value %q", c.Layout),
		}
	}
	return nil
}

// Options returns the document options selected by the configuration.
func (c *Config) Options() *haru.Options {
	return &haru.Options{
		Compression: compressionModes[c.Compression],
		PageLayout:  pageLayouts[c.Layout],
	}
}

func (c *Config) linesPerPage() int {
	return int((c.Page.Height - 2*c.Page.Margin) / c.Font.Leading)
}

var compressionModes = map[string]haru.CompressionMode{
	"none": haru.CompressNone,
	"text": haru.CompressText,
	"all":  haru.CompressAll,
}

var pageLayouts = map[string]haru.PageLayout{
	"single-page":      haru.LayoutSinglePage,
	"one-column":       haru.LayoutOneColumn,
	"two-column-left":  haru.LayoutTwoColumnLeft,
	"two-column-right": haru.LayoutTwoColumnRight,
}
