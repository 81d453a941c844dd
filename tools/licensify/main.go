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

// Licensify prepends the license header to all Go source files below the
// current directory which do not carry it yet.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
)

const header = `// seehuhn.de/go/haru - Go bindings for the libharu PDF library
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

`

var dryRun = flag.Bool("n", false, "only list the files which would be changed")

func main() {
	flag.Parse()
	root := "."
	if flag.NArg() > 0 {
		root = flag.Arg(0)
	}
	if err := filepath.WalkDir(root, visit); err != nil {
		log.Fatal(err)
	}
}

func visit(path string, d fs.DirEntry, err error) error {
	if err != nil {
		return err
	}
	if d.IsDir() {
		if skipDir(d.Name()) && path != "." {
			fmt.Println("skip " + path)
			return fs.SkipDir
		}
		return nil
	}
	if !isSource(path) {
		return nil
	}

	body, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch {
	case bytes.HasPrefix(body, []byte(header)):
		return nil
	case !bytes.HasPrefix(body, []byte("package ")):
		fmt.Println("ATTENTION " + path)
		return nil
	}

	fmt.Println("updating " + path)
	if *dryRun {
		return nil
	}
	return os.WriteFile(path, append([]byte(header), body...), 0o644)
}

// skipDir reports whether a directory holds files which are not part of
// this module.
func skipDir(name string) bool {
	return name == "testdata" || strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")
}

// isSource reports whether path is a Go source file.  The C files carry
// the header as a block comment and are maintained by hand.
func isSource(path string) bool {
	return filepath.Ext(path) == ".go"
}
