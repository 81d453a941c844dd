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
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"seehuhn.de/go/haru"
	"seehuhn.de/go/haru/tools/internal/buildinfo"
	"seehuhn.de/go/haru/tools/internal/profile"
)

var (
	outArg     = flag.String("o", "", "write the PDF to `file` (\"-\" for standard output)")
	forceArg   = flag.Bool("f", false, "overwrite existing output files")
	configArg  = flag.String("config", "", "read the page layout from the YAML `file`")
	fontArg    = flag.String("font", "", "use the TrueType font `file` instead of Go Mono")
	lockArg    = flag.Bool("lock", false, "prompt for an owner password and disallow editing")
	verboseArg = flag.Bool("v", false, "log libharu activity to standard error")
	versionArg = flag.Bool("version", false, "print version information and exit")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "txt2pdf \u2014 convert text files to PDF\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("txt2pdf"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  txt2pdf [options] <file.txt>...\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  file.txt   one or more text files (\"-\" for standard input)\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  txt2pdf notes.txt\n")
		fmt.Fprintf(os.Stderr, "  txt2pdf -config a5.yaml -o notes.pdf notes.txt\n")
		fmt.Fprintf(os.Stderr, "  ls -l | txt2pdf -o - - | lpr\n")
	}
	flag.Parse()

	if *versionArg {
		fmt.Println(buildinfo.Short("txt2pdf"))
		return
	}
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "txt2pdf:", err)
		os.Exit(1)
	}
}

func run() error {
	stop, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer stop()

	if *verboseArg {
		opts := &slog.HandlerOptions{Level: slog.LevelDebug}
		haru.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, opts)))
	}

	cfg := DefaultConfig()
	if *configArg != "" {
		cfg, err = LoadConfig(*configArg)
		if err != nil {
			return err
		}
	}
	if *fontArg != "" {
		cfg.Font.File = *fontArg
	}

	if *outArg != "" && flag.NArg() > 1 {
		return errors.New("-o can only be used with a single input file")
	}

	var passwd string
	if *lockArg {
		passwd, err = readPassword()
		if err != nil {
			return err
		}
	}

	for _, inName := range flag.Args() {
		outName := *outArg
		if outName == "" {
			outName = strings.TrimSuffix(inName, filepath.Ext(inName)) + ".pdf"
			if inName == "-" {
				outName = "-"
			}
		}

		j := &job{cfg: cfg, title: inName, ownerPassword: passwd}
		if err := convertFile(j, inName, outName); err != nil {
			return fmt.Errorf("%s: %w", inName, err)
		}
	}
	return nil
}

func convertFile(j *job, inName, outName string) error {
	var in io.Reader = os.Stdin
	if inName != "-" {
		fd, err := os.Open(inName)
		if err != nil {
			return err
		}
		defer fd.Close()
		in = fd
	} else {
		j.title = "standard input"
	}

	if outName == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("refusing to write PDF data to a terminal")
		}
		return j.convert(in, os.Stdout)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !*forceArg {
		flags |= os.O_EXCL
	}
	out, err := os.OpenFile(outName, flags, 0o644)
	if err != nil {
		return err
	}
	err = j.convert(in, out)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(outName)
		return err
	}
	fmt.Fprintln(os.Stderr, inName, "->", outName)
	return nil
}

func readPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("-lock needs a terminal to read the password")
	}
	fmt.Fprint(os.Stderr, "owner password: ")
	passwd, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	if len(passwd) == 0 {
		return "", errors.New("empty owner password")
	}
	return string(passwd), nil
}
