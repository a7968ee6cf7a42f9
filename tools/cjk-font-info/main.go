// seehuhn.de/go/cjkfont - non-embedded CJK fonts for PDF files
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
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"seehuhn.de/go/cjkfont"
	"seehuhn.de/go/cjkfont/font/widths"
	"seehuhn.de/go/cjkfont/pdf"
	"seehuhn.de/go/cjkfont/tools/internal/buildinfo"
	"seehuhn.de/go/cjkfont/tools/internal/profile"
)

var (
	listArg     = flag.Bool("list", false, "list the fonts in the catalog")
	dictArg     = flag.Bool("dict", false, "print the complete font dictionary")
	shortestArg = flag.Bool("shortest", false, "also show the shortest possible W array")
	dirArg      = flag.String("dir", "", "read the catalog and font metrics from `directory`")
	verboseArg  = flag.Bool("v", false, "log font builds to stderr")
	cpuprofile  = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile  = flag.String("memprofile", "", "write memory profile to `file`")
)

// defaultWidth is the line width used when stdout is not a terminal.
const defaultWidth = 79

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "cjk-font-info - show the PDF metrics of non-embedded CJK fonts\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("cjk-font-info"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  cjk-font-info [options] <font>...\n")
		fmt.Fprintf(os.Stderr, "  cjk-font-info -list\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  cjk-font-info STSong-Light\n")
		fmt.Fprintf(os.Stderr, "  cjk-font-info -shortest HeiseiMin-W3 MSung-Light\n")
	}
	flag.Parse()

	if !*listArg && flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
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
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		cjkfont.SetLogger(slog.New(h))
	}

	var opt *cjkfont.Options
	if *dirArg != "" {
		opt = &cjkfont.Options{FS: os.DirFS(*dirArg)}
	}
	r, err := cjkfont.New(opt)
	if err != nil {
		return err
	}

	out := &printer{w: os.Stdout, width: terminalWidth()}

	if *listArg {
		for _, name := range r.Fonts() {
			f, err := r.GetFont(name)
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: %v\n", err)
				continue
			}
			fmt.Fprintf(out.w, "%-20s %-10s %-8s %s\n",
				f.Name, f.Type, f.Language(), f.CIDSystemInfo)
		}
	}

	for i, name := range flag.Args() {
		if i > 0 || *listArg {
			fmt.Fprintln(out.w)
		}
		f, err := r.GetFont(name)
		if err != nil {
			return err
		}
		err = out.showFont(f)
		if err != nil {
			return err
		}
	}
	return nil
}

func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w < 20 {
		return defaultWidth
	}
	return w - 1
}

type printer struct {
	w     io.Writer
	width int
}

func (p *printer) showFont(f *cjkfont.Font) error {
	fd := f.Descriptor
	ros := f.Collection
	fmt.Fprintf(p.w, "%s (%s, %s)\n", f.Name, f.Type, f.Language())
	fmt.Fprintf(p.w, "  character collection: %s-%s-%d\n", ros.Registry, ros.Ordering, ros.Supplement)
	fmt.Fprintf(p.w, "  encoding: %s\n", f.Encoding)
	fmt.Fprintf(p.w, "  flags: %s\n", fd.Flags)
	fmt.Fprintf(p.w, "  bbox: %s\n", fd.FontBBox)
	fmt.Fprintf(p.w, "  ascent %d, descent %d, cap height %d, stem %d\n",
		fd.Ascent, fd.Descent, fd.CapHeight, fd.StemV)
	fmt.Fprintf(p.w, "  DW: %d\n", f.DW)

	wText := pdf.Format(f.W)
	fmt.Fprintf(p.w, "  W (%d bytes):\n", len(wText))
	p.wrapped(wText)

	if *shortestArg {
		pairs, err := widths.Decode(f.W)
		if err != nil {
			return err
		}
		short, err := widths.EncodeShortest(pairs)
		if err != nil {
			return err
		}
		sText := pdf.Format(short)
		fmt.Fprintf(p.w, "  shortest W (%d bytes, %d saved):\n", len(sText), len(wText)-len(sText))
		p.wrapped(sText)
	}

	if *dictArg {
		fmt.Fprintln(p.w, "  font dictionary:")
		p.wrapped(pdf.Format(f.AsDict()))
	}
	return nil
}

func (p *printer) wrapped(s string) {
	const indent = "    "
	for _, line := range wrap(s, p.width-len(indent)) {
		fmt.Fprintln(p.w, indent+line)
	}
}
