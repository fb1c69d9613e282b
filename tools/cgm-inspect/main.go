// seehuhn.de/go/cgm - read and write CGM graphics for NITF files
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
	"log/slog"
	"os"

	"golang.org/x/term"

	"seehuhn.de/go/cgm"
	"seehuhn.de/go/cgm/logging"
	"seehuhn.de/go/cgm/tools/internal/buildinfo"
	"seehuhn.de/go/cgm/tools/internal/profile"
)

// maxVertices is the number of vertices shown per element when the
// output goes to a terminal.
const maxVertices = 16

var (
	verbose     = flag.Bool("v", false, "log every decoded command to stderr")
	showBBox    = flag.Bool("bbox", false, "print element bounding boxes")
	maxElements = flag.Int("max-elements", 0, "fail on pictures with more than `n` elements")
	prof        = profile.AddFlags(flag.CommandLine)
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "cgm-inspect - show the contents of CGM files\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("cgm-inspect"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  cgm-inspect [options] <file.cgm>...\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  cgm-inspect annotation.cgm\n")
		fmt.Fprintf(os.Stderr, "  cgm-inspect -v -bbox annotation.cgm\n")
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	stop, err := prof.Start()
	if err != nil {
		return err
	}
	defer stop()

	if *verbose {
		logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	abbreviate := term.IsTerminal(int(os.Stdout.Fd()))
	for _, fname := range flag.Args() {
		err := inspect(fname, abbreviate)
		if err != nil {
			return fmt.Errorf("%s: %w", fname, err)
		}
	}
	return nil
}

func inspect(fname string, abbreviate bool) error {
	fd, err := os.Open(fname)
	if err != nil {
		return err
	}
	defer fd.Close()

	mf, err := cgm.Read(fd, &cgm.ReaderOptions{MaxElements: *maxElements})
	if err != nil {
		return err
	}

	fmt.Printf("Metafile %q\n", mf.Name)
	fmt.Printf("\tVersion: %d\n", mf.Version)
	fmt.Printf("\tDescription: %q\n", mf.Description)
	for i, font := range mf.FontList {
		fmt.Printf("\tFont %d: %s\n", i+1, font)
	}

	pic := mf.Picture
	if pic == nil {
		fmt.Println("no picture")
		return nil
	}
	fmt.Printf("Picture %q\n", pic.Name)
	if pic.VDCExtent != nil {
		fmt.Printf("\tVDC Extent: %s\n", pic.VDCExtent)
	}
	if pic.Body == nil {
		fmt.Println("\tno picture body")
		return nil
	}
	if c, ok := pic.Body.AuxColor.Get(); ok {
		fmt.Printf("\tAuxiliary Color: %s\n", c)
	}
	fmt.Printf("\tTransparency: %t\n", pic.Body.Transparency)
	fmt.Printf("\t%d elements\n", len(pic.Body.Elements))
	if *showBBox && len(pic.Body.Elements) > 0 {
		fmt.Printf("\tBounding Box: %s\n", formatBBox(pic))
	}

	for i, e := range pic.Body.Elements {
		fmt.Printf("\n[%d] ", i)
		fmt.Print(describe(e, abbreviate))
		if *showBBox {
			b := e.BBox()
			fmt.Printf("\tBBox: [%g %g %g %g]\n", b.LLx, b.LLy, b.URx, b.URy)
		}
	}
	return nil
}

func formatBBox(pic *cgm.Picture) string {
	b := pic.BBox()
	return fmt.Sprintf("[%g %g %g %g]", b.LLx, b.LLy, b.URx, b.URy)
}

// describe returns the description of an element.  If abbreviate is
// set, long vertex lists are shortened.
func describe(e cgm.Element, abbreviate bool) string {
	if !abbreviate {
		return e.String()
	}

	switch e := e.(type) {
	case *cgm.PolyLineElement:
		if n := len(e.Vertices); n > maxVertices {
			short := e.Clone().(*cgm.PolyLineElement)
			short.Vertices = short.Vertices[:maxVertices]
			return short.String() + omittedLine(n-maxVertices)
		}
	case *cgm.PolygonElement:
		if n := len(e.Vertices); n > maxVertices {
			short := e.Clone().(*cgm.PolygonElement)
			short.Vertices = short.Vertices[:maxVertices]
			return short.String() + omittedLine(n-maxVertices)
		}
	case *cgm.PolySetElement:
		if n := len(e.Vertices); n > maxVertices {
			short := e.Clone().(*cgm.PolySetElement)
			short.Vertices = short.Vertices[:maxVertices]
			return short.String() + omittedLine(n-maxVertices)
		}
	}
	return e.String()
}

func omittedLine(n int) string {
	return fmt.Sprintf("\t... %d more vertices\n", n)
}
