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
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"seehuhn.de/go/cgm"
	"seehuhn.de/go/cgm/optional"
	"seehuhn.de/go/cgm/tools/internal/buildinfo"
	"seehuhn.de/go/cgm/tools/internal/profile"
)

var (
	outFile = flag.String("o", "", "write the metafile to `file` instead of stdout")
	prof    = profile.AddFlags(flag.CommandLine)
)

var errTerminal = errors.New("refusing to write binary data to a terminal, use -o")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "cgm-sample - write a sample NITF annotation metafile\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("cgm-sample"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  cgm-sample [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  cgm-sample -o sample.cgm\n")
		fmt.Fprintf(os.Stderr, "  cgm-sample | cgm-inspect /dev/stdin\n")
	}
	flag.Parse()

	if flag.NArg() != 0 {
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

	mf := sample()

	if *outFile == "" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errTerminal
		}
		return write(os.Stdout, mf)
	}

	fd, err := os.Create(*outFile)
	if err != nil {
		return err
	}
	err = write(fd, mf)
	err2 := fd.Close()
	if err == nil {
		err = err2
	}
	return err
}

func write(w io.Writer, mf *cgm.Metafile) error {
	return mf.Write(w)
}

// sample returns a metafile with a green text label and a red cross.
func sample() *cgm.Metafile {
	mf := cgm.NewMetafile("TEXT", "TEXT")
	pic := mf.CreatePicture("Text")
	mf.FontList = []string{"Helvetica", "TIMES_ROMAN", "TIMES_ITALIC", "Courier"}

	text := cgm.NewTextElement()
	text.Text = &cgm.Text{X: 50, Y: 50, Str: "NITRO rocks!"}
	text.Attributes.CharacterHeight = optional.NewInt16(21)
	text.Attributes.TextFontIndex = optional.NewInt16(2)
	text.Attributes.CharacterOrientation.Set(cgm.Rectangle{X1: 0, Y1: 1, X2: 1, Y2: 0})
	text.Attributes.TextColor.Set(cgm.Color{R: 0, G: 255, B: 0})
	pic.Body.Add(text)

	line := cgm.NewPolyLineElement()
	line.Attributes.LineWidth = optional.NewInt16(2)
	line.Attributes.LineType.Set(cgm.LineSolid)
	line.Attributes.LineColor.Set(cgm.Color{R: 255, G: 0, B: 0})

	// the second line shares all attributes with the first
	cross := line.Clone().(*cgm.PolyLineElement)

	line.Vertices = []cgm.Vertex{{X: 25, Y: 50}, {X: 75, Y: 50}}
	cross.Vertices = []cgm.Vertex{{X: 50, Y: 25}, {X: 50, Y: 75}}
	pic.Body.Add(line, cross)

	return mf
}
