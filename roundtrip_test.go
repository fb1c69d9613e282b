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

package cgm

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/cgm/optional"
)

// testMetafile returns a metafile with a picture containing the given
// elements.
func testMetafile(elems ...Element) *Metafile {
	mf := NewMetafile("test", "round trip test")
	pic := mf.CreatePicture("picture")
	pic.Body.Add(elems...)
	return mf
}

var testCases = []func() *Metafile{
	func() *Metafile {
		return NewMetafile("empty", "")
	},
	func() *Metafile {
		mf := NewMetafile("fonts", "metafile with fonts but no picture")
		mf.FontList = []string{"Helvetica", "TIMES_ROMAN", "TIMES_ITALIC", "Courier"}
		return mf
	},
	func() *Metafile {
		mf := testMetafile()
		mf.Picture.VDCExtent = &Rectangle{X1: 0, Y1: 0, X2: 1024, Y2: 768}
		mf.Picture.Body.Transparency = false
		mf.Picture.Body.AuxColor.Set(Color{R: 255, G: 255, B: 255})
		return mf
	},
	func() *Metafile {
		e := NewTextElement()
		e.Text = &Text{X: 50, Y: 50, Str: "NITRO rocks!"}
		e.Attributes.TextColor.Set(Color{G: 255})
		e.Attributes.CharacterHeight.Set(21)
		e.Attributes.TextFontIndex.Set(2)
		e.Attributes.CharacterOrientation.Set(Rectangle{X1: 0, Y1: 1, X2: 1, Y2: 0})
		mf := testMetafile(e)
		mf.FontList = []string{"Helvetica", "Courier"}
		return mf
	},
	func() *Metafile {
		e := NewTextElement()
		e.Text = &Text{X: -3, Y: 7, Str: "Grüße"}
		return testMetafile(e)
	},
	func() *Metafile {
		e := NewPolygonElement()
		e.Vertices = []Vertex{{0, 0}, {100, 0}, {50, 80}}
		e.Attributes.FillColor.Set(Color{R: 10, G: 20, B: 30})
		e.Attributes.EdgeColor.Set(Color{R: 40, G: 50, B: 60})
		e.Attributes.InteriorStyle.Set(InteriorHatch)
		e.Attributes.EdgeVisibility.Set(true)
		e.Attributes.EdgeWidth.Set(3)
		e.Attributes.EdgeType.Set(LineDashDot)
		e.Attributes.HatchIndex.Set(HatchPositiveNegative)
		return testMetafile(e)
	},
	func() *Metafile {
		e := NewPolyLineElement()
		e.Vertices = []Vertex{{25, 50}, {75, 50}}
		e.Attributes.LineColor.Set(Color{R: 255})
		e.Attributes.LineWidth.Set(2)
		e.Attributes.LineType.Set(LineSolid)
		return testMetafile(e)
	},
	func() *Metafile {
		e := NewPolySetElement()
		e.Vertices = make([]VertexClose, 4)
		for i, xy := range []Vertex{{0, 0}, {10, 0}, {10, 10}, {0, 10}} {
			e.Vertices[i].X = xy.X
			e.Vertices[i].Y = xy.Y
			e.Vertices[i].EdgeOut.Set(EdgeVisible)
		}
		e.Vertices[3].EdgeOut.Set(EdgeCloseVisible)
		e.Attributes.EdgeVisibility.Set(false)
		return testMetafile(e)
	},
	func() *Metafile {
		e := NewEllipseElement()
		e.CenterX, e.CenterY = 100, 100
		e.End1X, e.End1Y = 150, 100
		e.End2X, e.End2Y = 100, 120
		e.Attributes.InteriorStyle.Set(InteriorSolid)
		e.Attributes.FillColor.Set(Color{B: 200})
		return testMetafile(e)
	},
	func() *Metafile {
		e := NewEllipticalArcElement()
		e.CenterX, e.CenterY = 1, 2
		e.End1X, e.End1Y = 3, 4
		e.End2X, e.End2Y = 5, 6
		e.StartVectorX, e.StartVectorY = 7, 8
		e.EndVectorX, e.EndVectorY = 9, 10
		e.Attributes.LineType.Set(LineDot)
		return testMetafile(e)
	},
	func() *Metafile {
		e := NewEllipticalArcCloseElement()
		e.CenterX, e.CenterY = -1, -2
		e.End1X, e.End1Y = -3, -4
		e.End2X, e.End2Y = -5, -6
		e.StartVectorX, e.StartVectorY = -7, -8
		e.EndVectorX, e.EndVectorY = -9, -10
		e.CloseType.Set(CloseChord)
		e.Attributes.EdgeWidth.Set(1)
		return testMetafile(e)
	},
	func() *Metafile {
		e := NewRectangleElement()
		e.Rectangle = &Rectangle{X1: 10, Y1: 20, X2: 30, Y2: 40}
		e.Attributes.InteriorStyle.Set(InteriorEmpty)
		return testMetafile(e)
	},
	func() *Metafile {
		e := NewCircleElement()
		e.CenterX, e.CenterY, e.Radius = 320, 240, 32767
		return testMetafile(e)
	},
	func() *Metafile {
		e := NewCircularArcElement()
		e.CenterX, e.CenterY = 0, 0
		e.StartX, e.StartY = 10, 0
		e.EndX, e.EndY = 0, 10
		e.Radius = 10
		e.Attributes.LineColor.Set(Color{R: 1, G: 2, B: 3})
		return testMetafile(e)
	},
	func() *Metafile {
		e := NewCircularArcCloseElement()
		e.CenterX, e.CenterY = 0, 0
		e.StartX, e.StartY = -10, 0
		e.EndX, e.EndY = 0, -10
		e.Radius = 10
		e.CloseType.Set(ClosePie)
		e.Attributes.FillColor.Set(Color{R: 9, G: 8, B: 7})
		return testMetafile(e)
	},
	func() *Metafile {
		// every element type in one picture
		var elems []Element
		for t := ElementType(0); t < numElementTypes; t++ {
			e, _ := NewElement(t)
			switch e := e.(type) {
			case *TextElement:
				e.Text = &Text{Str: "x"}
			case *PolySetElement:
				var v VertexClose
				v.EdgeOut.Set(EdgeInvisible)
				e.Vertices = []VertexClose{v}
			case *RectangleElement:
				e.Rectangle = &Rectangle{}
			case *EllipticalArcCloseElement:
				e.CloseType.Set(ClosePie)
			case *CircularArcCloseElement:
				e.CloseType.Set(CloseChord)
			}
			elems = append(elems, e)
		}
		return testMetafile(elems...)
	},
}

func TestRoundTrip(t *testing.T) {
	for i, makeMF := range testCases {
		mf1 := makeMF()
		data, err := mf1.Encode()
		if err != nil {
			t.Fatalf("%d: %v", i, err)
		}

		mf2, err := Read(bytes.NewReader(data), nil)
		if err != nil {
			t.Fatalf("%d: %v", i, err)
		}

		if d := cmp.Diff(mf1, mf2); d != "" {
			t.Errorf("%d: round trip failed (-want +got):\n%s", i, d)
		}
	}
}

// TestRoundTripAttributesIsolated checks that attributes of one element
// do not leak into the next element after a round trip.
func TestRoundTripAttributesIsolated(t *testing.T) {
	c1 := NewCircleElement()
	c1.Attributes.FillColor.Set(Color{R: 255})
	c1.Attributes.InteriorStyle.Set(InteriorSolid)
	c2 := NewCircleElement()
	c2.CenterX = 5
	line := NewPolyLineElement()
	line.Vertices = []Vertex{{1, 1}}

	mf1 := testMetafile(c1, c2, line)
	data, err := mf1.Encode()
	if err != nil {
		t.Fatal(err)
	}
	mf2, err := Read(bytes.NewReader(data), nil)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(mf1, mf2); d != "" {
		t.Errorf("round trip failed (-want +got):\n%s", d)
	}

	got := mf2.Picture.Body.Elements[1].(*CircleElement)
	if got.Attributes.FillColor.IsSet() || got.Attributes.InteriorStyle.IsSet() {
		t.Errorf("attributes leaked into second circle: %s", got)
	}
}

func TestRoundTripUnsetEdgeVisibility(t *testing.T) {
	// An unset boolean must stay distinguishable from false.
	p := NewPolygonElement()
	p.Vertices = []Vertex{{0, 0}}
	mf1 := testMetafile(p)

	data, err := mf1.Encode()
	if err != nil {
		t.Fatal(err)
	}
	mf2, err := Read(bytes.NewReader(data), nil)
	if err != nil {
		t.Fatal(err)
	}
	got := mf2.Picture.Body.Elements[0].(*PolygonElement)
	if d := cmp.Diff(optional.Bool{}, got.Attributes.EdgeVisibility); d != "" {
		t.Errorf("edge visibility (-want +got):\n%s", d)
	}
}

func FuzzRoundTrip(f *testing.F) {
	for _, makeMF := range testCases {
		data, err := makeMF().Encode()
		if err != nil {
			f.Fatal(err)
		}
		f.Add(data)
	}
	f.Add([]byte{0x00, 0x40})
	f.Add(stream(beginMetafile, beginPicture, cmd(0, 5)))
	f.Add(stream(beginMetafile, cmd(1, 13, 1, 'A', 0)))
	f.Add(stream(cmd(0, 1, append([]byte{255}, bytes.Repeat([]byte{'a'}, 255)...)...)))

	f.Fuzz(func(t *testing.T, data []byte) {
		mf1, err := Read(bytes.NewReader(data), &ReaderOptions{MaxElements: 1000})
		if err != nil {
			var cgmErr *Error
			if !errors.As(err, &cgmErr) {
				t.Fatalf("error of type %T: %v", err, err)
			}
			return
		}

		if mf1.Name == "" {
			// A metafile without name can be read, for example from a
			// stream holding only END METAFILE, but not written.
			return
		}

		data2, err := mf1.Encode()
		if err != nil {
			t.Fatal(err)
		}

		mf2, err := Read(bytes.NewReader(data2), nil)
		if err != nil {
			t.Fatal(err)
		}

		if d := cmp.Diff(mf1, mf2, cmpopts.EquateEmpty()); d != "" {
			t.Errorf("round trip failed (-want +got):\n%s", d)
		}
	})
}
