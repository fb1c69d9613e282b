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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestNewElement(t *testing.T) {
	for tp := ElementType(0); tp < numElementTypes; tp++ {
		e, err := NewElement(tp)
		if err != nil {
			t.Fatal(err)
		}
		if e.Type() != tp {
			t.Errorf("NewElement(%s) has type %s", tp, e.Type())
		}
		if !strings.HasPrefix(e.String(), tp.String()+"\n") {
			t.Errorf("unexpected description %q for %s", e.String(), tp)
		}
	}

	for _, tp := range []ElementType{-1, numElementTypes} {
		_, err := NewElement(tp)
		if err == nil {
			t.Errorf("NewElement(%d) succeeded", int(tp))
		}
	}
}

func TestCloneIndependent(t *testing.T) {
	text := NewTextElement()
	text.Text = &Text{X: 1, Y: 2, Str: "a"}
	text.Attributes.CharacterHeight.Set(12)

	line := NewPolyLineElement()
	line.Vertices = []Vertex{{1, 2}, {3, 4}}

	set := NewPolySetElement()
	set.Vertices = make([]VertexClose, 1)
	set.Vertices[0].EdgeOut.Set(EdgeVisible)

	r := NewRectangleElement()
	r.Rectangle = &Rectangle{X1: 1, Y1: 1, X2: 2, Y2: 2}

	for _, orig := range []Element{text, line, set, r} {
		clone := orig.Clone()
		if d := cmp.Diff(orig, clone); d != "" {
			t.Errorf("clone differs (-orig +clone):\n%s", d)
		}
	}

	textClone := text.Clone().(*TextElement)
	textClone.Text.Str = "b"
	textClone.Attributes.CharacterHeight.Clear()
	if text.Text.Str != "a" || !text.Attributes.CharacterHeight.IsSet() {
		t.Error("modifying the clone changed the text element")
	}

	lineClone := line.Clone().(*PolyLineElement)
	lineClone.Vertices[0].X = 100
	if line.Vertices[0].X != 1 {
		t.Error("modifying the clone changed the polyline")
	}

	setClone := set.Clone().(*PolySetElement)
	setClone.Vertices[0].EdgeOut.Clear()
	if !set.Vertices[0].EdgeOut.IsSet() {
		t.Error("modifying the clone changed the polygon set")
	}

	rClone := r.Clone().(*RectangleElement)
	rClone.Rectangle.X1 = 7
	if r.Rectangle.X1 != 1 {
		t.Error("modifying the clone changed the rectangle")
	}
}

func TestCloneMetafile(t *testing.T) {
	mf := testCases[3]()
	clone := mf.Clone()
	if d := cmp.Diff(mf, clone); d != "" {
		t.Fatalf("clone differs (-orig +clone):\n%s", d)
	}

	clone.FontList[0] = "changed"
	clone.Picture.Name = "changed"
	clone.Picture.Body.Elements[0].(*TextElement).Text.Str = "changed"
	clone.Picture.Body.Add(NewCircleElement())

	if d := cmp.Diff(testCases[3](), mf); d != "" {
		t.Errorf("original was modified (-want +got):\n%s", d)
	}
}

func TestBBox(t *testing.T) {
	ellipse := NewEllipseElement()
	ellipse.End1X, ellipse.End1Y = 10, 0
	ellipse.End2X, ellipse.End2Y = 0, 5

	circle := NewCircleElement()
	circle.CenterX, circle.CenterY, circle.Radius = 10, 20, 5

	line := NewPolyLineElement()
	line.Vertices = []Vertex{{3, -1}, {-2, 4}, {0, 0}}

	r := NewRectangleElement()
	r.Rectangle = &Rectangle{X1: 30, Y1: 40, X2: 10, Y2: 20}

	cases := []struct {
		e    Element
		want rect.Rect
	}{
		{ellipse, rect.Rect{LLx: -10, LLy: -5, URx: 10, URy: 5}},
		{circle, rect.Rect{LLx: 5, LLy: 15, URx: 15, URy: 25}},
		{line, rect.Rect{LLx: -2, LLy: -1, URx: 3, URy: 4}},
		{r, rect.Rect{LLx: 10, LLy: 20, URx: 30, URy: 40}},
		{NewPolygonElement(), rect.Rect{}},
		{NewTextElement(), rect.Rect{}},
	}
	for i, c := range cases {
		if d := cmp.Diff(c.want, c.e.BBox()); d != "" {
			t.Errorf("%d: bbox (-want +got):\n%s", i, d)
		}
	}

	mf := testMetafile(circle, line)
	want := rect.Rect{LLx: -2, LLy: -1, URx: 15, URy: 25}
	if d := cmp.Diff(want, mf.Picture.BBox()); d != "" {
		t.Errorf("picture bbox (-want +got):\n%s", d)
	}

	// a text anchored at the origin has a zero bounding box
	origin := NewTextElement()
	origin.Text = &Text{Str: "o"}
	mf = testMetafile(circle, origin)
	want = rect.Rect{LLx: 0, LLy: 0, URx: 15, URy: 25}
	if d := cmp.Diff(want, mf.Picture.BBox()); d != "" {
		t.Errorf("picture bbox with origin (-want +got):\n%s", d)
	}
}

func TestString(t *testing.T) {
	mf := testCases[3]()
	s := mf.String()
	for _, part := range []string{
		`Metafile "test"`,
		"Font 2: Courier",
		`Picture "picture"`,
		`Text: "NITRO rocks!"`,
		"Character Height: 21",
	} {
		if !strings.Contains(s, part) {
			t.Errorf("%q not found in\n%s", part, s)
		}
	}
}

func TestVertexVec(t *testing.T) {
	v := Vertex{X: -32768, Y: 32767}
	want := vec.Vec2{X: -32768, Y: 32767}
	if d := cmp.Diff(want, v.Vec()); d != "" {
		t.Errorf("vector (-want +got):\n%s", d)
	}
}
