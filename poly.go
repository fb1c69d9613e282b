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
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/cgm/optional"
)

// PolygonElement is a closed, filled polygon.
type PolygonElement struct {
	Vertices   []Vertex
	Attributes FillAttributes
}

// NewPolygonElement returns a new polygon without vertices.
func NewPolygonElement() *PolygonElement {
	return &PolygonElement{}
}

// Type implements the [Element] interface.
func (e *PolygonElement) Type() ElementType { return TypePolygon }

func (e *PolygonElement) isElement() {}

// Clone implements the [Element] interface.
func (e *PolygonElement) Clone() Element {
	return &PolygonElement{
		Vertices:   slices.Clone(e.Vertices),
		Attributes: e.Attributes,
	}
}

// BBox implements the [Element] interface.
func (e *PolygonElement) BBox() rect.Rect {
	return verticesBBox(e.Vertices)
}

func (e *PolygonElement) String() string {
	b := &strings.Builder{}
	b.WriteString("Polygon\n")
	writeVertices(b, e.Vertices)
	b.WriteString(e.Attributes.String())
	return b.String()
}

// PolyLineElement is an open sequence of connected line segments.
type PolyLineElement struct {
	Vertices   []Vertex
	Attributes LineAttributes
}

// NewPolyLineElement returns a new polyline without vertices.
func NewPolyLineElement() *PolyLineElement {
	return &PolyLineElement{}
}

// Type implements the [Element] interface.
func (e *PolyLineElement) Type() ElementType { return TypePolyLine }

func (e *PolyLineElement) isElement() {}

// Clone implements the [Element] interface.
func (e *PolyLineElement) Clone() Element {
	return &PolyLineElement{
		Vertices:   slices.Clone(e.Vertices),
		Attributes: e.Attributes,
	}
}

// BBox implements the [Element] interface.
func (e *PolyLineElement) BBox() rect.Rect {
	return verticesBBox(e.Vertices)
}

func (e *PolyLineElement) String() string {
	b := &strings.Builder{}
	b.WriteString("PolyLine\n")
	writeVertices(b, e.Vertices)
	b.WriteString(e.Attributes.String())
	return b.String()
}

// VertexClose is a vertex of a [PolySetElement].
type VertexClose struct {
	X, Y int16

	// EdgeOut describes the edge leaving this vertex.
	// It must be set before the element is written.
	EdgeOut optional.Value[EdgeCloseType]
}

func (v VertexClose) String() string {
	return fmt.Sprintf("(%d, %d, %s)", v.X, v.Y, v.EdgeOut)
}

// PolySetElement is a set of polygons sharing one set of fill attributes.
// The edge-out flags of the vertices mark where the individual polygons
// are closed.
type PolySetElement struct {
	Vertices   []VertexClose
	Attributes FillAttributes
}

// NewPolySetElement returns a new poly set without vertices.
func NewPolySetElement() *PolySetElement {
	return &PolySetElement{}
}

// Type implements the [Element] interface.
func (e *PolySetElement) Type() ElementType { return TypePolySet }

func (e *PolySetElement) isElement() {}

// Clone implements the [Element] interface.
func (e *PolySetElement) Clone() Element {
	return &PolySetElement{
		Vertices:   slices.Clone(e.Vertices),
		Attributes: e.Attributes,
	}
}

// BBox implements the [Element] interface.
func (e *PolySetElement) BBox() rect.Rect {
	xy := make([]int16, 0, 2*len(e.Vertices))
	for _, v := range e.Vertices {
		xy = append(xy, v.X, v.Y)
	}
	return pointsBBox(xy...)
}

func (e *PolySetElement) String() string {
	b := &strings.Builder{}
	b.WriteString("PolySet\n")
	if len(e.Vertices) > 0 {
		b.WriteString("\tVertices:")
		for _, v := range e.Vertices {
			b.WriteString(" ")
			b.WriteString(v.String())
		}
		b.WriteString("\n")
	}
	b.WriteString(e.Attributes.String())
	return b.String()
}

func verticesBBox(vv []Vertex) rect.Rect {
	xy := make([]int16, 0, 2*len(vv))
	for _, v := range vv {
		xy = append(xy, v.X, v.Y)
	}
	return pointsBBox(xy...)
}

func writeVertices(b *strings.Builder, vv []Vertex) {
	if len(vv) == 0 {
		return
	}
	b.WriteString("\tVertices:")
	for _, v := range vv {
		b.WriteString(" ")
		b.WriteString(v.String())
	}
	b.WriteString("\n")
}
