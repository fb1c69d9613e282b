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

	"seehuhn.de/go/geom/rect"
)

// Element is one graphic primitive in a picture body.
//
// Element is implemented by the eleven pointer types *TextElement,
// *PolygonElement, *PolyLineElement, *PolySetElement, *EllipseElement,
// *EllipticalArcElement, *EllipticalArcCloseElement, *RectangleElement,
// *CircleElement, *CircularArcElement and *CircularArcCloseElement.
// No other implementations are possible.
type Element interface {
	// Type returns the element type.
	Type() ElementType

	// Clone returns a deep copy of the element.
	Clone() Element

	// BBox returns the bounding box of the element in virtual device
	// coordinates.  For arcs, the box of the full circle or ellipse is
	// returned.
	BBox() rect.Rect

	// String returns a human-readable, multi-line description.
	String() string

	isElement()
}

// ElementType identifies the eleven element variants.
// The numeric values are used to index the packer table of the writer.
type ElementType int

// These are the supported element types.
const (
	TypeText ElementType = iota
	TypePolygon
	TypePolyLine
	TypePolySet
	TypeEllipse
	TypeEllipticalArc
	TypeEllipticalArcClose
	TypeRectangle
	TypeCircle
	TypeCircularArc
	TypeCircularArcClose

	numElementTypes
)

var elementTypeNames = [numElementTypes]string{
	TypeText:               "Text",
	TypePolygon:            "Polygon",
	TypePolyLine:           "PolyLine",
	TypePolySet:            "PolySet",
	TypeEllipse:            "Ellipse",
	TypeEllipticalArc:      "EllipticalArc",
	TypeEllipticalArcClose: "EllipticalArcClose",
	TypeRectangle:          "Rectangle",
	TypeCircle:             "Circle",
	TypeCircularArc:        "CircularArc",
	TypeCircularArcClose:   "CircularArcClose",
}

func (t ElementType) String() string {
	if t >= 0 && t < numElementTypes {
		return elementTypeNames[t]
	}
	return fmt.Sprintf("ElementType(%d)", int(t))
}

// NewElement returns a new, empty element of the given type.
// All attributes are unset and all geometry is zero or nil.
func NewElement(t ElementType) (Element, error) {
	switch t {
	case TypeText:
		return NewTextElement(), nil
	case TypePolygon:
		return NewPolygonElement(), nil
	case TypePolyLine:
		return NewPolyLineElement(), nil
	case TypePolySet:
		return NewPolySetElement(), nil
	case TypeEllipse:
		return NewEllipseElement(), nil
	case TypeEllipticalArc:
		return NewEllipticalArcElement(), nil
	case TypeEllipticalArcClose:
		return NewEllipticalArcCloseElement(), nil
	case TypeRectangle:
		return NewRectangleElement(), nil
	case TypeCircle:
		return NewCircleElement(), nil
	case TypeCircularArc:
		return NewCircularArcElement(), nil
	case TypeCircularArcClose:
		return NewCircularArcCloseElement(), nil
	}
	return nil, fmt.Errorf("cgm: invalid element type %d", int(t))
}

// pointsBBox returns the smallest rectangle containing all given points.
func pointsBBox(xy ...int16) rect.Rect {
	if len(xy) < 2 {
		return rect.Rect{}
	}
	x, y := float64(xy[0]), float64(xy[1])
	bbox := rect.Rect{LLx: x, LLy: y, URx: x, URy: y}
	for i := 2; i+1 < len(xy); i += 2 {
		bbox.Add(float64(xy[i]), float64(xy[i+1]))
	}
	return bbox
}

// unionBBox returns the smallest rectangle containing a and b.
// Unlike [rect.Rect.Extend], zero rectangles are included, since a point
// at the origin has the zero rectangle as its bounding box.
func unionBBox(a, b rect.Rect) rect.Rect {
	return rect.Rect{
		LLx: min(a.LLx, b.LLx),
		LLy: min(a.LLy, b.LLy),
		URx: max(a.URx, b.URx),
		URy: max(a.URy, b.URy),
	}
}
