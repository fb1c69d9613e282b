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
	"math"
	"strings"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/cgm/optional"
)

// RectangleElement is an axis-aligned, filled rectangle.
type RectangleElement struct {
	// Rectangle must be set before the element is written.
	Rectangle *Rectangle

	Attributes FillAttributes
}

// NewRectangleElement returns a new rectangle element without geometry.
func NewRectangleElement() *RectangleElement {
	return &RectangleElement{}
}

// Type implements the [Element] interface.
func (e *RectangleElement) Type() ElementType { return TypeRectangle }

func (e *RectangleElement) isElement() {}

// Clone implements the [Element] interface.
func (e *RectangleElement) Clone() Element {
	res := &RectangleElement{Attributes: e.Attributes}
	if e.Rectangle != nil {
		r := *e.Rectangle
		res.Rectangle = &r
	}
	return res
}

// BBox implements the [Element] interface.
func (e *RectangleElement) BBox() rect.Rect {
	if e.Rectangle == nil {
		return rect.Rect{}
	}
	return e.Rectangle.Rect()
}

func (e *RectangleElement) String() string {
	b := &strings.Builder{}
	b.WriteString("Rectangle\n")
	if e.Rectangle != nil {
		fmt.Fprintf(b, "\tRectangle: %s\n", e.Rectangle)
	}
	b.WriteString(e.Attributes.String())
	return b.String()
}

// CircleElement is a filled circle.
type CircleElement struct {
	CenterX, CenterY int16
	Radius           int16

	Attributes FillAttributes
}

// NewCircleElement returns a new circle element.
func NewCircleElement() *CircleElement {
	return &CircleElement{}
}

// Type implements the [Element] interface.
func (e *CircleElement) Type() ElementType { return TypeCircle }

func (e *CircleElement) isElement() {}

// Clone implements the [Element] interface.
func (e *CircleElement) Clone() Element {
	res := *e
	return &res
}

// BBox implements the [Element] interface.
func (e *CircleElement) BBox() rect.Rect {
	return circleBBox(e.CenterX, e.CenterY, e.Radius)
}

func (e *CircleElement) String() string {
	b := &strings.Builder{}
	b.WriteString("Circle\n")
	fmt.Fprintf(b, "\tCenter: (%d, %d)\n", e.CenterX, e.CenterY)
	fmt.Fprintf(b, "\tRadius: %d\n", e.Radius)
	b.WriteString(e.Attributes.String())
	return b.String()
}

// CircularArcElement is an arc of a circle, given by the center, the
// start and end points and the radius.
type CircularArcElement struct {
	CenterX, CenterY int16
	StartX, StartY   int16
	EndX, EndY       int16
	Radius           int16

	Attributes LineAttributes
}

// NewCircularArcElement returns a new circular arc element.
func NewCircularArcElement() *CircularArcElement {
	return &CircularArcElement{}
}

// Type implements the [Element] interface.
func (e *CircularArcElement) Type() ElementType { return TypeCircularArc }

func (e *CircularArcElement) isElement() {}

// Clone implements the [Element] interface.
func (e *CircularArcElement) Clone() Element {
	res := *e
	return &res
}

// BBox implements the [Element] interface.
func (e *CircularArcElement) BBox() rect.Rect {
	return circleBBox(e.CenterX, e.CenterY, e.Radius)
}

func (e *CircularArcElement) String() string {
	b := &strings.Builder{}
	b.WriteString("CircularArc\n")
	writeCircularArc(b, e.CenterX, e.CenterY, e.StartX, e.StartY, e.EndX, e.EndY, e.Radius)
	b.WriteString(e.Attributes.String())
	return b.String()
}

// CircularArcCloseElement is a circular arc, closed either as a pie or
// as a chord, and filled.
type CircularArcCloseElement struct {
	CenterX, CenterY int16
	StartX, StartY   int16
	EndX, EndY       int16
	Radius           int16

	// CloseType must be set before the element is written.
	CloseType optional.Value[CloseType]

	Attributes FillAttributes
}

// NewCircularArcCloseElement returns a new closed circular arc element.
func NewCircularArcCloseElement() *CircularArcCloseElement {
	return &CircularArcCloseElement{}
}

// Type implements the [Element] interface.
func (e *CircularArcCloseElement) Type() ElementType { return TypeCircularArcClose }

func (e *CircularArcCloseElement) isElement() {}

// Clone implements the [Element] interface.
func (e *CircularArcCloseElement) Clone() Element {
	res := *e
	return &res
}

// BBox implements the [Element] interface.
func (e *CircularArcCloseElement) BBox() rect.Rect {
	return circleBBox(e.CenterX, e.CenterY, e.Radius)
}

func (e *CircularArcCloseElement) String() string {
	b := &strings.Builder{}
	b.WriteString("CircularArcClose\n")
	writeCircularArc(b, e.CenterX, e.CenterY, e.StartX, e.StartY, e.EndX, e.EndY, e.Radius)
	fmt.Fprintf(b, "\tClose Type: %s\n", e.CloseType)
	b.WriteString(e.Attributes.String())
	return b.String()
}

// EllipseElement is a filled ellipse, given by its center and the end
// points of two conjugate diameters.
type EllipseElement struct {
	CenterX, CenterY int16
	End1X, End1Y     int16
	End2X, End2Y     int16

	Attributes FillAttributes
}

// NewEllipseElement returns a new ellipse element.
func NewEllipseElement() *EllipseElement {
	return &EllipseElement{}
}

// Type implements the [Element] interface.
func (e *EllipseElement) Type() ElementType { return TypeEllipse }

func (e *EllipseElement) isElement() {}

// Clone implements the [Element] interface.
func (e *EllipseElement) Clone() Element {
	res := *e
	return &res
}

// BBox implements the [Element] interface.
func (e *EllipseElement) BBox() rect.Rect {
	return ellipseBBox(e.CenterX, e.CenterY, e.End1X, e.End1Y, e.End2X, e.End2Y)
}

func (e *EllipseElement) String() string {
	b := &strings.Builder{}
	b.WriteString("Ellipse\n")
	writeEllipse(b, e.CenterX, e.CenterY, e.End1X, e.End1Y, e.End2X, e.End2Y)
	b.WriteString(e.Attributes.String())
	return b.String()
}

// EllipticalArcElement is an arc of an ellipse.  The arc runs
// counterclockwise from the direction of the start vector to the
// direction of the end vector.
type EllipticalArcElement struct {
	CenterX, CenterY           int16
	End1X, End1Y               int16
	End2X, End2Y               int16
	StartVectorX, StartVectorY int16
	EndVectorX, EndVectorY     int16

	Attributes LineAttributes
}

// NewEllipticalArcElement returns a new elliptical arc element.
func NewEllipticalArcElement() *EllipticalArcElement {
	return &EllipticalArcElement{}
}

// Type implements the [Element] interface.
func (e *EllipticalArcElement) Type() ElementType { return TypeEllipticalArc }

func (e *EllipticalArcElement) isElement() {}

// Clone implements the [Element] interface.
func (e *EllipticalArcElement) Clone() Element {
	res := *e
	return &res
}

// BBox implements the [Element] interface.
func (e *EllipticalArcElement) BBox() rect.Rect {
	return ellipseBBox(e.CenterX, e.CenterY, e.End1X, e.End1Y, e.End2X, e.End2Y)
}

func (e *EllipticalArcElement) String() string {
	b := &strings.Builder{}
	b.WriteString("EllipticalArc\n")
	writeEllipse(b, e.CenterX, e.CenterY, e.End1X, e.End1Y, e.End2X, e.End2Y)
	writeVectors(b, e.StartVectorX, e.StartVectorY, e.EndVectorX, e.EndVectorY)
	b.WriteString(e.Attributes.String())
	return b.String()
}

// EllipticalArcCloseElement is an elliptical arc, closed either as a pie
// or as a chord, and filled.
type EllipticalArcCloseElement struct {
	CenterX, CenterY           int16
	End1X, End1Y               int16
	End2X, End2Y               int16
	StartVectorX, StartVectorY int16
	EndVectorX, EndVectorY     int16

	// CloseType must be set before the element is written.
	CloseType optional.Value[CloseType]

	Attributes FillAttributes
}

// NewEllipticalArcCloseElement returns a new closed elliptical arc element.
func NewEllipticalArcCloseElement() *EllipticalArcCloseElement {
	return &EllipticalArcCloseElement{}
}

// Type implements the [Element] interface.
func (e *EllipticalArcCloseElement) Type() ElementType { return TypeEllipticalArcClose }

func (e *EllipticalArcCloseElement) isElement() {}

// Clone implements the [Element] interface.
func (e *EllipticalArcCloseElement) Clone() Element {
	res := *e
	return &res
}

// BBox implements the [Element] interface.
func (e *EllipticalArcCloseElement) BBox() rect.Rect {
	return ellipseBBox(e.CenterX, e.CenterY, e.End1X, e.End1Y, e.End2X, e.End2Y)
}

func (e *EllipticalArcCloseElement) String() string {
	b := &strings.Builder{}
	b.WriteString("EllipticalArcClose\n")
	writeEllipse(b, e.CenterX, e.CenterY, e.End1X, e.End1Y, e.End2X, e.End2Y)
	writeVectors(b, e.StartVectorX, e.StartVectorY, e.EndVectorX, e.EndVectorY)
	fmt.Fprintf(b, "\tClose Type: %s\n", e.CloseType)
	b.WriteString(e.Attributes.String())
	return b.String()
}

func circleBBox(cx, cy, r int16) rect.Rect {
	x, y, rr := float64(cx), float64(cy), math.Abs(float64(r))
	return rect.Rect{LLx: x - rr, LLy: y - rr, URx: x + rr, URy: y + rr}
}

// ellipseBBox computes the bounding box of the ellipse
// c + u·cos(t) + v·sin(t), where u and v are the conjugate half-diameters.
func ellipseBBox(cx, cy, x1, y1, x2, y2 int16) rect.Rect {
	ux, uy := float64(x1)-float64(cx), float64(y1)-float64(cy)
	vx, vy := float64(x2)-float64(cx), float64(y2)-float64(cy)
	dx := math.Hypot(ux, vx)
	dy := math.Hypot(uy, vy)
	x, y := float64(cx), float64(cy)
	return rect.Rect{LLx: x - dx, LLy: y - dy, URx: x + dx, URy: y + dy}
}

func writeCircularArc(b *strings.Builder, cx, cy, sx, sy, ex, ey, r int16) {
	fmt.Fprintf(b, "\tCenter: (%d, %d)\n", cx, cy)
	fmt.Fprintf(b, "\tStart: (%d, %d)\n", sx, sy)
	fmt.Fprintf(b, "\tEnd: (%d, %d)\n", ex, ey)
	fmt.Fprintf(b, "\tRadius: %d\n", r)
}

func writeEllipse(b *strings.Builder, cx, cy, x1, y1, x2, y2 int16) {
	fmt.Fprintf(b, "\tCenter: (%d, %d)\n", cx, cy)
	fmt.Fprintf(b, "\tEnd Point 1: (%d, %d)\n", x1, y1)
	fmt.Fprintf(b, "\tEnd Point 2: (%d, %d)\n", x2, y2)
}

func writeVectors(b *strings.Builder, sx, sy, ex, ey int16) {
	fmt.Fprintf(b, "\tStart Vector: (%d, %d)\n", sx, sy)
	fmt.Fprintf(b, "\tEnd Vector: (%d, %d)\n", ex, ey)
}
