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
	"seehuhn.de/go/geom/vec"
)

// Color is a direct color.  On the wire, a color takes exactly three
// bytes.
type Color struct {
	R, G, B uint8
}

func (c Color) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B)
}

// Vertex is a point in virtual device coordinates.
type Vertex struct {
	X, Y int16
}

func (v Vertex) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}

// Vec converts the vertex to a floating point vector.
func (v Vertex) Vec() vec.Vec2 {
	return vec.Vec2{X: float64(v.X), Y: float64(v.Y)}
}

// Rectangle is given by two corner points.  The corners are stored as
// found in the metafile and need not be normalized.
type Rectangle struct {
	X1, Y1 int16
	X2, Y2 int16
}

func (r Rectangle) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", r.X1, r.Y1, r.X2, r.Y2)
}

// Rect returns the normalized rectangle as a floating point rectangle.
func (r Rectangle) Rect() rect.Rect {
	return rect.Rect{
		LLx: float64(min(r.X1, r.X2)),
		LLy: float64(min(r.Y1, r.Y2)),
		URx: float64(max(r.X1, r.X2)),
		URy: float64(max(r.Y1, r.Y2)),
	}
}

// Text is a string anchored at a point.
type Text struct {
	X, Y int16
	Str  string
}

// InteriorStyle describes how the interior of a closed shape is filled.
type InteriorStyle int16

// These are the interior styles defined by ISO 8632.
const (
	InteriorHollow  InteriorStyle = 0
	InteriorSolid   InteriorStyle = 1
	InteriorPattern InteriorStyle = 2
	InteriorHatch   InteriorStyle = 3
	InteriorEmpty   InteriorStyle = 4
)

func (s InteriorStyle) String() string {
	switch s {
	case InteriorHollow:
		return "hollow"
	case InteriorSolid:
		return "solid"
	case InteriorPattern:
		return "pattern"
	case InteriorHatch:
		return "hatch"
	case InteriorEmpty:
		return "empty"
	}
	return fmt.Sprintf("InteriorStyle(%d)", int16(s))
}

// LineType is the dash pattern of a line or an edge.
type LineType int16

// These are the line types allowed in NITF metafiles.
const (
	LineSolid      LineType = 1
	LineDashed     LineType = 2
	LineDot        LineType = 3
	LineDashDot    LineType = 4
	LineDashDotDot LineType = 5
)

func (t LineType) String() string {
	switch t {
	case LineSolid:
		return "solid"
	case LineDashed:
		return "dashed"
	case LineDot:
		return "dot"
	case LineDashDot:
		return "dash-dot"
	case LineDashDotDot:
		return "dash-dot-dot"
	}
	return fmt.Sprintf("LineType(%d)", int16(t))
}

// HatchType selects the hatch pattern used with [InteriorHatch].
type HatchType int16

// These are the hatch patterns defined by ISO 8632.
const (
	HatchHorizontal         HatchType = 1
	HatchVertical           HatchType = 2
	HatchPositiveSlope      HatchType = 3
	HatchNegativeSlope      HatchType = 4
	HatchHorizontalVertical HatchType = 5
	HatchPositiveNegative   HatchType = 6
)

func (h HatchType) String() string {
	switch h {
	case HatchHorizontal:
		return "horizontal"
	case HatchVertical:
		return "vertical"
	case HatchPositiveSlope:
		return "positive slope"
	case HatchNegativeSlope:
		return "negative slope"
	case HatchHorizontalVertical:
		return "horizontal/vertical crosshatch"
	case HatchPositiveNegative:
		return "positive/negative crosshatch"
	}
	return fmt.Sprintf("HatchType(%d)", int16(h))
}

// EdgeCloseType is the edge-out flag attached to every vertex of a
// [PolySetElement].  It controls the visibility of the edge leaving the
// vertex and whether the vertex closes the current polygon.
type EdgeCloseType int16

// These are the edge-out flags defined by ISO 8632.
const (
	EdgeInvisible      EdgeCloseType = 0
	EdgeVisible        EdgeCloseType = 1
	EdgeCloseInvisible EdgeCloseType = 2
	EdgeCloseVisible   EdgeCloseType = 3
)

func (e EdgeCloseType) String() string {
	switch e {
	case EdgeInvisible:
		return "invisible"
	case EdgeVisible:
		return "visible"
	case EdgeCloseInvisible:
		return "close invisible"
	case EdgeCloseVisible:
		return "close visible"
	}
	return fmt.Sprintf("EdgeCloseType(%d)", int16(e))
}

// CloseType determines how an arc is closed.
type CloseType int16

// These are the arc closure styles.
const (
	ClosePie   CloseType = 0
	CloseChord CloseType = 1
)

func (c CloseType) String() string {
	switch c {
	case ClosePie:
		return "pie"
	case CloseChord:
		return "chord"
	}
	return fmt.Sprintf("CloseType(%d)", int16(c))
}
