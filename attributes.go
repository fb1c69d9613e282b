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

	"seehuhn.de/go/cgm/optional"
)

// LineAttributes are the attributes of open shapes: polylines and
// unclosed arcs.
type LineAttributes struct {
	LineWidth optional.Int16
	LineType  optional.Value[LineType]
	LineColor optional.Value[Color]
}

// FillAttributes are the attributes of closed shapes.
type FillAttributes struct {
	FillColor      optional.Value[Color]
	EdgeColor      optional.Value[Color]
	InteriorStyle  optional.Value[InteriorStyle]
	EdgeVisibility optional.Bool
	EdgeWidth      optional.Int16
	EdgeType       optional.Value[LineType]
	HatchIndex     optional.Value[HatchType]
}

// TextAttributes are the attributes of text elements.
type TextAttributes struct {
	TextColor            optional.Value[Color]
	CharacterHeight      optional.Int16
	TextFontIndex        optional.Int16
	CharacterOrientation optional.Value[Rectangle]
}

type optionalField interface {
	IsSet() bool
	String() string
}

func writeAttr(b *strings.Builder, label string, v optionalField) {
	if !v.IsSet() {
		return
	}
	fmt.Fprintf(b, "\t%s: %s\n", label, v)
}

func (a *LineAttributes) String() string {
	b := &strings.Builder{}
	writeAttr(b, "Line Color", a.LineColor)
	writeAttr(b, "Line Width", a.LineWidth)
	writeAttr(b, "Line Type", a.LineType)
	return b.String()
}

func (a *FillAttributes) String() string {
	b := &strings.Builder{}
	writeAttr(b, "Fill Color", a.FillColor)
	writeAttr(b, "Interior Style", a.InteriorStyle)
	writeAttr(b, "Hatch Index", a.HatchIndex)
	writeAttr(b, "Edge Visibility", a.EdgeVisibility)
	writeAttr(b, "Edge Width", a.EdgeWidth)
	writeAttr(b, "Edge Type", a.EdgeType)
	writeAttr(b, "Edge Color", a.EdgeColor)
	return b.String()
}

func (a *TextAttributes) String() string {
	b := &strings.Builder{}
	writeAttr(b, "Text Color", a.TextColor)
	writeAttr(b, "Character Height", a.CharacterHeight)
	writeAttr(b, "Text Font Index", a.TextFontIndex)
	writeAttr(b, "Character Orientation", a.CharacterOrientation)
	return b.String()
}
