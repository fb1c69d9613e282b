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
	"log/slog"

	"seehuhn.de/go/cgm/optional"
)

// parseContext accumulates the attribute commands preceding a graphical
// primitive.  The zero value is the fresh context where nothing is set.
//
// Lines, edges and text share one color, one width and one type slot,
// since each primitive only consumes the slots relevant to it.
type parseContext struct {
	fillColor   optional.Value[Color]
	color       optional.Value[Color]
	width       optional.Int16
	lineType    optional.Value[LineType]
	style       optional.Value[InteriorStyle]
	hatchIndex  optional.Value[HatchType]
	height      optional.Int16
	orientation optional.Value[Rectangle]
	fontIndex   optional.Int16
	visibility  optional.Bool
}

func (pc *parseContext) lineAttributes() LineAttributes {
	return LineAttributes{
		LineWidth: pc.width,
		LineType:  pc.lineType,
		LineColor: pc.color,
	}
}

func (pc *parseContext) fillAttributes() FillAttributes {
	return FillAttributes{
		FillColor:      pc.fillColor,
		EdgeColor:      pc.color,
		InteriorStyle:  pc.style,
		EdgeVisibility: pc.visibility,
		EdgeWidth:      pc.width,
		EdgeType:       pc.lineType,
		HatchIndex:     pc.hatchIndex,
	}
}

func (pc *parseContext) textAttributes() TextAttributes {
	return TextAttributes{
		TextColor:            pc.color,
		CharacterHeight:      pc.height,
		TextFontIndex:        pc.fontIndex,
		CharacterOrientation: pc.orientation,
	}
}

// LogValue implements [slog.LogValuer], listing only the fields which
// are set.
func (pc *parseContext) LogValue() slog.Value {
	var attrs []slog.Attr
	add := func(key string, v optionalField) {
		if v.IsSet() {
			attrs = append(attrs, slog.String(key, v.String()))
		}
	}
	add("fillColor", pc.fillColor)
	add("color", pc.color)
	add("width", pc.width)
	add("type", pc.lineType)
	add("style", pc.style)
	add("hatch", pc.hatchIndex)
	add("height", pc.height)
	add("orientation", pc.orientation)
	add("font", pc.fontIndex)
	add("visibility", pc.visibility)
	return slog.GroupValue(attrs...)
}
