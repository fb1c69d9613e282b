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

	"seehuhn.de/go/geom/rect"
)

// TextElement places a string in the picture.
type TextElement struct {
	// Text is the anchor point and the string.  It must be set before
	// the element is written.
	Text *Text

	Attributes TextAttributes
}

// NewTextElement returns a new text element without text.
func NewTextElement() *TextElement {
	return &TextElement{}
}

// Type implements the [Element] interface.
func (e *TextElement) Type() ElementType { return TypeText }

func (e *TextElement) isElement() {}

// Clone implements the [Element] interface.
func (e *TextElement) Clone() Element {
	res := &TextElement{Attributes: e.Attributes}
	if e.Text != nil {
		text := *e.Text
		res.Text = &text
	}
	return res
}

// BBox returns the anchor point of the text as a degenerate rectangle.
// The extent of the glyphs depends on the font and is not known here.
func (e *TextElement) BBox() rect.Rect {
	if e.Text == nil {
		return rect.Rect{}
	}
	return pointsBBox(e.Text.X, e.Text.Y)
}

func (e *TextElement) String() string {
	b := &strings.Builder{}
	b.WriteString("Text\n")
	if e.Text != nil {
		fmt.Fprintf(b, "\tPosition: (%d, %d)\n", e.Text.X, e.Text.Y)
		fmt.Fprintf(b, "\tText: %q\n", e.Text.Str)
	}
	b.WriteString(e.Attributes.String())
	return b.String()
}
