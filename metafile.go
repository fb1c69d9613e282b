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

// Metafile is a complete CGM document.
type Metafile struct {
	// Name is the metafile identifier.  It must be non-empty when the
	// metafile is written.
	Name string

	// Description is free text describing the metafile.
	Description string

	// Version is the metafile version.  NITF requires version 1.
	Version int16

	// ElementList is the metafile element list.  NITF requires the
	// triple (1, -1, 1), selecting the drawing set.
	ElementList [3]int16

	// FontList lists the font names.  Text elements refer to these by
	// their 1-based index.
	FontList []string

	// Picture is the single picture of the metafile, or nil.
	Picture *Picture
}

// NewMetafile returns a new metafile without a picture.
func NewMetafile(name, description string) *Metafile {
	return &Metafile{
		Name:        name,
		Description: description,
		Version:     1,
		ElementList: [3]int16{1, -1, 1},
	}
}

// CreatePicture adds a new, empty picture to the metafile.
// Any existing picture is replaced.
func (mf *Metafile) CreatePicture(name string) *Picture {
	p := newPicture(name)
	p.Body = NewPictureBody()
	mf.Picture = p
	return p
}

// Clone returns a deep copy of the metafile.
func (mf *Metafile) Clone() *Metafile {
	res := *mf
	res.FontList = slices.Clone(mf.FontList)
	if mf.Picture != nil {
		res.Picture = mf.Picture.Clone()
	}
	return &res
}

func (mf *Metafile) String() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "Metafile %q\n", mf.Name)
	fmt.Fprintf(b, "\tVersion: %d\n", mf.Version)
	fmt.Fprintf(b, "\tDescription: %q\n", mf.Description)
	fmt.Fprintf(b, "\tElement List: (%d, %d, %d)\n",
		mf.ElementList[0], mf.ElementList[1], mf.ElementList[2])
	for i, font := range mf.FontList {
		fmt.Fprintf(b, "\tFont %d: %s\n", i+1, font)
	}
	if mf.Picture != nil {
		b.WriteString(mf.Picture.String())
	}
	return b.String()
}

// Picture is a single drawable scene.
type Picture struct {
	Name string

	// ColorSelectionMode is 1 for direct color, the only mode allowed
	// in NITF.
	ColorSelectionMode int16

	// EdgeWidthSpec and LineWidthSpec select how widths are interpreted.
	// NITF uses 0 (absolute).
	EdgeWidthSpec int16
	LineWidthSpec int16

	// VDCExtent is the coordinate rectangle of the picture, or nil.
	VDCExtent *Rectangle

	// Body holds the elements of the picture.
	Body *PictureBody
}

// newPicture returns a picture with the NITF default modes and no body.
func newPicture(name string) *Picture {
	return &Picture{
		Name:               name,
		ColorSelectionMode: 1,
	}
}

// Clone returns a deep copy of the picture.
func (p *Picture) Clone() *Picture {
	res := *p
	if p.VDCExtent != nil {
		r := *p.VDCExtent
		res.VDCExtent = &r
	}
	if p.Body != nil {
		res.Body = p.Body.Clone()
	}
	return &res
}

// BBox returns the smallest rectangle containing all elements of the
// picture.  If the picture has no elements, the zero rectangle is
// returned.
func (p *Picture) BBox() rect.Rect {
	if p.Body == nil || len(p.Body.Elements) == 0 {
		return rect.Rect{}
	}
	bbox := p.Body.Elements[0].BBox()
	for _, e := range p.Body.Elements[1:] {
		bbox = unionBBox(bbox, e.BBox())
	}
	return bbox
}

func (p *Picture) String() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "Picture %q\n", p.Name)
	fmt.Fprintf(b, "\tColor Selection Mode: %d\n", p.ColorSelectionMode)
	fmt.Fprintf(b, "\tEdge Width Spec: %d\n", p.EdgeWidthSpec)
	fmt.Fprintf(b, "\tLine Width Spec: %d\n", p.LineWidthSpec)
	if p.VDCExtent != nil {
		fmt.Fprintf(b, "\tVDC Extent: %s\n", p.VDCExtent)
	}
	if p.Body != nil {
		b.WriteString(p.Body.String())
	}
	return b.String()
}

// PictureBody is the drawing surface of a picture.
type PictureBody struct {
	// Transparency indicates whether the background is transparent.
	Transparency bool

	// AuxColor is the auxiliary (background) color.
	AuxColor optional.Value[Color]

	// Elements are drawn in order.
	Elements []Element
}

// NewPictureBody returns an empty, transparent picture body.
func NewPictureBody() *PictureBody {
	return &PictureBody{Transparency: true}
}

// Add appends elements to the body.
func (pb *PictureBody) Add(elems ...Element) {
	pb.Elements = append(pb.Elements, elems...)
}

// Clone returns a deep copy of the picture body.
func (pb *PictureBody) Clone() *PictureBody {
	res := *pb
	if pb.Elements != nil {
		res.Elements = make([]Element, len(pb.Elements))
		for i, e := range pb.Elements {
			res.Elements[i] = e.Clone()
		}
	}
	return &res
}

func (pb *PictureBody) String() string {
	b := &strings.Builder{}
	b.WriteString("Picture Body\n")
	fmt.Fprintf(b, "\tTransparency: %t\n", pb.Transparency)
	if c, ok := pb.AuxColor.Get(); ok {
		fmt.Fprintf(b, "\tAuxiliary Color: %s\n", c)
	}
	for _, e := range pb.Elements {
		b.WriteString(e.String())
	}
	return b.String()
}
