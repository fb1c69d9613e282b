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
	"encoding/binary"
	"fmt"
	"log/slog"

	"seehuhn.de/go/cgm/optional"
)

// commandID is the (class, code) pair identifying a CGM command.
type commandID struct {
	class, code uint8
}

type command struct {
	name string
	fn   func(d *decoder, data []byte) error
}

// commands lists all commands understood by the reader.
// The table is not modified after initialization.
var commands = map[commandID]command{
	// delimiter elements
	{0, 1}: {"BeginMetafile", (*decoder).beginMetafile},
	{0, 2}: {"EndMetafile", (*decoder).endMetafile},
	{0, 3}: {"BeginPicture", (*decoder).beginPicture},
	{0, 4}: {"BeginPictureBody", (*decoder).beginPictureBody},
	{0, 5}: {"EndPicture", (*decoder).endPicture},

	// metafile descriptor elements
	{1, 1}:  {"MetafileVersion", (*decoder).metafileVersion},
	{1, 2}:  {"MetafileDescription", (*decoder).metafileDescription},
	{1, 11}: {"MetafileElementList", (*decoder).metafileElementList},
	{1, 13}: {"FontList", (*decoder).fontList},

	// picture descriptor elements
	{2, 2}: {"ColorSelectionMode", (*decoder).colorSelectionMode},
	{2, 3}: {"LineWidthSpecMode", (*decoder).lineWidthSpecMode},
	{2, 5}: {"EdgeWidthSpecMode", (*decoder).edgeWidthSpecMode},
	{2, 6}: {"VDCExtent", (*decoder).vdcExtent},

	// control elements
	{3, 3}: {"AuxiliaryColor", (*decoder).auxColor},
	{3, 4}: {"Transparency", (*decoder).transparency},

	// graphical primitives
	{4, 1}:  {"PolyLine", (*decoder).polyLine},
	{4, 4}:  {"Text", (*decoder).text},
	{4, 7}:  {"Polygon", (*decoder).polygon},
	{4, 8}:  {"PolygonSet", (*decoder).polySet},
	{4, 11}: {"Rectangle", (*decoder).rectangle},
	{4, 12}: {"Circle", (*decoder).circle},
	{4, 15}: {"CircularArcCenter", (*decoder).circularArc},
	{4, 16}: {"CircularArcCenterClose", (*decoder).circularArcClose},
	{4, 17}: {"Ellipse", (*decoder).ellipse},
	{4, 18}: {"EllipticalArc", (*decoder).ellipticalArc},
	{4, 19}: {"EllipticalArcClose", (*decoder).ellipticalArcClose},

	// attribute elements
	{5, 2}:  {"LineType", (*decoder).lineType},
	{5, 3}:  {"LineWidth", (*decoder).width},
	{5, 4}:  {"LineColor", (*decoder).color},
	{5, 10}: {"TextFontIndex", (*decoder).textFontIndex},
	{5, 14}: {"TextColor", (*decoder).color},
	{5, 15}: {"CharacterHeight", (*decoder).characterHeight},
	{5, 16}: {"CharacterOrientation", (*decoder).characterOrientation},
	{5, 22}: {"InteriorStyle", (*decoder).interiorStyle},
	{5, 23}: {"FillColor", (*decoder).fillColor},
	{5, 24}: {"HatchIndex", (*decoder).hatchIndex},
	{5, 27}: {"EdgeType", (*decoder).lineType},
	{5, 28}: {"EdgeWidth", (*decoder).width},
	{5, 29}: {"EdgeColor", (*decoder).color},
	{5, 30}: {"EdgeVisibility", (*decoder).edgeVisibility},
}

func (d *decoder) beginMetafile(data []byte) error {
	name, _, err := decodeString(data)
	if err != nil {
		return err
	}
	d.mf.Name = name
	return nil
}

func (d *decoder) endMetafile([]byte) error {
	err := d.checkComplete()
	if err != nil {
		return err
	}
	return errEnd
}

func (d *decoder) beginPicture(data []byte) error {
	if d.mf.Picture != nil {
		return protocolError("picture was already set")
	}
	name, _, err := decodeString(data)
	if err != nil {
		return err
	}
	d.mf.Picture = newPicture(name)
	return nil
}

func (d *decoder) beginPictureBody([]byte) error {
	p, err := d.picture()
	if err != nil {
		return err
	}
	if p.Body != nil {
		d.log.Debug("replacing picture body",
			slog.Int("elements", len(p.Body.Elements)))
	}
	p.Body = NewPictureBody()
	return nil
}

func (d *decoder) endPicture([]byte) error {
	_, err := d.picture()
	if err != nil {
		return err
	}
	return d.checkComplete()
}

func (d *decoder) metafileVersion(data []byte) error {
	if err := need(data, 2); err != nil {
		return err
	}
	d.mf.Version = getShort(data, 0)
	return nil
}

func (d *decoder) metafileDescription(data []byte) error {
	desc, _, err := decodeString(data)
	if err != nil {
		return err
	}
	d.mf.Description = desc
	return nil
}

func (d *decoder) metafileElementList(data []byte) error {
	if err := need(data, 6); err != nil {
		return err
	}
	for i := range d.mf.ElementList {
		d.mf.ElementList[i] = getShort(data, 2*i)
	}
	return nil
}

func (d *decoder) fontList(data []byte) error {
	if d.mf.FontList != nil {
		return protocolError("font list was already set")
	}
	fonts := []string{}
	for len(data) > 0 {
		if len(data) == 1 && data[0] == 0 {
			break // padding
		}
		name, n, err := decodeString(data)
		if err != nil {
			return err
		}
		if n == 1 {
			return protocolError("empty name in font %d", len(fonts)+1)
		}
		fonts = append(fonts, name)
		data = data[n:]
	}
	d.mf.FontList = fonts
	return nil
}

func (d *decoder) colorSelectionMode(data []byte) error {
	p, err := d.picture()
	if err != nil {
		return err
	}
	if err := need(data, 2); err != nil {
		return err
	}
	p.ColorSelectionMode = getShort(data, 0)
	return nil
}

func (d *decoder) lineWidthSpecMode(data []byte) error {
	p, err := d.picture()
	if err != nil {
		return err
	}
	if err := need(data, 2); err != nil {
		return err
	}
	p.LineWidthSpec = getShort(data, 0)
	return nil
}

func (d *decoder) edgeWidthSpecMode(data []byte) error {
	p, err := d.picture()
	if err != nil {
		return err
	}
	if err := need(data, 2); err != nil {
		return err
	}
	p.EdgeWidthSpec = getShort(data, 0)
	return nil
}

func (d *decoder) vdcExtent(data []byte) error {
	p, err := d.picture()
	if err != nil {
		return err
	}
	if p.VDCExtent != nil {
		return protocolError("VDC extent was already set")
	}
	if err := need(data, 8); err != nil {
		return err
	}
	r := getRectangle(data)
	p.VDCExtent = &r
	return nil
}

func (d *decoder) auxColor(data []byte) error {
	body, err := d.body()
	if err != nil {
		return err
	}
	if err := need(data, 3); err != nil {
		return err
	}
	body.AuxColor.Set(getColor(data))
	return nil
}

func (d *decoder) transparency(data []byte) error {
	body, err := d.body()
	if err != nil {
		return err
	}
	if err := need(data, 2); err != nil {
		return err
	}
	body.Transparency = getShort(data, 0) != 0
	return nil
}

func (d *decoder) polyLine(data []byte) error {
	defer d.resetContext()
	vv, err := getVertices(data)
	if err != nil {
		return err
	}
	return d.add(&PolyLineElement{
		Vertices:   vv,
		Attributes: d.pc.lineAttributes(),
	})
}

func (d *decoder) text(data []byte) error {
	defer d.resetContext()
	if err := need(data, 7); err != nil {
		return err
	}
	// data[4:6] is the "final" flag, which is always set in NITF
	str, _, err := decodeString(data[6:])
	if err != nil {
		return err
	}
	return d.add(&TextElement{
		Text: &Text{
			X:   getShort(data, 0),
			Y:   getShort(data, 2),
			Str: str,
		},
		Attributes: d.pc.textAttributes(),
	})
}

func (d *decoder) polygon(data []byte) error {
	defer d.resetContext()
	vv, err := getVertices(data)
	if err != nil {
		return err
	}
	return d.add(&PolygonElement{
		Vertices:   vv,
		Attributes: d.pc.fillAttributes(),
	})
}

func (d *decoder) polySet(data []byte) error {
	defer d.resetContext()
	if len(data)%6 != 0 {
		return protocolError("polygon set data length %d is not a multiple of 6", len(data))
	}
	var vv []VertexClose
	for i := 0; i < len(data); i += 6 {
		v := VertexClose{
			X: getShort(data, i),
			Y: getShort(data, i+2),
		}
		v.EdgeOut.Set(EdgeCloseType(getShort(data, i+4)))
		vv = append(vv, v)
	}
	return d.add(&PolySetElement{
		Vertices:   vv,
		Attributes: d.pc.fillAttributes(),
	})
}

func (d *decoder) rectangle(data []byte) error {
	defer d.resetContext()
	if err := need(data, 8); err != nil {
		return err
	}
	r := getRectangle(data)
	return d.add(&RectangleElement{
		Rectangle:  &r,
		Attributes: d.pc.fillAttributes(),
	})
}

func (d *decoder) circle(data []byte) error {
	defer d.resetContext()
	if err := need(data, 6); err != nil {
		return err
	}
	return d.add(&CircleElement{
		CenterX:    getShort(data, 0),
		CenterY:    getShort(data, 2),
		Radius:     getShort(data, 4),
		Attributes: d.pc.fillAttributes(),
	})
}

func (d *decoder) circularArc(data []byte) error {
	defer d.resetContext()
	if err := need(data, 14); err != nil {
		return err
	}
	return d.add(&CircularArcElement{
		CenterX:    getShort(data, 0),
		CenterY:    getShort(data, 2),
		StartX:     getShort(data, 4),
		StartY:     getShort(data, 6),
		EndX:       getShort(data, 8),
		EndY:       getShort(data, 10),
		Radius:     getShort(data, 12),
		Attributes: d.pc.lineAttributes(),
	})
}

func (d *decoder) circularArcClose(data []byte) error {
	defer d.resetContext()
	if err := need(data, 16); err != nil {
		return err
	}
	e := &CircularArcCloseElement{
		CenterX:    getShort(data, 0),
		CenterY:    getShort(data, 2),
		StartX:     getShort(data, 4),
		StartY:     getShort(data, 6),
		EndX:       getShort(data, 8),
		EndY:       getShort(data, 10),
		Radius:     getShort(data, 12),
		Attributes: d.pc.fillAttributes(),
	}
	e.CloseType.Set(CloseType(getShort(data, 14)))
	return d.add(e)
}

func (d *decoder) ellipse(data []byte) error {
	defer d.resetContext()
	if err := need(data, 12); err != nil {
		return err
	}
	return d.add(&EllipseElement{
		CenterX:    getShort(data, 0),
		CenterY:    getShort(data, 2),
		End1X:      getShort(data, 4),
		End1Y:      getShort(data, 6),
		End2X:      getShort(data, 8),
		End2Y:      getShort(data, 10),
		Attributes: d.pc.fillAttributes(),
	})
}

func (d *decoder) ellipticalArc(data []byte) error {
	defer d.resetContext()
	if err := need(data, 20); err != nil {
		return err
	}
	return d.add(&EllipticalArcElement{
		CenterX:      getShort(data, 0),
		CenterY:      getShort(data, 2),
		End1X:        getShort(data, 4),
		End1Y:        getShort(data, 6),
		End2X:        getShort(data, 8),
		End2Y:        getShort(data, 10),
		StartVectorX: getShort(data, 12),
		StartVectorY: getShort(data, 14),
		EndVectorX:   getShort(data, 16),
		EndVectorY:   getShort(data, 18),
		Attributes:   d.pc.lineAttributes(),
	})
}

func (d *decoder) ellipticalArcClose(data []byte) error {
	defer d.resetContext()
	if err := need(data, 22); err != nil {
		return err
	}
	e := &EllipticalArcCloseElement{
		CenterX:      getShort(data, 0),
		CenterY:      getShort(data, 2),
		End1X:        getShort(data, 4),
		End1Y:        getShort(data, 6),
		End2X:        getShort(data, 8),
		End2Y:        getShort(data, 10),
		StartVectorX: getShort(data, 12),
		StartVectorY: getShort(data, 14),
		EndVectorX:   getShort(data, 16),
		EndVectorY:   getShort(data, 18),
		Attributes:   d.pc.fillAttributes(),
	}
	e.CloseType.Set(CloseType(getShort(data, 20)))
	return d.add(e)
}

func (d *decoder) lineType(data []byte) error {
	if err := need(data, 2); err != nil {
		return err
	}
	d.pc.lineType.Set(LineType(getShort(data, 0)))
	return nil
}

func (d *decoder) width(data []byte) error {
	if err := need(data, 2); err != nil {
		return err
	}
	d.pc.width.Set(getShort(data, 0))
	return nil
}

func (d *decoder) color(data []byte) error {
	if err := need(data, 3); err != nil {
		return err
	}
	d.pc.color.Set(getColor(data))
	return nil
}

func (d *decoder) textFontIndex(data []byte) error {
	if err := need(data, 2); err != nil {
		return err
	}
	d.pc.fontIndex.Set(getShort(data, 0))
	return nil
}

func (d *decoder) characterHeight(data []byte) error {
	if h, ok := d.pc.height.Get(); ok {
		return protocolError("character height was already set: [%d]", h)
	}
	if err := need(data, 2); err != nil {
		return err
	}
	d.pc.height.Set(getShort(data, 0))
	return nil
}

func (d *decoder) characterOrientation(data []byte) error {
	if err := need(data, 8); err != nil {
		return err
	}
	d.pc.orientation.Set(getRectangle(data))
	return nil
}

func (d *decoder) interiorStyle(data []byte) error {
	if s, ok := d.pc.style.Get(); ok {
		return protocolError("interior style was already set: [%d]", int16(s))
	}
	if err := need(data, 2); err != nil {
		return err
	}
	d.pc.style.Set(InteriorStyle(getShort(data, 0)))
	return nil
}

func (d *decoder) fillColor(data []byte) error {
	if err := need(data, 3); err != nil {
		return err
	}
	d.pc.fillColor.Set(getColor(data))
	return nil
}

func (d *decoder) hatchIndex(data []byte) error {
	if h, ok := d.pc.hatchIndex.Get(); ok {
		return protocolError("hatch index was already set: [%d]", int16(h))
	}
	if err := need(data, 2); err != nil {
		return err
	}
	d.pc.hatchIndex.Set(HatchType(getShort(data, 0)))
	return nil
}

func (d *decoder) edgeVisibility(data []byte) error {
	if err := need(data, 2); err != nil {
		return err
	}
	d.pc.visibility = optional.NewBool(getShort(data, 0) != 0)
	return nil
}

// picture returns the current picture.
func (d *decoder) picture() (*Picture, error) {
	if d.mf.Picture == nil {
		return nil, protocolError("no BeginPicture before picture element")
	}
	return d.mf.Picture, nil
}

// checkComplete verifies that a picture, if present, has a body.
func (d *decoder) checkComplete() error {
	if p := d.mf.Picture; p != nil && p.Body == nil {
		return protocolError("picture %q has no BeginPictureBody", p.Name)
	}
	return nil
}

// body returns the body of the current picture.
func (d *decoder) body() (*PictureBody, error) {
	p, err := d.picture()
	if err != nil {
		return nil, err
	}
	if p.Body == nil {
		return nil, protocolError("no BeginPictureBody before picture body element")
	}
	return p.Body, nil
}

// add appends a new primitive to the picture body.
func (d *decoder) add(e Element) error {
	body, err := d.body()
	if err != nil {
		return err
	}
	if d.opt.MaxElements > 0 && len(body.Elements) >= d.opt.MaxElements {
		return &Error{
			Kind: KindMemory,
			Pos:  -1,
			Err:  fmt.Errorf("more than %d elements", d.opt.MaxElements),
		}
	}
	body.Elements = append(body.Elements, e)
	return nil
}

// resetContext discards all accumulated attributes.  It is called after
// every graphical primitive, whether or not the primitive was decoded
// successfully.
func (d *decoder) resetContext() {
	d.log.Debug("reset parse context", slog.Any("pc", &d.pc))
	d.pc = parseContext{}
}

func need(data []byte, n int) error {
	if len(data) < n {
		return protocolError("need %d bytes of parameter data, got %d", n, len(data))
	}
	return nil
}

func getShort(data []byte, i int) int16 {
	return int16(binary.BigEndian.Uint16(data[i:]))
}

func getColor(data []byte) Color {
	return Color{R: data[0], G: data[1], B: data[2]}
}

func getRectangle(data []byte) Rectangle {
	return Rectangle{
		X1: getShort(data, 0),
		Y1: getShort(data, 2),
		X2: getShort(data, 4),
		Y2: getShort(data, 6),
	}
}

func getVertices(data []byte) ([]Vertex, error) {
	if len(data)%4 != 0 {
		return nil, protocolError("vertex data length %d is not a multiple of 4", len(data))
	}
	var vv []Vertex
	for i := 0; i < len(data); i += 4 {
		vv = append(vv, Vertex{X: getShort(data, i), Y: getShort(data, i+2)})
	}
	return vv, nil
}
