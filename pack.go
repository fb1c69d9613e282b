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

// packers holds the writer for each element type, indexed by
// [ElementType].
var packers = [numElementTypes]func(e *encoder, elem Element) error{
	TypeText:               (*encoder).writeText,
	TypePolygon:            (*encoder).writePolygon,
	TypePolyLine:           (*encoder).writePolyLine,
	TypePolySet:            (*encoder).writePolySet,
	TypeEllipse:            (*encoder).writeEllipse,
	TypeEllipticalArc:      (*encoder).writeEllipticalArc,
	TypeEllipticalArcClose: (*encoder).writeEllipticalArcClose,
	TypeRectangle:          (*encoder).writeRectangle,
	TypeCircle:             (*encoder).writeCircle,
	TypeCircularArc:        (*encoder).writeCircularArc,
	TypeCircularArcClose:   (*encoder).writeCircularArcClose,
}

func (e *encoder) writeText(elem Element) error {
	t := elem.(*TextElement)
	if t.Text == nil {
		return e.invalid("Text", "text element has no text")
	}
	data := appendShorts(nil, t.Text.X, t.Text.Y, 1)
	data, err := appendString(data, t.Text.Str)
	if err != nil {
		return e.invalid("Text", "%v", err)
	}

	err = e.writeTextAttributes(&t.Attributes)
	if err != nil {
		return err
	}
	return e.writeField(4, 4, data)
}

func (e *encoder) writePolygon(elem Element) error {
	p := elem.(*PolygonElement)
	err := e.writeFillAttributes(&p.Attributes)
	if err != nil {
		return err
	}
	return e.writeField(4, 7, appendVertices(nil, p.Vertices))
}

func (e *encoder) writePolyLine(elem Element) error {
	p := elem.(*PolyLineElement)
	err := e.writeLineAttributes(&p.Attributes)
	if err != nil {
		return err
	}
	return e.writeField(4, 1, appendVertices(nil, p.Vertices))
}

func (e *encoder) writePolySet(elem Element) error {
	p := elem.(*PolySetElement)
	data := make([]byte, 0, 6*len(p.Vertices))
	for i, v := range p.Vertices {
		flag, ok := v.EdgeOut.Get()
		if !ok {
			return e.invalid("PolygonSet", "vertex %d has no edge out flag", i)
		}
		data = appendShorts(data, v.X, v.Y, int16(flag))
	}

	err := e.writeFillAttributes(&p.Attributes)
	if err != nil {
		return err
	}
	return e.writeField(4, 8, data)
}

func (e *encoder) writeEllipse(elem Element) error {
	el := elem.(*EllipseElement)
	err := e.writeFillAttributes(&el.Attributes)
	if err != nil {
		return err
	}
	data := appendShorts(nil,
		el.CenterX, el.CenterY,
		el.End1X, el.End1Y,
		el.End2X, el.End2Y)
	return e.writeField(4, 17, data)
}

func (e *encoder) writeEllipticalArc(elem Element) error {
	el := elem.(*EllipticalArcElement)
	err := e.writeLineAttributes(&el.Attributes)
	if err != nil {
		return err
	}
	data := appendShorts(nil,
		el.CenterX, el.CenterY,
		el.End1X, el.End1Y,
		el.End2X, el.End2Y,
		el.StartVectorX, el.StartVectorY,
		el.EndVectorX, el.EndVectorY)
	return e.writeField(4, 18, data)
}

func (e *encoder) writeEllipticalArcClose(elem Element) error {
	el := elem.(*EllipticalArcCloseElement)
	closeType, ok := el.CloseType.Get()
	if !ok {
		return e.invalid("EllipticalArcClose", "close type not set")
	}
	err := e.writeFillAttributes(&el.Attributes)
	if err != nil {
		return err
	}
	data := appendShorts(nil,
		el.CenterX, el.CenterY,
		el.End1X, el.End1Y,
		el.End2X, el.End2Y,
		el.StartVectorX, el.StartVectorY,
		el.EndVectorX, el.EndVectorY,
		int16(closeType))
	return e.writeField(4, 19, data)
}

func (e *encoder) writeRectangle(elem Element) error {
	r := elem.(*RectangleElement)
	if r.Rectangle == nil {
		return e.invalid("Rectangle", "rectangle element has no rectangle")
	}
	err := e.writeFillAttributes(&r.Attributes)
	if err != nil {
		return err
	}
	return e.writeField(4, 11, appendRectangle(nil, *r.Rectangle))
}

func (e *encoder) writeCircle(elem Element) error {
	c := elem.(*CircleElement)
	err := e.writeFillAttributes(&c.Attributes)
	if err != nil {
		return err
	}
	return e.writeField(4, 12, appendShorts(nil, c.CenterX, c.CenterY, c.Radius))
}

func (e *encoder) writeCircularArc(elem Element) error {
	c := elem.(*CircularArcElement)
	err := e.writeLineAttributes(&c.Attributes)
	if err != nil {
		return err
	}
	data := appendShorts(nil,
		c.CenterX, c.CenterY,
		c.StartX, c.StartY,
		c.EndX, c.EndY,
		c.Radius)
	return e.writeField(4, 15, data)
}

func (e *encoder) writeCircularArcClose(elem Element) error {
	c := elem.(*CircularArcCloseElement)
	closeType, ok := c.CloseType.Get()
	if !ok {
		return e.invalid("CircularArcCenterClose", "close type not set")
	}
	err := e.writeFillAttributes(&c.Attributes)
	if err != nil {
		return err
	}
	data := appendShorts(nil,
		c.CenterX, c.CenterY,
		c.StartX, c.StartY,
		c.EndX, c.EndY,
		c.Radius,
		int16(closeType))
	return e.writeField(4, 16, data)
}

func appendVertices(buf []byte, vv []Vertex) []byte {
	for _, v := range vv {
		buf = appendShorts(buf, v.X, v.Y)
	}
	return buf
}
