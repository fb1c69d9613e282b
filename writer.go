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
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// maxRecordLength is the largest even parameter length which can be
// represented in the long form header without the partition flag.
const maxRecordLength = 0x7FFE

// Write encodes the metafile in the binary CGM encoding and writes it
// to w.  Each command is passed to w in a single Write call.
//
// All errors are of type *[Error].  Errors of kind KindValidation are
// returned if a required field is missing; in this case the output may
// be incomplete.
func (mf *Metafile) Write(w io.Writer) error {
	e := &encoder{w: w}
	return e.writeMetafile(mf)
}

// Encode returns the binary encoding of the metafile.
func (mf *Metafile) Encode() ([]byte, error) {
	buf := &bytes.Buffer{}
	err := mf.Write(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type encoder struct {
	w   io.Writer
	pos int64
	rec []byte
}

// appendHeader appends the header of a command with size bytes of
// parameter data to buf.  It returns the extended buffer, together with
// the parameter length rounded up to an even number.
func appendHeader(buf []byte, class, code uint8, size int) ([]byte, int) {
	actual := size
	if actual%2 != 0 {
		// one byte of padding follows the data
		actual++
	}

	params := actual
	if actual >= longFormLength {
		params = longFormLength
	}

	header := uint16(params) & 0x001F
	header |= uint16(class) << 12
	header |= uint16(code) << 5
	buf = binary.BigEndian.AppendUint16(buf, header)

	if params == longFormLength {
		buf = binary.BigEndian.AppendUint16(buf, uint16(actual))
	}
	return buf, actual
}

// writeField writes a complete command: header, data and padding.
func (e *encoder) writeField(class, code uint8, data []byte) error {
	if len(data) > maxRecordLength {
		return &Error{
			Kind: KindValidation,
			Op:   "cgm.Write",
			Pos:  e.pos,
			Err:  fmt.Errorf("command [%d %d] has %d bytes of data, maximum is %d",
				class, code, len(data), maxRecordLength),
		}
	}

	var actual int
	e.rec, actual = appendHeader(e.rec[:0], class, code, len(data))
	e.rec = append(e.rec, data...)
	if actual != len(data) {
		e.rec = append(e.rec, 0)
	}

	n, err := e.w.Write(e.rec)
	e.pos += int64(n)
	if err != nil {
		return &Error{Kind: KindIO, Op: "cgm.Write", Pos: e.pos, Err: err}
	}
	return nil
}

func (e *encoder) writeShort(class, code uint8, v int16) error {
	return e.writeField(class, code, appendShorts(nil, v))
}

func (e *encoder) writeColor(class, code uint8, c Color) error {
	return e.writeField(class, code, []byte{c.R, c.G, c.B})
}

func (e *encoder) writeString(class, code uint8, op, s string) error {
	data, err := appendString(nil, s)
	if err != nil {
		return e.invalid(op, "%v", err)
	}
	return e.writeField(class, code, data)
}

func (e *encoder) invalid(op string, format string, args ...any) error {
	err := validationError(op, format, args...).(*Error)
	err.Pos = e.pos
	return err
}

func (e *encoder) writeMetafile(mf *Metafile) error {
	if mf.Name == "" {
		return e.invalid("BeginMetafile", "metafile name is empty")
	}

	err := e.writeString(0, 1, "BeginMetafile", mf.Name)
	if err != nil {
		return err
	}
	err = e.writeShort(1, 1, mf.Version)
	if err != nil {
		return err
	}
	err = e.writeField(1, 11, appendShorts(nil, mf.ElementList[:]...))
	if err != nil {
		return err
	}
	err = e.writeString(1, 2, "MetafileDescription", mf.Description)
	if err != nil {
		return err
	}
	if len(mf.FontList) > 0 {
		err = e.writeFontList(mf.FontList)
		if err != nil {
			return err
		}
	}
	if mf.Picture != nil {
		err = e.writePicture(mf.Picture)
		if err != nil {
			return err
		}
	}

	// END METAFILE
	return e.writeField(0, 2, nil)
}

func (e *encoder) writeFontList(fonts []string) error {
	var data []byte
	for _, font := range fonts {
		if font == "" {
			return e.invalid("FontList", "empty font name")
		}
		var err error
		data, err = appendString(data, font)
		if err != nil {
			return e.invalid("FontList", "%v", err)
		}
	}
	return e.writeField(1, 13, data)
}

func (e *encoder) writePicture(p *Picture) error {
	if p.Body == nil {
		return e.invalid("BeginPicture", "picture %q has no body", p.Name)
	}

	err := e.writeString(0, 3, "BeginPicture", p.Name)
	if err != nil {
		return err
	}
	err = e.writeShort(2, 2, p.ColorSelectionMode)
	if err != nil {
		return err
	}
	err = e.writeShort(2, 5, p.EdgeWidthSpec)
	if err != nil {
		return err
	}
	err = e.writeShort(2, 3, p.LineWidthSpec)
	if err != nil {
		return err
	}
	if p.VDCExtent != nil {
		err = e.writeField(2, 6, appendRectangle(nil, *p.VDCExtent))
		if err != nil {
			return err
		}
	}

	err = e.writeBody(p.Body)
	if err != nil {
		return err
	}

	// END PICTURE
	return e.writeField(0, 5, nil)
}

func (e *encoder) writeBody(body *PictureBody) error {
	// BEGIN PICTURE BODY
	err := e.writeField(0, 4, nil)
	if err != nil {
		return err
	}

	var transparency int16
	if body.Transparency {
		transparency = 1
	}
	err = e.writeShort(3, 4, transparency)
	if err != nil {
		return err
	}

	if c, ok := body.AuxColor.Get(); ok {
		err = e.writeColor(3, 3, c)
		if err != nil {
			return err
		}
	}

	for i, elem := range body.Elements {
		if elem == nil {
			return e.invalid("cgm.Write", "element %d is nil", i)
		}
		tp := elem.Type()
		if tp < 0 || tp >= numElementTypes {
			return e.invalid("cgm.Write", "invalid element type [%d] encountered", int(tp))
		}
		err = packers[tp](e, elem)
		if err != nil {
			return err
		}
	}
	return nil
}

func (e *encoder) writeLineAttributes(a *LineAttributes) error {
	if c, ok := a.LineColor.Get(); ok {
		if err := e.writeColor(5, 4, c); err != nil {
			return err
		}
	}
	if w, ok := a.LineWidth.Get(); ok {
		if err := e.writeShort(5, 3, w); err != nil {
			return err
		}
	}
	if t, ok := a.LineType.Get(); ok {
		if err := e.writeShort(5, 2, int16(t)); err != nil {
			return err
		}
	}
	return nil
}

func (e *encoder) writeFillAttributes(a *FillAttributes) error {
	if c, ok := a.FillColor.Get(); ok {
		if err := e.writeColor(5, 23, c); err != nil {
			return err
		}
	}
	if c, ok := a.EdgeColor.Get(); ok {
		if err := e.writeColor(5, 29, c); err != nil {
			return err
		}
	}
	if s, ok := a.InteriorStyle.Get(); ok {
		if err := e.writeShort(5, 22, int16(s)); err != nil {
			return err
		}
	}
	if v, ok := a.EdgeVisibility.Get(); ok {
		var vis int16
		if v {
			vis = 1
		}
		if err := e.writeShort(5, 30, vis); err != nil {
			return err
		}
	}
	if w, ok := a.EdgeWidth.Get(); ok {
		if err := e.writeShort(5, 28, w); err != nil {
			return err
		}
	}
	if t, ok := a.EdgeType.Get(); ok {
		if err := e.writeShort(5, 27, int16(t)); err != nil {
			return err
		}
	}
	if h, ok := a.HatchIndex.Get(); ok {
		if err := e.writeShort(5, 24, int16(h)); err != nil {
			return err
		}
	}
	return nil
}

func (e *encoder) writeTextAttributes(a *TextAttributes) error {
	if c, ok := a.TextColor.Get(); ok {
		if err := e.writeColor(5, 14, c); err != nil {
			return err
		}
	}
	if h, ok := a.CharacterHeight.Get(); ok {
		if err := e.writeShort(5, 15, h); err != nil {
			return err
		}
	}
	if idx, ok := a.TextFontIndex.Get(); ok {
		if err := e.writeShort(5, 10, idx); err != nil {
			return err
		}
	}
	if r, ok := a.CharacterOrientation.Get(); ok {
		if err := e.writeField(5, 16, appendRectangle(nil, r)); err != nil {
			return err
		}
	}
	return nil
}

func appendShorts(buf []byte, vv ...int16) []byte {
	for _, v := range vv {
		buf = binary.BigEndian.AppendUint16(buf, uint16(v))
	}
	return buf
}

func appendRectangle(buf []byte, r Rectangle) []byte {
	return appendShorts(buf, r.X1, r.Y1, r.X2, r.Y2)
}
