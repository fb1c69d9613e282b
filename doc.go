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

// Package cgm reads and writes Computer Graphics Metafiles in the binary
// encoding, restricted to the CGM profile used for graphic segments in
// NITF files.
//
// A metafile holds some descriptive information, an optional font list
// and at most one picture.  The picture body is an ordered list of
// graphical primitives, each of which carries its own attributes:
//
//	mf := cgm.NewMetafile("example", "an example metafile")
//	pic := mf.CreatePicture("picture 1")
//
//	line := cgm.NewPolyLineElement()
//	line.Vertices = []cgm.Vertex{{X: 0, Y: 0}, {X: 100, Y: 100}}
//	line.Attributes.LineWidth.Set(2)
//	pic.Body.Add(line)
//
//	err := mf.Write(w)
//
// [Read] decodes a metafile from a stream.  Attribute commands in the
// stream are collected until the next graphical primitive, which then
// receives the collected attributes.  The attributes are discarded after
// every primitive, so no attribute carries over from one primitive to the
// next.
//
// The writer is the inverse of the reader: writing a metafile and reading
// the result back gives a metafile equal to the original.
//
// All errors returned by this package are of type *[Error].  Use
// [errors.Is] with [ErrIO], [ErrMemory], [ErrProtocol] or [ErrValidation]
// to check the error category.
package cgm
