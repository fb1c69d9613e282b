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
	"errors"
	"fmt"
	"io"
	"log/slog"

	"seehuhn.de/go/cgm/logging"
)

// endOfMetafile is the header of an END METAFILE command without
// parameters (class 0, code 2).
const endOfMetafile = 0x0040

// longFormLength in the parameter field of a header indicates that the
// parameter length is given in the following 16 bit word.
const longFormLength = 31

// ReaderOptions control how a metafile is read.
// A nil *ReaderOptions is equivalent to the zero value.
type ReaderOptions struct {
	// MaxElements, if positive, limits the number of elements in the
	// picture body.  Metafiles with more elements fail with an error of
	// kind KindMemory.
	MaxElements int
}

// Read decodes a binary CGM metafile from r.
//
// Reading stops after the END METAFILE command.  On error, no partial
// metafile is returned.  All errors are of type *[Error].
func Read(r io.Reader, opt *ReaderOptions) (*Metafile, error) {
	d := &decoder{
		r:   r,
		log: logging.Logger(),
		mf: &Metafile{
			Version:     1,
			ElementList: [3]int16{1, -1, 1},
		},
	}
	if opt != nil {
		d.opt = *opt
	}

	for {
		done, err := d.readCommand()
		if err != nil {
			return nil, err
		}
		if done {
			return d.mf, nil
		}
	}
}

type decoder struct {
	r   io.Reader
	pos int64
	opt ReaderOptions
	log *slog.Logger

	mf *Metafile
	pc parseContext
}

// errEnd is returned by the END METAFILE handler to stop the read loop.
var errEnd = errors.New("end of metafile")

// readCommand reads and executes one command.
// The return value done is true after the end of the metafile is reached.
func (d *decoder) readCommand() (done bool, err error) {
	start := d.pos

	var buf [2]byte
	err = d.readFull(buf[:])
	if err != nil {
		return false, err
	}
	header := binary.BigEndian.Uint16(buf[:])
	if header == endOfMetafile {
		d.log.Debug("end of metafile", slog.Int64("pos", start))
		err = d.checkComplete()
		if err != nil {
			return false, wrapCommandError(err, "EndMetafile", start)
		}
		return true, nil
	}

	params := int(header & 0x001F)
	class := uint8((header >> 12) & 0x000F)
	code := uint8((header >> 5) & 0x007F)

	if params == longFormLength {
		err = d.readFull(buf[:])
		if err != nil {
			return false, err
		}
		params = int(binary.BigEndian.Uint16(buf[:]))
		if params > maxRecordLength {
			// This includes all partitioned parameter lists.
			return false, &Error{
				Kind: KindProtocol,
				Op:   "cgm.Read",
				Pos:  start,
				Err:  fmt.Errorf("parameter list of %d bytes exceeds %d bytes", params, maxRecordLength),
			}
		}
	}
	if params%2 != 0 {
		// the parameter list is padded to an even number of bytes
		params++
	}

	data := make([]byte, params)
	err = d.readFull(data)
	if err != nil {
		return false, err
	}

	cmd, ok := commands[commandID{class, code}]
	if !ok {
		return false, &Error{
			Kind: KindProtocol,
			Op:   "cgm.Read",
			Pos:  start,
			Err:  fmt.Errorf("unknown command [%d %d %d]", class, code, params),
		}
	}

	d.log.Debug("command",
		slog.String("name", cmd.name),
		slog.Int("class", int(class)),
		slog.Int("code", int(code)),
		slog.Int("len", params))

	err = cmd.fn(d, data)
	if err == errEnd {
		return true, nil
	} else if err != nil {
		return false, wrapCommandError(err, cmd.name, start)
	}
	return false, nil
}

// readFull fills buf from the input.  Reaching the end of input at any
// point is an error, because the END METAFILE command has not been seen.
func (d *decoder) readFull(buf []byte) error {
	n, err := io.ReadFull(d.r, buf)
	d.pos += int64(n)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	if err != nil {
		return &Error{Kind: KindIO, Op: "cgm.Read", Pos: d.pos, Err: err}
	}
	return nil
}

func wrapCommandError(err error, name string, pos int64) error {
	var cgmErr *Error
	if !errors.As(err, &cgmErr) {
		return &Error{Kind: KindProtocol, Op: name, Pos: pos, Err: err}
	}
	res := *cgmErr
	if res.Op == "" {
		res.Op = name
	}
	if res.Pos < 0 {
		res.Pos = pos
	}
	return &res
}
