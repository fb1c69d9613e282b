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
	"errors"
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// Strings in the metafile are ISO 8859-1 encoded and preceded by a
// length byte.  The length 255 introduces the long string form of
// ISO 8632, which the NITF profile does not use.
const maxStringLength = 254

var latin1 = charmap.ISO8859_1

var errLongString = errors.New("string too long")

// decodeString reads a length-prefixed string from the start of b and
// returns the string together with the number of bytes consumed.
// An empty b is read as the empty string.
func decodeString(b []byte) (string, int, error) {
	if len(b) == 0 {
		return "", 0, nil
	}
	n := int(b[0])
	if n > maxStringLength {
		return "", 0, protocolError("long string form (length byte %d) is not supported", n)
	}
	if 1+n > len(b) {
		return "", 0, protocolError("string length %d exceeds the %d bytes available", n, len(b)-1)
	}
	s, err := latin1.NewDecoder().Bytes(b[1 : 1+n])
	if err != nil {
		return "", 0, protocolError("invalid string: %v", err)
	}
	return string(s), 1 + n, nil
}

// appendString appends the length-prefixed encoding of s to buf.
func appendString(buf []byte, s string) ([]byte, error) {
	enc, err := latin1.NewEncoder().String(s)
	if err != nil {
		return nil, fmt.Errorf("string %q cannot be represented in ISO 8859-1: %w", s, err)
	}
	if len(enc) > maxStringLength {
		return nil, fmt.Errorf("%w: %d > %d bytes", errLongString, len(enc), maxStringLength)
	}
	buf = append(buf, byte(len(enc)))
	return append(buf, enc...), nil
}
