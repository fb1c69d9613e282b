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
	"io"
	"testing"
)

func TestErrorIs(t *testing.T) {
	sentinels := map[ErrorKind]error{
		KindIO:         ErrIO,
		KindMemory:     ErrMemory,
		KindProtocol:   ErrProtocol,
		KindValidation: ErrValidation,
	}
	for kind, sentinel := range sentinels {
		err := error(&Error{Kind: kind, Pos: -1})
		for _, other := range sentinels {
			if got := errors.Is(err, other); got != (other == sentinel) {
				t.Errorf("errors.Is(%v, %v) = %t", err, other, got)
			}
		}
	}
}

func TestErrorMessage(t *testing.T) {
	cases := []struct {
		err  *Error
		want string
	}{
		{
			err:  &Error{Kind: KindIO, Op: "cgm.Read", Pos: 12, Err: io.ErrUnexpectedEOF},
			want: "cgm: I/O error in cgm.Read: unexpected EOF (at byte 12)",
		},
		{
			err:  &Error{Kind: KindProtocol, Pos: -1},
			want: "cgm: protocol error",
		},
		{
			err:  &Error{Kind: ErrorKind(17), Pos: -1},
			want: "cgm: ErrorKind(17)",
		},
	}
	for _, c := range cases {
		if got := c.err.Error(); got != c.want {
			t.Errorf("got %q, want %q", got, c.want)
		}
	}
}

func TestWrapCommandError(t *testing.T) {
	inner := errors.New("boom")
	err := wrapCommandError(inner, "Circle", 8)

	var cgmErr *Error
	if !errors.As(err, &cgmErr) {
		t.Fatalf("wrong error type %T", err)
	}
	if cgmErr.Kind != KindProtocol || cgmErr.Op != "Circle" || cgmErr.Pos != 8 {
		t.Errorf("unexpected error %#v", cgmErr)
	}
	if !errors.Is(err, inner) {
		t.Error("inner error not wrapped")
	}

	// existing position and operation are kept
	orig := &Error{Kind: KindMemory, Op: "add", Pos: 2}
	err = wrapCommandError(orig, "Circle", 8)
	if !errors.As(err, &cgmErr) || cgmErr.Op != "add" || cgmErr.Pos != 2 {
		t.Errorf("unexpected error %v", err)
	}
}
