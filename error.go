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
	"strconv"
)

// ErrorKind classifies the errors returned by this package.
type ErrorKind int

// These are the possible error kinds.
const (
	// KindIO indicates that reading from or writing to the underlying
	// stream failed.
	KindIO ErrorKind = iota + 1

	// KindMemory indicates that a metafile exceeded a configured
	// resource limit.
	KindMemory

	// KindProtocol indicates that the input is not a valid metafile
	// in the supported CGM profile.
	KindProtocol

	// KindValidation indicates that a metafile could not be written
	// because a required field is missing or out of range.
	KindValidation
)

func (k ErrorKind) String() string {
	switch k {
	case KindIO:
		return "I/O error"
	case KindMemory:
		return "resource limit exceeded"
	case KindProtocol:
		return "protocol error"
	case KindValidation:
		return "validation error"
	}
	return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
}

// These errors can be used with [errors.Is] to test the kind of an
// error returned by [Read] or [Metafile.Write].
var (
	ErrIO         = errors.New("cgm: I/O error")
	ErrMemory     = errors.New("cgm: resource limit exceeded")
	ErrProtocol   = errors.New("cgm: protocol error")
	ErrValidation = errors.New("cgm: validation error")
)

// Error is the error type returned by the reader and the writer.
type Error struct {
	Kind ErrorKind

	// Op names the operation which failed, for example the command
	// being decoded.
	Op string

	// Pos is the stream offset of the command which caused the error,
	// or -1 if unknown.
	Pos int64

	Err error
}

func (err *Error) Error() string {
	msg := "cgm: " + err.Kind.String()
	if err.Op != "" {
		msg += " in " + err.Op
	}
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	if err.Pos >= 0 {
		msg += " (at byte " + strconv.FormatInt(err.Pos, 10) + ")"
	}
	return msg
}

func (err *Error) Unwrap() error {
	return err.Err
}

// Is reports whether target is the sentinel error for the kind of err.
func (err *Error) Is(target error) bool {
	switch target {
	case ErrIO:
		return err.Kind == KindIO
	case ErrMemory:
		return err.Kind == KindMemory
	case ErrProtocol:
		return err.Kind == KindProtocol
	case ErrValidation:
		return err.Kind == KindValidation
	}
	return false
}

func protocolError(format string, args ...any) error {
	return &Error{Kind: KindProtocol, Pos: -1, Err: fmt.Errorf(format, args...)}
}

func validationError(op string, format string, args ...any) error {
	return &Error{Kind: KindValidation, Op: op, Pos: -1, Err: fmt.Errorf(format, args...)}
}
