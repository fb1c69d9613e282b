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

package memfile

import (
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLimit(t *testing.T) {
	f := New()
	f.Limit = 5

	n, err := f.Write([]byte("abc"))
	if n != 3 || err != nil {
		t.Fatalf("first write: n=%d, err=%v", n, err)
	}
	n, err = f.Write([]byte("defg"))
	if n != 2 || !errors.Is(err, ErrFull) {
		t.Fatalf("second write: n=%d, err=%v", n, err)
	}
	if string(f.Data) != "abcde" {
		t.Errorf("wrong data %q", f.Data)
	}
	if d := cmp.Diff([]int{3, 4}, f.Writes); d != "" {
		t.Errorf("write sizes (-want +got):\n%s", d)
	}
}

func TestReadChunk(t *testing.T) {
	f := NewReader([]byte("0123456789"))
	f.ReadChunk = 4

	var got []string
	buf := make([]byte, 8)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			got = append(got, string(buf[:n]))
		}
		if err == io.EOF {
			break
		} else if err != nil {
			t.Fatal(err)
		}
	}
	want := []string{"0123", "4567", "89"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("chunks (-want +got):\n%s", d)
	}
}

func TestSeek(t *testing.T) {
	f := New()
	_, err := f.Write([]byte("hello"))
	if err != nil {
		t.Fatal(err)
	}
	pos, err := f.Seek(-2, io.SeekEnd)
	if err != nil || pos != 3 {
		t.Fatalf("seek: pos=%d, err=%v", pos, err)
	}
	_, err = f.Write([]byte("p!"))
	if err != nil {
		t.Fatal(err)
	}
	if string(f.Data) != "help!" {
		t.Errorf("wrong data %q", f.Data)
	}

	_, err = f.Seek(-1, io.SeekStart)
	if err == nil {
		t.Error("negative offset accepted")
	}
}
