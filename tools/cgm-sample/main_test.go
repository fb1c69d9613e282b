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

package main

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/cgm"
)

func TestSample(t *testing.T) {
	mf := sample()

	buf := &bytes.Buffer{}
	err := write(buf, mf)
	if err != nil {
		t.Fatal(err)
	}

	got, err := cgm.Read(buf, nil)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(mf, got); d != "" {
		t.Errorf("sample metafile (-want +got):\n%s", d)
	}

	if n := len(got.Picture.Body.Elements); n != 3 {
		t.Errorf("%d elements, want 3", n)
	}
	want := rect.Rect{LLx: 25, LLy: 25, URx: 75, URy: 75}
	if d := cmp.Diff(want, got.Picture.BBox()); d != "" {
		t.Errorf("bbox (-want +got):\n%s", d)
	}
}
