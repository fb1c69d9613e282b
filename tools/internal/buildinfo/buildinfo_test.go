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

package buildinfo

import (
	"runtime/debug"
	"testing"
)

func TestLabel(t *testing.T) {
	cases := []struct {
		bi   *debug.BuildInfo
		want string
	}{
		{
			bi: &debug.BuildInfo{
				Main: debug.Module{Path: "seehuhn.de/go/cgm", Version: "v0.1.0"},
			},
			want: "seehuhn.de/go/cgm v0.1.0",
		},
		{
			bi: &debug.BuildInfo{
				Main: debug.Module{Path: "seehuhn.de/go/cgm", Version: "(devel)"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "0123456789abcdef"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			want: "seehuhn.de/go/cgm 01234567+dirty",
		},
		{
			bi: &debug.BuildInfo{
				Main: debug.Module{Path: "seehuhn.de/go/cgm", Version: "(devel)"},
			},
			want: "",
		},
	}
	for i, c := range cases {
		got := fromBuildInfo(c.bi).Label()
		if got != c.want {
			t.Errorf("%d: got %q, want %q", i, got, c.want)
		}
	}
}
