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

// Package buildinfo formats version information for the command line
// tools.
package buildinfo

import (
	"runtime/debug"
)

// Info describes the module a tool was built from.
type Info struct {
	Path     string
	Version  string
	Revision string
	Dirty    bool
}

// Read returns the build information embedded in the running binary.
// The second return value is false if no information is available.
func Read() (Info, bool) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return Info{}, false
	}
	return fromBuildInfo(bi), true
}

func fromBuildInfo(bi *debug.BuildInfo) Info {
	info := Info{
		Path:    bi.Main.Path,
		Version: bi.Main.Version,
	}
	if info.Version == "(devel)" {
		info.Version = ""
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Revision = s.Value
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}
	return info
}

// Label returns "<path> <version>", falling back to the abbreviated VCS
// revision for development builds.  If neither is known, the empty
// string is returned.
func (info Info) Label() string {
	if info.Version != "" {
		return info.Path + " " + info.Version
	}

	rev := info.Revision
	if rev == "" {
		return ""
	}
	if len(rev) > 8 {
		rev = rev[:8]
	}
	if info.Dirty {
		rev += "+dirty"
	}
	return info.Path + " " + rev
}

// Short returns a short version string for a CLI tool, e.g.
// "cgm-inspect (seehuhn.de/go/cgm v0.1.0)".
func Short(toolName string) string {
	info, ok := Read()
	if !ok {
		return toolName
	}
	label := info.Label()
	if label == "" {
		return toolName
	}
	return toolName + " (" + label + ")"
}
