// seehuhn.de/go/overlay - printable keypad overlays for calculators
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

func TestDescribe(t *testing.T) {
	const path = "seehuhn.de/go/overlay"
	cases := []struct {
		info *debug.BuildInfo
		want string
	}{
		{
			&debug.BuildInfo{Main: debug.Module{Path: path, Version: "v0.2.0"}},
			"tool (seehuhn.de/go/overlay v0.2.0)",
		},
		{
			&debug.BuildInfo{Main: debug.Module{Path: path, Version: "(devel)"}},
			"tool",
		},
		{
			&debug.BuildInfo{
				Main: debug.Module{Path: path, Version: "(devel)"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "0123456789abcdef"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			"tool (seehuhn.de/go/overlay 01234567+dirty)",
		},
		{
			&debug.BuildInfo{
				Main:     debug.Module{Path: path},
				Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc"}},
			},
			"tool (seehuhn.de/go/overlay abc)",
		},
	}
	for i, c := range cases {
		if got := describe("tool", c.info); got != c.want {
			t.Errorf("%d: got %q, want %q", i, got, c.want)
		}
	}
}
