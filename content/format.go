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

package content

import (
	"regexp"
	"strconv"
)

// precision is the number of digits kept after the decimal point.
// Coordinates are in inches, so this gives a resolution of one micro-inch.
const precision = 6

// format converts a number into the compact representation used in
// content streams.  Trailing zeros are removed and exponent notation is
// never used.
func format(x float64) string {
	out := strconv.FormatFloat(x, 'f', precision, 64)
	if m := tailRegexp.FindStringSubmatchIndex(out); m != nil {
		if m[2] > 0 {
			out = out[:m[2]]
		} else if m[4] > 0 {
			out = out[:m[4]]
		}
	}
	if out == "-0" {
		out = "0"
	}
	return out
}

var tailRegexp = regexp.MustCompile(`(?:\..*[1-9](0+)|(\.0+))$`)
