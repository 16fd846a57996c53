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
	"fmt"

	"seehuhn.de/go/geom/matrix"
)

// SetColorSpace selects a colour space for filling and/or stroking.
//
// This implements the PDF graphics operators "cs" and "CS".
func (b *Builder) SetColorSpace(space string, fill, stroke bool) {
	if fill {
		b.insert(name(space) + " cs ")
	}
	if stroke {
		b.insert(name(space) + " CS ")
	}
}

// SetColor sets the fill and/or stroke colour.
//
// This implements the PDF graphics operators "sc" and "SC".
func (b *Builder) SetColor(c Color, fill, stroke bool) {
	rgb := format(c.R) + " " + format(c.G) + " " + format(c.B)
	if fill {
		b.insert(rgb + " sc ")
	}
	if stroke {
		b.insert(rgb + " SC ")
	}
}

// SetLineWidth sets the line width for stroking.
//
// This implements the PDF graphics operator "w".
func (b *Builder) SetLineWidth(width float64) {
	if b.Err != nil {
		return
	}
	if width < 0 {
		b.Err = fmt.Errorf("SetLineWidth: negative width %g", width)
		return
	}
	b.insert(format(width) + " w ")
}

// Transform modifies the current transformation matrix, so that
// the new transformation is applied to user coordinates first,
// followed by the existing transformation.
//
// This implements the PDF graphics operator "cm".
func (b *Builder) Transform(m matrix.Matrix) {
	b.insert(format(m[0]) + " " + format(m[1]) + " " +
		format(m[2]) + " " + format(m[3]) + " " +
		format(m[4]) + " " + format(m[5]) + " cm\n")
}
