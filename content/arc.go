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
	"math"

	"seehuhn.de/go/geom/vec"
)

// kappa is the relative control point offset for the cubic Bézier
// approximation of a quarter circle.
const kappa = 4 * (math.Sqrt2 - 1) / 3

// QuarterArc returns the two control points of a cubic Bézier curve which
// approximates a 90 degree circular arc from p0 to p3.
//
// The radius is taken to be |p0.X - p3.X|, which must equal |p0.Y - p3.Y|.
// Each control point is offset from its end point along the tangent of the
// circle at that point, so that the curve joins horizontal and vertical
// straight edges smoothly.
func QuarterArc(p0, p3 vec.Vec2, clockwise bool) (p1, p2 vec.Vec2) {
	c := math.Abs(p0.X-p3.X) * kappa

	p1, p2 = p0, p3
	if clockwise {
		switch {
		case p0.X < p3.X && p0.Y > p3.Y: // from the top towards the right
			p1.X += c
			p2.Y += c
		case p0.X < p3.X && p0.Y < p3.Y: // from the left towards the top
			p1.Y += c
			p2.X -= c
		case p0.X > p3.X && p0.Y < p3.Y: // from the bottom towards the left
			p1.X -= c
			p2.Y -= c
		default: // from the right towards the bottom
			p1.Y -= c
			p2.X += c
		}
	} else {
		switch {
		case p0.X > p3.X && p0.Y < p3.Y: // from the right towards the top
			p1.Y += c
			p2.X += c
		case p0.X > p3.X && p0.Y > p3.Y: // from the top towards the left
			p1.X -= c
			p2.Y += c
		case p0.X < p3.X && p0.Y > p3.Y: // from the left towards the bottom
			p1.Y -= c
			p2.X -= c
		default: // from the bottom towards the right
			p1.X += c
			p2.Y -= c
		}
	}
	return p1, p2
}
