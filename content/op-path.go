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

import "seehuhn.de/go/geom/vec"

// This file implements the path construction and path painting operators.
// The operators are defined in tables 58, 59 and 60 of ISO 32000-2:2020.

// MoveTo starts a new subpath at p.
//
// This implements the PDF graphics operator "m".
func (b *Builder) MoveTo(p vec.Vec2) {
	if b.Err != nil {
		return
	}
	b.insert(format(p.X) + " " + format(p.Y) + " m ")
	b.setCurrent(p)
}

// LineTo appends a straight line segment from the current point to p.
//
// This implements the PDF graphics operator "l".
func (b *Builder) LineTo(p vec.Vec2) {
	if b.Err != nil {
		return
	}
	b.insert(format(p.X) + " " + format(p.Y) + " l ")
	b.setCurrent(p)
}

// ArcTo appends a quarter circle from the current point to p.
//
// The two points must be the end points of a 90 degree arc whose centre is
// aligned with both points on the coordinate axes, i.e. the horizontal and
// vertical distances between the points must be equal.  This condition is
// not checked.
//
// This uses the PDF graphics operator "c".
func (b *Builder) ArcTo(p vec.Vec2, clockwise bool) {
	if !b.needCurrent("ArcTo") {
		return
	}
	p1, p2 := QuarterArc(b.current, p, clockwise)
	b.insert(format(p1.X) + " " + format(p1.Y) + " " +
		format(p2.X) + " " + format(p2.Y) + " " +
		format(p.X) + " " + format(p.Y) + " c\n")
	b.setCurrent(p)
}

// Rect appends the outline of a rectangle, using the current point as the
// top left corner.  The outline is traced clockwise and ends at the corner
// where it started.
func (b *Builder) Rect(d Dimensions) {
	if !b.needCurrent("Rect") {
		return
	}
	o := b.current
	b.LineTo(vec.Vec2{X: o.X + d.Width, Y: o.Y})
	b.LineTo(vec.Vec2{X: o.X + d.Width, Y: o.Y - d.Height})
	b.LineTo(vec.Vec2{X: o.X, Y: o.Y - d.Height})
	b.LineTo(o)
}

// RoundedRect appends the outline of a rectangle with rounded corners,
// using the current point as the top left corner of the bounding box.
// The corners are quarter circles of the given radius.
//
// After the call, the current point is again the top left corner.
// If radius is zero, this is the same as [Builder.Rect].
func (b *Builder) RoundedRect(d Dimensions, radius float64) {
	if !b.needCurrent("RoundedRect") {
		return
	}
	if radius == 0 {
		b.Rect(d)
		return
	}

	o := b.current
	left, right := o.X, o.X+d.Width
	top, bottom := o.Y, o.Y-d.Height

	b.MoveTo(vec.Vec2{X: left, Y: top - radius})
	b.ArcTo(vec.Vec2{X: left + radius, Y: top}, true)
	b.LineTo(vec.Vec2{X: right - radius, Y: top})
	b.ArcTo(vec.Vec2{X: right, Y: top - radius}, true)
	b.LineTo(vec.Vec2{X: right, Y: bottom + radius})
	b.ArcTo(vec.Vec2{X: right - radius, Y: bottom}, true)
	b.LineTo(vec.Vec2{X: left + radius, Y: bottom})
	b.ArcTo(vec.Vec2{X: left, Y: bottom + radius}, true)
	b.LineTo(vec.Vec2{X: left, Y: top - radius})
	b.MoveTo(o)
}

// ClosePath closes the current subpath.
//
// This implements the PDF graphics operator "h".
func (b *Builder) ClosePath() {
	b.insert("h\n")
	b.hasCurrent = false
}

// Stroke strokes the current path.
//
// This implements the PDF graphics operator "S".
func (b *Builder) Stroke() {
	b.insert("S\n")
}

// CloseAndStroke closes and strokes the current path.
//
// This implements the PDF graphics operator "s".
func (b *Builder) CloseAndStroke() {
	b.insert("s\n")
	b.hasCurrent = false
}

// Fill fills the current path.
//
// This implements the PDF graphics operators "f" and "f*".
func (b *Builder) Fill(rule FillRule) {
	if rule == EvenOdd {
		b.insert("f*\n")
	} else {
		b.insert("f\n")
	}
}

// FillAndStroke fills and then strokes the current path.
//
// This implements the PDF graphics operators "B" and "B*".
func (b *Builder) FillAndStroke(rule FillRule) {
	if rule == EvenOdd {
		b.insert("B*\n")
	} else {
		b.insert("B\n")
	}
}

// CloseFillAndStroke closes, fills and strokes the current path.
//
// This implements the PDF graphics operators "b" and "b*".
func (b *Builder) CloseFillAndStroke(rule FillRule) {
	if rule == EvenOdd {
		b.insert("b*\n")
	} else {
		b.insert("b\n")
	}
	b.hasCurrent = false
}
