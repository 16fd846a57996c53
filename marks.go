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

package overlay

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/overlay/content"
)

// Draw returns the content stream fragment for the registration marks on a
// page of the given size.
//
// There are three marks: a solid square at the top left, an angle opening
// towards the page interior at the bottom left, and a similar angle at the
// top right.  The fragment is enclosed in "q ... Q".
func (g *RegistrationGeometry) Draw(page content.Dimensions) (string, error) {
	if err := g.Validate(page); err != nil {
		return "", err
	}

	left := g.InsetLeft
	right := page.Width - g.InsetRight
	top := page.Height - g.InsetTop
	bottom := g.InsetBottom
	n := g.LineLength

	b := content.New(true)
	b.SetLineWidth(g.LineWidth)
	b.SetColorSpace("DeviceRGB", true, true)
	b.SetColor(content.Black, true, true)

	b.MoveTo(vec.Vec2{X: left, Y: top})
	b.Rect(content.Dimensions{Width: g.SquareSize, Height: g.SquareSize})
	b.CloseFillAndStroke(content.NonZero)

	b.MoveTo(vec.Vec2{X: left, Y: bottom + n})
	b.LineTo(vec.Vec2{X: left, Y: bottom})
	b.LineTo(vec.Vec2{X: left + n, Y: bottom})
	b.Stroke()

	b.MoveTo(vec.Vec2{X: right - n, Y: top})
	b.LineTo(vec.Vec2{X: right, Y: top})
	b.LineTo(vec.Vec2{X: right, Y: top - n})
	b.Stroke()

	return b.Finish()
}
