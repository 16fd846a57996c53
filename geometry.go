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
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/overlay/content"
)

// Unit conversion factors.
const (
	MMPerInch = 25.4
	PtPerInch = 72.0
)

// ErrInvalidGeometry is returned when a geometry record is inconsistent.
var ErrInvalidGeometry = errors.New("invalid geometry")

// RegistrationGeometry describes the registration marks of a cutting plotter.
// The insets give the distance of the marks from the page edges.
type RegistrationGeometry struct {
	InsetLeft   float64
	InsetRight  float64
	InsetTop    float64
	InsetBottom float64

	// SquareSize is the side length of the solid square at the top left.
	SquareSize float64

	// LineLength is the length of the arms of the two right angles.
	LineLength float64

	// LineWidth is the stroke width used for all marks.
	LineWidth float64
}

// Validate checks that the marks leave a usable area on a page of the given
// size.
func (g *RegistrationGeometry) Validate(page content.Dimensions) error {
	switch {
	case g.InsetLeft < 0 || g.InsetRight < 0 || g.InsetTop < 0 || g.InsetBottom < 0:
		return invalid("negative registration inset")
	case g.InsetLeft+g.InsetRight >= page.Width:
		return invalid("horizontal insets %g+%g leave no room on a page of width %g",
			g.InsetLeft, g.InsetRight, page.Width)
	case g.InsetTop+g.InsetBottom >= page.Height:
		return invalid("vertical insets %g+%g leave no room on a page of height %g",
			g.InsetTop, g.InsetBottom, page.Height)
	case g.SquareSize < 0 || g.LineLength < 0:
		return invalid("negative registration mark size")
	case g.LineWidth < 0:
		return invalid("negative line width %g", g.LineWidth)
	}
	return nil
}

// OverlayGeometry describes the keypad of one calculator model.
type OverlayGeometry struct {
	// Width and Height give the size of the overlay.
	Width  float64
	Height float64

	// CornerRadius is the radius of the rounded corners of the overlay.
	CornerRadius float64

	// ColPitch and RowPitch give the distance between adjacent keys.
	ColPitch float64
	RowPitch float64

	// Row1Offset is the distance from the top of the overlay to the top of
	// the first row of keys.
	Row1Offset float64

	// KeyWidth and KeyHeight give the size of a single key.
	KeyWidth  float64
	KeyHeight float64

	// KeyCornerRadius is the radius of the rounded corners of the keys.
	KeyCornerRadius float64
}

// Validate checks that the keys do not overlap, that the corner radii are
// compatible with the shapes they are applied to, and that all keys are
// within the overlay.
func (g *OverlayGeometry) Validate() error {
	const ε = 1e-9

	switch {
	case !(g.Width > 0 && g.Height > 0):
		return invalid("overlay size %gx%g", g.Width, g.Height)
	case !(g.KeyWidth > 0 && g.KeyHeight > 0):
		return invalid("key size %gx%g", g.KeyWidth, g.KeyHeight)
	case g.KeyWidth >= g.ColPitch:
		return invalid("key width %g not less than column pitch %g", g.KeyWidth, g.ColPitch)
	case g.KeyHeight >= g.RowPitch:
		return invalid("key height %g not less than row pitch %g", g.KeyHeight, g.RowPitch)
	case g.CornerRadius < 0 || g.CornerRadius > math.Min(g.Width, g.Height)/2:
		return invalid("overlay corner radius %g", g.CornerRadius)
	case g.KeyCornerRadius < 0 || g.KeyCornerRadius > math.Min(g.KeyWidth, g.KeyHeight)/2:
		return invalid("key corner radius %g", g.KeyCornerRadius)
	case Cols*g.ColPitch > g.Width+ε:
		return invalid("%d columns of pitch %g do not fit into width %g", Cols, g.ColPitch, g.Width)
	case g.Row1Offset < 0 || g.Row1Offset+(Rows-1)*g.RowPitch+g.KeyHeight > g.Height+ε:
		return invalid("%d rows of pitch %g do not fit into height %g", Rows, g.RowPitch, g.Height)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidGeometry}, args...)...)
}
