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

// Package layout decides how many copies of an overlay fit on a page.
//
// Copies are stacked vertically between a top and a bottom margin.  The
// first copy touches the top margin, the last copy touches the bottom
// margin, and the remaining space is distributed evenly between the copies.
package layout

import (
	"errors"
	"fmt"
	"math"
)

// ErrDoesNotFit is returned if not even a single copy of the overlay fits
// between the page margins.
var ErrDoesNotFit = errors.New("overlay does not fit on the page")

// Params describes the page and the overlay.
// All lengths must use the same unit.
type Params struct {
	PageHeight    float64
	TopInset      float64
	BottomInset   float64
	OverlayHeight float64

	// MinGap is the smallest acceptable vertical space between two
	// adjacent copies.
	MinGap float64
}

// Tiling is the result of the layout computation.
type Tiling struct {
	// Available is the height between the top and bottom insets.
	Available float64

	// Count is the number of copies which fit on the page.
	Count int

	// Gap is the vertical space between adjacent copies.
	// If only one copy fits, Gap is zero.
	Gap float64

	// Offsets gives, for each copy, the distance from the top inset to the
	// top edge of the copy.
	Offsets []float64
}

// Vertical computes how many copies of an overlay can be stacked on a page,
// and where they are placed.
func Vertical(p Params) (*Tiling, error) {
	if !(p.OverlayHeight > 0) || math.IsInf(p.OverlayHeight, 0) {
		return nil, fmt.Errorf("invalid overlay height %g", p.OverlayHeight)
	}
	if p.MinGap < 0 {
		return nil, fmt.Errorf("invalid minimum gap %g", p.MinGap)
	}

	h := p.OverlayHeight
	available := p.PageHeight - p.TopInset - p.BottomInset
	count := int(math.Floor(available/h + epsilon))
	if count < 1 {
		return nil, fmt.Errorf("%w: %g available, %g needed",
			ErrDoesNotFit, available, h)
	}

	if count >= 2 && gap(available, h, count) < p.MinGap-epsilon {
		count--
	}

	res := &Tiling{
		Available: available,
		Count:     count,
		Offsets:   make([]float64, count),
	}
	if count >= 2 {
		res.Gap = max(gap(available, h, count), 0)
	}
	for i := range res.Offsets {
		res.Offsets[i] = float64(i) * (h + res.Gap)
	}
	return res, nil
}

// epsilon absorbs rounding errors when the available height is an exact
// multiple of the overlay height.
const epsilon = 1e-9

// gap returns the space between copies, if count >= 2 copies are placed.
func gap(available, h float64, count int) float64 {
	return (available - float64(count)*h) / float64(count-1)
}

// Center returns the left edge of an object of the given width, when it is
// centered horizontally on the page.
func Center(pageWidth, width float64) float64 {
	return (pageWidth - width) / 2
}
