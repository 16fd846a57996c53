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

import "strconv"

// Dimensions gives the width and height of a shape.
type Dimensions struct {
	Width  float64
	Height float64
}

// Color is a colour in an RGB colour space.
// The components are expected to be in the range [0, 1].
type Color struct {
	R, G, B float64
}

// Commonly used colours.
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// FillRule selects how the interior of a path is determined.
type FillRule int

// These are the fill rules supported by PDF.
const (
	NonZero FillRule = iota
	EvenOdd
)

// Alignment gives the horizontal alignment of text relative to its anchor.
type Alignment int

// Supported text alignments.
const (
	Left Alignment = iota
	Center
	Right
)

func (a Alignment) String() string {
	switch a {
	case Left:
		return "left"
	case Center:
		return "center"
	case Right:
		return "right"
	default:
		return "Alignment(" + strconv.Itoa(int(a)) + ")"
	}
}

// Measurer determines the width of a text string.
//
// The width is given in the same units as size, which is the font size.
type Measurer interface {
	Width(text string, size float64) float64
}
