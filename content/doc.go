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

// Package content builds PDF content streams as text.
//
// A [Builder] accumulates drawing and text operators and keeps track of the
// current point of the path under construction.  Builders which were
// created with a graphics state wrapper ("q ... Q") always insert new
// operators before the closing "Q", so that the output of one builder can
// be spliced into another one by plain string concatenation.
//
// The package only supports the small subset of PDF operators needed for
// keypad overlays: straight lines, axis-aligned quarter circles, rectangles
// with optionally rounded corners, and single-line text.
//
// Numbers are written with at most six digits after the decimal point and
// never in exponent notation, which PDF does not allow.  Since coordinates
// are given in inches, this rounds positions to one micro-inch.  Very small
// values therefore keep fewer significant digits, for example 0.1/25.4 is
// written as 0.003937.
package content
