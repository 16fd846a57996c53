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

import "seehuhn.de/go/overlay/content"

// Letter is the size of US Letter paper, in inches.
var Letter = content.Dimensions{Width: 8.5, Height: 11}

// CameoNoMat gives the registration marks used by a Silhouette Cameo 4
// cutting plotter, when cutting without a mat.
var CameoNoMat = RegistrationGeometry{
	InsetLeft:   0.625,
	InsetRight:  0.625,
	InsetTop:    0.625,
	InsetBottom: 1.024,

	SquareSize: 0.25,
	LineLength: 0.25,
	LineWidth:  0.5 / MMPerInch,
}

// HPVoyager is the keypad of the HP Voyager series (HP-10C to HP-16C).
var HPVoyager = OverlayGeometry{
	Width:        4.65,
	Height:       2.10,
	CornerRadius: 0.025,

	ColPitch:   0.45,
	RowPitch:   0.50,
	Row1Offset: 0.133,

	KeyWidth:        0.34,
	KeyHeight:       0.32,
	KeyCornerRadius: 0.025,
}

// SwissMicrosDM1xL is the keypad of the SwissMicros DM1xL series.
var SwissMicrosDM1xL = OverlayGeometry{
	Width:        4.75,
	Height:       1.95,
	CornerRadius: 0.025,

	ColPitch:   0.475,
	RowPitch:   0.475,
	Row1Offset: 0.175,

	KeyWidth:        0.33,
	KeyHeight:       0.30,
	KeyCornerRadius: 0.025,
}
