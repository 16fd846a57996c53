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

// Package overlay draws printable overlays for calculator keypads.
//
// An overlay consists of the outline of the keypad area, a grid of keys with
// rounded corners, and optionally a short legend above each key.  Several
// copies of the overlay are stacked on a page, together with registration
// marks which allow a cutting plotter to align its blade with the printed
// output.
//
// The drawing is expressed as a PDF content stream, using the
// [seehuhn.de/go/overlay/content] package.  Use [Page.Content] to obtain the
// content stream for a complete page, and the
// [seehuhn.de/go/overlay/document] package to wrap it into a PDF file.
//
// All lengths in this package are in inches.
package overlay
