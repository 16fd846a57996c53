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

// Size of the key grid.
const (
	Rows = 4
	Cols = 10
)

// The enter key occupies two rows.  These are the grid coordinates of its
// upper half.
const (
	enterRow = 2
	enterCol = 5
)

// Default legend parameters.
const (
	DefaultFontName = "F1"
	DefaultFontSize = 6 / PtPerInch
)

// OutlineWidth is the stroke width for the overlay and key outlines.
const OutlineWidth = 0.1 / MMPerInch

const (
	legendShift = 0.125 // horizontal correction for unmeasured legends
	legendRise  = 0.03  // baseline distance above the top of the key
)

// Key describes one key of the keypad.
type Key struct {
	// Row and Col give the position in the grid, starting from 0.
	Row, Col int

	// Code is the key code used to look up legends.
	Code int

	// Pos is the top left corner of the key, relative to the lower left
	// corner of the overlay.
	Pos vec.Vec2

	Size content.Dimensions
}

// KeyCode returns the key code for the given grid position.
// Rows and columns are counted from 0.  The code is formed from the 1-based
// row and column numbers, where the tenth column is numbered 0.
func KeyCode(row, col int) int {
	return (row+1)*10 + (col+1)%10
}

// Keys returns the keys of the keypad, in row major order.
func (g *OverlayGeometry) Keys() []Key {
	keys := make([]Key, 0, Rows*Cols-1)
	x0 := g.Width/2 - Cols/2*g.ColPitch + (g.ColPitch-g.KeyWidth)/2
	for row := range Rows {
		y := g.Height - (float64(row)*g.RowPitch + g.Row1Offset)
		for col := range Cols {
			if row == enterRow+1 && col == enterCol {
				continue
			}
			height := g.KeyHeight
			if row == enterRow && col == enterCol {
				height += g.RowPitch
			}
			keys = append(keys, Key{
				Row:  row,
				Col:  col,
				Code: KeyCode(row, col),
				Pos:  vec.Vec2{X: x0 + float64(col)*g.ColPitch, Y: y},
				Size: content.Dimensions{Width: g.KeyWidth, Height: height},
			})
		}
	}
	return keys
}

// KeypadOptions controls the output of [OverlayGeometry.Draw].
type KeypadOptions struct {
	ShowOutlines bool
	ShowLegends  bool

	// Legends gives the legend texts.  Keys without an entry get an
	// empty legend.
	Legends LegendTable

	// FontName is the name of the legend font in the page resources.
	// If this is empty, [DefaultFontName] is used.
	FontName string

	// FontSize is the legend font size in inches.
	// If this is zero, [DefaultFontSize] is used.
	FontSize float64

	// Measure, if set, is used to center the legends on the keys.
	Measure content.Measurer
}

// Draw returns the content stream fragment for one overlay.
// The lower left corner of the overlay is at the origin.
func (g *OverlayGeometry) Draw(opt *KeypadOptions) (string, error) {
	if opt == nil {
		opt = &KeypadOptions{}
	}
	if err := g.Validate(); err != nil {
		return "", err
	}
	font := opt.FontName
	if font == "" {
		font = DefaultFontName
	}
	size := opt.FontSize
	if size == 0 {
		size = DefaultFontSize
	}

	b := content.New(true)
	b.Measure = opt.Measure
	b.SetLineWidth(OutlineWidth)
	b.SetColorSpace("DeviceRGB", false, true)
	b.SetColor(content.Black, false, true)

	if opt.ShowOutlines {
		b.MoveTo(vec.Vec2{X: 0, Y: g.Height})
		b.RoundedRect(content.Dimensions{Width: g.Width, Height: g.Height}, g.CornerRadius)
		b.CloseAndStroke()
	}

	for _, key := range g.Keys() {
		if opt.ShowOutlines {
			b.MoveTo(key.Pos)
			b.RoundedRect(key.Size, g.KeyCornerRadius)
			b.CloseAndStroke()
		}
		if opt.ShowLegends {
			text, _ := opt.Legends.Lookup(key.Code)
			b.Text(legendPos(key, opt.Measure != nil), content.Center, text, font, size)
		}
	}

	return b.Finish()
}

// legendPos returns the anchor point for the legend of a key.
// Without text measurement the legend start is placed a fixed distance
// to the left of the key center.
func legendPos(key Key, measured bool) vec.Vec2 {
	x := key.Pos.X + key.Size.Width/2
	if !measured {
		x -= legendShift
	}
	return vec.Vec2{X: x, Y: key.Pos.Y + legendRise}
}
