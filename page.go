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
	"log"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/overlay/content"
	"seehuhn.de/go/overlay/layout"
)

// Default spacing parameters for [Page].
const (
	DefaultExtraInset = 0.1
	DefaultMinGap     = 0.1
)

// Page describes a page of overlays.
type Page struct {
	// Size is the page size in inches.
	Size content.Dimensions

	Registration *RegistrationGeometry
	Overlay      *OverlayGeometry
	Legends      LegendTable

	Options

	// ExtraInset is the space kept free between the registration marks and
	// the overlays, at the top and bottom of the page.
	ExtraInset float64

	// MinGap is the minimum vertical space between adjacent overlays.
	MinGap float64

	// FontName is the name of the legend font in the page resources.
	FontName string

	// Measurer, if set, is used to center the legends on the keys.
	Measurer content.Measurer

	// Logger, if set, receives a report of the page layout.
	Logger *log.Logger
}

// NewPage returns a page with default spacing parameters.
func NewPage(size content.Dimensions, reg *RegistrationGeometry, model *Model, mode Mode) *Page {
	return &Page{
		Size:         size,
		Registration: reg,
		Overlay:      model.Geometry,
		Options:      mode.Options(),
		ExtraInset:   DefaultExtraInset,
		MinGap:       DefaultMinGap,
		FontName:     DefaultFontName,
	}
}

var errIncomplete = errors.New("page geometry not set")

// Layout determines how many overlays fit on the page.
func (p *Page) Layout() (*layout.Tiling, error) {
	if p.Registration == nil || p.Overlay == nil {
		return nil, errIncomplete
	}
	return layout.Vertical(layout.Params{
		PageHeight:    p.Size.Height,
		TopInset:      p.Registration.InsetTop + p.ExtraInset,
		BottomInset:   p.Registration.InsetBottom + p.ExtraInset,
		OverlayHeight: p.Overlay.Height,
		MinGap:        p.MinGap,
	})
}

// Content returns the content stream for the page.
//
// The stream switches to a coordinate system measured in inches, draws the
// registration marks (if enabled) and then one copy of the overlay for each
// position found by [Page.Layout].
func (p *Page) Content() (string, error) {
	if p.Registration == nil || p.Overlay == nil {
		return "", errIncomplete
	}
	if err := p.Registration.Validate(p.Size); err != nil {
		return "", err
	}

	tiling, err := p.Layout()
	if err != nil {
		return "", err
	}
	p.logf("available height %g, %d overlays, gap %g",
		tiling.Available, tiling.Count, tiling.Gap)

	b := content.New(true)
	b.Transform(matrix.Scale(PtPerInch, PtPerInch))

	if p.ShowRegistrationMarks {
		marks, err := p.Registration.Draw(p.Size)
		if err != nil {
			return "", err
		}
		b.Append(marks)
	}

	keypad, err := p.Overlay.Draw(&KeypadOptions{
		ShowOutlines: p.ShowOutlines,
		ShowLegends:  p.ShowLegends,
		Legends:      p.Legends,
		FontName:     p.FontName,
		Measure:      p.Measurer,
	})
	if err != nil {
		return "", err
	}

	left := layout.Center(p.Size.Width, p.Overlay.Width)
	top := p.Size.Height - (p.Registration.InsetTop + p.ExtraInset)
	for i, offset := range tiling.Offsets {
		bottom := top - offset - p.Overlay.Height
		p.logf("overlay %d: left %g, bottom %g", i, left, bottom)

		o := content.New(true)
		o.Transform(matrix.Translate(left, bottom))
		o.Append(keypad)
		b.Append(o.String())
	}

	return b.Finish()
}

func (p *Page) logf(format string, args ...any) {
	if p.Logger != nil {
		p.Logger.Printf(format, args...)
	}
}
