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

package font

import (
	"embed"
	"fmt"
	"io"
	"sync"

	"golang.org/x/text/encoding/charmap"
	"seehuhn.de/go/postscript/afm"
)

//go:embed afm/*.afm
var afmData embed.FS

// Metrics gives the glyph widths of a font, for text encoded using
// WinAnsiEncoding.
type Metrics struct {
	FontName string

	// widths in PDF glyph space units (1/1000 of the font size)
	widths [256]float64
}

// Read parses font metrics from an AFM file.
// Codes which are not covered by the file are assigned the width of
// the ".notdef" glyph, or zero if the file has no such glyph.
func Read(r io.Reader) (*Metrics, error) {
	info, err := afm.Read(r)
	if err != nil {
		return nil, err
	}

	var notdef float64
	if g, ok := info.Glyphs[".notdef"]; ok {
		notdef = float64(g.WidthX)
	}

	m := &Metrics{FontName: info.FontName}
	for code, name := range winAnsiGlyphs {
		m.widths[code] = notdef
		if g, ok := info.Glyphs[name]; ok && name != "" {
			m.widths[code] = float64(g.WidthX)
		}
	}
	return m, nil
}

var (
	helvetica     *Metrics
	helveticaErr  error
	helveticaOnce sync.Once
)

// Helvetica returns the metrics of the standard Helvetica font.
func Helvetica() (*Metrics, error) {
	helveticaOnce.Do(func() {
		fd, err := afmData.Open("afm/Helvetica.afm")
		if err != nil {
			helveticaErr = err
			return
		}
		defer fd.Close()
		helvetica, helveticaErr = Read(fd)
		if helveticaErr != nil {
			helveticaErr = fmt.Errorf("built-in Helvetica metrics: %w", helveticaErr)
		}
	})
	return helvetica, helveticaErr
}

// GlyphWidth returns the width of the glyph for the given code, in PDF
// glyph space units.
func (m *Metrics) GlyphWidth(code byte) float64 {
	return m.widths[code]
}

// Width returns the width of text set at the given font size.
// Characters which cannot be represented in WinAnsiEncoding contribute
// the width of the ".notdef" glyph.
func (m *Metrics) Width(text string, size float64) float64 {
	var total float64
	for _, r := range text {
		code, ok := charmap.Windows1252.EncodeRune(r)
		if ok {
			total += m.widths[code]
		} else {
			total += m.widths[0] // code 0 is unused and has the .notdef width
		}
	}
	return total * size / 1000
}
