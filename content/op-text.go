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

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding/charmap"
	"seehuhn.de/go/geom/vec"
)

// Text shows a single line of text.
//
// The text is anchored at pos, which is on the baseline.  The horizontal
// position is adjusted according to align, using the width reported by
// b.Measure.  If b.Measure is nil the width of the text is taken to be zero,
// and all alignments place the text start at pos.
//
// The font is given by its name in the resource dictionary of the page.
// The text must be representable in WinAnsiEncoding.
//
// This uses the PDF operators "BT", "Td", "Tr", "Tf", "Tj" and "ET".
func (b *Builder) Text(pos vec.Vec2, align Alignment, text string, font string, size float64) {
	if b.Err != nil {
		return
	}

	enc, err := EncodeWinAnsi(text)
	if err != nil {
		b.Err = fmt.Errorf("Text: %w", err)
		return
	}

	var width float64
	if b.Measure != nil {
		width = b.Measure.Width(text, size)
	}
	x := pos.X
	switch align {
	case Center:
		x -= width / 2
	case Right:
		x -= width
	}

	b.insert("BT " + format(x) + " " + format(pos.Y) + " Td 0 Tr " +
		name(font) + " " + format(size) + " Tf\n" +
		literal(enc) + " Tj ET\n")
}

// EncodeWinAnsi converts a UTF-8 string into WinAnsiEncoding.
// An error is returned if the string contains characters which cannot be
// represented.
func EncodeWinAnsi(s string) ([]byte, error) {
	enc, err := charmap.Windows1252.NewEncoder().String(s)
	if err != nil {
		return nil, fmt.Errorf("cannot encode %q: %w", s, err)
	}
	return []byte(enc), nil
}

// literal formats a byte string as a PDF string object.
func literal(l []byte) string {
	level := 0
	for _, c := range l {
		if c == '(' {
			level++
		} else if c == ')' {
			level--
			if level < 0 {
				break
			}
		}
	}
	balanced := level == 0

	var funny []int
	for i, c := range l {
		if c < 32 || c >= 127 || c == '\\' ||
			!balanced && (c == '(' || c == ')') {
			funny = append(funny, i)
		}
	}
	n := len(l)

	buf := &bytes.Buffer{}
	if 3*len(funny) > n {
		fmt.Fprintf(buf, "<%x>", l)
		return buf.String()
	}

	buf.WriteString("(")
	pos := 0
	for _, i := range funny {
		if pos < i {
			buf.Write(l[pos:i])
		}
		c := l[i]
		switch c {
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		case '(':
			buf.WriteString(`\(`)
		case ')':
			buf.WriteString(`\)`)
		case '\\':
			buf.WriteString(`\\`)
		default:
			fmt.Fprintf(buf, `\%03o`, c)
		}
		pos = i + 1
	}
	if pos < n {
		buf.Write(l[pos:n])
	}
	buf.WriteString(")")
	return buf.String()
}

// name formats s as a PDF name object.
func name(s string) string {
	buf := &bytes.Buffer{}
	buf.WriteByte('/')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 0x21 || c > 0x7e || c == '#' || isDelimiter(c) {
			fmt.Fprintf(buf, "#%02x", c)
		} else {
			buf.WriteByte(c)
		}
	}
	return buf.String()
}

func isDelimiter(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}
