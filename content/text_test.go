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
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"
)

type perChar float64

func (w perChar) Width(text string, size float64) float64 {
	return float64(w) * float64(len(text)) * size
}

func TestTextZeroWidth(t *testing.T) {
	for _, align := range []Alignment{Left, Center, Right} {
		b := New(false)
		b.Text(vec.Vec2{X: 1, Y: 2}, align, "x<>(i)", "F1", 6.0/72.0)
		got, err := b.Finish()
		if err != nil {
			t.Fatal(err)
		}
		want := "BT 1 2 Td 0 Tr /F1 0.083333 Tf\n(x<>(i)) Tj ET\n"
		if d := cmp.Diff(want, got); d != "" {
			t.Errorf("%s (-want +got):\n%s", align, d)
		}
	}
}

func TestTextMeasured(t *testing.T) {
	cases := []struct {
		align Alignment
		x     string
	}{
		{Left, "3"},
		{Center, "2"},
		{Right, "1"},
	}
	for _, c := range cases {
		b := New(false)
		b.Measure = perChar(0.5)
		b.Text(vec.Vec2{X: 3, Y: 0}, c.align, "ab", "F1", 2)
		want := "BT " + c.x + " 0 Td 0 Tr /F1 2 Tf\n(ab) Tj ET\n"
		if got := b.String(); got != want {
			t.Errorf("%s: got %q, want %q", c.align, got, want)
		}
	}
}

func TestTextEscape(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", "()"},
		{"EEX", "(EEX)"},
		{"(i)", "((i))"},
		{"a)b", `(a\)b)`},
		{`a\b`, `(a\\b)`},
		{"1s COMP", "(1s COMP)"},
		{"é", "<e9>"},
		{"a\nb", `(a\nb)`},
	}
	for _, c := range cases {
		b := New(false)
		b.Text(vec.Vec2{}, Left, c.in, "F1", 1)
		want := "BT 0 0 Td 0 Tr /F1 1 Tf\n" + c.want + " Tj ET\n"
		if got := b.String(); got != want {
			t.Errorf("%q: got %q, want %q", c.in, got, want)
		}
	}
}

func TestTextNotEncodable(t *testing.T) {
	b := New(true)
	b.Text(vec.Vec2{}, Left, "x→y", "F1", 1)
	if b.Err == nil {
		t.Error("unencodable text accepted")
	}
}

func TestFontName(t *testing.T) {
	b := New(false)
	b.Text(vec.Vec2{}, Left, "", "My Font", 1)
	want := "BT 0 0 Td 0 Tr /My#20Font 1 Tf\n() Tj ET\n"
	if got := b.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
