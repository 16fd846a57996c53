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

package layout

import (
	"errors"
	"math"
	"testing"
)

func TestVertical(t *testing.T) {
	cases := []struct {
		name    string
		p       Params
		count   int
		gap     float64
		offsets []float64
	}{
		{
			name:    "three copies",
			p:       Params{PageHeight: 7, OverlayHeight: 2.1, MinGap: 0.1},
			count:   3,
			gap:     0.35,
			offsets: []float64{0, 2.45, 4.9},
		},
		{
			name:    "single copy",
			p:       Params{PageHeight: 2.5, OverlayHeight: 2.1, MinGap: 0.1},
			count:   1,
			gap:     0,
			offsets: []float64{0},
		},
		{
			name:    "exact fit",
			p:       Params{PageHeight: 2, OverlayHeight: 2, MinGap: 0.1},
			count:   1,
			gap:     0,
			offsets: []float64{0},
		},
		{
			name:    "exact multiple",
			p:       Params{PageHeight: 6.3, OverlayHeight: 2.1, MinGap: 0},
			count:   3,
			gap:     0,
			offsets: []float64{0, 2.1, 4.2},
		},
		{
			name:    "gap too small",
			p:       Params{PageHeight: 6.45, OverlayHeight: 2.1, MinGap: 0.1},
			count:   2,
			gap:     2.25,
			offsets: []float64{0, 4.35},
		},
		{
			name:    "two reduced to one",
			p:       Params{PageHeight: 4.25, OverlayHeight: 2.1, MinGap: 0.1},
			count:   1,
			gap:     0,
			offsets: []float64{0},
		},
		{
			name: "insets",
			p: Params{
				PageHeight:    11,
				TopInset:      0.725,
				BottomInset:   1.124,
				OverlayHeight: 2.1,
				MinGap:        0.1,
			},
			count:   4,
			gap:     (9.151 - 8.4) / 3,
			offsets: []float64{0, 2.1 + 0.751/3, 2*2.1 + 2*0.751/3, 3*2.1 + 0.751},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res, err := Vertical(c.p)
			if err != nil {
				t.Fatal(err)
			}
			if res.Count != c.count {
				t.Fatalf("count = %d, want %d", res.Count, c.count)
			}
			if math.Abs(res.Gap-c.gap) > 1e-9 {
				t.Errorf("gap = %g, want %g", res.Gap, c.gap)
			}
			if len(res.Offsets) != len(c.offsets) {
				t.Fatalf("offsets = %v, want %v", res.Offsets, c.offsets)
			}
			for i, want := range c.offsets {
				if math.Abs(res.Offsets[i]-want) > 1e-9 {
					t.Errorf("offset[%d] = %g, want %g", i, res.Offsets[i], want)
				}
			}
			if res.Count >= 2 && res.Gap < c.p.MinGap {
				t.Errorf("gap %g below minimum %g", res.Gap, c.p.MinGap)
			}

			// the last copy ends at the bottom inset
			last := res.Offsets[res.Count-1] + c.p.OverlayHeight
			if res.Count >= 2 && math.Abs(last-res.Available) > 1e-9 {
				t.Errorf("last copy ends at %g, available %g", last, res.Available)
			}
		})
	}
}

func TestVerticalDoesNotFit(t *testing.T) {
	_, err := Vertical(Params{PageHeight: 2, OverlayHeight: 2.1})
	if !errors.Is(err, ErrDoesNotFit) {
		t.Errorf("got error %v, want %v", err, ErrDoesNotFit)
	}

	_, err = Vertical(Params{PageHeight: 11, TopInset: 6, BottomInset: 6, OverlayHeight: 1})
	if !errors.Is(err, ErrDoesNotFit) {
		t.Errorf("negative space: got error %v", err)
	}
}

func TestVerticalInvalid(t *testing.T) {
	for _, p := range []Params{
		{PageHeight: 11, OverlayHeight: 0},
		{PageHeight: 11, OverlayHeight: -1},
		{PageHeight: 11, OverlayHeight: math.NaN()},
		{PageHeight: 11, OverlayHeight: 1, MinGap: -1},
	} {
		if _, err := Vertical(p); err == nil || errors.Is(err, ErrDoesNotFit) {
			t.Errorf("%v: got error %v", p, err)
		}
	}
}

func TestCenter(t *testing.T) {
	if got := Center(8.5, 4.65); math.Abs(got-1.925) > 1e-12 {
		t.Errorf("got %g", got)
	}
}
