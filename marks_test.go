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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/overlay/content"
)

func TestMarksLetter(t *testing.T) {
	s, err := CameoNoMat.Draw(Letter)
	if err != nil {
		t.Fatal(err)
	}
	want := "q " +
		"0.019685 w /DeviceRGB cs /DeviceRGB CS 0 0 0 sc 0 0 0 SC " +
		"0.625 10.375 m 0.875 10.375 l 0.875 10.125 l 0.625 10.125 l 0.625 10.375 l b\n" +
		"0.625 1.274 m 0.625 1.024 l 0.875 1.024 l S\n" +
		"7.625 10.375 m 7.875 10.375 l 7.875 10.125 l S\n" +
		"Q\n"
	if d := cmp.Diff(want, s); d != "" {
		t.Errorf("unexpected marks (-want +got):\n%s", d)
	}
}

// TestMarksShift checks that the marks attached to the top and right page
// edges move with the page size, while the bottom left mark stays put.
func TestMarksShift(t *testing.T) {
	big := content.Dimensions{Width: Letter.Width + 1, Height: Letter.Height + 2}
	s, err := CameoNoMat.Draw(big)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"0.625 12.375 m 0.875 12.375 l 0.875 12.125 l 0.625 12.125 l 0.625 12.375 l b\n",
		"0.625 1.274 m 0.625 1.024 l 0.875 1.024 l S\n",
		"8.625 12.375 m 8.875 12.375 l 8.875 12.125 l S\n",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("missing %q in\n%s", want, s)
		}
	}
}

func TestMarksInvalid(t *testing.T) {
	_, err := CameoNoMat.Draw(content.Dimensions{Width: 1, Height: 1})
	if err == nil {
		t.Error("marks drawn on a page which is too small")
	}
}
