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
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"seehuhn.de/go/overlay/content"
	"seehuhn.de/go/overlay/layout"
	"seehuhn.de/go/overlay/preview"
)

func TestPageLayout(t *testing.T) {
	p := NewPage(Letter, &CameoNoMat, Voyager, ModeAll)
	tiling, err := p.Layout()
	if err != nil {
		t.Fatal(err)
	}
	if tiling.Count != 4 {
		t.Errorf("%d overlays, want 4", tiling.Count)
	}
	if tiling.Gap < p.MinGap {
		t.Errorf("gap %g below minimum", tiling.Gap)
	}
}

func TestPageContent(t *testing.T) {
	p := NewPage(Letter, &CameoNoMat, Voyager, ModeAll)
	p.Legends = MathLegends
	s, err := p.Content()
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(s, "q 72 0 0 72 0 0 cm\n") {
		t.Errorf("unexpected start of page content: %.40q", s)
	}
	if !strings.HasSuffix(s, "Q\nQ\n") {
		t.Errorf("unexpected end of page content")
	}
	if n := strings.Count(s, "q 1 0 0 1 "); n != 4 {
		t.Errorf("%d overlays placed, want 4", n)
	}
	if !strings.Contains(s, "q 1 0 0 1 1.925 8.175 cm\n") {
		t.Error("first overlay not at the top of the page")
	}
	if n := strings.Count(s, "q"); n != strings.Count(s, "Q") {
		t.Errorf("unbalanced q/Q: %d vs %d", n, strings.Count(s, "Q"))
	}
}

// TestPageMarksIndependent checks that enabling the registration marks only
// adds the marks, without changing the overlays.
func TestPageMarksIndependent(t *testing.T) {
	with := NewPage(Letter, &CameoNoMat, DM1xL, ModeAll)
	without := NewPage(Letter, &CameoNoMat, DM1xL, ModeAll)
	without.ShowRegistrationMarks = false

	a, err := with.Content()
	if err != nil {
		t.Fatal(err)
	}
	b, err := without.Content()
	if err != nil {
		t.Fatal(err)
	}
	marks, err := CameoNoMat.Draw(Letter)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(a, marks) {
		t.Fatal("marks missing")
	}
	if got := strings.Replace(a, marks, "", 1); got != b {
		t.Error("overlays depend on the registration marks")
	}
}

func TestPageLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	p := NewPage(Letter, &CameoNoMat, Voyager, ModeCut)
	p.Logger = log.New(buf, "", 0)
	if _, err := p.Content(); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "4 overlays") {
		t.Errorf("unexpected log output:\n%s", out)
	}
	if n := strings.Count(out, "\noverlay "); n != 4 {
		t.Errorf("%d overlay lines in log output:\n%s", n, out)
	}
}

func TestPageDoesNotFit(t *testing.T) {
	p := NewPage(Letter, &CameoNoMat, Voyager, ModeCut)
	p.Size.Height = 3
	_, err := p.Content()
	if !errors.Is(err, layout.ErrDoesNotFit) {
		t.Errorf("expected ErrDoesNotFit, got %v", err)
	}
}

func TestPagePreview(t *testing.T) {
	p := NewPage(Letter, &CameoNoMat, Voyager, ModePrint)
	stream, err := p.Content()
	if err != nil {
		t.Fatal(err)
	}
	img, err := preview.Render(stream, content.Dimensions{Width: 612, Height: 792}, 36)
	if err != nil {
		t.Fatal(err)
	}

	// inside the filled registration square
	if v := img.GrayAt(27, 27).Y; v != 0 {
		t.Errorf("registration square: got gray level %d, want 0", v)
	}
	// page corner
	if v := img.GrayAt(2, 2).Y; v != 255 {
		t.Errorf("page corner: got gray level %d, want 255", v)
	}
}
