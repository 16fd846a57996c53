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

package document

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestWriteSinglePage(t *testing.T) {
	buf := &bytes.Buffer{}
	content := "q 72 0 0 72 0 0 cm\nBT 1 1 Td /F1 0.1 Tf (x) Tj ET\nQ\n"
	err := WriteSinglePage(buf, &SinglePage{
		Content: content,
		Fonts:   map[Name]Font{"F1": Helvetica},
		Info: &Info{
			Title:        "Keypad Overlay",
			Producer:     "overlay-gen",
			CreationDate: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	data := buf.Bytes()
	checkXRef(t, data)

	s := buf.String()
	for _, want := range []string{
		"/MediaBox [0 0 612 792]",
		"/ProcSet [/PDF /Text]",
		"/BaseFont /Helvetica",
		"/Encoding /WinAnsiEncoding",
		"/Subtype /Type1",
		"/F1 5 0 R",
		"/Type /Catalog",
		"/Count 1",
		"/Title (Keypad Overlay)",
		"/CreationDate (D:20260102030405+00'00)",
		"/Info 6 0 R",
		"/Root 1 0 R",
		"stream\n" + content + "\nendstream",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("output does not contain %q", want)
		}
	}
	if strings.Contains(s, "/Metadata") {
		t.Error("unexpected metadata stream")
	}
}

func TestWriteSinglePageMetadata(t *testing.T) {
	buf := &bytes.Buffer{}
	err := WriteSinglePage(buf, &SinglePage{
		MediaBox: A4,
		Content:  "0 0 m 1 1 l S\n",
		Info: &Info{
			Title:  "Keypad Overlay",
			Author: "A. N. Author",
		},
		Metadata: true,
		Compress: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	checkXRef(t, buf.Bytes())

	s := buf.String()
	for _, want := range []string{
		"/MediaBox [0 0 595.276 841.89]",
		"/Type /Metadata",
		"/Subtype /XML",
		"Keypad Overlay",
		"A. N. Author",
		"/Filter /FlateDecode",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("output does not contain %q", want)
		}
	}
}

func TestWriteSinglePageNoInfo(t *testing.T) {
	err := WriteSinglePage(&bytes.Buffer{}, &SinglePage{Metadata: true})
	if err == nil {
		t.Error("metadata without info accepted")
	}
}

func TestWriteSinglePageFontOrder(t *testing.T) {
	buf := &bytes.Buffer{}
	err := WriteSinglePage(buf, &SinglePage{
		Content: "q Q\n",
		Fonts: map[Name]Font{
			"F2": {BaseFont: "Courier", Encoding: "WinAnsiEncoding"},
			"F1": Helvetica,
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	checkXRef(t, buf.Bytes())

	s := buf.String()
	if !strings.HasPrefix(s, "%PDF-1.7\n") {
		t.Errorf("wrong header %q", s[:9])
	}
	// fonts are allocated in order of their resource names
	if !strings.Contains(s, "/F1 5 0 R\n/F2 6 0 R") {
		t.Errorf("unexpected font resources in\n%s", s)
	}
	if strings.Index(s, "/BaseFont /Helvetica") > strings.Index(s, "/BaseFont /Courier") {
		t.Error("fonts written out of order")
	}
}
