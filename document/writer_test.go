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
	"compress/zlib"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"testing"
)

// checkXRef verifies that the cross-reference table of a PDF file points
// to the beginning of the objects.
func checkXRef(t *testing.T, data []byte) {
	t.Helper()

	m := regexp.MustCompile(`startxref\n(\d+)\n%%EOF\n$`).FindSubmatch(data)
	if m == nil {
		t.Fatal("startxref not found")
	}
	pos, _ := strconv.Atoi(string(m[1]))
	if !bytes.HasPrefix(data[pos:], []byte("xref\n0 ")) {
		t.Fatalf("startxref points to %q", data[pos:min(pos+10, len(data))])
	}

	lines := strings.Split(string(data[pos:]), "\n")
	n, err := strconv.Atoi(strings.Fields(lines[1])[1])
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < n; i++ {
		entry := strings.TrimRight(lines[2+i], "\r")
		ff := strings.Fields(entry)
		if len(ff) != 3 {
			t.Fatalf("malformed xref entry %q", entry)
		}
		if ff[2] == "f" {
			continue
		}
		offs, _ := strconv.Atoi(ff[0])
		want := fmt.Sprintf("%d 0 obj\n", i)
		if !bytes.HasPrefix(data[offs:], []byte(want)) {
			t.Errorf("object %d: xref points to %q", i, data[offs:min(offs+10, len(data))])
		}
	}
}

func TestWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	w, err := NewWriter(buf, V1_7)
	if err != nil {
		t.Fatal(err)
	}

	a := w.Alloc()
	b := w.Alloc()
	unused := w.Alloc()
	cat := w.Alloc()
	_ = unused

	if err := w.Put(b, Dict{"Value": Integer(2)}); err != nil {
		t.Fatal(err)
	}
	if err := w.PutStream(a, Dict{"Test": Bool(true)}, []byte("abc"), false); err != nil {
		t.Fatal(err)
	}
	if err := w.Put(cat, Dict{"Type": Name("Catalog"), "Other": b}); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(cat, nil); err != nil {
		t.Fatal(err)
	}

	data := buf.Bytes()
	if !bytes.HasPrefix(data, []byte("%PDF-1.7\n%\x80\x80\x80\x80\n")) {
		t.Errorf("wrong header %q", data[:15])
	}
	if !bytes.Contains(data, []byte("/Length 3\n")) {
		t.Error("stream length missing")
	}
	if !bytes.Contains(data, []byte("stream\nabc\nendstream")) {
		t.Error("stream data missing")
	}
	checkXRef(t, data)

	// the unused object number is marked as free
	if !bytes.Contains(data, []byte("xref\n0 5\n0000000000 65535 f\r\n")) {
		t.Error("free list head missing")
	}
}

func TestWriterErrors(t *testing.T) {
	w, err := NewWriter(io.Discard, V1_4)
	if err != nil {
		t.Fatal(err)
	}

	ref := w.Alloc()
	if err := w.Put(ref, Integer(1)); err != nil {
		t.Fatal(err)
	}
	if err := w.Put(ref, Integer(1)); err == nil {
		t.Error("object written twice")
	}
	if err := w.Put(Reference{Number: 99}, Integer(1)); !errors.Is(err, errNoObject) {
		t.Errorf("unallocated reference: got %v", err)
	}
	if err := w.Close(Reference{Number: 42}, nil); err == nil {
		t.Error("missing catalog accepted")
	}
	if err := w.Close(ref, nil); err != nil {
		t.Fatal(err)
	}
	if err := w.Put(w.Alloc(), Integer(1)); !errors.Is(err, ErrClosed) {
		t.Errorf("write after close: got %v", err)
	}

	if _, err := NewWriter(io.Discard, Version(2)); err == nil {
		t.Error("invalid version accepted")
	}
}

func TestPutStreamCompressed(t *testing.T) {
	buf := &bytes.Buffer{}
	w, err := NewWriter(buf, V1_7)
	if err != nil {
		t.Fatal(err)
	}
	content := strings.Repeat("0 0 m 1 1 l S\n", 100)
	ref := w.Alloc()
	if err := w.PutStream(ref, nil, []byte(content), true); err != nil {
		t.Fatal(err)
	}

	data := buf.Bytes()
	if !bytes.Contains(data, []byte("/Filter /FlateDecode")) {
		t.Fatal("filter missing")
	}
	start := bytes.Index(data, []byte("stream\n")) + len("stream\n")
	end := bytes.LastIndex(data, []byte("\nendstream"))
	zr, err := zlib.NewReader(bytes.NewReader(data[start:end]))
	if err != nil {
		t.Fatal(err)
	}
	got, err := io.ReadAll(zr)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != content {
		t.Error("decompressed data differs")
	}
}
