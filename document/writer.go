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
)

// Version represents a version of the PDF standard.
type Version int

// PDF versions supported by this package.
const (
	V1_4 Version = iota + 4
	V1_5
	V1_6
	V1_7
)

func (ver Version) String() string {
	if ver < V1_4 || ver > V1_7 {
		return fmt.Sprintf("Version(%d)", int(ver))
	}
	return fmt.Sprintf("1.%d", int(ver))
}

// Errors returned by the [Writer] methods.
var (
	ErrClosed   = errors.New("PDF writer already closed")
	errNoObject = errors.New("object reference was not allocated")
)

// Writer represents a PDF file open for writing.
//
// Objects are written using [Writer.Put] and [Writer.PutStream].  After all
// objects have been written, [Writer.Close] must be called to write the
// cross-reference table and the file trailer.
type Writer struct {
	Version Version

	w       *posWriter
	xref    map[int]int64
	nextRef int
}

// NewWriter prepares a PDF file for writing.
func NewWriter(w io.Writer, ver Version) (*Writer, error) {
	if ver < V1_4 || ver > V1_7 {
		return nil, fmt.Errorf("unsupported PDF version %s", ver)
	}

	pdf := &Writer{
		Version: ver,
		w:       &posWriter{w: w},
		xref:    make(map[int]int64),
		nextRef: 1,
	}

	_, err := fmt.Fprintf(pdf.w, "%%PDF-%s\n%%\x80\x80\x80\x80\n", ver)
	if err != nil {
		return nil, err
	}
	return pdf, nil
}

// Alloc allocates an object number for an indirect object.
func (pdf *Writer) Alloc() Reference {
	ref := Reference{Number: pdf.nextRef}
	pdf.nextRef++
	return ref
}

// Put writes an object to the PDF file, as an indirect object.
// Every reference can be written only once.
func (pdf *Writer) Put(ref Reference, obj Object) error {
	err := pdf.begin(ref)
	if err != nil {
		return err
	}
	if obj == nil {
		_, err = io.WriteString(pdf.w, "null")
	} else {
		err = obj.PDF(pdf.w)
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(pdf.w, "\nendobj\n")
	return err
}

// PutStream writes a stream object to the PDF file.
//
// The /Length entry of dict is set automatically.  If compress is true, the
// data is compressed using the FlateDecode filter.
func (pdf *Writer) PutStream(ref Reference, dict Dict, data []byte, compress bool) error {
	if compress {
		buf := &bytes.Buffer{}
		zw := zlib.NewWriter(buf)
		if _, err := zw.Write(data); err != nil {
			return err
		}
		if err := zw.Close(); err != nil {
			return err
		}
		data = buf.Bytes()
	}

	d := make(Dict, len(dict)+2)
	for key, val := range dict {
		d[key] = val
	}
	d["Length"] = Integer(len(data))
	if compress {
		d["Filter"] = Name("FlateDecode")
	}

	err := pdf.begin(ref)
	if err != nil {
		return err
	}
	err = d.PDF(pdf.w)
	if err != nil {
		return err
	}
	_, err = io.WriteString(pdf.w, "\nstream\n")
	if err != nil {
		return err
	}
	_, err = pdf.w.Write(data)
	if err != nil {
		return err
	}
	_, err = io.WriteString(pdf.w, "\nendstream\nendobj\n")
	return err
}

// begin records the position of an indirect object and writes its header.
func (pdf *Writer) begin(ref Reference) error {
	if pdf.w == nil {
		return ErrClosed
	}
	if ref.Number <= 0 || ref.Number >= pdf.nextRef {
		return fmt.Errorf("object %d: %w", ref.Number, errNoObject)
	}
	if _, seen := pdf.xref[ref.Number]; seen {
		return fmt.Errorf("object %d already written", ref.Number)
	}

	pdf.xref[ref.Number] = pdf.w.pos
	_, err := fmt.Fprintf(pdf.w, "%d %d obj\n", ref.Number, ref.Generation)
	return err
}

// Close writes the cross-reference table and the file trailer.
// Catalog must refer to the document catalog, info (if non-nil) to
// the document information dictionary.
//
// The underlying io.Writer is not closed.
func (pdf *Writer) Close(catalog Reference, info *Reference) error {
	if pdf.w == nil {
		return ErrClosed
	}
	if _, ok := pdf.xref[catalog.Number]; !ok {
		return errors.New("document catalog not written")
	}

	trailer := Dict{
		"Size": Integer(pdf.nextRef),
		"Root": catalog,
	}
	if info != nil {
		trailer["Info"] = *info
	}

	xRefPos := pdf.w.pos
	err := pdf.writeXRefTable(trailer)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(pdf.w, "\nstartxref\n%d\n%%%%EOF\n", xRefPos)
	if err != nil {
		return err
	}

	// make sure we don't accidentally write beyond the end of file
	pdf.w = nil
	return nil
}

func (pdf *Writer) writeXRefTable(trailer Dict) error {
	_, err := fmt.Fprintf(pdf.w, "xref\n0 %d\n", pdf.nextRef)
	if err != nil {
		return err
	}
	for i := 0; i < pdf.nextRef; i++ {
		if pos, ok := pdf.xref[i]; ok {
			_, err = fmt.Fprintf(pdf.w, "%010d 00000 n\r\n", pos)
		} else {
			// free object
			_, err = io.WriteString(pdf.w, "0000000000 65535 f\r\n")
		}
		if err != nil {
			return err
		}
	}

	_, err = io.WriteString(pdf.w, "trailer\n")
	if err != nil {
		return err
	}
	return trailer.PDF(pdf.w)
}

type posWriter struct {
	w   io.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}
