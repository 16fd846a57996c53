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
	"errors"
	"io"
	"slices"

	"golang.org/x/exp/maps"
)

// Font describes one of the standard PDF fonts.  These fonts are provided
// by every PDF viewer and are not embedded in the file.
type Font struct {
	BaseFont string
	Encoding string
}

// Helvetica is the standard Helvetica font, using WinAnsiEncoding.
var Helvetica = Font{BaseFont: "Helvetica", Encoding: "WinAnsiEncoding"}

func (f Font) asDict() Dict {
	dict := Dict{
		"Type":     Name("Font"),
		"Subtype":  Name("Type1"),
		"BaseFont": Name(f.BaseFont),
	}
	if f.Encoding != "" {
		dict["Encoding"] = Name(f.Encoding)
	}
	return dict
}

// SinglePage describes a PDF file with a single page.
type SinglePage struct {
	// MediaBox gives the page size.  If this is nil, [Letter] is used.
	MediaBox *Rectangle

	// Content is the content stream of the page.
	Content string

	// Fonts maps resource names used in the content stream to fonts.
	Fonts map[Name]Font

	// Compress selects whether the content stream is compressed.
	Compress bool

	// Info, if non-nil, is written as the document information dictionary.
	Info *Info

	// Metadata selects whether an XMP metadata stream is written.
	// This requires Info to be set.
	Metadata bool

	// Version is the PDF version of the output.  If this is zero, [V1_7]
	// is used.
	Version Version
}

// WriteSinglePage writes a complete PDF file to w.
func WriteSinglePage(w io.Writer, p *SinglePage) error {
	if p.Metadata && p.Info == nil {
		return errors.New("XMP metadata requires an information dictionary")
	}
	ver := p.Version
	if ver == 0 {
		ver = V1_7
	}
	mediaBox := p.MediaBox
	if mediaBox == nil {
		mediaBox = Letter
	}

	out, err := NewWriter(w, ver)
	if err != nil {
		return err
	}

	catalogRef := out.Alloc()
	pagesRef := out.Alloc()
	pageRef := out.Alloc()
	contentRef := out.Alloc()

	fontDict := Dict{}
	fontNames := maps.Keys(p.Fonts)
	slices.Sort(fontNames)
	for _, name := range fontNames {
		ref := out.Alloc()
		err := out.Put(ref, p.Fonts[name].asDict())
		if err != nil {
			return err
		}
		fontDict[name] = ref
	}

	resources := Dict{
		"ProcSet": Array{Name("PDF"), Name("Text")},
	}
	if len(fontDict) > 0 {
		resources["Font"] = fontDict
	}

	err = out.PutStream(contentRef, nil, []byte(p.Content), p.Compress)
	if err != nil {
		return err
	}

	err = out.Put(pageRef, Dict{
		"Type":      Name("Page"),
		"Parent":    pagesRef,
		"MediaBox":  mediaBox,
		"Resources": resources,
		"Contents":  contentRef,
	})
	if err != nil {
		return err
	}

	err = out.Put(pagesRef, Dict{
		"Type":  Name("Pages"),
		"Kids":  Array{pageRef},
		"Count": Integer(1),
	})
	if err != nil {
		return err
	}

	catalog := Dict{
		"Type":  Name("Catalog"),
		"Pages": pagesRef,
	}

	var infoRef *Reference
	if p.Info != nil {
		ref := out.Alloc()
		err = out.Put(ref, p.Info.AsDict())
		if err != nil {
			return err
		}
		infoRef = &ref
	}

	if p.Metadata {
		data, err := p.Info.metadataStream()
		if err != nil {
			return err
		}
		ref := out.Alloc()
		err = out.PutStream(ref, Dict{
			"Type":    Name("Metadata"),
			"Subtype": Name("XML"),
		}, data, false)
		if err != nil {
			return err
		}
		catalog["Metadata"] = ref
	}

	err = out.Put(catalogRef, catalog)
	if err != nil {
		return err
	}

	return out.Close(catalogRef, infoRef)
}
