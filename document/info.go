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
	"time"

	"golang.org/x/text/language"
	"seehuhn.de/go/xmp"
)

// Info represents a PDF Document Information Dictionary.
//
// All fields in this structure are optional.  The zero value represents
// an empty information dictionary.
type Info struct {
	Title    string
	Author   string
	Subject  string
	Keywords string

	// Creator gives the name of the application that created the original
	// document, if the document was converted to PDF from another format.
	Creator string

	// Producer gives the name of the application that converted the document,
	// if the document was converted to PDF from another format.
	Producer string

	// CreationDate gives the date and time the document was created.
	CreationDate time.Time
}

// AsDict returns the information dictionary.
func (info *Info) AsDict() Dict {
	res := Dict{}
	text := func(key Name, val string) {
		if val != "" {
			res[key] = TextString(val)
		}
	}
	text("Title", info.Title)
	text("Author", info.Author)
	text("Subject", info.Subject)
	text("Keywords", info.Keywords)
	text("Creator", info.Creator)
	text("Producer", info.Producer)
	if !info.CreationDate.IsZero() {
		res["CreationDate"] = Date(info.CreationDate)
	}
	return res
}

// pdfNamespace is the XMP namespace for PDF metadata.
// See https://developer.adobe.com/xmp/docs/XMPNamespaces/pdf/
type pdfNamespace struct {
	_        xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_        xmp.Prefix    `xmp:"pdf"`
	Keywords xmp.Text
	Producer xmp.AgentName
}

// XMP returns an XMP metadata packet which holds the same information as
// the document information dictionary.
func (info *Info) XMP() *xmp.Packet {
	def := language.MustParse("x-default")

	dc := &xmp.DublinCore{}
	if info.Title != "" {
		dc.Title.Set(def, info.Title)
	}
	if info.Author != "" {
		dc.Creator.Append(xmp.NewProperName(info.Author))
	}
	if info.Subject != "" {
		dc.Description.Set(def, info.Subject)
	}

	basic := &xmp.Basic{}
	if !info.CreationDate.IsZero() {
		basic.CreateDate = xmp.NewDate(info.CreationDate)
		basic.ModifyDate = xmp.NewDate(info.CreationDate)
	}

	pdfInfo := &pdfNamespace{}
	if info.Keywords != "" {
		pdfInfo.Keywords = xmp.NewText(info.Keywords)
	}
	if info.Producer != "" {
		pdfInfo.Producer = xmp.NewAgentName(info.Producer)
	}

	packet := xmp.NewPacket()
	packet.Set(dc, basic, pdfInfo)
	return packet
}

// metadataStream serializes the XMP packet for embedding in a PDF file.
func (info *Info) metadataStream() ([]byte, error) {
	buf := &bytes.Buffer{}
	err := info.XMP().Write(buf, &xmp.PacketOptions{Pretty: true})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
