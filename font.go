// seehuhn.de/go/cjkfont - non-embedded CJK fonts for PDF files
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

package cjkfont

import (
	"golang.org/x/text/language"
	"seehuhn.de/go/postscript/cid"

	"seehuhn.de/go/cjkfont/font"
	"seehuhn.de/go/cjkfont/font/properties"
	"seehuhn.de/go/cjkfont/font/widths"
	"seehuhn.de/go/cjkfont/pdf"
)

// Font is a non-embedded CID-keyed font from a [Registry].
// Fonts are immutable and can be shared between goroutines.
type Font struct {
	// Name is the PostScript name of the font, for example "STSong-Light".
	Name string

	// Type is the lower-cased style tag from the catalog, for example "song".
	Type string

	*font.Metrics

	// Collection is the parsed character collection of the font.
	Collection *cid.SystemInfo

	widths map[cid.CID]pdf.Integer
}

func (r *Registry) newFont(name string, b properties.Bundle) (*Font, error) {
	m, err := r.build(name, b)
	if err != nil {
		return nil, err
	}
	ros, err := m.ROS()
	if err != nil {
		return nil, err
	}

	pairs, err := widths.Decode(m.W)
	if err != nil {
		return nil, pdf.Wrap(err, "W")
	}
	ww := make(map[cid.CID]pdf.Integer, len(pairs))
	for _, p := range pairs {
		if p.CID < 0 || p.CID > 0xFFFF {
			return nil, pdf.Wrap(pdf.Errorf("CID %d out of range", p.CID), "W")
		}
		ww[cid.CID(p.CID)] = pdf.Integer(p.Width)
	}

	tp, _ := r.catalog.Type(name)
	f := &Font{
		Name:       name,
		Type:       tp,
		Metrics:    m,
		Collection: ros,
		widths:     ww,
	}
	return f, nil
}

// GlyphWidth returns the width of the glyph with the given CID, in PDF
// glyph space units.  CIDs not listed in the W array use the default width.
func (f *Font) GlyphWidth(c cid.CID) float64 {
	if w, ok := f.widths[c]; ok {
		return float64(w)
	}
	return float64(f.DW)
}

// Language returns the language served by the character collection of the
// font.
func (f *Font) Language() language.Tag {
	switch f.Collection.Ordering {
	case "GB1":
		return language.SimplifiedChinese
	case "CNS1":
		return language.TraditionalChinese
	case "Japan1":
		return language.Japanese
	case "Korea1":
		return language.Korean
	default:
		return language.Und
	}
}

// AsDict returns the Type 0 font dictionary for the font.  The descendant
// CIDFont and the font descriptor are included as direct objects.
func (f *Font) AsDict() pdf.Dict {
	cidFont := pdf.Dict{
		"Type":           pdf.Name("Font"),
		"Subtype":        pdf.Name("CIDFontType0"),
		"BaseFont":       pdf.Name(f.Name),
		"CIDSystemInfo":  font.SystemInfoDict(f.Collection),
		"FontDescriptor": f.Descriptor.AsDict(),
		"DW":             f.DW,
	}
	if len(f.W) > 0 {
		cidFont["W"] = f.W
	}

	// For CIDFontType0 descendants, the base font name is the CIDFont
	// name followed by a hyphen and the CMap name.
	baseFont := f.Name
	if f.Encoding != "" {
		baseFont += "-" + string(f.Encoding)
	}
	return pdf.Dict{
		"Type":            pdf.Name("Font"),
		"Subtype":         pdf.Name("Type0"),
		"BaseFont":        pdf.Name(baseFont),
		"Encoding":        f.Encoding,
		"DescendantFonts": pdf.Array{cidFont},
	}
}
