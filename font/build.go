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

package font

import (
	"seehuhn.de/go/postscript/cid"

	"seehuhn.de/go/cjkfont/font/properties"
	"seehuhn.de/go/cjkfont/font/widths"
	"seehuhn.de/go/cjkfont/pdf"
)

// Metrics holds everything needed to write the font dictionaries of a
// non-embedded CID-keyed font.
type Metrics struct {
	Descriptor *Descriptor

	// DW is the default width for CIDs not listed in W.
	DW pdf.Integer

	// W is the encoded width array, see [widths.Encode].
	W pdf.Array

	// Encoding is the name of the CMap which maps character codes to CIDs.
	Encoding pdf.Name

	// CIDSystemInfo names the character collection, as given in the
	// property bundle.
	CIDSystemInfo string
}

// Build reads the metrics for the font fontName from a property bundle.
// Errors are of type [*pdf.FormatError] and name the offending key.
func Build(fontName string, b properties.Bundle) (*Metrics, error) {
	fd := &Descriptor{
		FontName: fontName,
	}

	flags, err := b.Int("Flags")
	if err != nil {
		return nil, err
	}
	fd.Flags = Flags(flags)

	bboxString, err := b.String("FontBBox")
	if err != nil {
		return nil, err
	}
	fd.FontBBox, err = ParseBBox(bboxString)
	if err != nil {
		return nil, pdf.Wrap(err, "FontBBox")
	}

	scalars := []struct {
		key string
		ptr *int
	}{
		{"ItalicAngle", &fd.ItalicAngle},
		{"Ascent", &fd.Ascent},
		{"Descent", &fd.Descent},
		{"CapHeight", &fd.CapHeight},
		{"StemV", &fd.StemV},
	}
	for _, s := range scalars {
		*s.ptr, err = b.Int(s.key)
		if err != nil {
			return nil, err
		}
	}

	ros, err := b.String("CIDSystemInfo")
	if err != nil {
		return nil, err
	}

	dw, err := b.Int("DW")
	if err != nil {
		return nil, err
	}

	wString, err := b.String("W")
	if err != nil {
		return nil, err
	}
	pairs, err := widths.Parse(wString)
	if err != nil {
		return nil, pdf.Wrap(err, "W")
	}
	w, err := widths.Encode(pairs)
	if err != nil {
		return nil, pdf.Wrap(err, "W")
	}

	encoding, err := b.String("Encoding")
	if err != nil {
		return nil, err
	}

	res := &Metrics{
		Descriptor:    fd,
		DW:            pdf.Integer(dw),
		W:             w,
		Encoding:      pdf.Name(encoding),
		CIDSystemInfo: ros,
	}
	return res, nil
}

// ROS returns the parsed character collection of the font.
func (m *Metrics) ROS() (*cid.SystemInfo, error) {
	ros, err := ParseSystemInfo(m.CIDSystemInfo)
	if err != nil {
		return nil, pdf.Wrap(err, "CIDSystemInfo")
	}
	return ros, nil
}
