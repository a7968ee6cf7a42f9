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
	"strconv"
	"strings"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/cjkfont/pdf"
)

// Descriptor represents a PDF font descriptor.
//
// See section 9.8.1 of PDF 32000-1:2008.
type Descriptor struct {
	FontName    string
	Flags       Flags
	FontBBox    BBox
	ItalicAngle int
	Ascent      int
	Descent     int
	CapHeight   int
	StemV       int
}

// AsDict returns the font descriptor dictionary.
func (d *Descriptor) AsDict() pdf.Dict {
	dict := pdf.Dict{
		"Type":        pdf.Name("FontDescriptor"),
		"Flags":       pdf.Integer(d.Flags),
		"FontBBox":    d.FontBBox.AsPDF(),
		"ItalicAngle": pdf.Integer(d.ItalicAngle),
		"Ascent":      pdf.Integer(d.Ascent),
		"Descent":     pdf.Integer(d.Descent),
		"CapHeight":   pdf.Integer(d.CapHeight),
		"StemV":       pdf.Integer(d.StemV),
	}
	if d.FontName != "" {
		dict["FontName"] = pdf.Name(d.FontName)
	}
	return dict
}

// BBox is a font bounding box, in glyph space units.
type BBox struct {
	LLx, LLy, URx, URy int
}

// ParseBBox reads a bounding box of the form "[llx lly urx ury]".
// The brackets are optional.
func ParseBBox(s string) (BBox, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")

	fields := strings.Fields(s)
	if len(fields) != 4 {
		return BBox{}, pdf.Errorf("expected 4 numbers, got %d", len(fields))
	}
	var xx [4]int
	for i, f := range fields {
		x, err := strconv.Atoi(f)
		if err != nil {
			return BBox{}, pdf.Errorf("not an integer: %q", f)
		}
		xx[i] = x
	}
	return BBox{LLx: xx[0], LLy: xx[1], URx: xx[2], URy: xx[3]}, nil
}

// AsPDF returns the bounding box as a PDF rectangle.
func (b BBox) AsPDF() pdf.Array {
	return pdf.Array{
		pdf.Integer(b.LLx), pdf.Integer(b.LLy),
		pdf.Integer(b.URx), pdf.Integer(b.URy),
	}
}

// Rect converts the bounding box to PDF text space units, assuming a font
// size of 1.
func (b BBox) Rect() rect.Rect {
	return rect.Rect{
		LLx: float64(b.LLx) / 1000,
		LLy: float64(b.LLy) / 1000,
		URx: float64(b.URx) / 1000,
		URy: float64(b.URy) / 1000,
	}
}

func (b BBox) String() string {
	return pdf.Format(b.AsPDF())
}
