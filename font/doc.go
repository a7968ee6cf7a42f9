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

// Package font describes the CID-keyed fonts which PDF viewers supply
// without the font data being embedded in the file.
//
// The metrics of such a font are stored in a property bundle (see
// [seehuhn.de/go/cjkfont/font/properties]) with the following keys:
//
//	Flags          font descriptor flags, see [Flags]
//	FontBBox       font bounding box, in the form "[llx lly urx ury]"
//	ItalicAngle    italic angle in degrees
//	Ascent         ascent, in glyph space units
//	Descent        descent, in glyph space units
//	CapHeight      height of capital letters, in glyph space units
//	StemV          thickness of vertical stems
//	CIDSystemInfo  the character collection, e.g. "Adobe-GB1-4"
//	DW             default glyph width
//	W              glyph widths, as a list of CID/width pairs
//	Encoding       name of the CMap, e.g. "UniGB-UCS2-H"
//
// [Build] converts such a bundle into the values required to write the
// font dictionaries.
package font
