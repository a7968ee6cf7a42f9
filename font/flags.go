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
)

// Flags represents PDF Font Descriptor Flags.
// See section 9.8.2 of PDF 32000-1:2008.
type Flags uint32

// Possible values for PDF Font Descriptor Flags.
const (
	FlagFixedPitch  Flags = 1 << 0  // All glyphs have the same width (as opposed to proportional or variable-pitch fonts, which have different widths).
	FlagSerif       Flags = 1 << 1  // Glyphs have serifs, which are short strokes drawn at an angle on the top and bottom of glyph stems. (Sans serif fonts do not have serifs.)
	FlagSymbolic    Flags = 1 << 2  // Font contains glyphs outside the Adobe standard Latin character set. This flag and the Nonsymbolic flag shall not both be set or both be clear.
	FlagScript      Flags = 1 << 3  // Glyphs resemble cursive handwriting.
	FlagNonsymbolic Flags = 1 << 5  // Font uses the Adobe standard Latin character set or a subset of it.
	FlagItalic      Flags = 1 << 6  // Glyphs have dominant vertical strokes that are slanted.
	FlagAllCap      Flags = 1 << 16 // Font contains no lowercase letters; typically used for display purposes, such as for titles or headlines.
	FlagSmallCap    Flags = 1 << 17 // Font contains both uppercase and lowercase letters.  The lowercase glyphs have the shapes of the uppercase ones, at reduced size.
	FlagForceBold   Flags = 1 << 18 // Bold glyphs are painted with extra pixels even at very small text sizes.
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{FlagFixedPitch, "FixedPitch"},
	{FlagSerif, "Serif"},
	{FlagSymbolic, "Symbolic"},
	{FlagScript, "Script"},
	{FlagNonsymbolic, "Nonsymbolic"},
	{FlagItalic, "Italic"},
	{FlagAllCap, "AllCap"},
	{FlagSmallCap, "SmallCap"},
	{FlagForceBold, "ForceBold"},
}

// String returns the names of the flags which are set, separated by "|".
func (f Flags) String() string {
	var parts []string
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			parts = append(parts, fn.name)
			f &^= fn.flag
		}
	}
	if f != 0 {
		parts = append(parts, "0x"+strconv.FormatUint(uint64(f), 16))
	}
	if len(parts) == 0 {
		return "0"
	}
	return strings.Join(parts, "|")
}
