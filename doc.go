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

// Package cjkfont provides the non-embedded CJK fonts for PDF files.
//
// PDF viewers are expected to supply a small set of CID-keyed fonts for
// Chinese, Japanese and Korean text, for example STSong-Light or
// HeiseiMin-W3.  These fonts can be used in a PDF file without embedding
// the font program, but the file still needs to contain the font
// dictionaries: a font descriptor, the default glyph width and the W array
// which lists the widths of individual CIDs.
//
// A [Registry] holds a catalog of such fonts.  [Registry.GetFont] builds
// the metrics of a font on first use and returns the cached [Font] on all
// later calls.  The registry returned by [Default] serves the fonts built
// into this package:
//
//	f, err := cjkfont.GetFont("STSong-Light")
//	if err != nil {
//		return err
//	}
//	dict := f.AsDict() // the /Type0 font dictionary
//
// The W arrays are produced by [seehuhn.de/go/cjkfont/font/widths.Encode].
package cjkfont
