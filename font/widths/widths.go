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

// Package widths implements the W entry of CIDFont dictionaries.
//
// A W array lists glyph widths for ranges of CIDs.  Two forms of entries
// can be mixed freely:
//
//	c [w1 w2 ... wn]    CIDs c, c+1, ..., c+n-1 have widths w1, ..., wn
//	c1 c2 w             all CIDs from c1 to c2 have width w
//
// The first form is called "bracket form" here, the second "serial form".
package widths

import (
	"strconv"
	"strings"

	"seehuhn.de/go/cjkfont/pdf"
)

// Pair gives the glyph width for one character identifier (CID).
type Pair struct {
	CID   int64
	Width int64
}

var errInvalidList = pdf.Error("invalid width list")

// Parse reads a whitespace separated list of integers, alternating between
// CIDs and widths.  The list must contain at least one pair.
func Parse(s string) ([]Pair, error) {
	tokens := strings.Fields(s)
	if len(tokens) == 0 || len(tokens)%2 != 0 {
		return nil, errInvalidList
	}

	res := make([]Pair, len(tokens)/2)
	for i := range res {
		c, err := strconv.ParseInt(tokens[2*i], 10, 64)
		if err != nil {
			return nil, pdf.Errorf("invalid width list: CID %q", tokens[2*i])
		}
		w, err := strconv.ParseInt(tokens[2*i+1], 10, 64)
		if err != nil {
			return nil, pdf.Errorf("invalid width list: width %q", tokens[2*i+1])
		}
		res[i] = Pair{CID: c, Width: w}
	}
	return res, nil
}
