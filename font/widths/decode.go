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

package widths

import "seehuhn.de/go/cjkfont/pdf"

// maxRange is the largest number of CIDs a single serial entry may cover.
const maxRange = 65536

// Decode expands a W array into the list of CID widths it describes.
// Entries are expanded in the order they appear in the array, bracket
// lists CID by CID and serial ranges from the first to the last CID.
func Decode(w pdf.Array) ([]Pair, error) {
	var res []Pair
	for len(w) > 0 {
		if len(w) < 2 {
			return nil, errInvalidW
		}
		c0, ok := w[0].(pdf.Integer)
		if !ok {
			return nil, errInvalidW
		}

		switch obj1 := w[1].(type) {
		case pdf.Integer:
			c1 := obj1
			if len(w) < 3 || c1 < c0 || c1-c0 >= maxRange {
				return nil, errInvalidW
			}
			wi, ok := w[2].(pdf.Integer)
			if !ok {
				return nil, errInvalidW
			}
			for c := c0; c <= c1; c++ {
				res = append(res, Pair{CID: int64(c), Width: int64(wi)})
			}
			w = w[3:]

		case pdf.Array:
			for _, obj := range obj1 {
				wi, ok := obj.(pdf.Integer)
				if !ok {
					return nil, errInvalidW
				}
				res = append(res, Pair{CID: int64(c0), Width: int64(wi)})
				c0++
			}
			w = w[2:]

		default:
			return nil, errInvalidW
		}
	}
	return res, nil
}

var errInvalidW = pdf.Error("invalid W entry in CIDFont dictionary")
