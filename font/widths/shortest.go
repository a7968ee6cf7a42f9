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

import (
	"strconv"

	"seehuhn.de/go/dag"

	"seehuhn.de/go/cjkfont/pdf"
)

// EncodeShortest converts a list of CID widths into the W array with the
// shortest PDF representation.  Unlike [Encode], this considers all ways of
// splitting the list into bracket and serial entries.  The CIDs must be
// given in increasing order.
//
// The result decodes to the same list as the output of [Encode], and
// pdf.Format(res) is never longer than pdf.Format of the Encode output.
func EncodeShortest(pp []Pair) (pdf.Array, error) {
	if len(pp) == 0 {
		return nil, errInvalidList
	}

	g := wwGraph(pp)
	ee, err := dag.ShortestPath[wwEdge, int](g, len(pp))
	if err != nil {
		return nil, err
	}

	var res pdf.Array
	pos := 0
	for _, e := range ee {
		if e > 0 {
			res = append(res,
				pdf.Integer(pp[pos].CID),
				pdf.Integer(pp[pos+int(e)-1].CID),
				pdf.Integer(pp[pos].Width))
		} else {
			wi := make(pdf.Array, 0, -e)
			for i := pos; i < pos+int(-e); i++ {
				wi = append(wi, pdf.Integer(pp[i].Width))
			}
			res = append(res,
				pdf.Integer(pp[pos].CID),
				wi)
		}
		pos = g.To(pos, e)
	}

	return res, nil
}

type wwGraph []Pair

// A wwEdge encodes how the next CID widths are encoded.
// The edge values have the following meaning:
//
//	e>0: the next e CIDs are consecutive and have the same width, encode as a range
//	e<0: the next -e entries have consecutive CIDs, encode as an array
type wwEdge int

func (g wwGraph) AppendEdges(ee []wwEdge, v int) []wwEdge {
	n := len(g)

	// positive edge: the longest run of consecutive CIDs with the same width
	i := v + 1
	for i < n && g[i].CID == g[i-1].CID+1 && g[i].Width == g[v].Width {
		i++
	}
	if i > v+1 {
		ee = append(ee, wwEdge(i-v))
	}

	// negative edges: sequences of consecutive CIDs
	i = v
	for i < n && g[i].CID-g[v].CID == int64(i-v) {
		i++
		ee = append(ee, wwEdge(v-i))
	}

	return ee
}

// Length gives the number of bytes the entry adds to the PDF representation
// of the W array, including one separating space.
func (g wwGraph) Length(v int, e wwEdge) int {
	if e > 0 {
		// "c1 c2 w "
		return intLen(g[v].CID) + intLen(g[v+int(e)-1].CID) + intLen(g[v].Width) + 3
	}

	// "c [w1 ... wn] "
	k := int(-e)
	l := intLen(g[v].CID) + k + 3
	for i := v; i < v+k; i++ {
		l += intLen(g[i].Width)
	}
	return l
}

func (g wwGraph) To(v int, e wwEdge) int {
	if e < 0 {
		return v - int(e)
	}
	return v + int(e)
}

func intLen(x int64) int {
	return len(strconv.FormatInt(x, 10))
}
