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
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/cjkfont/pdf"
)

func TestEncodeShortest(t *testing.T) {
	type testCase struct {
		in  [][]int64
		out pdf.Array
	}
	testCases := []testCase{
		{
			in:  [][]int64{{1, 2, 3}},
			out: pdf.Array{pdf.Integer(1), pdf.Array{pdf.Integer(1), pdf.Integer(2), pdf.Integer(3)}},
		},
		{
			in:  [][]int64{{1, 1, 1, 1}},
			out: pdf.Array{pdf.Integer(1), pdf.Integer(4), pdf.Integer(1)},
		},
		{
			in: [][]int64{{1, 2, 3}, {4}},
			out: pdf.Array{pdf.Integer(1), pdf.Array{pdf.Integer(1), pdf.Integer(2), pdf.Integer(3)},
				pdf.Integer(5), pdf.Array{pdf.Integer(4)}},
		},
		{
			// "1 [1 2 3 3]" is shorter than "1 [1 2] 3 4 3"
			in:  [][]int64{{1, 2, 3, 3}},
			out: pdf.Array{pdf.Integer(1), pdf.Array{pdf.Integer(1), pdf.Integer(2), pdf.Integer(3), pdf.Integer(3)}},
		},
		{
			in: [][]int64{{1, 22, 22, 22, 22, 22, 3}},
			out: pdf.Array{pdf.Integer(1), pdf.Array{pdf.Integer(1)},
				pdf.Integer(2), pdf.Integer(6), pdf.Integer(22),
				pdf.Integer(7), pdf.Array{pdf.Integer(3)}},
		},
	}
	for i, test := range testCases {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			// runs are separated by one unused CID
			var pp []Pair
			pos := int64(1)
			for _, run := range test.in {
				for _, w := range run {
					pp = append(pp, Pair{pos, w})
					pos++
				}
				pos++
			}

			w, err := EncodeShortest(pp)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(test.out, w); d != "" {
				t.Errorf("%s\nw mismatch (-want +got):\n%s", pdf.Format(w), d)
			}
		})
	}
}

func TestShortestNotLonger(t *testing.T) {
	inputs := [][]Pair{
		{{1, 100}},
		{{1, 100}, {2, 200}, {3, 200}, {4, 300}},
		{{1, 1000}, {2, 1000}, {3, 500}, {4, 500}, {5, 1000}, {6, 1000}},
		{{10, 250}, {11, 250}, {12, 250}, {14, 333}, {15, 1000}, {16, 1000}, {17, 1000}},
		{{1, 5}, {2, 5}, {3, 6}, {4, 6}, {5, 7}, {6, 7}},
	}
	for i, pp := range inputs {
		w1, err := Encode(pp)
		if err != nil {
			t.Fatal(err)
		}
		w2, err := EncodeShortest(pp)
		if err != nil {
			t.Fatal(err)
		}
		s1, s2 := pdf.Format(w1), pdf.Format(w2)
		if len(s2) > len(s1) {
			t.Errorf("%d: %q is longer than %q", i, s2, s1)
		}

		back, err := Decode(w2)
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(pp, back); d != "" {
			t.Errorf("%d: round trip failed (-want +got):\n%s", i, d)
		}
	}
}

func TestLength(t *testing.T) {
	pp := []Pair{{9, 100}, {10, 100}, {11, 100}, {12, 7}}
	g := wwGraph(pp)

	// each entry accounts for one trailing space
	cases := []struct {
		v int
		e wwEdge
		s string
	}{
		{0, 3, "9 11 100 "},
		{0, -1, "9 [100] "},
		{0, -4, "9 [100 100 100 7] "},
		{3, -1, "12 [7] "},
	}
	for _, c := range cases {
		if got := g.Length(c.v, c.e); got != len(c.s) {
			t.Errorf("Length(%d, %d) = %d, want %d", c.v, c.e, got, len(c.s))
		}
	}
}

func FuzzShortestNotLonger(f *testing.F) {
	f.Add([]byte{0, 1, 0, 1, 0, 2, 0, 2})
	f.Add([]byte{1, 1, 0, 3, 0, 3, 0, 3, 2, 4})
	f.Fuzz(func(t *testing.T, data []byte) {
		pp := pairsFromBytes(data)
		if len(pp) == 0 {
			t.Skip("no pairs")
		}
		w1, err := Encode(pp)
		if err != nil {
			t.Fatal(err)
		}
		w2, err := EncodeShortest(pp)
		if err != nil {
			t.Fatal(err)
		}
		if s1, s2 := pdf.Format(w1), pdf.Format(w2); len(s2) > len(s1) {
			t.Errorf("%q is longer than %q", s2, s1)
		}
	})
}
