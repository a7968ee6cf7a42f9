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

	"seehuhn.de/go/cjkfont/pdf"
)

// Encode converts a list of CID widths into a W array.
//
// The list is scanned from left to right, comparing every pair to its
// predecessor only.  Consecutive CIDs are collected into bracket form.  As
// soon as two consecutive CIDs have the same width, the open bracket list is
// closed and a serial range is started, which extends as long as the width
// stays the same.  Gaps in the CID sequence close the current entry.
//
// The caller must supply the CIDs in increasing order.  Encode returns a
// [pdf.FormatError] if pp is empty.
func Encode(pp []Pair) (pdf.Array, error) {
	if len(pp) == 0 {
		return nil, errInvalidList
	}

	res := pdf.Array{pdf.Integer(pp[0].CID)}
	if len(pp) == 1 {
		return append(res, pdf.Array{pdf.Integer(pp[0].Width)}), nil
	}

	var m machine
	for i := 1; i < len(pp); i++ {
		var out pdf.Array
		m, out = step(m, pp[i-1], pp[i])
		res = append(res, out...)
	}
	res = append(res, finish(m, pp[len(pp)-1])...)

	return res, nil
}

// state describes what kind of W entry is under construction.
type state uint8

const (
	// stateFirst: exactly one pair is buffered and has not been classified.
	stateFirst state = iota

	// stateBracket: a bracket list for consecutive CIDs is open.  The width
	// of the most recent pair is not yet part of the list.
	stateBracket

	// stateSerial: a range of consecutive CIDs with equal widths is open.
	// The start of the range has already been emitted.
	stateSerial
)

func (s state) String() string {
	switch s {
	case stateFirst:
		return "FIRST"
	case stateBracket:
		return "BRACKET"
	case stateSerial:
		return "SERIAL"
	default:
		return "state(" + strconv.Itoa(int(s)) + ")"
	}
}

// machine is the state of the encoder between two pairs.
// The start CID of the entry under construction is always already part of
// the output.
type machine struct {
	state state
	list  pdf.Array // open bracket list, only used in stateBracket
}

// step advances the encoder from prev to next.  It returns the new state
// together with the objects to be appended to the W array.
func step(m machine, prev, next Pair) (machine, pdf.Array) {
	consecutive := next.CID == prev.CID+1
	repeat := consecutive && next.Width == prev.Width

	switch m.state {
	case stateFirst:
		switch {
		case repeat:
			return machine{state: stateSerial}, nil
		case consecutive:
			return machine{
				state: stateBracket,
				list:  pdf.Array{pdf.Integer(prev.Width)},
			}, nil
		default:
			return machine{state: stateFirst}, pdf.Array{
				pdf.Array{pdf.Integer(prev.Width)},
				pdf.Integer(next.CID),
			}
		}

	case stateBracket:
		switch {
		case repeat:
			// The bracket list ends before prev, which starts a serial range.
			return machine{state: stateSerial}, pdf.Array{
				m.list,
				pdf.Integer(prev.CID),
			}
		case consecutive:
			m.list = append(m.list, pdf.Integer(prev.Width))
			return m, nil
		default:
			return machine{state: stateFirst}, pdf.Array{
				append(m.list, pdf.Integer(prev.Width)),
				pdf.Integer(next.CID),
			}
		}

	default: // stateSerial
		if repeat {
			return m, nil
		}
		return machine{state: stateFirst}, pdf.Array{
			pdf.Integer(prev.CID),
			pdf.Integer(prev.Width),
			pdf.Integer(next.CID),
		}
	}
}

// finish closes the entry under construction, after last has been
// consumed by step.
func finish(m machine, last Pair) pdf.Array {
	switch m.state {
	case stateFirst:
		return pdf.Array{pdf.Array{pdf.Integer(last.Width)}}
	case stateBracket:
		return pdf.Array{append(m.list, pdf.Integer(last.Width))}
	default: // stateSerial
		return pdf.Array{pdf.Integer(last.CID), pdf.Integer(last.Width)}
	}
}
