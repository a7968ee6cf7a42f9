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

package pdf

import (
	"errors"
	"strconv"
	"testing"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in  Object
		out string
	}{
		{nil, "null"},
		{Integer(0), "0"},
		{Integer(-25), "-25"},
		{Name("UniGB-UCS2-H"), "/UniGB-UCS2-H"},
		{Name("A B#"), "/A#20B#23"},
		{Name("a/b"), "/a#2fb"},
		{String("Adobe"), "(Adobe)"},
		{String("a(b)\\"), `(a\(b\)\\)`},
		{String("\n"), `(\012)`},
		{Array{}, "[]"},
		{Array{Integer(1), Array{Integer(100), Integer(200)}}, "[1 [100 200]]"},
		{Array{Integer(1), nil}, "[1 null]"},
		{Dict{}, "<<\n>>"},
		{Dict{"Type": Name("Font"), "Skip": nil, "A": Integer(1)}, "<<\n/A 1\n/Type /Font\n>>"},
	}
	for i, c := range cases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := Format(c.in)
			if got != c.out {
				t.Errorf("got %q, want %q", got, c.out)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "X") != nil {
		t.Error("Wrap(nil) is not nil")
	}

	err := Wrap(Error("invalid width list"), "W")
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("got %T, want *FormatError", err)
	}
	if fe.Key != "W" {
		t.Errorf("got key %q, want %q", fe.Key, "W")
	}
	if got := err.Error(); got != "malformed font data: W: invalid width list" {
		t.Errorf("unexpected message %q", got)
	}

	err = Wrap(err, "Font")
	if !errors.As(err, &fe) || fe.Key != "Font.W" {
		t.Errorf("nested key: got %v", err)
	}

	plain := errors.New("boom")
	err = Wrap(plain, "Ascent")
	if !IsFormatError(err) {
		t.Error("plain error not converted")
	}
	if !errors.Is(err, plain) {
		t.Error("plain error not wrapped")
	}
}
