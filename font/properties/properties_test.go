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

package properties

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/cjkfont/pdf"
)

func TestRead(t *testing.T) {
	in := `# comment
! another comment

Flags=6
FontBBox = [-25 -254 1000 880]
Ascent: 880
Descent   -120
  Encoding=UniGB-UCS2-H
W=1 207 2 270 \
    3 342 \
	4 467
Empty=
Key\=With\:Escapes=a\tb
Unicode=\u5b8b\u4f53
Flags=4
`
	b, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := Bundle{
		"Flags":            "4",
		"FontBBox":         "[-25 -254 1000 880]",
		"Ascent":           "880",
		"Descent":          "-120",
		"Encoding":         "UniGB-UCS2-H",
		"W":                "1 207 2 270 3 342 4 467",
		"Empty":            "",
		"Key=With:Escapes": "a\tb",
		"Unicode":          "宋体",
	}
	if d := cmp.Diff(want, b); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

func TestReadTrailingContinuation(t *testing.T) {
	b, err := Read(strings.NewReader("a=1 \\"))
	if err != nil {
		t.Fatal(err)
	}
	if b["a"] != "1 " {
		t.Errorf("got %q, want %q", b["a"], "1 ")
	}
}

func TestReadEscapedBackslash(t *testing.T) {
	b, err := Read(strings.NewReader("path=C:\\\\\nnext=x\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := Bundle{"path": `C:\`, "next": "x"}
	if d := cmp.Diff(want, b); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

func TestReadLongLine(t *testing.T) {
	w := strings.Repeat("1 1000 ", 20000)
	b, err := Read(strings.NewReader("W=" + w + "\n"))
	if err != nil {
		t.Fatal(err)
	}
	if b["W"] != w {
		t.Errorf("long value truncated to %d bytes", len(b["W"]))
	}
}

func TestReadFile(t *testing.T) {
	fsys := fstest.MapFS{
		"a.properties": {Data: []byte("x=1\n")},
	}
	b, err := ReadFile(fsys, "a.properties")
	if err != nil {
		t.Fatal(err)
	}
	if b["x"] != "1" {
		t.Errorf("got %q", b["x"])
	}

	_, err = ReadFile(fsys, "missing.properties")
	if err == nil {
		t.Error("missing file not detected")
	}
}

func TestAccessors(t *testing.T) {
	b := Bundle{"A": " 12 ", "B": "x", "C": "3.5"}

	x, err := b.Int("A")
	if err != nil || x != 12 {
		t.Errorf("Int(A) = %d, %v", x, err)
	}

	for _, key := range []string{"B", "C", "D"} {
		_, err := b.Int(key)
		var fe *pdf.FormatError
		if !errors.As(err, &fe) {
			t.Errorf("Int(%s): got %v, want FormatError", key, err)
			continue
		}
		if fe.Key != key {
			t.Errorf("Int(%s): error names key %q", key, fe.Key)
		}
	}

	_, err = b.String("D")
	if !errors.Is(err, ErrMissing) {
		t.Errorf("String(D): got %v, want ErrMissing", err)
	}
}

func TestReadBadEscape(t *testing.T) {
	cases := []string{
		`a=\u12`,
		`a=\uXYZW`,
		"ok=1\nb=x\\u00g0y\n",
		`\u00=1`,
	}
	for _, in := range cases {
		_, err := Read(strings.NewReader(in))
		if !errors.Is(err, ErrEscape) {
			t.Errorf("%q: got %v, want ErrEscape", in, err)
		}
	}

	_, err := Read(strings.NewReader("ok=1\nb=\\u00g0\n"))
	if err == nil || !strings.HasPrefix(err.Error(), "line 2:") {
		t.Errorf("error does not name line 2: %v", err)
	}
}
