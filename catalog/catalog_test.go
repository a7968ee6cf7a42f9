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

package catalog

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

const testCatalog = `# fonts
STSong-Light=Song
HeiseiMin-W3=MINCHO
HYGoThic-Medium = Gothic
`

func TestRead(t *testing.T) {
	c, err := Read(strings.NewReader(testCatalog))
	if err != nil {
		t.Fatal(err)
	}

	if c.Len() != 3 {
		t.Errorf("got %d fonts, want 3", c.Len())
	}
	for _, name := range []string{"STSong-Light", "HeiseiMin-W3", "HYGoThic-Medium"} {
		if !c.Contains(name) {
			t.Errorf("%s missing", name)
		}
	}
	for _, name := range []string{"", "stsong-light", "Helvetica"} {
		if c.Contains(name) {
			t.Errorf("unexpected font %q", name)
		}
	}

	tp, ok := c.Type("HeiseiMin-W3")
	if !ok || tp != "mincho" {
		t.Errorf("Type(HeiseiMin-W3) = %q, %t", tp, ok)
	}
	tp, ok = c.Type("HYGoThic-Medium")
	if !ok || tp != "gothic" {
		t.Errorf("Type(HYGoThic-Medium) = %q, %t", tp, ok)
	}

	want := []string{"HYGoThic-Medium", "HeiseiMin-W3", "STSong-Light"}
	if d := cmp.Diff(want, c.Names()); d != "" {
		t.Errorf("Names (-want +got):\n%s", d)
	}
}

func TestNamesSorted(t *testing.T) {
	c, err := Read(strings.NewReader("b=x\nC=x\na=x\nB-2=x\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"B-2", "C", "a", "b"}
	for i := 0; i < 3; i++ {
		if d := cmp.Diff(want, c.Names()); d != "" {
			t.Errorf("Names (-want +got):\n%s", d)
		}
	}

	empty, err := Read(strings.NewReader("# nothing\n"))
	if err != nil {
		t.Fatal(err)
	}
	if names := empty.Names(); len(names) != 0 {
		t.Errorf("empty catalog has names %q", names)
	}
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"cjk/supported.properties": {Data: []byte(testCatalog)},
	}
	c, err := Load(fsys, "cjk/supported.properties")
	if err != nil {
		t.Fatal(err)
	}
	if !c.Contains("STSong-Light") {
		t.Error("STSong-Light missing")
	}

	_, err = Load(fsys, "cjk/other.properties")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("got %v, want fs.ErrNotExist", err)
	}
}
