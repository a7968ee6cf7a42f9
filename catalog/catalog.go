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

// Package catalog lists the fonts a registry knows about.
//
// A catalog is read from a property resource where every line has the form
//
//	<font name>=<type>
//
// for example "HeiseiMin-W3=Mincho".  Types are converted to lower case.
package catalog

import (
	"io"
	"io/fs"
	"slices"

	"golang.org/x/exp/maps"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"seehuhn.de/go/cjkfont/font/properties"
)

// Catalog maps font names to type tags.
// A Catalog is read-only and can be used concurrently.
type Catalog struct {
	types map[string]string
}

// Read reads a catalog from r.
func Read(r io.Reader) (*Catalog, error) {
	b, err := properties.Read(r)
	if err != nil {
		return nil, err
	}
	return fromBundle(b), nil
}

// Load reads the catalog resource with the given name from fsys.
func Load(fsys fs.FS, name string) (*Catalog, error) {
	b, err := properties.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	return fromBundle(b), nil
}

func fromBundle(b properties.Bundle) *Catalog {
	lower := cases.Lower(language.Und)
	types := make(map[string]string, len(b))
	for name, tp := range b {
		types[name] = lower.String(tp)
	}
	return &Catalog{types: types}
}

// Contains reports whether the catalog lists the font.
func (c *Catalog) Contains(name string) bool {
	_, ok := c.types[name]
	return ok
}

// Type returns the lower-case type tag of the font.
func (c *Catalog) Type(name string) (string, bool) {
	tp, ok := c.types[name]
	return tp, ok
}

// Names returns the names of all fonts in the catalog, in sorted order.
func (c *Catalog) Names() []string {
	names := maps.Keys(c.types)
	slices.Sort(names)
	return names
}

// Len returns the number of fonts in the catalog.
func (c *Catalog) Len() int {
	return len(c.types)
}
