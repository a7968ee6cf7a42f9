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

package cjkfont

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"
	"sync"

	"seehuhn.de/go/cjkfont/catalog"
	"seehuhn.de/go/cjkfont/font"
	"seehuhn.de/go/cjkfont/font/properties"
)

// Options control how a [Registry] locates its resources.
// The zero value, and a nil pointer, select the built-in resources.
type Options struct {
	// FS holds the catalog and the per-font property resources.
	// If this is nil, the resources built into the package are used.
	FS fs.FS

	// CatalogPath is the location of the catalog within FS.  The metrics
	// of each font are read from "<name>.properties" in the same directory.
	// If this is empty, "supported_fonts.properties" is used.
	CatalogPath string
}

// Registry gives access to the non-embedded CJK fonts listed in a catalog.
// Fonts are built on first use and then kept for the lifetime of the
// registry.  A Registry is safe for concurrent use.
type Registry struct {
	fsys    fs.FS
	dir     string
	catalog *catalog.Catalog

	cache fontCache

	// build converts a property bundle into font metrics.
	// This is font.Build, except in tests.
	build func(name string, b properties.Bundle) (*font.Metrics, error)
}

// New creates a registry and loads its catalog.
// If the catalog cannot be read, a [*CatalogError] is returned.
func New(opt *Options) (*Registry, error) {
	if opt == nil {
		opt = &Options{}
	}

	fsys := opt.FS
	if fsys == nil {
		sub, err := fs.Sub(builtin, builtinDir)
		if err != nil {
			return nil, &CatalogError{Path: builtinDir, Err: err}
		}
		fsys = sub
	}
	catalogPath := opt.CatalogPath
	if catalogPath == "" {
		catalogPath = defaultCatalog
	}

	cat, err := catalog.Load(fsys, catalogPath)
	if err != nil {
		return nil, &CatalogError{Path: catalogPath, Err: err}
	}
	Logger().Debug("font catalog loaded",
		slog.String("path", catalogPath),
		slog.Int("fonts", cat.Len()))

	r := &Registry{
		fsys:    fsys,
		dir:     path.Dir(catalogPath),
		catalog: cat,
		build:   font.Build,
	}
	return r, nil
}

var defaultRegistry = sync.OnceValues(func() (*Registry, error) {
	return New(nil)
})

// Default returns the registry for the built-in fonts.
// The registry is created on the first call.
func Default() (*Registry, error) {
	return defaultRegistry()
}

// GetFont returns the font with the given name from the default registry.
func GetFont(name string) (*Font, error) {
	r, err := Default()
	if err != nil {
		return nil, err
	}
	return r.GetFont(name)
}

// GetFont returns the font with the given name.
//
// If the name is not in the catalog, an [*UnsupportedFontError] is returned.
// A font whose W array lists a CID outside the range 0 to 65535, the CID
// limit of PDF, fails with a *pdf.FormatError for key "W".
// On the first call for a given name, the font metrics are read and encoded.
// All later calls, including concurrent ones, return the same result.
func (r *Registry) GetFont(name string) (*Font, error) {
	if !r.catalog.Contains(name) {
		return nil, &UnsupportedFontError{Name: name}
	}
	return r.cache.Get(name, func() (*Font, error) {
		return r.makeFont(name)
	})
}

// Fonts returns the names of all fonts in the catalog, in sorted order.
func (r *Registry) Fonts() []string {
	return r.catalog.Names()
}

// Supports reports whether the catalog lists the given font.
func (r *Registry) Supports(name string) bool {
	return r.catalog.Contains(name)
}

func (r *Registry) makeFont(name string) (*Font, error) {
	// Catalog entries are resource names, so they must not escape dir.
	if strings.ContainsAny(name, `/\`) {
		return nil, &MissingResourceError{Name: name, Err: fs.ErrInvalid}
	}
	p := path.Join(r.dir, name+".properties")

	log := Logger().With(slog.String("font", name))
	log.Debug("building font", slog.String("path", p))

	b, err := properties.ReadFile(r.fsys, p)
	if errors.Is(err, fs.ErrNotExist) {
		err = &MissingResourceError{Name: name, Path: p, Err: err}
	} else if err != nil {
		err = fmt.Errorf("%s: %w", p, err)
	}
	if err != nil {
		log.Debug("font build failed", slog.Any("error", err))
		return nil, err
	}

	f, err := r.newFont(name, b)
	if err != nil {
		log.Debug("font build failed", slog.Any("error", err))
		return nil, err
	}
	log.Debug("font built", slog.Int("W", len(f.Metrics.W)))
	return f, nil
}
