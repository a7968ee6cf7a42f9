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
	"strconv"
)

// UnsupportedFontError indicates that a font is not listed in the catalog
// of a [Registry].
type UnsupportedFontError struct {
	Name string
}

func (err *UnsupportedFontError) Error() string {
	return "font " + strconv.Quote(err.Name) + " is not supported"
}

// IsUnsupported returns true if err is, or wraps, an UnsupportedFontError.
func IsUnsupported(err error) bool {
	var e *UnsupportedFontError
	return errors.As(err, &e)
}

// MissingResourceError indicates that the metrics of a catalog font could
// not be found.
type MissingResourceError struct {
	Name string
	Path string
	Err  error
}

func (err *MissingResourceError) Error() string {
	tail := ""
	if err.Err != nil {
		tail = ": " + err.Err.Error()
	}
	return "font properties for " + strconv.Quote(err.Name) + " not found (" + err.Path + ")" + tail
}

func (err *MissingResourceError) Unwrap() error {
	return err.Err
}

// CatalogError indicates that the font catalog could not be loaded.
// No fonts can be used from a registry in this case, so the error
// is reported when the registry is created.
type CatalogError struct {
	Path string
	Err  error
}

func (err *CatalogError) Error() string {
	return "cannot load font catalog " + err.Path + ": " + err.Err.Error()
}

func (err *CatalogError) Unwrap() error {
	return err.Err
}
