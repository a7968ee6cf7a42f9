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
	"fmt"
)

// FormatError indicates a malformed value in font data.
// Key, if set, names the property or dictionary entry which holds the value.
type FormatError struct {
	Key string
	Err error
}

func (err *FormatError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = err.Err.Error()
	}
	if err.Key == "" {
		return "malformed font data: " + middle
	}
	return "malformed font data: " + err.Key + ": " + middle
}

func (err *FormatError) Unwrap() error {
	return err.Err
}

// Error returns a new FormatError with the given reason.
func Error(reason string) error {
	return &FormatError{Err: errors.New(reason)}
}

// Errorf returns a new FormatError, formatting the reason like fmt.Errorf.
func Errorf(format string, args ...any) error {
	return &FormatError{Err: fmt.Errorf(format, args...)}
}

// Wrap attaches the name of a property to err.  If err is a FormatError
// which already names a key, the two names are joined by a dot.  Other errors
// are turned into a FormatError.  If err is nil, Wrap returns nil.
func Wrap(err error, key string) error {
	if err == nil {
		return nil
	}
	var fe *FormatError
	if errors.As(err, &fe) {
		if fe.Key != "" {
			key = key + "." + fe.Key
		}
		return &FormatError{Key: key, Err: fe.Err}
	}
	return &FormatError{Key: key, Err: err}
}

// IsFormatError returns true if err is, or wraps, a FormatError.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}
