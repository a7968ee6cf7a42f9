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

// Package properties reads key/value resource files.
//
// The format is the one used for Java property files: every line holds a
// key and a value, separated by '=', ':' or white space.  Lines starting
// with '#' or '!' are comments.  A backslash at the end of a line continues
// the value on the next line.  Keys and values may contain the escape
// sequences \t, \n, \r, \f and \uXXXX; any other character preceded by a
// backslash stands for itself.  A \u which is not followed by four hex
// digits is an error.
package properties

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"
	"unicode/utf8"

	"seehuhn.de/go/cjkfont/pdf"
)

// maxLineLength is the longest physical line accepted by Read.
// Width tables are stored on a single line and can be long.
const maxLineLength = 4 << 20

// A Bundle maps property names to their values.
type Bundle map[string]string

// Read reads a property file from r.  If a key occurs more than once, the
// last value is used.
func Read(r io.Reader) (Bundle, error) {
	res := make(Bundle)

	lines := bufio.NewScanner(r)
	lines.Buffer(nil, maxLineLength)

	var logical strings.Builder
	start := 0 // line number where the current logical line begins
	add := func() error {
		key, val, err := split(logical.String())
		if err != nil {
			return fmt.Errorf("line %d: %w", start, err)
		}
		res[key] = val
		logical.Reset()
		return nil
	}

	lineNo := 0
	continued := false
	for lines.Scan() {
		lineNo++
		line := lines.Text()
		if continued {
			line = strings.TrimLeft(line, " \t\f")
		} else {
			line = strings.TrimLeft(line, " \t\f")
			if line == "" || line[0] == '#' || line[0] == '!' {
				continue
			}
			start = lineNo
		}

		// an odd number of trailing backslashes joins the next line
		n := 0
		for n < len(line) && line[len(line)-1-n] == '\\' {
			n++
		}
		continued = n%2 == 1
		if continued {
			line = line[:len(line)-1]
		}
		logical.WriteString(line)
		if continued {
			continue
		}

		if err := add(); err != nil {
			return nil, err
		}
	}
	if err := lines.Err(); err != nil {
		return nil, err
	}
	if logical.Len() > 0 {
		if err := add(); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// ReadFile reads the property file with the given name from fsys.
func ReadFile(fsys fs.FS, name string) (Bundle, error) {
	fd, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	return Read(fd)
}

// split separates a logical line into key and value.
func split(line string) (string, string, error) {
	keyEnd := len(line)
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c == '\\' {
			i++
			continue
		}
		if c == '=' || c == ':' || c == ' ' || c == '\t' || c == '\f' {
			keyEnd = i
			break
		}
	}
	key := line[:keyEnd]

	rest := strings.TrimLeft(line[keyEnd:], " \t\f")
	if rest != "" && (rest[0] == '=' || rest[0] == ':') {
		rest = strings.TrimLeft(rest[1:], " \t\f")
	}

	key, err := unescape(key)
	if err != nil {
		return "", "", err
	}
	val, err := unescape(rest)
	if err != nil {
		return "", "", err
	}
	return key, val, nil
}

func unescape(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 'f':
			b.WriteByte('\f')
		case 'u':
			if i+4 >= len(s) {
				return "", ErrEscape
			}
			x, err := strconv.ParseUint(s[i+1:i+5], 16, 16)
			if err != nil {
				return "", ErrEscape
			}
			b.WriteRune(rune(x))
			i += 4
		default:
			// copy the complete UTF-8 sequence
			_, size := utf8.DecodeRuneInString(s[i:])
			b.WriteString(s[i : i+size])
			i += size - 1
		}
	}
	return b.String(), nil
}

// String returns the value of the given key.  If the key is missing, a
// [pdf.FormatError] naming the key is returned.
func (b Bundle) String(key string) (string, error) {
	val, ok := b[key]
	if !ok {
		return "", &pdf.FormatError{Key: key, Err: ErrMissing}
	}
	return val, nil
}

// Int returns the value of the given key as a decimal integer.
func (b Bundle) Int(key string) (int, error) {
	val, err := b.String(key)
	if err != nil {
		return 0, err
	}
	x, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return 0, &pdf.FormatError{Key: key, Err: fmt.Errorf("not an integer: %q", val)}
	}
	return x, nil
}

// ErrMissing is wrapped by the errors returned for missing keys.
var ErrMissing = errors.New("missing value")

// ErrEscape is wrapped by the errors returned for malformed \uXXXX escapes.
var ErrEscape = errors.New(`malformed \uXXXX escape`)
