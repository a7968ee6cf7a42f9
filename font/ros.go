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

package font

import (
	"strconv"
	"strings"

	"seehuhn.de/go/postscript/cid"

	"seehuhn.de/go/cjkfont/pdf"
)

// ParseSystemInfo reads a character collection name of the form
// "Registry-Ordering-Supplement", for example "Adobe-Japan1-6".  An
// underscore may be used as the separator instead of the dash.
func ParseSystemInfo(s string) (*cid.SystemInfo, error) {
	s = strings.TrimSpace(s)

	k := strings.LastIndexAny(s, "-_")
	if k < 0 {
		return nil, pdf.Errorf("malformed character collection %q", s)
	}
	sup, err := strconv.ParseInt(s[k+1:], 10, 32)
	if err != nil || sup < 0 {
		return nil, pdf.Errorf("malformed supplement in %q", s)
	}

	j := strings.LastIndexAny(s[:k], "-_")
	if j <= 0 || j == k-1 {
		return nil, pdf.Errorf("malformed character collection %q", s)
	}

	return &cid.SystemInfo{
		Registry:   s[:j],
		Ordering:   s[j+1 : k],
		Supplement: int32(sup),
	}, nil
}

// SystemInfoDict returns the CIDSystemInfo dictionary for ros.
//
// See section 9.7.3 of PDF 32000-1:2008.
func SystemInfoDict(ros *cid.SystemInfo) pdf.Dict {
	return pdf.Dict{
		"Registry":   pdf.String(ros.Registry),
		"Ordering":   pdf.String(ros.Ordering),
		"Supplement": pdf.Integer(ros.Supplement),
	}
}
