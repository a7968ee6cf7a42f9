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

import "sync"

// fontCache holds the fonts of a registry.  Entries are never removed.
// Every entry is built at most once, even if it is requested concurrently.
type fontCache struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	once sync.Once
	font *Font
	err  error
}

// Get returns the font with the given name, calling build if the font is
// not yet in the cache.  Concurrent callers for the same name wait for the
// first call to build to complete.  Errors are cached as well.
func (c *fontCache) Get(name string, build func() (*Font, error)) (*Font, error) {
	c.mu.Lock()
	ent, ok := c.entries[name]
	if !ok {
		if c.entries == nil {
			c.entries = make(map[string]*cacheEntry)
		}
		ent = &cacheEntry{}
		c.entries[name] = ent
	}
	c.mu.Unlock()

	ent.once.Do(func() {
		ent.font, ent.err = build()
	})
	return ent.font, ent.err
}

// Len returns the number of names for which a build has been started.
func (c *fontCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
