// This file is part of Thumbpatch.
//
// Thumbpatch is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Thumbpatch is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Thumbpatch.  If not, see <https://www.gnu.org/licenses/>.

package patch

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/jetsetilly/thumbpatch/curated"
)

// SearchReplace replaces the first occurrence of a byte sequence with another
// sequence of the same length. It has no position of its own.
//
// If the search sequence cannot be found the image is returned unchanged and
// no error is returned. If Strict is true an error is returned instead.
type SearchReplace struct {
	Strict bool

	search  []byte
	replace []byte

	// offset of the most recent replacement. -1 if there was no match
	offset  int
	payload []byte
}

// NewSearchReplace is the preferred method of initialisation for the
// SearchReplace type. The search and replace sequences are copied.
//
// Returns an error if search and replace are not the same length or if search
// is empty.
func NewSearchReplace(search []byte, replace []byte) (*SearchReplace, error) {
	if len(search) != len(replace) {
		return nil, curated.Errorf(LengthMismatch, len(search), len(replace))
	}
	if len(search) == 0 {
		return nil, curated.Errorf(EmptySearch)
	}
	return &SearchReplace{
		search:  slices.Clone(search),
		replace: slices.Clone(replace),
		offset:  -1,
	}, nil
}

// Apply implements the Patch interface.
func (p *SearchReplace) Apply(img []byte, _ Env) ([]byte, error) {
	p.offset = bytes.Index(img, p.search)
	if p.offset < 0 {
		p.payload = nil
		if p.Strict {
			return nil, curated.Errorf(NoMatch, p.search)
		}
		return img, nil
	}

	n, err := overwrite(img, p.offset, p.replace)
	if err != nil {
		return nil, err
	}
	p.payload = p.replace
	return n, nil
}

// Payload implements the Patch interface.
func (p *SearchReplace) Payload() []byte {
	return p.payload
}

// Offset returns the position of the replacement made by the most recent call
// to Apply(). Returns -1 if no replacement was made.
func (p *SearchReplace) Offset() int {
	return p.offset
}

func (p *SearchReplace) String() string {
	return fmt.Sprintf("replace: %x with %x", p.search, p.replace)
}

func (p *SearchReplace) patch() {}
