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
	"fmt"
	"slices"
)

// Fixed writes the same bytes at Position regardless of what is already in
// the image.
type Fixed struct {
	Position int
	data     []byte
	payload  []byte
}

// NewFixed is the preferred method of initialisation for the Fixed type. The
// data is copied.
func NewFixed(position int, data []byte) *Fixed {
	return &Fixed{
		Position: position,
		data:     slices.Clone(data),
	}
}

// Apply implements the Patch interface.
func (p *Fixed) Apply(img []byte, _ Env) ([]byte, error) {
	n, err := overwrite(img, p.Position, p.data)
	if err != nil {
		return nil, err
	}
	p.payload = p.data
	return n, nil
}

// Payload implements the Patch interface.
func (p *Fixed) Payload() []byte {
	return p.payload
}

func (p *Fixed) String() string {
	return fmt.Sprintf("put: %d bytes at 0x%08x", len(p.data), p.Position)
}

func (p *Fixed) patch() {}
