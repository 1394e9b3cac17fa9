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

	"github.com/jetsetilly/thumbpatch/thumb"
)

// BranchCall writes a thumb BL instruction at Position that calls Target.
//
// Position is used as the address of the instruction, meaning that the image
// is assumed to be loaded at address zero. If that isn't the case the Target
// should be adjusted accordingly.
type BranchCall struct {
	Position int
	Target   uint32
	payload  []byte
}

// NewBranchCall is the preferred method of initialisation for the BranchCall
// type.
func NewBranchCall(position int, target uint32) *BranchCall {
	return &BranchCall{
		Position: position,
		Target:   target,
	}
}

// Apply implements the Patch interface.
func (p *BranchCall) Apply(img []byte, _ Env) ([]byte, error) {
	b := thumb.EncodeBL(uint32(p.Position), p.Target)
	n, err := overwrite(img, p.Position, b[:])
	if err != nil {
		return nil, err
	}
	p.payload = b[:]
	return n, nil
}

// Payload implements the Patch interface.
func (p *BranchCall) Payload() []byte {
	return p.payload
}

func (p *BranchCall) String() string {
	return fmt.Sprintf("bl: at 0x%08x to 0x%08x", p.Position, p.Target)
}

func (p *BranchCall) patch() {}

// Trap writes an undefined instruction at Position.
type Trap struct {
	Position int
	payload  []byte
}

// NewTrap is the preferred method of initialisation for the Trap type.
func NewTrap(position int) *Trap {
	return &Trap{
		Position: position,
	}
}

// Apply implements the Patch interface.
func (p *Trap) Apply(img []byte, _ Env) ([]byte, error) {
	n, err := overwrite(img, p.Position, thumb.Trap[:])
	if err != nil {
		return nil, err
	}
	p.payload = thumb.Trap[:]
	return n, nil
}

// Payload implements the Patch interface.
func (p *Trap) Payload() []byte {
	return p.payload
}

func (p *Trap) String() string {
	return fmt.Sprintf("trap: at 0x%08x", p.Position)
}

func (p *Trap) patch() {}
