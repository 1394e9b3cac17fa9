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
	"math"
	"slices"

	"github.com/jetsetilly/thumbpatch/curated"
)

// NoLimit can be used as the limit of a Generated patch when there is no
// practical limit to the size of the generated code.
const NoLimit = math.MaxInt

// Generated writes machine code produced by a Generator, followed by the
// Trailer bytes, at Position.
//
// The combined length of the generated code and the trailer must not be more
// than Limit. A Limit of zero only allows an empty payload.
type Generated struct {
	Position int
	Source   Source
	Trailer  []byte
	Limit    int
	payload  []byte
}

// NewGenerated is the preferred method of initialisation for the Generated
// type. The trailer is copied.
func NewGenerated(position int, src Source, trailer []byte, limit int) *Generated {
	return &Generated{
		Position: position,
		Source:   src,
		Trailer:  slices.Clone(trailer),
		Limit:    limit,
	}
}

// Apply implements the Patch interface. Errors from the Generator are returned
// unchanged.
func (p *Generated) Apply(img []byte, env Env) ([]byte, error) {
	if env.Generator == nil {
		return nil, curated.Errorf(NoGenerator, p.Position)
	}

	code, err := env.Generator.Generate(p.Source, env.Defines)
	if err != nil {
		return nil, err
	}

	payload := make([]byte, 0, len(code)+len(p.Trailer))
	payload = append(payload, code...)
	payload = append(payload, p.Trailer...)

	if len(payload) > p.Limit {
		return nil, curated.Errorf(SizeLimitExceeded, p.Position, len(payload), p.Limit)
	}

	n, err := overwrite(img, p.Position, payload)
	if err != nil {
		return nil, err
	}

	p.payload = payload
	return n, nil
}

// Payload implements the Patch interface.
func (p *Generated) Payload() []byte {
	return p.payload
}

func (p *Generated) String() string {
	if p.Limit != NoLimit {
		return fmt.Sprintf("%s: %s at 0x%08x (limit %d bytes)", p.Source.Language, p.Source, p.Position, p.Limit)
	}
	return fmt.Sprintf("%s: %s at 0x%08x", p.Source.Language, p.Source, p.Position)
}

func (p *Generated) patch() {}
