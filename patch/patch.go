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

	"github.com/jetsetilly/thumbpatch/curated"
)

// Patch is implemented by the five patch types in this package: Fixed,
// Generated, BranchCall, Trap and SearchReplace. The interface is sealed.
type Patch interface {
	// Apply the patch to the image. The image argument is never modified. The
	// returned image is either a new slice or, if the patch made no change,
	// the original slice
	Apply(img []byte, env Env) ([]byte, error)

	// Payload returns the bytes written by the most recent call to Apply().
	// Returns nil if Apply() has not been called or if the patch made no
	// change to the image
	Payload() []byte

	String() string

	// seals the interface
	patch()
}

// Generator is the interface to the external code generation tools that turn
// a Source into machine code. The defines argument is a map of names to values
// and should be made available to the source as the generator sees fit.
type Generator interface {
	Generate(src Source, defines map[string]string) ([]byte, error)
}

// Env is passed to every call to Patch.Apply(). The fields are passed through
// untouched to the Generator.
type Env struct {
	Generator Generator
	Defines   map[string]string
}

// Language of a Source
type Language int

// List of valid Language values
const (
	Assembly Language = iota
	C
)

func (l Language) String() string {
	switch l {
	case Assembly:
		return "asm"
	case C:
		return "c"
	}
	return fmt.Sprintf("language(%d)", int(l))
}

// Source is the input to a Generator. Assembly sources are usually specified
// as a list of lines and C sources as a filename, but a Generator may accept
// either form for either language.
type Source struct {
	Language Language
	Lines    []string
	Filename string
}

func (s Source) String() string {
	if s.Filename != "" {
		return fmt.Sprintf("%s (%s)", s.Filename, s.Language)
	}
	return fmt.Sprintf("%d lines (%s)", len(s.Lines), s.Language)
}

// the size of the address space that a patch can write to
const addressSpace = 1 << 32

// overwrite returns a copy of img with payload written at position. if
// position is beyond the end of img then the new image is padded with zero
// bytes up to position. the new image is extended if the payload doesn't fit
//
// the payload must fit inside the 32bit address space
func overwrite(img []byte, position int, payload []byte) ([]byte, error) {
	if position < 0 || int64(position) > addressSpace-int64(len(payload)) {
		return nil, curated.Errorf(OutOfRange, len(payload), position)
	}

	sz := max(len(img), position+len(payload))
	n := make([]byte, sz)
	copy(n, img)
	copy(n[position:], payload)
	return n, nil
}
