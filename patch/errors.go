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

// Sentinal patterns for curated errors created by the patch package.
const (
	// returned by NewSearchReplace()
	LengthMismatch = "patch: length of search and replace differ (%d != %d)"
	EmptySearch    = "patch: search is empty"

	// returned by Generated.Apply() when the generated code and trailer is
	// larger than the patch limit
	SizeLimitExceeded = "patch: detour on address 0x%08x size limit reached (%d > %d)"

	// returned by Generated.Apply() when Env has no Generator
	NoGenerator = "patch: no code generator for patch at 0x%08x"

	// returned by every Apply() function when the payload would be written
	// outside of the 32bit address space
	OutOfRange = "patch: %d bytes at 0x%x is outside the address space"

	// returned by SearchReplace.Apply() only when the Strict field is true
	NoMatch = "patch: search bytes not found (%x)"
)
