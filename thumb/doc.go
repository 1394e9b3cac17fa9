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

// Package thumb encodes the small number of ARM7TDMI thumb instructions that
// are written directly by a patch rather than by an assembler.
//
// The important one is the long branch with link (BL, format 19 in the
// ARM7TDMI Data Sheet). It is a pair of halfwords holding a 23 bit offset:
//
//	1111 0 oooooooooo     high part, bits 22..12 of the offset
//	1111 1 oooooooooo     low part, bits 11..1 of the offset
//
// The offset is relative to the address of the instruction plus four.
//
// The other is the Trap value, an undefined instruction that stops execution
// at the patched address.
package thumb
