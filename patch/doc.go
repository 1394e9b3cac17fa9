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

// Package patch defines the types of change that can be made to a firmware
// image. Each type implements the Patch interface
//
//	Fixed           writes bytes at a position
//	Generated       writes the output of a Generator at a position
//	BranchCall      writes a thumb BL instruction at a position
//	Trap            writes an undefined instruction at a position
//	SearchReplace   replaces the first occurrence of one sequence with another
//
// Positions are offsets into the image as it is when the patch is applied. A
// position beyond the end of the image causes the image to be extended with
// zero bytes. A payload that runs past the end of the image also extends the
// image.
//
// Patches never modify the image they are given. The Apply() function returns
// a new image and the Payload() function can be used afterwards to inspect
// what was written.
//
// The Generator interface is how assembly and C sources are turned into
// machine code. The toolchain package provides an implementation that runs
// the GNU tools.
package patch
