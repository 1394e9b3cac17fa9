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

// Package patchfile reads descriptions of patches from YAML files. For
// example:
//
//	symbols:
//	  base: 0x08000000
//	defines:
//	  VERSION: 3
//	trailer: "de ad be ef"
//	patches:
//	  - put:     {at: 0x100, hex: "00bf 00bf"}
//	  - text:    {at: 0x200, text: "HELLO"}
//	  - asm:     {at: "base + 0x40", lines: ["push {lr}", "pop {pc}"], trailer: "00bf"}
//	  - c:       {at: 0x400, file: detour.c, limit: 0x80}
//	  - bl:      {at: 0x120, to: "base + 0x400"}
//	  - trap:    {at: 0x130}
//	  - replace: {search: "41 42 43", replace: "78 79 7a", strict: true}
//
// All sections are optional. Each entry in the patches list must have exactly
// one type.
//
// Addresses and limits can be integers or expressions. Expressions are
// evaluated with the expr language and can refer to the values in the symbols
// section. Symbols values must be integers. Addresses must fit in 32 bits
// and a limit cannot be negative. A limit of zero is a real limit. Leave the
// field out for no limit.
//
// Hex strings can contain spaces. The filenames of asm and c entries are
// relative to the directory containing the patch file.
package patchfile
