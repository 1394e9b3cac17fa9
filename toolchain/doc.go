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

// Package toolchain implements the patch.Generator interface by running the
// GNU binutils and gcc for the ARM target.
//
// Assembly sources are assembled and then converted to a raw binary:
//
//	<prefix>as -mthumb -o temp.o temp.asm
//	<prefix>objcopy -O binary temp.o temp.bin
//
// C sources are compiled, linked with the entry point and then converted:
//
//	<prefix>gcc -DKEY=VALUE ... -Wno-multichar -nostdlib -mcpu=<cpu> -mthumb -fPIC -O1 -c -o temp.o <file>
//	<prefix>ld -EL -e<entry> temp.o -o temp2.o
//	<prefix>objcopy -O binary temp2.o temp.bin
//
// Defines are only given to the C compiler. They are sorted by key.
//
// Every call to Generate() works in a new temporary directory. The directory
// is removed when Generate() returns, whether or not there was an error.
//
// The prefix, cpu and entry point can be set with environment variables. See
// the NewFromEnv() function.
package toolchain
