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

// Curated errors implement the error interface and are the only kind of error
// returned by the thumbpatch packages.
//
// Curated errors are created with the Errorf() function. It takes a formatting
// pattern and placeholder values, in the same way as the Errorf() function in
// the fmt package. Packages that want callers to be able to check for a
// particular error export the pattern as a const string:
//
//	const SizeLimitExceeded = "patch: detour on address 0x%08x size limit reached (%d > %d)"
//
//	err := curated.Errorf(SizeLimitExceeded, pos, sz, limit)
//
//	if curated.Is(err, SizeLimitExceeded) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. This is the function to use when an error has been wrapped
// on its way to the caller, as happens with errors from the engine package:
//
//	f := curated.Errorf("engine: patch %d: %v", 3, err)
//
//	curated.Has(f, SizeLimitExceeded) // true
//	curated.Is(f, SizeLimitExceeded)  // false
//
// The Error() function normalises the error chain. Chains are composed of
// parts separated by the sub-string ": " as suggested on p239 of "The Go
// Programming Language" (Donovan, Kernighan). Adjacent duplicate parts are
// removed so that a function can prefix its package name without worrying
// whether the error it received already has that prefix:
//
//	toolchain: toolchain: as failed
//
// becomes
//
//	toolchain: as failed
//
// Curated errors also implement Unwrap(), returning the first error value in
// the list of placeholder values. The standard errors.Is() and errors.As()
// functions can therefore see through a curated error.
package curated
