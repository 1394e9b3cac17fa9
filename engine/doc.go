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

// Package engine applies an ordered list of patches to a firmware image.
//
// Patches are applied one after the other, each to the image produced by the
// one before it. Nothing is done to detect overlapping patches: a later patch
// that writes to the same position as an earlier patch wins.
//
// The trailer bytes given to ApplyAll() are appended to the image after the
// last patch has been applied, even if the list of patches is empty.
//
// The Engine type is the same as the ApplyAll() function but with an optional
// Observer function that is called after every patch.
package engine
