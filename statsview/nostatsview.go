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

//go:build !statsview

package statsview

import (
	"io"
)

// Launch does nothing and returns the empty string without the statsview
// build tag.
func Launch(_ io.Writer, _ string) string {
	return ""
}

// Available returns true if the statistics server is compiled in.
func Available() bool {
	return false
}
