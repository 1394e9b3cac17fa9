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

package statsview

// DefaultAddress is used when no address is given.
const DefaultAddress = "localhost:12600"

// paths served by the statsview server
const (
	statsPath = "/debug/statsview"
	pprofPath = "/debug/pprof/"
)

// Address returns addr or DefaultAddress if addr is empty.
func Address(addr string) string {
	if addr == "" {
		return DefaultAddress
	}
	return addr
}

// URL returns the location of the statistics page for a server listening on
// addr.
func URL(addr string) string {
	return "http://" + Address(addr) + statsPath
}

// PprofURL returns the location of the pprof index for a server listening on
// addr.
func PprofURL(addr string) string {
	return "http://" + Address(addr) + pprofPath
}
