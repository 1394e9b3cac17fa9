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

package statsview_test

import (
	"testing"

	"github.com/jetsetilly/thumbpatch/statsview"
	"github.com/jetsetilly/thumbpatch/test"
)

func TestURL(t *testing.T) {
	test.ExpectEquality(t, statsview.Address(""), statsview.DefaultAddress)
	test.ExpectEquality(t, statsview.Address("0.0.0.0:8000"), "0.0.0.0:8000")

	test.ExpectEquality(t, statsview.URL(""), "http://localhost:12600/debug/statsview")
	test.ExpectEquality(t, statsview.URL("0.0.0.0:8000"), "http://0.0.0.0:8000/debug/statsview")
	test.ExpectEquality(t, statsview.PprofURL(""), "http://localhost:12600/debug/pprof/")
}
