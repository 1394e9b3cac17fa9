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

package test_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/thumbpatch/test"
)

func TestExpectFailure(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))
}

func TestExpectSuccess(t *testing.T) {
	test.ExpectSuccess(t, true)
	var err error
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil)
}

func TestExpectEquality(t *testing.T) {
	test.ExpectEquality(t, 10, 5+5)
	test.ExpectEquality(t, true, true)
	test.ExpectEquality(t, true, !false)
}

func TestExpectInequality(t *testing.T) {
	test.ExpectInequality(t, 11, 5+5)
	test.ExpectInequality(t, true, false)
}

func TestExpectBytes(t *testing.T) {
	test.ExpectBytes(t, []byte{0x00, 0xe8}, []byte{0x00, 0xe8})
	test.ExpectBytes(t, nil, []byte{})
}

func TestCompareWriter(t *testing.T) {
	w := &test.CompareWriter{}
	w.Write([]byte("hello "))
	w.Write([]byte("world"))
	test.ExpectSuccess(t, w.Compare("hello world"))
	test.ExpectSuccess(t, w.Contains("lo wo"))
	w.Clear()
	test.ExpectSuccess(t, w.Compare(""))
}
