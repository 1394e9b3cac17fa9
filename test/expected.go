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

package test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// id formats the optional tags of an Expect or Demand function into a prefix
// for the failure message
func id(tags ...any) string {
	if len(tags) == 0 {
		return ""
	}
	s := make([]string, len(tags))
	for i := range tags {
		s[i] = fmt.Sprintf("%v", tags[i])
	}
	return fmt.Sprintf("%s: ", strings.Join(s, ", "))
}

// expect returns true if v is a success value for its type. Supported types:
//
//	bool -> bool == true
//	error -> error == nil
//	nil -> success
//
// Any other type is a fatal test failure
func expect(t *testing.T, v any, tags ...any) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		return v
	case error:
		return v == nil
	case nil:
		return true
	default:
		t.Fatalf("%sunsupported type (%T) for expectation testing", id(tags...), v)
	}

	return false
}

// ExpectSuccess tests argument v for a success condition suitable for it's
// type. See expect() for the supported types.
func ExpectSuccess(t *testing.T, v any, tags ...any) bool {
	t.Helper()
	if !expect(t, v, tags...) {
		if err, ok := v.(error); ok {
			t.Errorf("%sexpected success (error: %v)", id(tags...), err)
		} else {
			t.Errorf("%sexpected success (%T)", id(tags...), v)
		}
		return false
	}
	return true
}

// ExpectFailure tests argument v for a failure condition suitable for it's
// type. Note that nil is a success value and so will fail this test.
func ExpectFailure(t *testing.T, v any, tags ...any) bool {
	t.Helper()
	if expect(t, v, tags...) {
		t.Errorf("%sexpected failure (%T)", id(tags...), v)
		return false
	}
	return true
}

// ExpectEquality is used to test equality between one value and another
func ExpectEquality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) bool {
	t.Helper()
	if v != expectedValue {
		t.Errorf("%sequality test of type %T failed: '%v' does not equal '%v'", id(tags...), v, v, expectedValue)
		return false
	}
	return true
}

// ExpectInequality is used to test inequality between one value and another
func ExpectInequality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) bool {
	t.Helper()
	if v == expectedValue {
		t.Errorf("%sinequality test of type %T failed: '%v' does equal '%v'", id(tags...), v, v, expectedValue)
		return false
	}
	return true
}

// ExpectBytes compares two byte slices. A nil slice and an empty slice are
// considered equal. On failure the message shows the difference as produced
// by the go-cmp package
func ExpectBytes(t *testing.T, v []byte, expectedValue []byte, tags ...any) bool {
	t.Helper()
	if len(v) == 0 && len(expectedValue) == 0 {
		return true
	}
	if d := cmp.Diff(expectedValue, v); d != "" {
		t.Errorf("%sbytes differ (-want +got):\n%s", id(tags...), d)
		return false
	}
	return true
}
