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

package curated_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/jetsetilly/thumbpatch/curated"
	"github.com/jetsetilly/thumbpatch/test"
)

const testError = "test error: %s"
const testErrorB = "test error B: %s"

func TestDuplicateErrors(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectEquality(t, e.Error(), "test error: foo")

	// packing errors of the same type next to each other causes
	// one of them to be dropped
	f := curated.Errorf(testError, e)
	test.ExpectEquality(t, f.Error(), "test error: foo")

	// duplicates deeper in the chain are also dropped
	g := curated.Errorf("outer: %v", curated.Errorf("inner: %v", curated.Errorf("inner: %v", "bar")))
	test.ExpectEquality(t, g.Error(), "outer: inner: bar")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testError))
	test.ExpectFailure(t, curated.Is(e, testErrorB))

	// Has() should fail because we haven't included testErrorB anywhere in the error
	test.ExpectFailure(t, curated.Has(e, testErrorB))

	// packing testErrorB inside testError
	f := curated.Errorf(testError, curated.Errorf(testErrorB, "bar"))
	test.ExpectSuccess(t, curated.Is(f, testError))
	test.ExpectFailure(t, curated.Is(f, testErrorB))
	test.ExpectSuccess(t, curated.Has(f, testErrorB))
}

func TestUncurated(t *testing.T) {
	e := errors.New("plain error")
	test.ExpectFailure(t, curated.IsAny(e))
	test.ExpectFailure(t, curated.Is(e, "plain error"))
	test.ExpectFailure(t, curated.Has(e, "plain error"))
	test.ExpectFailure(t, curated.IsAny(nil))
}

func TestHasThroughWrapped(t *testing.T) {
	e := curated.Errorf(testErrorB, "bar")
	w := fmt.Errorf("wrapped: %w", e)
	f := curated.Errorf(testError, w)
	test.ExpectSuccess(t, curated.Has(f, testErrorB))
}

func TestUnwrap(t *testing.T) {
	e := curated.Errorf("load: %v", fs.ErrNotExist)
	test.ExpectSuccess(t, errors.Is(e, fs.ErrNotExist))

	// curated errors without error values do not unwrap to anything
	f := curated.Errorf("load: %s", "foo")
	test.ExpectSuccess(t, errors.Unwrap(f) == nil)
}
