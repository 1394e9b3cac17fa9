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

package engine

import (
	"github.com/jetsetilly/thumbpatch/curated"
	"github.com/jetsetilly/thumbpatch/patch"
)

// PatchFailed is the pattern used when a patch fails. The wrapped error is
// returned by the patch and can be tested with curated.Has().
const PatchFailed = "engine: patch %d: %v"

// Step describes the application of a single patch.
type Step struct {
	// index of the patch in the list given to Apply()
	Index int
	Patch patch.Patch

	// the image before and after the patch. the Before slice is the After
	// slice of the previous step
	Before []byte
	After  []byte
}

// Engine applies patches in order. The zero value is ready to use.
type Engine struct {
	// Observer is called after every patch has been applied successfully.
	// The slices in the Step should not be modified.
	Observer func(Step)
}

// ApplyAll applies each patch in turn to the image and then appends the
// trailer. The img argument is not modified.
//
// If any patch fails the returned image is nil and the error names the index
// of the failed patch.
func ApplyAll(img []byte, patches []patch.Patch, env patch.Env, trailer []byte) ([]byte, error) {
	var e Engine
	return e.Apply(img, patches, env, trailer)
}

// Apply is the same as the ApplyAll() function.
func (e *Engine) Apply(img []byte, patches []patch.Patch, env patch.Env, trailer []byte) ([]byte, error) {
	cur := img

	for i, p := range patches {
		n, err := p.Apply(cur, env)
		if err != nil {
			return nil, curated.Errorf(PatchFailed, i, err)
		}

		if e.Observer != nil {
			e.Observer(Step{
				Index:  i,
				Patch:  p,
				Before: cur,
				After:  n,
			})
		}

		cur = n
	}

	n := make([]byte, 0, len(cur)+len(trailer))
	n = append(n, cur...)
	n = append(n, trailer...)

	return n, nil
}
