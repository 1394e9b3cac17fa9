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

package firmware_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/thumbpatch/curated"
	"github.com/jetsetilly/thumbpatch/engine"
	"github.com/jetsetilly/thumbpatch/firmware"
	"github.com/jetsetilly/thumbpatch/imagefile"
	"github.com/jetsetilly/thumbpatch/patch"
	"github.com/jetsetilly/thumbpatch/test"
)

// memStorage is an in-memory firmware.Storage
type memStorage map[string][]byte

func (m memStorage) Load(filename string) ([]byte, error) {
	d, ok := m[filename]
	if !ok {
		return nil, curated.Errorf(imagefile.Error, os.ErrNotExist)
	}
	return d, nil
}

func (m memStorage) Save(filename string, data []byte) error {
	m[filename] = data
	return nil
}

type fakeGenerator struct {
	code    []byte
	defines map[string]string
}

func (g *fakeGenerator) Generate(_ patch.Source, defines map[string]string) ([]byte, error) {
	g.defines = defines
	return g.code, nil
}

func TestPatch(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "original.bin")
	dst := filepath.Join(dir, "patched.bin")
	test.DemandSuccess(t, os.WriteFile(src, make([]byte, 0x110), 0600))

	gen := &fakeGenerator{code: []byte{0x70, 0x47}}
	patches := []patch.Patch{
		patch.NewBranchCall(0x100, 0x200),
		patch.NewGenerated(0x200, patch.Source{Language: patch.C, Filename: "detour.c"}, nil, 0x10),
	}

	err := firmware.Patch(src, dst, patches, []byte{0xde, 0xad}, map[string]string{"VERSION": "3"}, gen)
	test.DemandSuccess(t, err)

	d, err := os.ReadFile(dst)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(d), 0x204)
	test.ExpectBytes(t, d[0x100:0x104], []byte{0x00, 0xf0, 0x7e, 0xf8})
	test.ExpectBytes(t, d[0x200:], []byte{0x70, 0x47, 0xde, 0xad})
	test.ExpectEquality(t, gen.defines["VERSION"], "3")

	// source is untouched
	d, err = os.ReadFile(src)
	test.DemandSuccess(t, err)
	test.ExpectBytes(t, d, make([]byte, 0x110))
}

func TestNoOutputOnFailure(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "original.bin")
	dst := filepath.Join(dir, "patched.bin")
	test.DemandSuccess(t, os.WriteFile(src, make([]byte, 0x10), 0600))

	patches := []patch.Patch{
		patch.NewFixed(0, []byte{0xaa}),
		patch.NewGenerated(0x8, patch.Source{Language: patch.Assembly}, nil, patch.NoLimit),
	}

	// there is no generator so the second patch fails
	err := firmware.Patch(src, dst, patches, nil, nil, nil)
	test.ExpectSuccess(t, curated.Is(err, engine.PatchFailed))
	test.ExpectSuccess(t, curated.Has(err, patch.NoGenerator))

	_, err = os.Stat(dst)
	test.ExpectSuccess(t, os.IsNotExist(err))

	// an existing destination is not touched
	test.DemandSuccess(t, os.WriteFile(dst, []byte{0x01}, 0600))
	err = firmware.Patch(src, dst, patches, nil, nil, nil)
	test.ExpectFailure(t, err)
	d, err := os.ReadFile(dst)
	test.DemandSuccess(t, err)
	test.ExpectBytes(t, d, []byte{0x01})
}

func TestMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := firmware.Patch(filepath.Join(dir, "missing.bin"), filepath.Join(dir, "patched.bin"), nil, nil, nil, nil)
	test.ExpectSuccess(t, curated.Is(err, imagefile.Error))
}

func TestPatcher(t *testing.T) {
	st := memStorage{"in": []byte("ABCXYZABC")}

	sr, err := patch.NewSearchReplace([]byte("ABC"), []byte("xyz"))
	test.DemandSuccess(t, err)

	var steps int
	p := firmware.Patcher{
		Storage: st,
		Observer: func(s engine.Step) {
			steps++
		},
	}

	err = p.Patch("in", "out", []patch.Patch{sr, patch.NewTrap(9)}, []byte("!"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(st["out"]), "xyzXYZABC\x00\xe8!")
	test.ExpectEquality(t, string(st["in"]), "ABCXYZABC")
	test.ExpectEquality(t, steps, 2)

	// the same patches can be applied to the patched image
	err = p.Patch("out", "out2", []patch.Patch{sr}, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(st["out2"]), "xyzXYZxyz\x00\xe8!")
}
