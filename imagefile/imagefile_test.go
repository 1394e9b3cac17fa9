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

package imagefile_test

import (
	"archive/zip"
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/thumbpatch/curated"
	"github.com/jetsetilly/thumbpatch/imagefile"
	"github.com/jetsetilly/thumbpatch/test"
)

var image = []byte{0x00, 0xb5, 0x00, 0xbd, 0x70, 0x47}

func hash(d []byte) string {
	return fmt.Sprintf("%x", sha1.Sum(d))
}

func TestLoadFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "firmware.bin")
	test.DemandSuccess(t, os.WriteFile(fn, image, 0600))

	ld := imagefile.NewLoader(fn, "")
	test.ExpectFailure(t, ld.HasLoaded())
	test.ExpectEquality(t, ld.ShortName(), "firmware")

	err := ld.Load()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, ld.HasLoaded())
	test.ExpectBytes(t, ld.Data, image)
	test.ExpectEquality(t, ld.Hash, hash(image))

	// file:// scheme
	ld = imagefile.NewLoader("file://"+fn, "")
	err = ld.Load()
	test.DemandSuccess(t, err)
	test.ExpectBytes(t, ld.Data, image)
}

func TestLoadEmpty(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "empty.bin")
	test.DemandSuccess(t, os.WriteFile(fn, nil, 0600))

	ld := imagefile.NewLoader(fn, "")
	err := ld.Load()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, ld.HasLoaded())
	test.ExpectEquality(t, len(ld.Data), 0)
}

func TestLoadHash(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "firmware.bin")
	test.DemandSuccess(t, os.WriteFile(fn, image, 0600))

	// matching hash. case of hash is not important
	ld := imagefile.NewLoader(fn, fmt.Sprintf("%X", sha1.Sum(image)))
	test.ExpectSuccess(t, ld.Load())

	ld = imagefile.NewLoader(fn, hash([]byte{0x00}))
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, imagefile.Error))
	test.ExpectFailure(t, ld.HasLoaded())
}

func TestLoadArchive(t *testing.T) {
	dir := t.TempDir()
	zfn := filepath.Join(dir, "update.zip")

	f, err := os.Create(zfn)
	test.DemandSuccess(t, err)
	w := zip.NewWriter(f)
	zf, err := w.Create("firmware.bin")
	test.DemandSuccess(t, err)
	_, err = zf.Write(image)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, w.Close())
	test.DemandSuccess(t, f.Close())

	ld := imagefile.NewLoader(filepath.Join(zfn, "firmware.bin"), "")
	test.DemandSuccess(t, ld.Load())
	test.ExpectBytes(t, ld.Data, image)
}

func TestLoadMissing(t *testing.T) {
	ld := imagefile.NewLoader(filepath.Join(t.TempDir(), "missing.bin"), "")
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, imagefile.Error))
	test.ExpectSuccess(t, curated.Has(err, "archivefs: %v"))
}

func TestLoadHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/firmware.bin" {
			http.NotFound(w, r)
			return
		}
		w.Write(image)
	}))
	defer srv.Close()

	ld := imagefile.NewLoader(srv.URL+"/firmware.bin", "")
	test.DemandSuccess(t, ld.Load())
	test.ExpectBytes(t, ld.Data, image)

	ld = imagefile.NewLoader(srv.URL+"/missing.bin", "")
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, imagefile.Error))
}

func TestUnsupportedScheme(t *testing.T) {
	ld := imagefile.NewLoader("ftp://example.com/firmware.bin", "")
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, imagefile.Error))
	test.ExpectEquality(t, err.Error(), "imagefile: unsupported URL scheme (ftp)")
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "patched.bin")

	test.DemandSuccess(t, imagefile.Save(fn, image))
	d, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectBytes(t, d, image)

	// replace existing file
	test.DemandSuccess(t, imagefile.Save(fn, []byte{0x01}))
	d, err = os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectBytes(t, d, []byte{0x01})

	// no temporary files are left behind
	e, err := os.ReadDir(dir)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(e), 1)
}

func TestSaveFailure(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "missing", "patched.bin")
	err := imagefile.Save(fn, image)
	test.ExpectSuccess(t, curated.Is(err, imagefile.Error))

	_, err = os.Stat(fn)
	test.ExpectSuccess(t, os.IsNotExist(err))
}

func TestFileSystem(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "firmware.bin")

	var fs imagefile.FileSystem
	test.DemandSuccess(t, fs.Save(fn, image))

	d, err := fs.Load(fn)
	test.DemandSuccess(t, err)
	test.ExpectBytes(t, d, image)

	fs.Hash = hash([]byte{0x00})
	_, err = fs.Load(fn)
	test.ExpectSuccess(t, curated.Is(err, imagefile.Error))
}
