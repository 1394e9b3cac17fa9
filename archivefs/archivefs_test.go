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

package archivefs_test

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/thumbpatch/archivefs"
	"github.com/jetsetilly/thumbpatch/curated"
	"github.com/jetsetilly/thumbpatch/test"
)

// createArchive creates a zip file with the named files. the contents of each
// file is the name of the file
func createArchive(t *testing.T, filename string, names ...string) {
	t.Helper()

	f, err := os.Create(filename)
	test.DemandSuccess(t, err)
	defer f.Close()

	w := zip.NewWriter(f)
	for _, n := range names {
		zf, err := w.Create(n)
		test.DemandSuccess(t, err)
		_, err = zf.Write([]byte(n))
		test.DemandSuccess(t, err)
	}
	test.DemandSuccess(t, w.Close())
}

func createTestDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "testfile"), []byte("testfile contents"), 0600))
	createArchive(t, filepath.Join(dir, "testarchive.zip"), "archivefile1", "archivedir/archivefile2")
	createArchive(t, filepath.Join(dir, "single.zip"), "image.bin")
	return dir
}

func TestArchivefsPath(t *testing.T) {
	dir := createTestDir(t)

	var afs archivefs.Path
	defer afs.Close()

	// non-existant file
	err := afs.Set(filepath.Join(dir, "foo"))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, archivefs.Error))
	test.ExpectEquality(t, afs.String(), "")

	// a real directory
	err = afs.Set(dir)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, afs.String(), dir)
	test.ExpectSuccess(t, afs.IsDir())
	test.ExpectFailure(t, afs.InArchive())

	// a real file in directory
	path := filepath.Join(dir, "testfile")
	err = afs.Set(path)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, afs.String(), path)
	test.ExpectFailure(t, afs.IsDir())
	test.ExpectFailure(t, afs.InArchive())

	// a real archive
	path = filepath.Join(dir, "testarchive.zip")
	err = afs.Set(path)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, afs.IsDir())
	test.ExpectSuccess(t, afs.InArchive())

	// file in a real archive
	path = filepath.Join(dir, "testarchive.zip", "archivefile1")
	err = afs.Set(path)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, afs.String(), path)
	test.ExpectFailure(t, afs.IsDir())
	test.ExpectSuccess(t, afs.InArchive())

	// directory in a real archive
	err = afs.Set(filepath.Join(dir, "testarchive.zip", "archivedir"))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, afs.IsDir())
	test.ExpectSuccess(t, afs.InArchive())

	// non-existant file in a real archive
	err = afs.Set(filepath.Join(dir, "testarchive.zip", "foo"))
	test.ExpectFailure(t, err)
	test.ExpectFailure(t, afs.InArchive())
}

func TestReadFile(t *testing.T) {
	dir := createTestDir(t)

	d, err := archivefs.ReadFile(filepath.Join(dir, "testfile"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(d), "testfile contents")

	d, err = archivefs.ReadFile(filepath.Join(dir, "testarchive.zip", "archivefile1"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(d), "archivefile1")

	d, err = archivefs.ReadFile(filepath.Join(dir, "testarchive.zip", "archivedir", "archivefile2"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(d), "archivedir/archivefile2")

	// archive with a single file
	d, err = archivefs.ReadFile(filepath.Join(dir, "single.zip"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(d), "image.bin")

	// archive with more than one file
	_, err = archivefs.ReadFile(filepath.Join(dir, "testarchive.zip"))
	test.ExpectSuccess(t, curated.Is(err, archivefs.Error))

	// directories
	_, err = archivefs.ReadFile(dir)
	test.ExpectSuccess(t, curated.Is(err, archivefs.Error))
	_, err = archivefs.ReadFile(filepath.Join(dir, "testarchive.zip", "archivedir"))
	test.ExpectSuccess(t, curated.Is(err, archivefs.Error))

	// with a file as a directory
	_, err = archivefs.ReadFile(filepath.Join(dir, "testarchive.zip", "archivefile1", "foo"))
	test.ExpectSuccess(t, curated.Is(err, archivefs.Error))
}

func TestIsArchive(t *testing.T) {
	dir := createTestDir(t)

	test.ExpectSuccess(t, archivefs.IsArchive(filepath.Join(dir, "single.zip")))
	test.ExpectFailure(t, archivefs.IsArchive(filepath.Join(dir, "testarchive.zip", "archivefile1")))
	test.ExpectFailure(t, archivefs.IsArchive(filepath.Join(dir, "testfile")))
	test.ExpectFailure(t, archivefs.IsArchive(filepath.Join(dir, "foo")))
}
