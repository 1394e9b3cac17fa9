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

package imagefile

import (
	"os"
	"path/filepath"

	"github.com/jetsetilly/thumbpatch/curated"
)

// Save writes data to the named file. The data is written to a temporary file
// in the same directory which is then renamed. An existing file is replaced.
//
// If there is an error the named file is unchanged.
func Save(filename string, data []byte) (rerr error) {
	f, err := os.CreateTemp(filepath.Dir(filename), ".thumbpatch-*")
	if err != nil {
		return curated.Errorf(Error, err)
	}
	tmp := f.Name()

	defer func() {
		if rerr != nil {
			_ = os.Remove(tmp)
		}
	}()

	_, err = f.Write(data)
	if err != nil {
		f.Close()
		return curated.Errorf(Error, err)
	}

	err = f.Close()
	if err != nil {
		return curated.Errorf(Error, err)
	}

	// os.CreateTemp() creates files with 0600 permissions
	err = os.Chmod(tmp, 0644)
	if err != nil {
		return curated.Errorf(Error, err)
	}

	err = os.Rename(tmp, filename)
	if err != nil {
		return curated.Errorf(Error, err)
	}

	return nil
}

// FileSystem loads and saves images with the Loader type and the Save()
// function.
type FileSystem struct {
	// expected hash of the loaded image. see the Loader type
	Hash string
}

// Load the named image.
func (fs FileSystem) Load(filename string) ([]byte, error) {
	ld := NewLoader(filename, fs.Hash)
	err := ld.Load()
	if err != nil {
		return nil, err
	}
	return ld.Data, nil
}

// Save the data to the named file.
func (fs FileSystem) Save(filename string, data []byte) error {
	return Save(filename, data)
}
