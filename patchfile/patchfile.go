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

package patchfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/jetsetilly/thumbpatch/curated"
	"github.com/jetsetilly/thumbpatch/patch"
)

// Sentinal patterns for curated errors created by the patchfile package.
const (
	Error      = "patchfile: %v"
	EntryError = "patchfile: entry %d: %v"
)

// File is the result of parsing a patch file.
type File struct {
	// the filename the file was loaded from. empty if the File was created
	// with the Parse() function
	Filename string

	Symbols map[string]int
	Defines map[string]string
	Trailer []byte
	Patches []patch.Patch
}

// the top level of the patch file. the patches are decoded separately so that
// errors can name the entry
type document struct {
	Symbols map[string]any   `yaml:"symbols"`
	Defines map[string]any   `yaml:"defines"`
	Trailer string           `yaml:"trailer"`
	Patches []map[string]any `yaml:"patches"`
}

// Load and parse the named patch file.
func Load(filename string) (*File, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf(Error, err)
	}

	f, err := Parse(data, filepath.Dir(filename))
	if err != nil {
		return nil, err
	}
	f.Filename = filename

	return f, nil
}

// Parse the patch file data. The dir argument is used to resolve relative
// filenames.
func Parse(data []byte, dir string) (*File, error) {
	var doc document

	err := yaml.UnmarshalWithOptions(data, &doc, yaml.DisallowUnknownField())
	if err != nil {
		return nil, curated.Errorf(Error, err)
	}

	f := &File{
		Symbols: make(map[string]int),
		Defines: make(map[string]string),
	}

	for k, v := range doc.Symbols {
		n, err := toInt(v)
		if err != nil {
			return nil, curated.Errorf(Error, fmt.Errorf("symbol %s: %w", k, err))
		}
		f.Symbols[k] = n
	}

	for k, v := range doc.Defines {
		f.Defines[k] = fmt.Sprint(v)
	}

	f.Trailer, err = decodeHex(doc.Trailer)
	if err != nil {
		return nil, curated.Errorf(Error, fmt.Errorf("trailer: %w", err))
	}

	r := newResolver(f.Symbols)

	for i, raw := range doc.Patches {
		p, err := decodeEntry(raw, r, dir)
		if err != nil {
			return nil, curated.Errorf(EntryError, i, err)
		}
		f.Patches = append(f.Patches, p)
	}

	return f, nil
}

// SetStrict sets the Strict field of every SearchReplace patch in the file.
func (f *File) SetStrict(strict bool) {
	for _, p := range f.Patches {
		if sr, ok := p.(*patch.SearchReplace); ok {
			sr.Strict = strict
		}
	}
}

func (f *File) String() string {
	s := strings.Builder{}
	for i, p := range f.Patches {
		s.WriteString(fmt.Sprintf("%3d: %s\n", i, p))
	}
	if len(f.Trailer) > 0 {
		s.WriteString(fmt.Sprintf("trailer: %x\n", f.Trailer))
	}
	return s.String()
}
