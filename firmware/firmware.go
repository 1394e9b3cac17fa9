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

// Package firmware loads a firmware image, applies a list of patches to it and
// saves the result. It brings together the imagefile and engine packages.
//
// The simplest way of patching a firmware image is with the Patch() function.
// The Patcher type allows more control over how the image is loaded and saved,
// and allows each patch to be observed as it is applied.
//
// If any patch fails then nothing is written.
package firmware

import (
	"github.com/jetsetilly/thumbpatch/engine"
	"github.com/jetsetilly/thumbpatch/imagefile"
	"github.com/jetsetilly/thumbpatch/logger"
	"github.com/jetsetilly/thumbpatch/patch"
)

// Storage is the interface used to load the source image and to save the
// patched image.
type Storage interface {
	Load(filename string) ([]byte, error)
	Save(filename string, data []byte) error
}

// Patch loads the image from the src file, applies the patches in order,
// appends the trailer and saves the result to the dst file. The defines and
// the generator are given to every patch.
func Patch(src string, dst string, patches []patch.Patch, trailer []byte, defines map[string]string, gen patch.Generator) error {
	p := Patcher{
		Generator: gen,
		Defines:   defines,
	}
	return p.Patch(src, dst, patches, trailer)
}

// Patcher is the configurable form of the Patch() function. The zero value is
// usable but can only apply patches that do not need a Generator.
type Patcher struct {
	Generator patch.Generator
	Defines   map[string]string

	// images are loaded and saved with imagefile.FileSystem if Storage is nil
	Storage Storage

	// called after every patch. see engine.Engine
	Observer func(engine.Step)
}

func (p Patcher) storage() Storage {
	if p.Storage == nil {
		return imagefile.FileSystem{}
	}
	return p.Storage
}

// Patch loads the image from the src file, applies the patches in order,
// appends the trailer and saves the result to the dst file.
func (p Patcher) Patch(src string, dst string, patches []patch.Patch, trailer []byte) error {
	st := p.storage()

	img, err := st.Load(src)
	if err != nil {
		return err
	}
	logger.Logf(logger.Allow, "firmware", "loaded %s (%d bytes)", src, len(img))

	e := engine.Engine{Observer: p.Observer}
	env := patch.Env{
		Generator: p.Generator,
		Defines:   p.Defines,
	}

	img, err = e.Apply(img, patches, env, trailer)
	if err != nil {
		return err
	}

	err = st.Save(dst, img)
	if err != nil {
		return err
	}
	logger.Logf(logger.Allow, "firmware", "saved %s (%d bytes)", dst, len(img))

	return nil
}
