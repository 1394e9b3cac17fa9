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
	"encoding/hex"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/jetsetilly/thumbpatch/patch"
)

type putEntry struct {
	At  any    `yaml:"at"`
	Hex string `yaml:"hex"`
}

type textEntry struct {
	At   any    `yaml:"at"`
	Text string `yaml:"text"`
}

// codeEntry is used for both asm and c entries
type codeEntry struct {
	At      any      `yaml:"at"`
	Lines   []string `yaml:"lines"`
	File    string   `yaml:"file"`
	Trailer string   `yaml:"trailer"`
	Limit   any      `yaml:"limit"`
}

type blEntry struct {
	At any `yaml:"at"`
	To any `yaml:"to"`
}

type trapEntry struct {
	At any `yaml:"at"`
}

type replaceEntry struct {
	Search  string `yaml:"search"`
	Replace string `yaml:"replace"`
	Strict  bool   `yaml:"strict"`
}

// entry must have exactly one field set
type entry struct {
	Put     *putEntry     `yaml:"put"`
	Text    *textEntry    `yaml:"text"`
	Asm     *codeEntry    `yaml:"asm"`
	C       *codeEntry    `yaml:"c"`
	BL      *blEntry      `yaml:"bl"`
	Trap    *trapEntry    `yaml:"trap"`
	Replace *replaceEntry `yaml:"replace"`
}

func (e entry) count() int {
	var c int
	for _, v := range []bool{e.Put != nil, e.Text != nil, e.Asm != nil, e.C != nil,
		e.BL != nil, e.Trap != nil, e.Replace != nil} {
		if v {
			c++
		}
	}
	return c
}

func decodeEntry(raw map[string]any, r resolver, dir string) (patch.Patch, error) {
	// the entry is encoded again and decoded into the entry type
	b, err := yaml.Marshal(raw)
	if err != nil {
		return nil, err
	}

	var e entry
	err = yaml.UnmarshalWithOptions(b, &e, yaml.DisallowUnknownField())
	if err != nil {
		return nil, err
	}

	switch e.count() {
	case 0:
		return nil, errors.New("no patch type")
	case 1:
	default:
		return nil, errors.New("more than one patch type, maybe you forgot a '-'")
	}

	switch {
	case e.Put != nil:
		at, err := r.position(e.Put.At)
		if err != nil {
			return nil, fmt.Errorf("put: %w", err)
		}
		d, err := decodeHex(e.Put.Hex)
		if err != nil {
			return nil, fmt.Errorf("put: %w", err)
		}
		return patch.NewFixed(at, d), nil

	case e.Text != nil:
		at, err := r.position(e.Text.At)
		if err != nil {
			return nil, fmt.Errorf("text: %w", err)
		}
		return patch.NewFixed(at, []byte(e.Text.Text)), nil

	case e.Asm != nil:
		p, err := e.Asm.generated(patch.Assembly, r, dir)
		if err != nil {
			return nil, fmt.Errorf("asm: %w", err)
		}
		return p, nil

	case e.C != nil:
		p, err := e.C.generated(patch.C, r, dir)
		if err != nil {
			return nil, fmt.Errorf("c: %w", err)
		}
		return p, nil

	case e.BL != nil:
		at, err := r.position(e.BL.At)
		if err != nil {
			return nil, fmt.Errorf("bl: %w", err)
		}
		to, err := r.target(e.BL.To)
		if err != nil {
			return nil, fmt.Errorf("bl: %w", err)
		}
		return patch.NewBranchCall(at, to), nil

	case e.Trap != nil:
		at, err := r.position(e.Trap.At)
		if err != nil {
			return nil, fmt.Errorf("trap: %w", err)
		}
		return patch.NewTrap(at), nil

	case e.Replace != nil:
		search, err := decodeHex(e.Replace.Search)
		if err != nil {
			return nil, fmt.Errorf("replace: %w", err)
		}
		replace, err := decodeHex(e.Replace.Replace)
		if err != nil {
			return nil, fmt.Errorf("replace: %w", err)
		}
		p, err := patch.NewSearchReplace(search, replace)
		if err != nil {
			return nil, err
		}
		p.Strict = e.Replace.Strict
		return p, nil
	}

	panic("patchfile: unhandled patch type")
}

func (e *codeEntry) generated(lang patch.Language, r resolver, dir string) (*patch.Generated, error) {
	at, err := r.position(e.At)
	if err != nil {
		return nil, err
	}

	src := patch.Source{Language: lang}

	switch {
	case e.File != "" && len(e.Lines) > 0:
		return nil, errors.New("both file and lines specified")
	case e.File != "":
		src.Filename = e.File
		if !filepath.IsAbs(src.Filename) {
			src.Filename = filepath.Join(dir, src.Filename)
		}
	case len(e.Lines) > 0:
		src.Lines = e.Lines
	default:
		return nil, errors.New("no file or lines specified")
	}

	trailer, err := decodeHex(e.Trailer)
	if err != nil {
		return nil, err
	}

	limit := patch.NoLimit
	if e.Limit != nil {
		limit, err = r.value(e.Limit)
		if err != nil {
			return nil, fmt.Errorf("limit: %w", err)
		}
		if limit < 0 {
			return nil, fmt.Errorf("negative limit (%d)", limit)
		}
	}

	return patch.NewGenerated(at, src, trailer, limit), nil
}

// decodeHex decodes a string of hex digits. spaces are allowed anywhere in
// the string
func decodeHex(s string) ([]byte, error) {
	s = strings.Join(strings.Fields(s), "")
	s = strings.TrimPrefix(s, "0x")
	d, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("hex: %w", err)
	}
	return d, nil
}
