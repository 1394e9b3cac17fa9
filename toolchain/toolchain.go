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

package toolchain

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/thumbpatch/curated"
	"github.com/jetsetilly/thumbpatch/defines"
	"github.com/jetsetilly/thumbpatch/logger"
	"github.com/jetsetilly/thumbpatch/patch"
	"github.com/xyproto/env/v2"
)

// Error is the pattern used for all errors returned by Generate(). The value
// includes the output of the failed tool, if there was any.
const Error = "toolchain: %v"

// Names of the environment variables read by NewFromEnv().
const (
	EnvPrefix   = "THUMBPATCH_PREFIX"
	EnvCPU      = "THUMBPATCH_CPU"
	EnvEntry    = "THUMBPATCH_ENTRY"
	EnvKeepTemp = "THUMBPATCH_KEEPTEMP"
)

// Default values for the Toolchain fields.
const (
	DefaultPrefix = "arm-elf-"
	DefaultCPU    = "arm7tdmi"
	DefaultEntry  = "my_start"
)

// Names of the files created in the temporary directory.
const (
	asmFile    = "temp.asm"
	cFile      = "temp.c"
	objFile    = "temp.o"
	linkedFile = "temp2.o"
	binFile    = "temp.bin"
)

// Runner runs the named program with the arguments in the specified
// directory. It returns the combined stdout and stderr of the program.
type Runner func(dir string, name string, args ...string) ([]byte, error)

// Toolchain implements the patch.Generator interface.
type Toolchain struct {
	// prefixed to the name of each tool. for example, "arm-elf-"
	Prefix string

	// value of the -mcpu option passed to gcc
	CPU string

	// the symbol given to the linker as the entry point
	Entry string

	// do not remove the temporary directory. the location of the directory is
	// logged
	KeepTemp bool

	// the parent directory for the temporary directories. the default
	// directory for temporary files is used if the string is empty
	TempDir string

	// the hex dump of generated code is not logged if Quiet is true
	Quiet logger.Quiet

	// Run is used to run each tool. if it is nil then the tools are run with
	// the os/exec package
	Run Runner
}

// NewFromEnv creates a new Toolchain with the fields set from the environment
// variables named by EnvPrefix, EnvCPU, EnvEntry and EnvKeepTemp. The default
// values are used for variables that are not set.
func NewFromEnv() *Toolchain {
	return &Toolchain{
		Prefix:   env.Str(EnvPrefix, DefaultPrefix),
		CPU:      env.Str(EnvCPU, DefaultCPU),
		Entry:    env.Str(EnvEntry, DefaultEntry),
		KeepTemp: env.Bool(EnvKeepTemp),
	}
}

func execRunner(dir string, name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// Generate implements the patch.Generator interface.
func (tc *Toolchain) Generate(src patch.Source, defs map[string]string) (_ []byte, rerr error) {
	dir, err := os.MkdirTemp(tc.TempDir, "thumbpatch")
	if err != nil {
		return nil, curated.Errorf(Error, err)
	}

	defer func() {
		if tc.KeepTemp {
			logger.Logf(logger.Allow, "toolchain", "temporary files kept in %s", dir)
			return
		}
		err := os.RemoveAll(dir)
		if err != nil && rerr == nil {
			rerr = curated.Errorf(Error, err)
		}
	}()

	var data []byte

	switch src.Language {
	case patch.Assembly:
		data, err = tc.assemble(dir, src)
	case patch.C:
		data, err = tc.compile(dir, src, defs)
	default:
		return nil, curated.Errorf(Error, fmt.Sprintf("unsupported language: %s", src.Language))
	}

	if err != nil {
		return nil, err
	}

	if src.Filename != "" {
		logger.Logf(tc.Quiet, "toolchain", "generating: %s", src.Filename)
	}
	logger.Logf(tc.Quiet, "toolchain", "data_len: %d", len(data))
	logger.Logf(tc.Quiet, "toolchain", "data: %x", data)

	return data, nil
}

// tool returns the full name of the tool.
func (tc *Toolchain) tool(name string) string {
	return tc.Prefix + name
}

// run the tool in the directory. a failed tool is turned into a curated error
func (tc *Toolchain) run(dir string, name string, args ...string) error {
	run := tc.Run
	if run == nil {
		run = execRunner
	}

	name = tc.tool(name)
	out, err := run(dir, name, args...)
	if err != nil {
		o := strings.TrimSpace(string(out))
		if o == "" {
			return curated.Errorf(Error, fmt.Errorf("%s: %w", name, err))
		}
		return curated.Errorf(Error, fmt.Errorf("%s: %w\n%s", name, err, o))
	}
	return nil
}

// input returns the path of the source file. if the Source has no filename
// then the lines are written to a file in the directory
func input(dir string, src patch.Source, tempName string) (string, error) {
	if src.Filename != "" {
		// the tools run in the temporary directory so relative paths must be
		// made absolute
		fn, err := filepath.Abs(src.Filename)
		if err != nil {
			return "", curated.Errorf(Error, err)
		}
		return fn, nil
	}

	var s strings.Builder
	for _, l := range src.Lines {
		s.WriteString(l)
		s.WriteString("\n")
	}

	fn := filepath.Join(dir, tempName)
	err := os.WriteFile(fn, []byte(s.String()), 0600)
	if err != nil {
		return "", curated.Errorf(Error, err)
	}
	return fn, nil
}

func (tc *Toolchain) assemble(dir string, src patch.Source) ([]byte, error) {
	fn, err := input(dir, src, asmFile)
	if err != nil {
		return nil, err
	}

	err = tc.run(dir, "as", "-mthumb", "-o", objFile, fn)
	if err != nil {
		return nil, err
	}

	return tc.objcopy(dir, objFile)
}

func (tc *Toolchain) compile(dir string, src patch.Source, defs map[string]string) ([]byte, error) {
	fn, err := input(dir, src, cFile)
	if err != nil {
		return nil, err
	}

	args := make([]string, 0, len(defs)+10)
	for _, k := range defines.Keys(defs) {
		args = append(args, fmt.Sprintf("-D%s=%s", k, defs[k]))
	}
	args = append(args, "-Wno-multichar", "-nostdlib",
		fmt.Sprintf("-mcpu=%s", tc.CPU), "-mthumb", "-fPIC", "-O1",
		"-c", "-o", objFile, fn)

	err = tc.run(dir, "gcc", args...)
	if err != nil {
		return nil, err
	}

	err = tc.run(dir, "ld", "-EL", fmt.Sprintf("-e%s", tc.Entry), objFile, "-o", linkedFile)
	if err != nil {
		return nil, err
	}

	return tc.objcopy(dir, linkedFile)
}

func (tc *Toolchain) objcopy(dir string, obj string) ([]byte, error) {
	err := tc.run(dir, "objcopy", "-O", "binary", obj, binFile)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(dir, binFile))
	if err != nil {
		return nil, curated.Errorf(Error, err)
	}
	return data, nil
}
