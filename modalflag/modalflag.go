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

package modalflag

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/thumbpatch/curated"
	"github.com/jetsetilly/thumbpatch/defines"
)

const modeSeparator = "/"

// WrongArgs is the pattern for errors returned by the ExactArgs() function.
const WrongArgs = "modalflag: %s mode expects %d arguments (%d given)"

// Modes provides an easy way of handling command line arguments. The Output
// field should be specified before calling Parse() or you will not see any
// help messages.
type Modes struct {
	// where to print output (help messages etc)
	Output io.Writer

	// whether Parse() has been called recently
	parsed bool

	// a new flagset is created on every call to NewArgs() and NewMode()
	flags *flag.FlagSet

	// the argument list as specified by the NewArgs() function
	args    []string
	argsIdx int

	// the most recent list of sub-modes specified with the NewMode() function
	subModes []string

	// path is the series of sub-modes that have been found during subsequent
	// calls to Parse()
	//
	// we never reset this variable
	path []string

	// description of the non-flag arguments. shown in the help message
	usage string

	// some modes will benefit from a verbose explanation
	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the last mode to be encountered.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns a string all the modes encountered during parsing.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs with a string of arguments (from the command line for example).
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0

	// by definition, a newly initialised Modes struct begins with a new mode
	md.NewMode()
}

// NewMode indicates that further arguments should be considered part of a new
// mode.
func (md *Modes) NewMode() {
	md.subModes = []string{}
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.parsed = false
	md.usage = ""
	md.additionalHelp = ""
}

// Usage describes the non-flag arguments of the current mode. For example,
// "<source> <dest>".
func (md *Modes) Usage(usage string) {
	md.usage = usage
}

// AdditionalHelp allows you to add extensive help text to be displayed in
// addition to the regular help on available flags.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// Parsed returns false if Parse() has not yet been called since either a call
// to NewArgs() or NewMode(). Note that, a Modes struct is considered to be
// Parsed() even if Parse() results in an error.
func (md *Modes) Parsed() bool {
	return md.parsed
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// a list of valid ParseResult values.
const (
	// Continue with command line processing. If sub-modes were specified in
	// the preceding call to NewMode() then the Mode() function should be
	// checked.
	ParseContinue ParseResult = iota

	// Help was requested and has been printed.
	ParseHelp

	// an error has occurred and is returned as the second return value.
	ParseError
)

// Parse the top level layer of arguments. Returns a value of ParseResult.
// The idiomatic usage is as follows:
//
//	r, err := md.Parse()
//	switch r {
//	case ParseHelp:
//		// help message has already been printed
//		return
//	case ParseError:
//		printError(err)
//		return
//	}
//
// Help messages are handled automatically by the function.
func (md *Modes) Parse() (ParseResult, error) {
	// flag the parsed flag in all instances, even if we eventually return an
	// error
	md.parsed = true

	// set output of flags.Parse() to an instance of helpWriter
	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if err == flag.ErrHelp {
			hw.Help(md.Output, md.Path(), md.usage, md.subModes, md.additionalHelp)
			hw.Clear()
			return ParseHelp, nil
		}

		// flags have been set that are not recognised. if sub-modes have been
		// defined, set selected mode to default mode and continue. otherwise
		// return error
		if len(md.subModes) > 0 {
			md.path = append(md.path, md.subModes[0])
		} else {
			return ParseError, err
		}
	} else if len(md.subModes) > 0 {
		arg := strings.ToUpper(md.flags.Arg(0))

		// check to see if the single argument is in the list of modes,
		// starting off assuming it isn't
		mode := md.subModes[0]
		for i := range md.subModes {
			if md.subModes[i] == arg {
				mode = arg
				md.argsIdx++
				break // for loop
			}
		}

		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

// RemainingArgs after a call to Parse() ie. arguments that aren't flags or a
// listed sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the numbered argument that isn't a flag or listed sub-mode.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// ExactArgs returns an error if the number of remaining arguments is not n.
func (md *Modes) ExactArgs(n int) error {
	if md.flags.NArg() != n {
		return curated.Errorf(WrongArgs, md.Mode(), n, md.flags.NArg())
	}
	return nil
}

// AddSubModes to list of submodes for next parse. The first sub-mode in the
// list is considered to be the default sub-mode.
//
// Note that sub-mode comparisons are case insensitive.
func (md *Modes) AddSubModes(submodes ...string) {
	md.subModes = append(md.subModes, submodes...)
	for i := range md.subModes {
		md.subModes[i] = strings.ToUpper(md.subModes[i])
	}
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// hexValue implements the flag.Value interface for a string of hex digits.
type hexValue struct {
	b *[]byte
}

func (v hexValue) String() string {
	if v.b == nil {
		return ""
	}
	return hex.EncodeToString(*v.b)
}

func (v hexValue) Set(s string) error {
	s = strings.Join(strings.Fields(s), "")
	b, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("not a hex string: %w", err)
	}
	*v.b = b
	return nil
}

// AddHex flag for next call to Parse(). The value of the flag is a string of
// hex digits, which may contain spaces.
func (md *Modes) AddHex(name string, usage string) *[]byte {
	b := new([]byte)
	md.flags.Var(hexValue{b: b}, name, usage)
	return b
}

// definesValue implements the flag.Value interface for strings parsed by the
// defines package.
type definesValue struct {
	d *map[string]string
}

func (v definesValue) String() string {
	if v.d == nil {
		return ""
	}
	return defines.String(*v.d)
}

func (v definesValue) Set(s string) error {
	d, err := defines.Parse(s)
	if err != nil {
		return err
	}

	// the flag can be specified more than once
	*v.d = defines.Merge(*v.d, d)
	return nil
}

// AddDefines flag for next call to Parse(). The value of the flag is parsed
// by the defines package. If the flag appears more than once the values are
// merged.
func (md *Modes) AddDefines(name string, usage string) *map[string]string {
	d := new(map[string]string)
	*d = make(map[string]string)
	md.flags.Var(definesValue{d: d}, name, usage)
	return d
}
