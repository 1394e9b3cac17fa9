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

package modalflag_test

import (
	"testing"

	"github.com/jetsetilly/thumbpatch/curated"
	"github.com/jetsetilly/thumbpatch/modalflag"
	"github.com/jetsetilly/thumbpatch/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"-test", "1", "2"})
	testFlag := md.AddBool("test", false, "test flag")
	test.ExpectFailure(t, *testFlag)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectSuccess(t, *testFlag)
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectSuccess(t, md.ExactArgs(2))
	test.ExpectSuccess(t, curated.Is(md.ExactArgs(3), modalflag.WrongArgs))
}

func TestModes(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"encode", "0x100", "0x200"})
	md.AddSubModes("PATCH", "ENCODE", "LIST")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "ENCODE")

	md.NewMode()
	force := md.AddBool("force", false, "overwrite")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, *force)
	test.ExpectEquality(t, md.GetArg(0), "0x100")
	test.ExpectEquality(t, md.GetArg(1), "0x200")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"patches.yaml", "in.bin", "out.bin"})
	md.AddSubModes("PATCH", "ENCODE", "LIST")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "PATCH")

	md.NewMode()
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, md.ExactArgs(3))
	test.ExpectEquality(t, md.Path(), "PATCH")
}

func TestHexFlag(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"-trailer", "de ad be ef"})
	trailer := md.AddHex("trailer", "trailer bytes")
	test.ExpectEquality(t, len(*trailer), 0)

	_, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectBytes(t, *trailer, []byte{0xde, 0xad, 0xbe, 0xef})

	md.NewArgs([]string{"-trailer", "xyz"})
	md.AddHex("trailer", "trailer bytes")
	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestDefinesFlag(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"-define", "A::1; B::2", "-define", "B::3"})
	d := md.AddDefines("define", "defines")

	_, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, (*d)["A"], "1")
	test.ExpectEquality(t, (*d)["B"], "3")

	md.NewArgs([]string{"-define", "A_1"})
	md.AddDefines("define", "defines")
	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, tw.String(), "No help available\n")
}

func TestHelpFlags(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    	test flag (default true)\n"
	test.ExpectEquality(t, tw.String(), expectedHelp)
}

func TestHelpUsage(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.Usage("<source> <dest>")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, tw.String(), "Usage: [flags] <source> <dest>\n")
}

func TestHelpModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("A", "B", "C")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  available sub-modes: A, B, C\n" +
		"    default: A\n"
	test.ExpectEquality(t, tw.String(), expectedHelp)
}

func TestHelpFlagsAndModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")
	md.AddSubModes("A", "B", "C")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    	test flag (default true)\n" +
		"\n" +
		"  available sub-modes: A, B, C\n" +
		"    default: A\n"
	test.ExpectEquality(t, tw.String(), expectedHelp)
}
