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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Whereas, with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first call NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PATCH", "ENCODE", "LIST")
//	_, _ = md.Parse()
//
// Once the arguments have been parsed, non-flag arguments can be retrieved
// with the RemainingArgs() or GetArg() function. The ExactArgs() function is a
// convenient way of checking the number of arguments.
//
// A mode is a special command line argument that puts the program into a
// different mode of operation, each with its own set of flags and expected
// arguments. Modes are specified with the AddSubModes() function. The first
// mode in the list is the default mode, used when the first argument is not
// the name of a mode. Sub-mode comparisons are case insensitive.
//
// After the mode has been decided, NewMode() and Parse() are called again to
// process the flags of that mode:
//
//	switch md.Mode() {
//	case "ENCODE":
//		md.NewMode()
//		md.Usage("<src> <dst>")
//		p, err := md.Parse()
//		switch p {
//		case ParseError:
//			fmt.Println(err)
//			return
//		case ParseHelp:
//			return
//		}
//		if err := md.ExactArgs(2); err != nil {
//			fmt.Println(err)
//			return
//		}
//		encode(md.GetArg(0), md.GetArg(1))
//	}
//
// In addition to the flag types of the flag package, the AddHex() function
// adds a flag that is a string of hex digits and the AddDefines() function adds
// a flag that is parsed by the defines package.
package modalflag
