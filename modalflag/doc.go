// This file is part of Patch2600.
//
// Patch2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Patch2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Patch2600.  If not, see <https://www.gnu.org/licenses/>.

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package, with
// some differences. Whereas, with flag.FlagSet you call Parse() with the
// array of strings as the only argument, with modalflag you first NewArgs()
// with the array of arguments and then Parse() with no arguments. For example
// (note that no error handling of the Parse() function is shown here):
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// Once the arguments have been parsed, non-flag arguments can be retrieved
// with the RemainingArgs() or GetArg() function.
//
// Adding flags is similar to the flag package. Adding a boolean flag:
//
//	verbose := md.AddBool("verbose", false, "print additional log messages")
//
// The most important difference between the standard flag package and the
// modalflag package is the ability of the latter to handle "modes". In this
// context, a mode is a special command line argument that when specified,
// puts the program into a different mode of operation. The go command is a
// good example of this type of interface: build, doc, get, test, etc. are
// all different enough to require a different set of flags and expected
// arguments.
//
// Sub-modes are added with the AddSubModes() function. The first mode in
// the list is the default and sub-mode comparisons are case insensitive:
//
//	md.AddSubModes("build", "apply", "info")
//
// Subsequent calls to Parse() will then process flags in the normal way but
// unlike the regular flag.Parse() function will check to see if the first
// argument after the flags is one of these modes. Once the mode has been
// selected, NewMode() begins a new layer of flags and a further call to
// Parse() will process the arguments that remain:
//
//	_, _ = md.Parse()
//	switch md.Mode() {
//	case "APPLY":
//		md.NewMode()
//		force := md.AddBool("force", false, "write output even on failure")
//		_, _ = md.Parse()
//		doApply(*force, md.RemainingArgs())
//	}
//
// Modes can be chained together as deep as required.
package modalflag
