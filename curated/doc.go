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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created by the
// Errorf() function. The Errorf() pattern is used to differentiate curated
// errors. For example:
//
//	o := 10
//	e := curated.Errorf("patch truncated (at offset %d)", o)
//
//	if curated.Is(e, "patch truncated (at offset %d)") {
//		fmt.Println("true")
//	}
//
// The patch format packages in this project define their error patterns as
// exported string constants, so the example above would more usually be
// written as:
//
//	if curated.Is(e, ups.TruncatedPatch) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. Error chains are built by using a curated error as a
// placeholder value in a call to Errorf().
package curated
