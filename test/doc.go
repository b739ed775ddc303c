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

// Package test contains helper functions to remove common boilerplate from
// test functions.
//
// The Expect functions record a test error and allow the test to continue.
// The Demand functions end the test immediately on failure, which is useful
// when subsequent testing would be meaningless.
//
// All functions accept optional trailing tag values. Tags are formatted and
// prepended to the failure message, which helps identify the failing case
// when the function is called from inside a loop.
package test
