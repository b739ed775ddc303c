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

// Package regression records patch applications that are known to be good
// and replays them on demand. Each entry in the regression database names a
// ROM file, a patch file and the digest of the expected output. Running the
// regression re-applies the patch and compares digests.
//
// The regression database is useful when working on the patch appliers
// themselves but also when curating a collection of patches that should
// continue to apply cleanly as files are moved and renamed.
package regression
