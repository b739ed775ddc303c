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

// Package patch is the umbrella for the individual patch format packages. It
// provides fingerprinting of patch data and the format-neutral Applier
// interface.
//
// Callers who care about which format is in play, or about the direction a
// UPS patch was applied in, should use the format packages directly. All
// operations work on byte buffers held entirely in memory. Reading and
// writing of files is left to the caller; the romloader package is one way of
// doing that.
//
// The format packages hold no shared state of any kind so patches may be
// built and applied concurrently, provided each call owns its buffers.
package patch
