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

// Package romloader moves ROMs and patch files between disk and the byte
// buffers the patch packages work with. The patch packages themselves never
// touch the file system.
//
// The simplest instance of the Loader type:
//
//	ld := romloader.Loader{
//		Filename: "roms/Pitfall.bin",
//	}
//
// It is preferred however that the NewLoader() function is used.
//
// Loaded data is hashed. If the Hash field is set before the call to Load()
// then the data must match it, which is useful when a patch is known to be
// for one specific dump of a ROM.
package romloader
