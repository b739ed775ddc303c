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

// Package ups implements the UPS patch format. UPS is the simplest of the
// checksummed ROM patch formats: the body of a patch is a list of blocks,
// each one a count of unchanged bytes followed by a run of XOR values for the
// bytes that differ.
//
// Because XOR is its own inverse the same patch file transforms the original
// file into the modified file and the modified file back into the original.
// The direction of application is not stored in the patch. It is decided at
// application time by comparing the checksum of the supplied file with the
// two file checksums in the patch. See the Direction type.
//
// The layout of a patch file:
//
//	offset 0      : the 4 byte signature "UPS1"
//	offset 4      : size of the original file (see package vlq)
//	              : size of the modified file
//	              : repeated blocks { unchanged count, xor bytes, 0x00 }
//	offset EOF-12 : CRC32 of the original file (little endian)
//	offset EOF-8  : CRC32 of the modified file
//	offset EOF-4  : CRC32 of the patch file itself, excluding these 4 bytes
//
// Where one file is longer than the other, the shorter file is treated as
// though it were padded with zero bytes to the length of the longer. An XOR
// value in that region is therefore the literal byte of the longer file.
//
// Patches are created with the Build() function and applied with the Apply()
// function, either of the package or of the Patch type. There is no
// compression in the UPS format. Distributors are expected to compress patch
// files themselves.
package ups
