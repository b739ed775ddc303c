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

// Package bps applies patches in the BPS format, the successor to UPS by the
// same author. Where UPS can only XOR bytes in place, a BPS patch is a small
// program of four actions:
//
//	SourceRead - copy bytes from the same place in the source file
//	TargetRead - copy bytes embedded in the patch itself
//	SourceCopy - copy bytes from elsewhere in the source file
//	TargetCopy - copy bytes from earlier in the output being produced
//
// The two copy actions maintain their own positions, moved by a signed
// relative offset at the start of each action. TargetCopy runs may overlap
// the bytes they are producing, which gives the format run length encoding
// for free.
//
// The layout of a patch file:
//
//	offset 0      : the 4 byte signature "BPS1"
//	offset 4      : source size, target size and metadata size (see
//	                package vlq) followed by the metadata blob
//	              : the action stream
//	offset EOF-12 : CRC32 of the source file (little endian)
//	offset EOF-8  : CRC32 of the target file
//	offset EOF-4  : CRC32 of the patch file itself, excluding these 4 bytes
//
// The relocation ability means application is one-way. This package applies
// existing BPS patches; building them is a very much harder problem and is
// not attempted here.
package bps
