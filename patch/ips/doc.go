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

// Package ips implements the venerable IPS patch format. An IPS patch is a
// list of records, each one a chunk of data written at an absolute offset in
// the target file:
//
//	offset 0 : the 5 byte signature "PATCH"
//	         : repeated records {
//	             3 byte offset (big endian)
//	             2 byte size
//	             size bytes of data
//	           }
//	         : the 3 bytes "EOF"
//	         : optional 3 byte truncation length
//
// A record with a size of zero is run length encoded: a 2 byte count and a
// single value byte follow instead of the data.
//
// The format is apply-only in this project and applies in one direction only.
// There are no checksums, so a patch applied to the wrong file produces
// garbage without complaint. The UPS format was designed to address exactly
// this shortcoming and should be preferred where there is a choice.
package ips
