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

// Package digest gathers the checksum functions used by the patch format
// packages and the ROM loader.
//
// The patch formats identify files with CRC-32 checksums. The variant is the
// one usually labelled CRC-32/ISO-HDLC: the reflected 0xedb88320 polynomial,
// an initial value of all ones and a final inversion. Patch files made by the
// reference tooling use this variant and no other, so there is no choice of
// algorithm here.
//
// The ROM loader uses SHA1 for identifying loaded files. SHA1 is not part of
// any patch format and is only used for bookkeeping.
package digest

import (
	"crypto/sha1"
	"fmt"
	"hash/crc32"
)

// CRC32 returns the CRC-32/ISO-HDLC checksum of data. This is the checksum
// written into UPS and BPS patch files.
func CRC32(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}

// SHA1 returns the sha1 digest of data as a printable string.
func SHA1(data []byte) string {
	return fmt.Sprintf("%x", sha1.Sum(data))
}
