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

package digest_test

import (
	"testing"

	"github.com/jetsetilly/patch2600/digest"
	"github.com/jetsetilly/patch2600/test"
)

func TestCRC32(t *testing.T) {
	// the standard CRC-32/ISO-HDLC check value
	test.ExpectEquality(t, digest.CRC32([]byte("123456789")), 0xcbf43926)

	// and the empty buffer
	test.ExpectEquality(t, digest.CRC32(nil), 0x00000000)
}

func TestSHA1(t *testing.T) {
	test.ExpectEquality(t, digest.SHA1([]byte("abc")), "a9993e364706816aba3e25717850c26c9cd0d89d")
}
