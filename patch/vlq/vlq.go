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

// Package vlq implements the self-terminating variable length number encoding
// shared by the UPS and BPS patch formats.
//
// A number is stored as a sequence of seven bit groups, least significant
// group first. Bit 7 of the final group is set, marking the end of the
// sequence. No length prefix is needed.
//
// Unlike plain LEB128, one is subtracted from the remaining value after each
// non-terminal group. The adjustment makes the encoding canonical: every
// number has exactly one encoding and every encoding decodes to exactly one
// number. The same trick appears in the "modified big-endian" numbers of the
// git packfile format, although there the group order is reversed.
package vlq

import (
	"github.com/jetsetilly/patch2600/curated"
)

// Unterminated is returned when a buffer ends before the final group of a
// number has been seen.
const Unterminated = "vlq: unterminated number (at offset %d)"

// Append the encoding of v to p, returning the extended buffer.
func Append(p []byte, v uint64) []byte {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v == 0 {
			return append(p, b|0x80)
		}
		p = append(p, b)
		v--
	}
}

// Decode the number starting at index idx of p. Returns the decoded number
// and the index of the first byte after its final group.
//
// The index is returned unchanged alongside the Unterminated error if the
// buffer ends before the final group is seen.
func Decode(p []byte, idx int) (uint64, int, error) {
	var v uint64

	shift := uint64(1)
	for i := idx; i < len(p); i++ {
		b := p[i]
		v += uint64(b&0x7f) * shift
		if b&0x80 != 0 {
			return v, i + 1, nil
		}
		shift <<= 7
		v += shift
	}

	return 0, idx, curated.Errorf(Unterminated, idx)
}
