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

package ips_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/patch2600/curated"
	"github.com/jetsetilly/patch2600/patch/ips"
	"github.com/jetsetilly/patch2600/test"
)

// a hand built patch with one plain record overwriting two bytes
func TestPlainRecord(t *testing.T) {
	d := []byte("PATCH")
	d = append(d, 0x00, 0x00, 0x02) // offset 2
	d = append(d, 0x00, 0x02)       // size 2
	d = append(d, 'X', 'Y')
	d = append(d, "EOF"...)

	p, err := ips.Parse(d)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.NumRecords(), 1)
	test.ExpectEquality(t, p.TargetSize(4), 4)

	target, err := p.Apply([]byte("ABCD"))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(target, []byte("ABXY")))
}

// records past the end of the source extend the target file
func TestExtendingRecord(t *testing.T) {
	d := []byte("PATCH")
	d = append(d, 0x00, 0x00, 0x04) // offset 4, at the end of the source
	d = append(d, 0x00, 0x02)
	d = append(d, 'E', 'F')
	d = append(d, "EOF"...)

	p, err := ips.Parse(d)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.TargetSize(4), 6)

	target, err := p.Apply([]byte("ABCD"))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(target, []byte("ABCDEF")))
}

// a record with a size of zero is run length encoded
func TestRLERecord(t *testing.T) {
	d := []byte("PATCH")
	d = append(d, 0x00, 0x00, 0x01) // offset 1
	d = append(d, 0x00, 0x00)       // size 0 indicates RLE
	d = append(d, 0x00, 0x03)       // count 3
	d = append(d, 0x2a)             // value
	d = append(d, "EOF"...)

	p, err := ips.Parse(d)
	test.DemandSuccess(t, err)

	target, err := p.Apply([]byte("ABCDE"))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(target, []byte{'A', 0x2a, 0x2a, 0x2a, 'E'}))
}

// the optional field after the EOF marker truncates the target
func TestTruncate(t *testing.T) {
	d := []byte("PATCH")
	d = append(d, 0x00, 0x00, 0x00) // offset 0
	d = append(d, 0x00, 0x01)       // size 1
	d = append(d, 'Z')
	d = append(d, "EOF"...)
	d = append(d, 0x00, 0x00, 0x03) // truncate to 3 bytes

	p, err := ips.Parse(d)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.TargetSize(5), 3)

	target, err := p.Apply([]byte("ABCDE"))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(target, []byte("ZBC")))
}

func TestParseErrors(t *testing.T) {
	// wrong signature
	_, err := ips.Parse([]byte("UPS1"))
	test.ExpectSuccess(t, curated.Is(err, ips.BadSignature))

	// no EOF marker
	d := []byte("PATCH")
	d = append(d, 0x00, 0x00, 0x02)
	d = append(d, 0x00, 0x02)
	d = append(d, 'X', 'Y')
	_, err = ips.Parse(d)
	test.ExpectSuccess(t, curated.Is(err, ips.TruncatedPatch))

	// record data shorter than the size field says
	d = []byte("PATCH")
	d = append(d, 0x00, 0x00, 0x02)
	d = append(d, 0x00, 0x08)
	d = append(d, 'X', 'Y')
	_, err = ips.Parse(d)
	test.ExpectSuccess(t, curated.Is(err, ips.TruncatedPatch))
}
