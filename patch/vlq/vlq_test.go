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

package vlq_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/jetsetilly/patch2600/curated"
	"github.com/jetsetilly/patch2600/patch/vlq"
	"github.com/jetsetilly/patch2600/test"
)

func TestKnownEncodings(t *testing.T) {
	// the offset-by-one adjustment means the second group of the encoding of
	// 128 carries zero, not one. there is no second way of writing 127 or 128
	tests := []struct {
		value    uint64
		encoding []byte
	}{
		{0, []byte{0x80}},
		{1, []byte{0x81}},
		{127, []byte{0xff}},
		{128, []byte{0x00, 0x80}},
		{129, []byte{0x01, 0x80}},
		{255, []byte{0x7f, 0x80}},
		{256, []byte{0x00, 0x81}},
		{16511, []byte{0x7f, 0xff}},
		{16512, []byte{0x00, 0x00, 0x80}},
	}

	for _, tst := range tests {
		e := vlq.Append(nil, tst.value)
		test.DemandEquality(t, len(e), len(tst.encoding), tst.value)
		for i := range e {
			test.ExpectEquality(t, e[i], tst.encoding[i], tst.value)
		}

		v, n, err := vlq.Decode(e, 0)
		test.ExpectSuccess(t, err, tst.value)
		test.ExpectEquality(t, v, tst.value)
		test.ExpectEquality(t, n, len(e))
	}
}

func TestRoundTrip(t *testing.T) {
	// values around every group boundary plus the extremes of the uint64 range
	values := []uint64{
		0, 1, 126, 127, 128, 129,
		16510, 16511, 16512,
		math.MaxUint32 - 1, math.MaxUint32, math.MaxUint32 + 1,
		math.MaxUint64 - 1, math.MaxUint64,
	}
	for i := 0; i < 1000; i++ {
		values = append(values, rand.Uint64())
	}

	for _, value := range values {
		e := vlq.Append(nil, value)
		v, n, err := vlq.Decode(e, 0)
		test.ExpectSuccess(t, err, value)
		test.ExpectEquality(t, v, value)
		test.ExpectEquality(t, n, len(e))
	}
}

func TestDecodeOffset(t *testing.T) {
	// decoding does not need to begin at the start of the buffer and multiple
	// numbers can be read in sequence
	e := vlq.Append(nil, 4)
	e = vlq.Append(e, 300)
	e = vlq.Append(e, 0)

	v, idx, err := vlq.Decode(e, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 4)

	v, idx, err = vlq.Decode(e, idx)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 300)

	v, idx, err = vlq.Decode(e, idx)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0)
	test.ExpectEquality(t, idx, len(e))
}

func TestUnterminated(t *testing.T) {
	// a buffer with no terminal group is an error
	_, _, err := vlq.Decode([]byte{0x01, 0x02, 0x03}, 0)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, vlq.Unterminated))

	// as is decoding from the end of a buffer
	_, _, err = vlq.Decode([]byte{0x80}, 1)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, vlq.Unterminated))
}
