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

package ups_test

import (
	"bytes"
	"encoding/binary"
	"math/rand"
	"testing"

	"github.com/jetsetilly/patch2600/curated"
	"github.com/jetsetilly/patch2600/digest"
	"github.com/jetsetilly/patch2600/patch/ups"
	"github.com/jetsetilly/patch2600/patch/vlq"
	"github.com/jetsetilly/patch2600/test"
)

// the worked example: changing the third byte of a four byte file. the gap of
// two covers "AB", the single xor byte is 'C'^'X' and the run terminator
// follows immediately
func TestWireFormat(t *testing.T) {
	original := []byte("ABCD")
	modified := []byte("ABXD")

	d, err := ups.BuildBytes(original, modified)
	test.DemandSuccess(t, err)

	expected := []byte("UPS1")
	expected = append(expected, 0x84)             // input size 4
	expected = append(expected, 0x84)             // output size 4
	expected = append(expected, 0x82)             // gap 2
	expected = append(expected, 0x1b)             // 'C' xor 'X'
	expected = append(expected, 0x00)             // run terminator
	expected = binary.LittleEndian.AppendUint32(expected, digest.CRC32(original))
	expected = binary.LittleEndian.AppendUint32(expected, digest.CRC32(modified))
	expected = binary.LittleEndian.AppendUint32(expected, digest.CRC32(expected))

	test.DemandEquality(t, len(d), len(expected))
	for i := range d {
		test.ExpectEquality(t, d[i], expected[i], i)
	}

	// the patch applies in both directions
	output, dir, err := ups.Apply(d, original)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, dir, ups.Forward)
	test.ExpectSuccess(t, bytes.Equal(output, modified))

	output, dir, err = ups.Apply(d, modified)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, dir, ups.Reverse)
	test.ExpectSuccess(t, bytes.Equal(output, original))
}

// bytes past the end of the shorter file read as zero, so the xor run for an
// extended tail carries the literal bytes of the longer file
func TestEOFPadding(t *testing.T) {
	original := []byte("AB")
	modified := []byte("ABCD")

	p, err := ups.Build(original, modified)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.NumBlocks(), 1)
	test.ExpectEquality(t, p.InputSize, 2)
	test.ExpectEquality(t, p.OutputSize, 4)

	d := p.Serialise()

	// gap of two then the tail bytes xored with zero
	test.ExpectEquality(t, d[6], 0x82)
	test.ExpectEquality(t, d[7], byte('C'))
	test.ExpectEquality(t, d[8], byte('D'))
	test.ExpectEquality(t, d[9], 0x00)

	output, dir, err := ups.Apply(d, original)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, dir, ups.Forward)
	test.ExpectSuccess(t, bytes.Equal(output, modified))

	// applying in reverse shortens the file again
	output, dir, err = ups.Apply(d, modified)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, dir, ups.Reverse)
	test.ExpectSuccess(t, bytes.Equal(output, original))
}

// a patch between identical files has no blocks and the two file checksums
// are the same
func TestEqualFiles(t *testing.T) {
	data := []byte("the same on both sides")

	p, err := ups.Build(data, data)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.NumBlocks(), 0)
	test.ExpectEquality(t, p.CRCInput, p.CRCOutput)

	// when both checksums match the forward direction is chosen
	output, dir, err := p.Apply(data)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, dir, ups.Forward)
	test.ExpectSuccess(t, bytes.Equal(output, data))

	// and the patch survives serialisation
	q, err := ups.Parse(p.Serialise())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.NumBlocks(), 0)
	test.ExpectEquality(t, q.CRCInput, p.CRCInput)
	test.ExpectEquality(t, q.CRCPatch, p.CRCPatch)
}

func randomBuffer(rnd *rand.Rand, length int) []byte {
	b := make([]byte, length)
	for i := range b {
		b[i] = byte(rnd.Intn(256))
	}
	return b
}

// for any two buffers: the built patch transforms one into the other, in
// either direction, and applying the patch twice returns to the start
func TestRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(1972))

	for i := 0; i < 50; i++ {
		// buffer lengths differ, sometimes by a lot. zero lengths included
		a := randomBuffer(rnd, rnd.Intn(2000))
		b := randomBuffer(rnd, rnd.Intn(2000))

		d, err := ups.BuildBytes(a, b)
		test.DemandSuccess(t, err, i)

		forward, dir, err := ups.Apply(d, a)
		test.ExpectSuccess(t, err, i)
		test.ExpectEquality(t, dir, ups.Forward, i)
		test.ExpectSuccess(t, bytes.Equal(forward, b), i)

		reverse, dir, err := ups.Apply(d, forward)
		test.ExpectSuccess(t, err, i)
		test.ExpectEquality(t, dir, ups.Reverse, i)
		test.ExpectSuccess(t, bytes.Equal(reverse, a), i)
	}
}

// a file matching neither checksum in the patch is rejected outright
func TestChecksumGate(t *testing.T) {
	d, err := ups.BuildBytes([]byte("ABCD"), []byte("ABXD"))
	test.DemandSuccess(t, err)

	output, _, err := ups.Apply(d, []byte("AXCD"))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, ups.ChecksumMismatch))
	test.ExpectSuccess(t, output == nil)
}

func TestParseErrors(t *testing.T) {
	// too small to be a patch at all
	_, err := ups.Parse([]byte("UPS1"))
	test.ExpectSuccess(t, curated.Is(err, ups.TruncatedPatch))

	// wrong signature
	d, err := ups.BuildBytes([]byte("ABCD"), []byte("ABXD"))
	test.DemandSuccess(t, err)
	e := append([]byte(nil), d...)
	copy(e, "IPS1")
	_, err = ups.Parse(e)
	test.ExpectSuccess(t, curated.Is(err, ups.BadSignature))

	// a size number with no final group
	e = []byte("UPS1")
	e = append(e, 0x01, 0x02)
	e = append(e, make([]byte, 12)...)
	_, err = ups.Parse(e)
	test.ExpectSuccess(t, curated.Is(err, ups.MalformedVarInt))

	// an xor run reaching the checksum region without a terminator
	e = []byte("UPS1")
	e = append(e, 0x84, 0x84, 0x82, 0x1b)
	e = append(e, make([]byte, 12)...)
	_, err = ups.Parse(e)
	test.ExpectSuccess(t, curated.Is(err, ups.MalformedBlock))

	// a gap followed immediately by the run terminator. an empty xor run
	// says nothing and no encoder produces one
	e = []byte("UPS1")
	e = append(e, 0x84, 0x84, 0x82, 0x00)
	e = append(e, make([]byte, 12)...)
	_, err = ups.Parse(e)
	test.ExpectSuccess(t, curated.Is(err, ups.MalformedBlock))

	// flipping a bit anywhere in a valid patch invalidates the patch checksum
	e = append([]byte(nil), d...)
	e[7] ^= 0x01
	_, err = ups.Parse(e)
	test.ExpectSuccess(t, curated.Is(err, ups.PatchChecksum))
}

// a patch is free to claim a gap far larger than either file. positions
// beyond the end of the output carry no information so application must not
// walk them one by one
func TestOversizedGap(t *testing.T) {
	original := []byte("ABCD")

	d := []byte("UPS1")
	d = vlq.Append(d, 4)
	d = vlq.Append(d, 4)
	d = vlq.Append(d, 1<<62)  // gap far beyond both files
	d = append(d, 0x1b, 0x00) // the xor byte lands past the output end
	crc := digest.CRC32(original)
	d = binary.LittleEndian.AppendUint32(d, crc)
	d = binary.LittleEndian.AppendUint32(d, crc)
	d = binary.LittleEndian.AppendUint32(d, digest.CRC32(d))

	output, dir, err := ups.Apply(d, original)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, dir, ups.Forward)
	test.ExpectSuccess(t, bytes.Equal(output, original))
}

// a patch carrying a bad output checksum still produces the reconstruction
// but the failure is reported
func TestOutputVerification(t *testing.T) {
	original := []byte("ABCD")
	modified := []byte("ABXD")

	d, err := ups.BuildBytes(original, modified)
	test.DemandSuccess(t, err)

	// damage the stored checksum of the modified file and then repair the
	// patch's own checksum so that Parse() accepts it
	binary.LittleEndian.PutUint32(d[len(d)-8:], 0xdeadbeef)
	binary.LittleEndian.PutUint32(d[len(d)-4:], digest.CRC32(d[:len(d)-4]))

	output, dir, err := ups.Apply(d, original)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, ups.OutputVerificationFailed))
	test.ExpectEquality(t, dir, ups.Forward)

	// the reconstruction is returned despite the error
	test.ExpectSuccess(t, bytes.Equal(output, modified))
}
