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

package ups

import (
	"encoding/binary"

	"github.com/jetsetilly/patch2600/curated"
	"github.com/jetsetilly/patch2600/digest"
	"github.com/jetsetilly/patch2600/patch/vlq"
)

// Signature at the start of every UPS patch.
const Signature = "UPS1"

// the checksum region at the end of a patch file. three CRC32 values.
const trailerSize = 12

// block is a single run of differing bytes and its distance from the previous
// run.
type block struct {
	// number of unchanged bytes between the end of the previous block and the
	// first differing byte of this one
	gap uint64

	// the differing bytes, stored as original XOR modified. a zero byte would
	// mean the two files agree at that position, so the run never contains one
	xor []byte
}

// Patch is the in-memory representation of a UPS patch. Instances are created
// with the Build() or Parse() functions and are not changed by any operation
// on them.
type Patch struct {
	// sizes of the two files related by the patch. which of the two files is
	// read and which is produced depends on the direction of application
	InputSize  uint64
	OutputSize uint64

	blocks []block

	// checksums of the original file, the modified file, and of the patch
	// file itself excluding the four bytes that store CRCPatch
	CRCInput  uint32
	CRCOutput uint32
	CRCPatch  uint32
}

// NumBlocks returns the number of diff blocks in the patch.
func (p *Patch) NumBlocks() int {
	return len(p.blocks)
}

// Serialise the patch into the UPS wire format. The patch checksum is always
// computed from the bytes being emitted, never copied from the CRCPatch
// field.
func (p *Patch) Serialise() []byte {
	d := make([]byte, 0, len(Signature)+trailerSize)
	d = append(d, Signature...)
	d = vlq.Append(d, p.InputSize)
	d = vlq.Append(d, p.OutputSize)

	for _, b := range p.blocks {
		d = vlq.Append(d, b.gap)
		d = append(d, b.xor...)
		d = append(d, 0x00)
	}

	d = binary.LittleEndian.AppendUint32(d, p.CRCInput)
	d = binary.LittleEndian.AppendUint32(d, p.CRCOutput)
	d = binary.LittleEndian.AppendUint32(d, digest.CRC32(d))

	return d
}

// Parse a serialised UPS patch.
//
// Possible errors: BadSignature, TruncatedPatch, MalformedVarInt,
// MalformedBlock and PatchChecksum. In every case the returned patch is nil.
func Parse(data []byte) (*Patch, error) {
	if len(data) < len(Signature)+2+trailerSize {
		// the smallest possible patch is the signature, one varint group for
		// each file size and the checksum region
		return nil, curated.Errorf(TruncatedPatch, len(data))
	}

	if string(data[:len(Signature)]) != Signature {
		return nil, curated.Errorf(BadSignature)
	}

	p := &Patch{}

	// the body of the patch ends where the checksum region begins. no number
	// or xor run may stray past this point so decoding works on the body
	// alone
	body := data[:len(data)-trailerSize]
	idx := len(Signature)

	var err error

	p.InputSize, idx, err = vlq.Decode(body, idx)
	if err != nil {
		return nil, err
	}
	p.OutputSize, idx, err = vlq.Decode(body, idx)
	if err != nil {
		return nil, err
	}

	for idx < len(body) {
		var b block

		b.gap, idx, err = vlq.Decode(body, idx)
		if err != nil {
			return nil, err
		}

		run := idx
		for idx < len(body) && body[idx] != 0x00 {
			idx++
		}

		// every block carries at least one xor byte and ends with a zero
		// byte before the checksum region
		if idx >= len(body) || idx == run {
			return nil, curated.Errorf(MalformedBlock, len(p.blocks))
		}

		b.xor = append([]byte(nil), body[run:idx]...)
		idx++

		p.blocks = append(p.blocks, b)
	}

	p.CRCInput = binary.LittleEndian.Uint32(data[len(body):])
	p.CRCOutput = binary.LittleEndian.Uint32(data[len(body)+4:])
	p.CRCPatch = binary.LittleEndian.Uint32(data[len(body)+8:])

	if digest.CRC32(data[:len(data)-4]) != p.CRCPatch {
		return nil, curated.Errorf(PatchChecksum)
	}

	return p, nil
}
