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

	"github.com/jetsetilly/patch2600/digest"
)

// readPad returns the indexed byte of the buffer, or zero for an index past
// the end of the buffer. reads past the end of the shorter file are defined
// by the UPS format to be zero
func readPad(p []byte, idx int) byte {
	if idx >= len(p) {
		return 0
	}
	return p[idx]
}

// Build a patch from the differences between the original and modified data.
//
// The walk over the two buffers is a simple greedy one: every maximal run of
// differing bytes becomes one block. The UPS format allows any block
// segmentation so long as no xor byte is zero, so other strategies would
// produce equally valid, if differently sized, patches.
//
// If the two buffers are identical the patch has no blocks at all.
func Build(original []byte, modified []byte) (*Patch, error) {
	p := &Patch{
		InputSize:  uint64(len(original)),
		OutputSize: uint64(len(modified)),
		CRCInput:   digest.CRC32(original),
		CRCOutput:  digest.CRC32(modified),
	}

	end := max(len(original), len(modified))

	// mark is the index of the first byte after the previous block's xor run,
	// or the start of the file for the first block
	idx := 0
	mark := 0

	for idx < end {
		if readPad(original, idx) == readPad(modified, idx) {
			idx++
			continue
		}

		b := block{gap: uint64(idx - mark)}
		for idx < end && readPad(original, idx) != readPad(modified, idx) {
			b.xor = append(b.xor, readPad(original, idx)^readPad(modified, idx))
			idx++
		}
		mark = idx

		p.blocks = append(p.blocks, b)
	}

	// the patch checksum can only be known by serialising
	d := p.Serialise()
	p.CRCPatch = binary.LittleEndian.Uint32(d[len(d)-4:])

	return p, nil
}

// BuildBytes is a convenience function that builds a patch and returns it in
// the UPS wire format, ready to be written to disk.
func BuildBytes(original []byte, modified []byte) ([]byte, error) {
	p, err := Build(original, modified)
	if err != nil {
		return nil, err
	}
	return p.Serialise(), nil
}
