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
	"github.com/jetsetilly/patch2600/curated"
	"github.com/jetsetilly/patch2600/digest"
)

// Direction in which a patch has been applied. A UPS patch does not store a
// direction; it is selected by comparing the checksum of the supplied file
// against the two file checksums in the patch.
type Direction int

// List of valid Direction values.
const (
	// the supplied file is the original and the modified file is produced
	Forward Direction = iota

	// the supplied file is the modified file and the original is recovered
	Reverse
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	}
	return "unknown"
}

// Apply the patch to the supplied file data, producing the file on the other
// side of the patch. The direction of application is decided by checksum and
// returned alongside the new data.
//
// A ChecksumMismatch error means the supplied data is neither of the files
// the patch was built from. No data is returned in that case.
//
// An OutputVerificationFailed error means the reconstruction does not match
// the checksum stored in the patch. The reconstructed data is returned
// alongside the error and the caller can decide whether to keep it.
func (p *Patch) Apply(input []byte) ([]byte, Direction, error) {
	var dir Direction
	var size uint64

	// checksum the output must satisfy, for the chosen direction
	var verify uint32

	crc := digest.CRC32(input)
	switch crc {
	case p.CRCInput:
		dir = Forward
		size = p.OutputSize
		verify = p.CRCOutput
	case p.CRCOutput:
		dir = Reverse
		size = p.InputSize
		verify = p.CRCInput
	default:
		return nil, Forward, curated.Errorf(ChecksumMismatch, crc)
	}

	output := make([]byte, size)

	// idx is a position in both the input and output data. the block walk
	// covers positions up to the length of the longer file but nothing can
	// change beyond the end of a shorter output, so the walk ends there. a
	// gap number cannot be trusted as a loop count on its own
	idx := 0
	for _, b := range p.blocks {
		if idx >= len(output) {
			break
		}
		for i := uint64(0); i < b.gap && idx < len(output); i++ {
			output[idx] = readPad(input, idx)
			idx++
		}
		for _, x := range b.xor {
			if idx < len(output) {
				output[idx] = readPad(input, idx) ^ x
			}
			idx++
		}
	}

	// unchanged tail after the final block
	for idx < len(output) {
		output[idx] = readPad(input, idx)
		idx++
	}

	if c := digest.CRC32(output); c != verify {
		return output, dir, curated.Errorf(OutputVerificationFailed, c, verify)
	}

	return output, dir, nil
}

// Apply a serialised patch to the supplied file data. This is the convenience
// function combining Parse() and the Apply() function of the Patch type.
func Apply(patch []byte, input []byte) ([]byte, Direction, error) {
	p, err := Parse(patch)
	if err != nil {
		return nil, Forward, err
	}
	return p.Apply(input)
}
