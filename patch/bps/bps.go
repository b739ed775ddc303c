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

package bps

import (
	"encoding/binary"

	"github.com/jetsetilly/patch2600/curated"
	"github.com/jetsetilly/patch2600/digest"
	"github.com/jetsetilly/patch2600/patch/vlq"
)

// Signature at the start of every BPS patch.
const Signature = "BPS1"

// the checksum region at the end of a patch file. three CRC32 values, the
// same arrangement as the UPS format.
const footerSize = 12

// the four action types of the BPS format. encoded in the low two bits of
// each action number.
const (
	sourceRead = iota
	targetRead
	sourceCopy
	targetCopy
)

// error patterns for the bps package. to be used in conjunction with the
// curated package
const (
	// the patch data does not begin with the "BPS1" signature
	BadSignature = "bps: not a BPS patch file"

	// the patch data ends before the structure of the patch says it should
	TruncatedPatch = "bps: patch truncated (%d bytes is too few)"

	// the stored patch checksum does not match the patch data
	PatchChecksum = "bps: patch file fails its own checksum"

	// an action reads outside the source, target or patch data
	MalformedAction = "bps: malformed action (at offset %d)"

	// the source file is not the length recorded in the patch
	SourceLength = "bps: source length mismatch (%d, expected %d)"

	// the source file does not match the checksum recorded in the patch
	SourceChecksum = "bps: source fails verification (crc32 %08x)"

	// the produced target does not match the checksum recorded in the patch
	TargetChecksum = "bps: target fails verification (crc32 %08x)"
)

// Patch is the in-memory representation of a BPS patch. Instances are created
// with the Parse() function and are not changed by any operation on them.
//
// Unlike UPS, a BPS patch can relocate byte ranges and refer back to earlier
// parts of its own output, so it only applies in one direction. This package
// applies existing patches; it does not create them.
type Patch struct {
	SourceSize uint64
	TargetSize uint64

	metadata []byte

	// the undecoded action stream. actions are decoded against the source
	// during Apply()
	actions []byte

	// checksums of the source file, the target file, and of the patch file
	// itself excluding the four bytes that store CRCPatch
	CRCSource uint32
	CRCTarget uint32
	CRCPatch  uint32
}

// Metadata returns the free-form metadata blob embedded in the patch. Usually
// XML, often empty. The format attaches no meaning to it.
func (p *Patch) Metadata() []byte {
	return p.metadata
}

// Parse a serialised BPS patch. The header and footer are decoded and the
// patch verified against its own checksum. The action stream is kept as-is
// for Apply().
func Parse(data []byte) (*Patch, error) {
	if len(data) < len(Signature)+3+footerSize {
		// the smallest possible patch is the signature, one group for each of
		// the three header numbers and the checksum region
		return nil, curated.Errorf(TruncatedPatch, len(data))
	}

	if string(data[:len(Signature)]) != Signature {
		return nil, curated.Errorf(BadSignature)
	}

	p := &Patch{}

	body := data[:len(data)-footerSize]
	idx := len(Signature)

	var err error

	p.SourceSize, idx, err = vlq.Decode(body, idx)
	if err != nil {
		return nil, err
	}
	p.TargetSize, idx, err = vlq.Decode(body, idx)
	if err != nil {
		return nil, err
	}

	var metadataSize uint64
	metadataSize, idx, err = vlq.Decode(body, idx)
	if err != nil {
		return nil, err
	}
	if metadataSize > uint64(len(body)-idx) {
		return nil, curated.Errorf(TruncatedPatch, len(data))
	}
	p.metadata = append([]byte(nil), body[idx:idx+int(metadataSize)]...)
	idx += int(metadataSize)

	p.actions = append([]byte(nil), body[idx:]...)

	p.CRCSource = binary.LittleEndian.Uint32(data[len(body):])
	p.CRCTarget = binary.LittleEndian.Uint32(data[len(body)+4:])
	p.CRCPatch = binary.LittleEndian.Uint32(data[len(body)+8:])

	if digest.CRC32(data[:len(data)-4]) != p.CRCPatch {
		return nil, curated.Errorf(PatchChecksum)
	}

	return p, nil
}

// Apply the patch to the source data, returning the target data. The source
// is verified against the length and checksum in the patch before any work is
// done; the target is verified against the patch checksum afterwards.
func (p *Patch) Apply(source []byte) ([]byte, error) {
	if uint64(len(source)) != p.SourceSize {
		return nil, curated.Errorf(SourceLength, len(source), p.SourceSize)
	}

	if c := digest.CRC32(source); c != p.CRCSource {
		return nil, curated.Errorf(SourceChecksum, c)
	}

	target := make([]byte, p.TargetSize)

	// output position, and the relative positions used by the two copy
	// actions. the copy positions advance as they are read from and are
	// adjusted by a signed offset at the start of every copy action
	var outputIdx int
	var sourceIdx int
	var targetIdx int

	idx := 0
	for idx < len(p.actions) {
		action := idx

		var v uint64
		var err error
		v, idx, err = vlq.Decode(p.actions, idx)
		if err != nil {
			return nil, err
		}

		length := int(v>>2) + 1
		if outputIdx+length > len(target) {
			return nil, curated.Errorf(MalformedAction, action)
		}

		switch v & 3 {
		case sourceRead:
			if outputIdx+length > len(source) {
				return nil, curated.Errorf(MalformedAction, action)
			}
			copy(target[outputIdx:], source[outputIdx:outputIdx+length])
			outputIdx += length

		case targetRead:
			if idx+length > len(p.actions) {
				return nil, curated.Errorf(MalformedAction, action)
			}
			copy(target[outputIdx:], p.actions[idx:idx+length])
			outputIdx += length
			idx += length

		case sourceCopy:
			v, idx, err = vlq.Decode(p.actions, idx)
			if err != nil {
				return nil, err
			}
			sourceIdx += relative(v)
			if sourceIdx < 0 || sourceIdx+length > len(source) {
				return nil, curated.Errorf(MalformedAction, action)
			}
			copy(target[outputIdx:], source[sourceIdx:sourceIdx+length])
			outputIdx += length
			sourceIdx += length

		case targetCopy:
			v, idx, err = vlq.Decode(p.actions, idx)
			if err != nil {
				return nil, err
			}
			targetIdx += relative(v)
			if targetIdx < 0 || targetIdx >= outputIdx {
				return nil, curated.Errorf(MalformedAction, action)
			}

			// copied byte-by-byte because the run being read is allowed to
			// overlap the bytes being written. this is how the format
			// expresses run length encoding
			for i := 0; i < length; i++ {
				target[outputIdx] = target[targetIdx]
				outputIdx++
				targetIdx++
			}
		}
	}

	if c := digest.CRC32(target); c != p.CRCTarget {
		return nil, curated.Errorf(TargetChecksum, c)
	}

	return target, nil
}

// relative converts the number of a copy action into a signed offset. the
// sign lives in the low bit.
func relative(v uint64) int {
	offset := int(v >> 1)
	if v&1 != 0 {
		return -offset
	}
	return offset
}
