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

package ips

import (
	"github.com/jetsetilly/patch2600/curated"
)

// Signature at the start of every IPS patch.
const Signature = "PATCH"

// the three byte offset value that marks the end of the record list. an
// unfortunate design, a genuine record at offset 0x454f46 cannot be
// represented
const eofMarker = 0x454f46

// error patterns for the ips package. to be used in conjunction with the
// curated package
const (
	// the patch data does not begin with the "PATCH" signature
	BadSignature = "ips: not an IPS patch file"

	// the patch data ends in the middle of a record
	TruncatedPatch = "ips: patch truncated (record %d)"
)

// record is a single IPS hunk: data written at an absolute offset in the
// target file.
type record struct {
	offset int

	// one of data or the RLE fields is used, never both. a zero size field in
	// the patch means the record is run length encoded
	data     []byte
	rleCount int
	rleValue byte
}

// Patch is the in-memory representation of an IPS patch. Instances are
// created with the Parse() function and are not changed by any operation on
// them.
//
// IPS records no checksums of any kind. Unlike the UPS and BPS formats there
// is no way of knowing whether the file being patched is the file the patch
// was made for.
type Patch struct {
	records []record

	// the extent of the furthest reaching record. the target file is extended
	// to at least this size
	extent int

	// target size from the optional truncation field following the EOF
	// marker. -1 when the field is absent
	truncate int
}

// NumRecords returns the number of records in the patch.
func (p *Patch) NumRecords() int {
	return len(p.records)
}

// TargetSize returns the size of the file the patch will produce when applied
// to a source file of the given size.
func (p *Patch) TargetSize(sourceSize int) int {
	if p.truncate >= 0 {
		return p.truncate
	}
	return max(sourceSize, p.extent)
}

// Parse a serialised IPS patch.
func Parse(data []byte) (*Patch, error) {
	if len(data) < len(Signature) || string(data[:len(Signature)]) != Signature {
		return nil, curated.Errorf(BadSignature)
	}

	p := &Patch{truncate: -1}
	idx := len(Signature)

	for {
		offset, ok := readUint24(data, idx)
		if !ok {
			return nil, curated.Errorf(TruncatedPatch, len(p.records))
		}
		idx += 3

		if offset == eofMarker {
			break
		}

		size, ok := readUint16(data, idx)
		if !ok {
			return nil, curated.Errorf(TruncatedPatch, len(p.records))
		}
		idx += 2

		r := record{offset: offset}

		if size == 0 {
			// run length encoded record
			count, ok := readUint16(data, idx)
			if !ok || idx+2 >= len(data) {
				return nil, curated.Errorf(TruncatedPatch, len(p.records))
			}
			r.rleCount = count
			r.rleValue = data[idx+2]
			idx += 3
			p.extent = max(p.extent, offset+count)
		} else {
			if idx+size > len(data) {
				return nil, curated.Errorf(TruncatedPatch, len(p.records))
			}
			r.data = append([]byte(nil), data[idx:idx+size]...)
			idx += size
			p.extent = max(p.extent, offset+size)
		}

		p.records = append(p.records, r)
	}

	// truncation length is an extension to the format and is optional
	if t, ok := readUint24(data, idx); ok {
		p.truncate = t
	}

	return p, nil
}

// Apply the patch to the source data, returning the target data. The source
// is not altered.
//
// No verification of any kind is performed, before or after. That is the
// nature of the IPS format.
func (p *Patch) Apply(source []byte) ([]byte, error) {
	target := make([]byte, max(len(source), p.extent))
	copy(target, source)

	for _, r := range p.records {
		if r.data == nil {
			for i := 0; i < r.rleCount; i++ {
				target[r.offset+i] = r.rleValue
			}
		} else {
			copy(target[r.offset:], r.data)
		}
	}

	if p.truncate >= 0 {
		if p.truncate < len(target) {
			target = target[:p.truncate]
		} else {
			t := make([]byte, p.truncate)
			copy(t, target)
			target = t
		}
	}

	return target, nil
}

// big endian numbers used by the IPS format. the boolean return value is
// false if the buffer is too short
func readUint24(data []byte, idx int) (int, bool) {
	if idx+3 > len(data) {
		return 0, false
	}
	return int(data[idx])<<16 | int(data[idx+1])<<8 | int(data[idx+2]), true
}

func readUint16(data []byte, idx int) (int, bool) {
	if idx+2 > len(data) {
		return 0, false
	}
	return int(data[idx])<<8 | int(data[idx+1]), true
}
