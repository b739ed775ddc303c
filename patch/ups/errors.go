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

import "github.com/jetsetilly/patch2600/patch/vlq"

// error patterns for the ups package. to be used in conjunction with the
// curated package
const (
	// the patch data does not begin with the "UPS1" signature
	BadSignature = "ups: not a UPS patch file"

	// the patch data ends before the structure of the patch says it should
	TruncatedPatch = "ups: patch truncated (%d bytes is too few)"

	// an xor run is empty or reaches the checksum region without a
	// terminating zero byte
	MalformedBlock = "ups: malformed xor run (block %d)"

	// a size or gap number is missing its final group. the pattern is defined
	// by the vlq package and errors of this type originate there
	MalformedVarInt = vlq.Unterminated

	// the stored patch checksum does not match the patch data
	PatchChecksum = "ups: patch file fails its own checksum"

	// the file the patch is being applied to matches neither of the file
	// checksums stored in the patch
	ChecksumMismatch = "ups: file does not match the patch (crc32 %08x)"

	// the reconstructed file does not match the checksum stored in the patch.
	// unlike the other errors the result is still returned to the caller
	// alongside the error
	OutputVerificationFailed = "ups: output fails verification (crc32 %08x, expected %08x)"
)
