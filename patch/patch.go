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

package patch

import (
	"strings"

	"github.com/jetsetilly/patch2600/curated"
	"github.com/jetsetilly/patch2600/logger"
	"github.com/jetsetilly/patch2600/patch/bps"
	"github.com/jetsetilly/patch2600/patch/ips"
	"github.com/jetsetilly/patch2600/patch/ups"
)

// UnrecognisedFormat is returned by NewApplier() when the patch data begins
// with none of the known signatures.
const UnrecognisedFormat = "patch: unrecognised patch format"

// Applier is the interface to a parsed patch of any supported format.
type Applier interface {
	// Apply the patch to the supplied file data, returning the patched data.
	// The supplied data is never altered
	Apply(data []byte) ([]byte, error)
}

// Format of a patch file.
type Format string

// List of valid Format values.
const (
	FormatUPS     Format = "UPS"
	FormatIPS     Format = "IPS"
	FormatBPS     Format = "BPS"
	FormatUnknown Format = "unknown"
)

// Fingerprint the format of the patch data. Formats are identified by the
// signature bytes at the start of the data.
func Fingerprint(data []byte) Format {
	s := string(data[:min(len(data), 8)])
	switch {
	case strings.HasPrefix(s, ups.Signature):
		return FormatUPS
	case strings.HasPrefix(s, ips.Signature):
		return FormatIPS
	case strings.HasPrefix(s, bps.Signature):
		return FormatBPS
	}
	return FormatUnknown
}

// NewApplier parses the patch data, fingerprinting the format automatically.
func NewApplier(data []byte) (Applier, error) {
	switch Fingerprint(data) {
	case FormatUPS:
		p, err := ups.Parse(data)
		if err != nil {
			return nil, err
		}
		return upsApplier{p: p}, nil

	case FormatIPS:
		return ips.Parse(data)

	case FormatBPS:
		return bps.Parse(data)
	}

	return nil, curated.Errorf(UnrecognisedFormat)
}

// upsApplier folds the automatic direction selection of the ups package into
// the Applier interface. The chosen direction is noted in the central log.
type upsApplier struct {
	p *ups.Patch
}

// Apply implements the Applier interface.
func (u upsApplier) Apply(data []byte) ([]byte, error) {
	output, direction, err := u.p.Apply(data)
	if err == nil {
		logger.Logf(logger.Allow, "patch", "ups patch applied in %s direction", direction)
	}
	return output, err
}
