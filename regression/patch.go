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

package regression

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/patch2600/curated"
	"github.com/jetsetilly/patch2600/database"
	"github.com/jetsetilly/patch2600/digest"
	"github.com/jetsetilly/patch2600/patch"
	"github.com/jetsetilly/patch2600/romloader"
)

const patchEntryID = "patch"

const (
	patchFieldRomFile int = iota
	patchFieldPatchFile
	patchFieldDigest
	patchFieldNotes
	numPatchFields
)

// PatchRegression records a ROM and a patch that is known to apply to it
// cleanly, along with the digest of the expected output.
type PatchRegression struct {
	RomFile   string
	PatchFile string
	Notes     string

	// sha1 digest of the patched output. recorded when the entry is added to
	// the database
	Digest string
}

func deserialisePatchEntry(fields database.SerialisedEntry) (database.Entry, error) {
	if len(fields) != numPatchFields {
		return nil, curated.Errorf("patch: wrong number of fields in database entry")
	}

	reg := &PatchRegression{
		RomFile:   fields[patchFieldRomFile],
		PatchFile: fields[patchFieldPatchFile],
		Digest:    fields[patchFieldDigest],
		Notes:     fields[patchFieldNotes],
	}

	return reg, nil
}

// ID implements the database.Entry interface.
func (reg PatchRegression) ID() string {
	return patchEntryID
}

// String implements the database.Entry interface.
func (reg PatchRegression) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("[%s] %s %s", reg.ID(), reg.RomFile, reg.PatchFile))
	if reg.Notes != "" {
		s.WriteString(fmt.Sprintf(" [%s]", reg.Notes))
	}
	return s.String()
}

// Serialise implements the database.Entry interface.
func (reg *PatchRegression) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{
		reg.RomFile,
		reg.PatchFile,
		reg.Digest,
		reg.Notes,
	}, nil
}

// CleanUp implements the database.Entry interface. There are no additional
// files associated with a patch entry.
func (reg PatchRegression) CleanUp() error {
	return nil
}

// regress implements the Regressor interface.
func (reg *PatchRegression) regress(newRegression bool) (bool, error) {
	rom := romloader.NewLoader(reg.RomFile)
	if err := rom.Load(); err != nil {
		return false, err
	}

	ptc := romloader.NewLoader(reg.PatchFile)
	if err := ptc.Load(); err != nil {
		return false, err
	}

	app, err := patch.NewApplier(ptc.Data)
	if err != nil {
		return false, err
	}

	output, err := app.Apply(rom.Data)
	if err != nil {
		return false, err
	}

	d := digest.SHA1(output)

	if newRegression {
		reg.Digest = d
		return true, nil
	}

	return d == reg.Digest, nil
}
