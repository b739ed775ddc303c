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

package romloader_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/patch2600/romloader"
	"github.com/jetsetilly/patch2600/test"
)

func TestShortName(t *testing.T) {
	test.ExpectEquality(t, romloader.NewLoader("roms/Pitfall.bin").ShortName(), "Pitfall")
	test.ExpectEquality(t, romloader.NewLoader("Pitfall").ShortName(), "Pitfall")
	test.ExpectEquality(t, romloader.NewLoader("a/b/c.hack.ups").ShortName(), "c.hack")
}

func TestLoadAndSave(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.bin")
	data := []byte("ABCD")

	err := romloader.Save(fn, data)
	test.DemandSuccess(t, err)

	ld := romloader.NewLoader(fn)
	test.ExpectSuccess(t, !ld.HasLoaded())

	err = ld.Load()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, ld.HasLoaded())
	test.ExpectSuccess(t, bytes.Equal(ld.Data, data))

	// hash of the loaded data has been filled in
	test.ExpectEquality(t, ld.Hash, "fb2f85c88567f3c8ce9b799c7c54642d0c7b41f6")
}

func TestHashValidation(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.bin")
	err := os.WriteFile(fn, []byte("ABCD"), 0644)
	test.DemandSuccess(t, err)

	// a preset hash that does not match the data refuses to load
	ld := romloader.NewLoader(fn)
	ld.Hash = "0000000000000000000000000000000000000000"
	test.ExpectFailure(t, ld.Load())

	// the correct preset hash is fine
	ld = romloader.NewLoader(fn)
	ld.Hash = "fb2f85c88567f3c8ce9b799c7c54642d0c7b41f6"
	test.ExpectSuccess(t, ld.Load())
}
