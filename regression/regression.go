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
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jetsetilly/patch2600/curated"
	"github.com/jetsetilly/patch2600/database"
)

// the location of the regression database
const regressionDir = ".patch2600"
const regressionDBFile = "regressionDB"

// Regressor represents the generic entry in the regression database.
type Regressor interface {
	database.Entry

	// perform the regression test. the newRegression flag indicates that the
	// entry is being added to the database and that the expected results
	// should be recorded rather than compared
	regress(newRegression bool) (bool, error)
}

// when starting a database session we need to register what entries we will
// find in the database.
func initDBSession(db *database.Session) error {
	return db.RegisterEntryType(patchEntryID, deserialisePatchEntry)
}

func dbPath() (string, error) {
	if err := os.MkdirAll(regressionDir, 0755); err != nil {
		return "", curated.Errorf("regression: %v", err)
	}
	return filepath.Join(regressionDir, regressionDBFile), nil
}

// RegressList displays all entries in the database.
func RegressList(output io.Writer) error {
	p, err := dbPath()
	if err != nil {
		return err
	}

	db, err := database.StartSession(p, database.ActivityReading, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	return db.List(output)
}

// RegressAdd adds a new regression entry to the database. The regression is
// run before the entry is added, recording the expected results.
func RegressAdd(output io.Writer, reg Regressor) error {
	p, err := dbPath()
	if err != nil {
		return err
	}

	db, err := database.StartSession(p, database.ActivityCreating, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(true)

	ok, err := reg.regress(true)
	if !ok || err != nil {
		return err
	}

	output.Write([]byte(fmt.Sprintf("added: %s\n", reg)))

	return db.Add(reg)
}

// RegressDelete removes an entry from the regression database. The deletion
// must be confirmed through the confirmation reader, unless the reader
// always answers yes (see the yes flag of the REGRESS DELETE mode).
func RegressDelete(output io.Writer, confirmation io.Reader, key string) error {
	v, err := strconv.Atoi(key)
	if err != nil {
		return curated.Errorf("regression: invalid key (%s)", key)
	}

	p, err := dbPath()
	if err != nil {
		return err
	}

	db, err := database.StartSession(p, database.ActivityModifying, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(true)

	ent, err := db.Get(v)
	if err != nil {
		return err
	}

	output.Write([]byte(fmt.Sprintf("%s\ndelete? (y/n): ", ent)))

	confirm := make([]byte, 32)
	_, err = confirmation.Read(confirm)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}

	if confirm[0] == 'y' || confirm[0] == 'Y' {
		err = db.Delete(v)
		if err != nil {
			return err
		}
		output.Write([]byte(fmt.Sprintf("deleted test #%s from regression database\n", key)))
	}

	return nil
}

// RegressRun runs the tests in the regression database. An empty filterKeys
// list means every entry is tested.
func RegressRun(output io.Writer, verbose bool, filterKeys []string) error {
	p, err := dbPath()
	if err != nil {
		return err
	}

	db, err := database.StartSession(p, database.ActivityReading, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	// convert filter keys to ints
	keysV := make([]int, 0, len(filterKeys))
	for _, k := range filterKeys {
		v, err := strconv.Atoi(k)
		if err != nil {
			return curated.Errorf("regression: invalid key (%s)", k)
		}
		keysV = append(keysV, v)
	}

	numSucceed := 0
	numFail := 0
	numError := 0

	defer func() {
		output.Write([]byte(fmt.Sprintf("regression tests: %d succeed, %d fail", numSucceed, numFail)))
		if numError > 0 {
			output.Write([]byte(" [with errors]"))
		}
		output.Write([]byte("\n"))
	}()

	onSelect := func(key int, ent database.Entry) error {
		// database entry should also satisfy Regressor interface
		reg, ok := ent.(Regressor)
		if !ok {
			return curated.Errorf("regression: database entry does not satisfy Regressor interface")
		}

		ok, err := reg.regress(false)

		if err != nil {
			numError++
			output.Write([]byte(fmt.Sprintf("  ERROR: %03d %s\n", key, reg)))
			if verbose {
				output.Write([]byte(fmt.Sprintf("    %s\n", err)))
			}
		} else if !ok {
			numFail++
			output.Write([]byte(fmt.Sprintf("failure: %03d %s\n", key, reg)))
		} else {
			numSucceed++
			output.Write([]byte(fmt.Sprintf("succeed: %03d %s\n", key, reg)))
		}

		return nil
	}

	if len(keysV) > 0 {
		_, err = db.SelectKeys(onSelect, keysV...)
	} else {
		_, err = db.SelectAll(onSelect)
	}

	return err
}
