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

package database_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/patch2600/database"
	"github.com/jetsetilly/patch2600/test"
)

const testEntryID = "test"

type testEntry struct {
	name  string
	value string
}

func deserialiseTestEntry(fields database.SerialisedEntry) (database.Entry, error) {
	return &testEntry{name: fields[0], value: fields[1]}, nil
}

func (ent testEntry) ID() string {
	return testEntryID
}

func (ent testEntry) String() string {
	return ent.name
}

func (ent testEntry) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{ent.name, ent.value}, nil
}

func (ent testEntry) CleanUp() error {
	return nil
}

func initTestSession(db *database.Session) error {
	return db.RegisterEntryType(testEntryID, deserialiseTestEntry)
}

func TestSessionRoundTrip(t *testing.T) {
	dbfile := filepath.Join(t.TempDir(), "testDB")

	// create database with two entries
	db, err := database.StartSession(dbfile, database.ActivityCreating, initTestSession)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, db.Add(&testEntry{name: "first", value: "1"}))
	test.ExpectSuccess(t, db.Add(&testEntry{name: "second", value: "2"}))
	test.ExpectEquality(t, db.NumEntries(), 2)

	test.ExpectSuccess(t, db.EndSession(true))

	// reopen and check contents
	db, err = database.StartSession(dbfile, database.ActivityReading, initTestSession)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, db.NumEntries(), 2)

	ent, err := db.Get(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ent.String(), "first")

	// a read-only session cannot commit
	test.ExpectFailure(t, db.EndSession(true))
}

func TestSessionDelete(t *testing.T) {
	dbfile := filepath.Join(t.TempDir(), "testDB")

	db, err := database.StartSession(dbfile, database.ActivityCreating, initTestSession)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, db.Add(&testEntry{name: "first", value: "1"}))
	test.ExpectSuccess(t, db.Add(&testEntry{name: "second", value: "2"}))

	// delete of a missing key fails
	test.ExpectFailure(t, db.Delete(100))

	test.ExpectSuccess(t, db.Delete(0))
	test.ExpectEquality(t, db.NumEntries(), 1)

	test.ExpectSuccess(t, db.EndSession(true))

	// the freed key is reused on the next add
	db, err = database.StartSession(dbfile, database.ActivityModifying, initTestSession)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, db.Add(&testEntry{name: "third", value: "3"}))

	keys := db.SortedKeyList()
	test.ExpectEquality(t, len(keys), 2)
	test.ExpectEquality(t, keys[0], 0)
	test.ExpectEquality(t, keys[1], 1)

	test.ExpectSuccess(t, db.EndSession(true))
}

func TestSessionList(t *testing.T) {
	dbfile := filepath.Join(t.TempDir(), "testDB")

	db, err := database.StartSession(dbfile, database.ActivityCreating, initTestSession)
	test.DemandSuccess(t, err)

	s := &strings.Builder{}
	test.ExpectSuccess(t, db.List(s))
	test.ExpectEquality(t, s.String(), "database is empty\n")

	test.ExpectSuccess(t, db.Add(&testEntry{name: "first", value: "1"}))

	s.Reset()
	test.ExpectSuccess(t, db.List(s))
	test.ExpectEquality(t, s.String(), "000 first\nTotal: 1\n")

	test.ExpectSuccess(t, db.EndSession(false))
}
