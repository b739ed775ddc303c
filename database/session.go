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

package database

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/patch2600/curated"
)

// Activity describes the type of activity that will be performed during the
// database session.
type Activity int

// List of valid Activity values.
const (
	ActivityReading Activity = iota
	ActivityModifying
	ActivityCreating
)

// Session represents a database connection.
type Session struct {
	dbfile   string
	activity Activity

	entries    map[int]Entry
	entryTypes map[string]Deserialiser
}

// StartSession starts/initialises a database session. The init function is
// used to register the entry types that the database may contain, with the
// RegisterEntryType() function.
func StartSession(dbfile string, activity Activity, init func(*Session) error) (*Session, error) {
	db := &Session{
		dbfile:     dbfile,
		activity:   activity,
		entries:    make(map[int]Entry),
		entryTypes: make(map[string]Deserialiser),
	}

	if err := init(db); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(dbfile)
	if err != nil {
		if activity == ActivityCreating && os.IsNotExist(err) {
			// a database that doesn't exist yet is fine when creating
			return db, nil
		}
		return nil, curated.Errorf("database: %v", err)
	}

	for i, line := range strings.Split(string(data), entrySep) {
		if line == "" {
			continue
		}

		fields := strings.Split(line, fieldSep)
		if len(fields) < 2 {
			return nil, curated.Errorf("database: malformed entry (line %d)", i+1)
		}

		key, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, curated.Errorf("database: invalid key (line %d)", i+1)
		}

		des, ok := db.entryTypes[fields[1]]
		if !ok {
			return nil, curated.Errorf("database: unrecognised entry type (%s)", fields[1])
		}

		ent, err := des(fields[2:])
		if err != nil {
			return nil, curated.Errorf("database: %v", err)
		}

		db.entries[key] = ent
	}

	return db, nil
}

// EndSession closes the database, writing changes to disk if commit is true.
// Commit is not valid for sessions started with ActivityReading.
func (db *Session) EndSession(commit bool) error {
	if commit {
		if db.activity == ActivityReading {
			return curated.Errorf("database: cannot commit a read-only session")
		}

		s := strings.Builder{}

		for _, key := range db.SortedKeyList() {
			ent := db.entries[key]

			ser, err := ent.Serialise()
			if err != nil {
				return curated.Errorf("database: %v", err)
			}

			s.WriteString(fmt.Sprintf("%d%s%s", key, fieldSep, ent.ID()))
			for _, f := range ser {
				s.WriteString(fieldSep)
				s.WriteString(f)
			}
			s.WriteString(entrySep)
		}

		err := os.WriteFile(db.dbfile, []byte(s.String()), 0644)
		if err != nil {
			return curated.Errorf("database: %v", err)
		}
	}

	db.entries = nil
	db.entryTypes = nil

	return nil
}
