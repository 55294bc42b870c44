package sqlite

import (
	"database/sql"
	"fmt"
)

// Schema DDL for all tables.
const (
	createPeople = `CREATE TABLE people (
    person_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    age INTEGER NOT NULL,
    hobby TEXT NOT NULL,
    nick_name TEXT NOT NULL
);`

	createSimplePeople = `CREATE TABLE simple_people (
    simple_person_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    age INTEGER NOT NULL
);`

	createSettings = `CREATE TABLE settings (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);`
)

// Index DDL for common queries.
const (
	idxPeopleName       = `CREATE INDEX idx_people_name ON people(name);`
	idxPeopleAge        = `CREATE INDEX idx_people_age ON people(age);`
	idxSimplePeopleName = `CREATE INDEX idx_simple_people_name ON simple_people(name);`
)

var schemaDDL = []string{
	createPeople,
	createSimplePeople,
	createSettings,
}

var indexDDL = []string{
	idxPeopleName,
	idxPeopleAge,
	idxSimplePeopleName,
}

// applySchema creates every table and index on a fresh database.
func applySchema(db *sql.DB) error {
	for _, stmt := range schemaDDL {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	for _, stmt := range indexDDL {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}
	return nil
}
