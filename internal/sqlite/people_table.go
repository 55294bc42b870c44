package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/roster/pkg/types"
)

var _ types.Table = (*peopleTable)(nil)

// peopleTable stores types.Person records.
type peopleTable struct {
	backend *Backend
}

const selectPeople = "SELECT person_id, name, age, hobby, nick_name FROM people"

// Get retrieves a person by ID.
// Returns ErrInvalidID if id is empty, ErrNotFound if not found.
func (pt *peopleTable) Get(id string) (any, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	pt.backend.mu.RLock()
	defer pt.backend.mu.RUnlock()
	if !pt.backend.attached {
		return nil, types.ErrCupboardDetached
	}

	var p types.Person
	err := pt.backend.db.QueryRow(selectPeople+" WHERE person_id = ?", id).
		Scan(&p.PersonID, &p.Name, &p.Age, &p.Hobby, &p.NickName)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting person %s: %w", id, err)
	}
	return &p, nil
}

// Set creates or updates a person. data must be a *types.Person with a
// non-empty name and a non-negative age. When both id and PersonID are empty
// a UUID v7 is generated. The ID is written back to the record only after the
// write succeeds.
func (pt *peopleTable) Set(id string, data any) (string, error) {
	p, ok := data.(*types.Person)
	if !ok || p == nil {
		return "", types.ErrInvalidData
	}
	if p.Name == "" {
		return "", types.ErrInvalidName
	}
	if p.Age < 0 {
		return "", types.ErrInvalidAge
	}

	pt.backend.mu.Lock()
	defer pt.backend.mu.Unlock()
	if !pt.backend.attached {
		return "", types.ErrCupboardDetached
	}

	newID := id
	switch {
	case newID == "" && p.PersonID != "":
		newID = p.PersonID
	case newID == "":
		newID = generateUUID()
	}

	_, err := pt.backend.db.Exec(`
		INSERT INTO people (person_id, name, age, hobby, nick_name)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(person_id) DO UPDATE SET
			name = excluded.name,
			age = excluded.age,
			hobby = excluded.hobby,
			nick_name = excluded.nick_name`,
		newID, p.Name, p.Age, p.Hobby, p.NickName)
	if err != nil {
		return "", fmt.Errorf("upserting person: %w", err)
	}

	if err := pt.backend.persist(types.TablePeople); err != nil {
		return "", err
	}
	p.PersonID = newID
	return newID, nil
}

// Delete removes a person by ID.
// Returns ErrInvalidID if id is empty, ErrNotFound if not found.
func (pt *peopleTable) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	pt.backend.mu.Lock()
	defer pt.backend.mu.Unlock()
	if !pt.backend.attached {
		return types.ErrCupboardDetached
	}

	res, err := pt.backend.db.Exec("DELETE FROM people WHERE person_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting person %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("deleting person %s: %w", id, err)
	} else if n == 0 {
		return types.ErrNotFound
	}

	return pt.backend.persist(types.TablePeople)
}

// Fetch returns people matching the filter, ordered by name then ID.
// Accepted keys: name, hobby, min_age, max_age.
func (pt *peopleTable) Fetch(filter map[string]any) ([]any, error) {
	where, args, err := buildWhere(filter,
		types.FilterName, types.FilterHobby, types.FilterMinAge, types.FilterMaxAge)
	if err != nil {
		return nil, err
	}

	pt.backend.mu.RLock()
	defer pt.backend.mu.RUnlock()
	if !pt.backend.attached {
		return nil, types.ErrCupboardDetached
	}

	rows, err := pt.backend.db.Query(selectPeople+where+" ORDER BY name, person_id", args...)
	if err != nil {
		return nil, fmt.Errorf("fetching people: %w", err)
	}
	defer rows.Close()

	results := []any{}
	for rows.Next() {
		var p types.Person
		if err := rows.Scan(&p.PersonID, &p.Name, &p.Age, &p.Hobby, &p.NickName); err != nil {
			return nil, fmt.Errorf("scanning person: %w", err)
		}
		results = append(results, &p)
	}
	return results, rows.Err()
}
