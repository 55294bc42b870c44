package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/roster/pkg/types"
)

var _ types.Table = (*simplePeopleTable)(nil)

// simplePeopleTable stores types.SimplePerson records.
type simplePeopleTable struct {
	backend *Backend
}

const selectSimplePeople = "SELECT simple_person_id, name, age FROM simple_people"

func (st *simplePeopleTable) Get(id string) (any, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	st.backend.mu.RLock()
	defer st.backend.mu.RUnlock()
	if !st.backend.attached {
		return nil, types.ErrCupboardDetached
	}

	var s types.SimplePerson
	err := st.backend.db.QueryRow(selectSimplePeople+" WHERE simple_person_id = ?", id).
		Scan(&s.SimplePersonID, &s.Name, &s.Age)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting simple person %s: %w", id, err)
	}
	return &s, nil
}

func (st *simplePeopleTable) Set(id string, data any) (string, error) {
	s, ok := data.(*types.SimplePerson)
	if !ok || s == nil {
		return "", types.ErrInvalidData
	}
	if s.Name == "" {
		return "", types.ErrInvalidName
	}
	if s.Age < 0 {
		return "", types.ErrInvalidAge
	}

	st.backend.mu.Lock()
	defer st.backend.mu.Unlock()
	if !st.backend.attached {
		return "", types.ErrCupboardDetached
	}

	newID := id
	switch {
	case newID == "" && s.SimplePersonID != "":
		newID = s.SimplePersonID
	case newID == "":
		newID = generateUUID()
	}

	_, err := st.backend.db.Exec(`
		INSERT INTO simple_people (simple_person_id, name, age)
		VALUES (?, ?, ?)
		ON CONFLICT(simple_person_id) DO UPDATE SET
			name = excluded.name,
			age = excluded.age`,
		newID, s.Name, s.Age)
	if err != nil {
		return "", fmt.Errorf("upserting simple person: %w", err)
	}

	if err := st.backend.persist(types.TableSimplePeople); err != nil {
		return "", err
	}
	s.SimplePersonID = newID
	return newID, nil
}

func (st *simplePeopleTable) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	st.backend.mu.Lock()
	defer st.backend.mu.Unlock()
	if !st.backend.attached {
		return types.ErrCupboardDetached
	}

	res, err := st.backend.db.Exec("DELETE FROM simple_people WHERE simple_person_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting simple person %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("deleting simple person %s: %w", id, err)
	} else if n == 0 {
		return types.ErrNotFound
	}

	return st.backend.persist(types.TableSimplePeople)
}

// Fetch accepts name, min_age, and max_age filters.
func (st *simplePeopleTable) Fetch(filter map[string]any) ([]any, error) {
	where, args, err := buildWhere(filter,
		types.FilterName, types.FilterMinAge, types.FilterMaxAge)
	if err != nil {
		return nil, err
	}

	st.backend.mu.RLock()
	defer st.backend.mu.RUnlock()
	if !st.backend.attached {
		return nil, types.ErrCupboardDetached
	}

	rows, err := st.backend.db.Query(selectSimplePeople+where+" ORDER BY name, simple_person_id", args...)
	if err != nil {
		return nil, fmt.Errorf("fetching simple people: %w", err)
	}
	defer rows.Close()

	results := []any{}
	for rows.Next() {
		var s types.SimplePerson
		if err := rows.Scan(&s.SimplePersonID, &s.Name, &s.Age); err != nil {
			return nil, fmt.Errorf("scanning simple person: %w", err)
		}
		results = append(results, &s)
	}
	return results, rows.Err()
}
