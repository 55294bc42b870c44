package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/roster/pkg/types"
)

var _ types.Table = (*settingsTable)(nil)

// settingsTable stores types.Setting records keyed by Setting.Key.
// Writes to the nickname key also update the process-wide shared nickname.
type settingsTable struct {
	backend *Backend
}

func (st *settingsTable) Get(key string) (any, error) {
	if key == "" {
		return nil, types.ErrInvalidID
	}
	st.backend.mu.RLock()
	defer st.backend.mu.RUnlock()
	if !st.backend.attached {
		return nil, types.ErrCupboardDetached
	}

	s := types.Setting{Key: key}
	err := st.backend.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&s.Value)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting setting %s: %w", key, err)
	}
	return &s, nil
}

// Set stores a *types.Setting. The key is id when given, otherwise
// Setting.Key. Returns ErrInvalidID if both are empty.
func (st *settingsTable) Set(key string, data any) (string, error) {
	s, ok := data.(*types.Setting)
	if !ok || s == nil {
		return "", types.ErrInvalidData
	}
	if key == "" {
		key = s.Key
	}
	if key == "" {
		return "", types.ErrInvalidID
	}
	s.Key = key

	st.backend.mu.Lock()
	defer st.backend.mu.Unlock()
	if !st.backend.attached {
		return "", types.ErrCupboardDetached
	}

	_, err := st.backend.db.Exec(
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		s.Key, s.Value)
	if err != nil {
		return "", fmt.Errorf("upserting setting: %w", err)
	}
	if err := st.backend.persist(types.TableSettings); err != nil {
		return "", err
	}

	if s.Key == types.SettingNickname {
		types.SetSharedNickname(s.Value)
	}
	return s.Key, nil
}

func (st *settingsTable) Delete(key string) error {
	if key == "" {
		return types.ErrInvalidID
	}
	st.backend.mu.Lock()
	defer st.backend.mu.Unlock()
	if !st.backend.attached {
		return types.ErrCupboardDetached
	}

	res, err := st.backend.db.Exec("DELETE FROM settings WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("deleting setting %s: %w", key, err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("deleting setting %s: %w", key, err)
	} else if n == 0 {
		return types.ErrNotFound
	}
	if err := st.backend.persist(types.TableSettings); err != nil {
		return err
	}

	if key == types.SettingNickname {
		types.ResetSharedNickname()
	}
	return nil
}

// Fetch returns every setting ordered by key. Settings take no filter keys.
func (st *settingsTable) Fetch(filter map[string]any) ([]any, error) {
	if _, _, err := buildWhere(filter); err != nil {
		return nil, err
	}

	st.backend.mu.RLock()
	defer st.backend.mu.RUnlock()
	if !st.backend.attached {
		return nil, types.ErrCupboardDetached
	}

	rows, err := st.backend.db.Query("SELECT key, value FROM settings ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("fetching settings: %w", err)
	}
	defer rows.Close()

	results := []any{}
	for rows.Next() {
		var s types.Setting
		if err := rows.Scan(&s.Key, &s.Value); err != nil {
			return nil, fmt.Errorf("scanning setting: %w", err)
		}
		results = append(results, &s)
	}
	return results, rows.Err()
}
