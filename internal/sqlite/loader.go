package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/roster/pkg/types"
)

// jsonlTables lists the tables backed by a JSONL file, in load order.
var jsonlTables = []string{
	types.TablePeople,
	types.TableSimplePeople,
	types.TableSettings,
}

// initJSONLFiles creates an empty JSONL file for every table that lacks one.
func (b *Backend) initJSONLFiles() error {
	for _, name := range jsonlTables {
		path := filepath.Join(b.config.DataDir, jsonlFileName(name))
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("stat %s: %w", path, err)
		}
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
	}
	return nil
}

// loadAllJSONL loads every JSONL file into SQLite. Malformed lines and
// records that fail to decode or validate are skipped.
func (b *Backend) loadAllJSONL() error {
	for _, name := range jsonlTables {
		if err := b.loadTableJSONL(name); err != nil {
			return err
		}
	}
	return nil
}

func (b *Backend) loadTableJSONL(tableName string) error {
	path := filepath.Join(b.config.DataDir, jsonlFileName(tableName))
	records, skipped, err := readJSONL(path)
	if err != nil {
		return err
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning load of %s: %w", tableName, err)
	}
	defer tx.Rollback()

	loaded := 0
	for _, raw := range records {
		ok, err := insertRecord(tx, tableName, raw)
		if err != nil {
			return fmt.Errorf("loading %s: %w", tableName, err)
		}
		if !ok {
			skipped++
			continue
		}
		loaded++
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing load of %s: %w", tableName, err)
	}

	if skipped > 0 {
		b.logger.Warn("skipped JSONL records",
			zap.String("table", tableName),
			zap.Int("skipped", skipped))
	}
	b.logger.Debug("loaded JSONL",
		zap.String("table", tableName),
		zap.Int("records", loaded))
	return nil
}

// insertRecord decodes raw and inserts it into tableName. It reports false
// when the record is unusable and should be skipped. Later records with the
// same key replace earlier ones.
func insertRecord(tx *sql.Tx, tableName string, raw json.RawMessage) (bool, error) {
	switch tableName {
	case types.TablePeople:
		var r personJSON
		if err := json.Unmarshal(raw, &r); err != nil || r.PersonID == "" || r.Name == "" || r.Age < 0 {
			return false, nil
		}
		_, err := tx.Exec(
			"INSERT OR REPLACE INTO people (person_id, name, age, hobby, nick_name) VALUES (?, ?, ?, ?, ?)",
			r.PersonID, r.Name, r.Age, r.Hobby, r.NickName)
		return err == nil, err
	case types.TableSimplePeople:
		var r simplePersonJSON
		if err := json.Unmarshal(raw, &r); err != nil || r.SimplePersonID == "" || r.Name == "" || r.Age < 0 {
			return false, nil
		}
		_, err := tx.Exec(
			"INSERT OR REPLACE INTO simple_people (simple_person_id, name, age) VALUES (?, ?, ?)",
			r.SimplePersonID, r.Name, r.Age)
		return err == nil, err
	case types.TableSettings:
		var r settingJSON
		if err := json.Unmarshal(raw, &r); err != nil || r.Key == "" {
			return false, nil
		}
		_, err := tx.Exec(
			"INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)",
			r.Key, r.Value)
		return err == nil, err
	default:
		return false, types.ErrTableNotFound
	}
}

// persistTableJSONL rewrites the JSONL file for tableName from SQLite.
func (b *Backend) persistTableJSONL(tableName string) error {
	records, err := dumpTable(b.db, tableName)
	if err != nil {
		return fmt.Errorf("dumping %s: %w", tableName, err)
	}
	path := filepath.Join(b.config.DataDir, jsonlFileName(tableName))
	if err := writeJSONL(path, records); err != nil {
		return fmt.Errorf("persisting %s: %w", path, err)
	}
	return nil
}

// dumpTable reads every row of tableName as JSONL records in primary key order.
func dumpTable(db *sql.DB, tableName string) ([]json.RawMessage, error) {
	var query string
	switch tableName {
	case types.TablePeople:
		query = "SELECT person_id, name, age, hobby, nick_name FROM people ORDER BY person_id"
	case types.TableSimplePeople:
		query = "SELECT simple_person_id, name, age FROM simple_people ORDER BY simple_person_id"
	case types.TableSettings:
		query = "SELECT key, value FROM settings ORDER BY key"
	default:
		return nil, types.ErrTableNotFound
	}

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []json.RawMessage
	for rows.Next() {
		var rec any
		switch tableName {
		case types.TablePeople:
			var r personJSON
			if err := rows.Scan(&r.PersonID, &r.Name, &r.Age, &r.Hobby, &r.NickName); err != nil {
				return nil, err
			}
			rec = r
		case types.TableSimplePeople:
			var r simplePersonJSON
			if err := rows.Scan(&r.SimplePersonID, &r.Name, &r.Age); err != nil {
				return nil, err
			}
			rec = r
		case types.TableSettings:
			var r settingJSON
			if err := rows.Scan(&r.Key, &r.Value); err != nil {
				return nil, err
			}
			rec = r
		}
		data, err := json.Marshal(rec)
		if err != nil {
			return nil, err
		}
		records = append(records, data)
	}
	return records, rows.Err()
}
