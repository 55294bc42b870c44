package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mesh-intelligence/roster/internal/paths"
	"github.com/mesh-intelligence/roster/internal/sqlite"
	"github.com/mesh-intelligence/roster/pkg/types"
)

// validTableNamesStr is a comma-separated list of valid table names for error output.
var validTableNamesStr = strings.Join(types.StandardTableNames, ", ")

// attachBackend resolves the data directory, creates a SQLite backend, and
// attaches it. The caller must defer backend.Detach().
func (a *app) attachBackend() (*sqlite.Backend, error) {
	dataDir, err := paths.ResolveDataDir(a.flags.dataDir, a.config.GetString(cfgKeyDataDir))
	if err != nil {
		return nil, sysError(fmt.Errorf("resolve data dir: %w", err))
	}

	backend := sqlite.NewBackend(sqlite.WithLogger(a.logger))
	if err := backend.Attach(cupboardConfig(a.config, dataDir)); err != nil {
		if isConfigError(err) {
			return nil, userError(fmt.Errorf("attach backend: %w", err))
		}
		return nil, sysError(fmt.Errorf("attach backend: %w", err))
	}
	return backend, nil
}

// table returns the named table, mapping ErrTableNotFound to a user error.
func table(backend *sqlite.Backend, name string) (types.Table, error) {
	tbl, err := backend.GetTable(name)
	if errors.Is(err, types.ErrTableNotFound) {
		return nil, userError(fmt.Errorf("unknown table %q (valid: %s)", name, validTableNamesStr))
	}
	if err != nil {
		return nil, sysError(fmt.Errorf("get table: %w", err))
	}
	return tbl, nil
}

// parseEntityJSON unmarshals JSON data into the entity struct for tableName.
func parseEntityJSON(tableName string, data []byte) (any, error) {
	var entity any
	switch tableName {
	case types.TablePeople:
		entity = &types.Person{}
	case types.TableSimplePeople:
		entity = &types.SimplePerson{}
	case types.TableSettings:
		entity = &types.Setting{}
	default:
		return nil, fmt.Errorf("unknown table %q", tableName)
	}
	if err := json.Unmarshal(data, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return sysError(fmt.Errorf("marshal JSON: %w", err))
	}
	fmt.Fprintln(w, string(out))
	return nil
}

// entityError classifies a table operation error: validation and lookup
// failures are user errors, everything else is a system error.
func entityError(op string, err error) error {
	wrapped := fmt.Errorf("%s: %w", op, err)
	for _, target := range []error{
		types.ErrNotFound,
		types.ErrInvalidID,
		types.ErrInvalidData,
		types.ErrInvalidName,
		types.ErrInvalidAge,
		types.ErrInvalidFilter,
	} {
		if errors.Is(err, target) {
			return userError(wrapped)
		}
	}
	return sysError(wrapped)
}

func isConfigError(err error) bool {
	for _, target := range []error{
		types.ErrBackendEmpty,
		types.ErrBackendUnknown,
		types.ErrSyncStrategyUnknown,
		types.ErrBatchSizeInvalid,
		types.ErrBatchIntervalInvalid,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
