package sqlite

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/roster/pkg/types"
)

// attachTestBackend attaches a backend to a fresh temp directory using the
// given sync settings and detaches it when the test ends.
func attachTestBackend(t *testing.T, sc types.SQLiteConfig) (*Backend, string) {
	t.Helper()
	dir := t.TempDir()
	b := NewBackend()
	require.NoError(t, b.Attach(types.Config{
		Backend:      types.BackendSQLite,
		DataDir:      dir,
		SQLiteConfig: sc,
	}))
	t.Cleanup(func() {
		_ = b.Detach()
		types.ResetSharedNickname()
	})
	return b, dir
}

// mustTable returns the named table or fails the test.
func mustTable(t *testing.T, b *Backend, name string) types.Table {
	t.Helper()
	tbl, err := b.GetTable(name)
	require.NoError(t, err)
	return tbl
}

// jsonlLines returns the non-empty lines of a table's JSONL file.
func jsonlLines(t *testing.T, dir, tableName string) []string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, jsonlFileName(tableName)))
	require.NoError(t, err)
	var lines []string
	for _, l := range strings.Split(string(data), "\n") {
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
