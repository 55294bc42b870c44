package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/roster/pkg/types"
)

func TestNewBackendRoundTrip(t *testing.T) {
	t.Cleanup(types.ResetSharedNickname)

	cupboard := NewBackend()
	require.NoError(t, cupboard.Attach(types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}))
	defer cupboard.Detach()

	people, err := cupboard.GetTable(types.TablePeople)
	require.NoError(t, err)

	id, err := people.Set("", types.NewPerson("Alice", 30, "chess"))
	require.NoError(t, err)

	got, err := people.Get(id)
	require.NoError(t, err)
	assert.Contains(t, got.(*types.Person).Describe(), "Alice")
}
