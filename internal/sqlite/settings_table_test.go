package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/roster/pkg/types"
)

func TestSettingsTableNicknameUpdatesSharedValue(t *testing.T) {
	b, dir := attachTestBackend(t, types.SQLiteConfig{})
	settings := mustTable(t, b, types.TableSettings)

	key, err := settings.Set("", &types.Setting{Key: types.SettingNickname, Value: "Ace"})
	require.NoError(t, err)
	assert.Equal(t, types.SettingNickname, key)
	assert.Equal(t, "Ace", types.SharedNickname())

	p := types.NewPerson("Alice", 30, "chess")
	assert.Equal(t, "Ace", p.SharedNickname())

	got, err := settings.Get(types.SettingNickname)
	require.NoError(t, err)
	assert.Equal(t, "Ace", got.(*types.Setting).Value)
	assert.Equal(t, []string{`{"key":"nickname","value":"Ace"}`}, jsonlLines(t, dir, types.TableSettings))

	require.NoError(t, settings.Delete(types.SettingNickname))
	assert.Empty(t, types.SharedNickname())
}

func TestSettingsTableOtherKeys(t *testing.T) {
	b, _ := attachTestBackend(t, types.SQLiteConfig{})
	settings := mustTable(t, b, types.TableSettings)

	_, err := settings.Set("theme", &types.Setting{Value: "dark"})
	require.NoError(t, err)
	assert.Empty(t, types.SharedNickname())

	_, err = settings.Set("", &types.Setting{Value: "orphan"})
	assert.ErrorIs(t, err, types.ErrInvalidID)

	_, err = settings.Set("theme", types.NewPerson("Alice", 30, "chess"))
	assert.ErrorIs(t, err, types.ErrInvalidData)

	all, err := settings.Fetch(nil)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, &types.Setting{Key: "theme", Value: "dark"}, all[0])

	_, err = settings.Fetch(map[string]any{types.FilterName: "theme"})
	assert.ErrorIs(t, err, types.ErrInvalidFilter)

	_, err = settings.Get("missing")
	assert.ErrorIs(t, err, types.ErrNotFound)
}
