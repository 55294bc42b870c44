package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/roster/pkg/types"
)

func TestBuildWhere(t *testing.T) {
	all := []string{types.FilterName, types.FilterHobby, types.FilterMinAge, types.FilterMaxAge}

	tests := []struct {
		name      string
		filter    map[string]any
		wantWhere string
		wantArgs  []any
		wantErr   error
	}{
		{name: "empty filter", filter: map[string]any{}},
		{
			name:      "keys applied in sorted order",
			filter:    map[string]any{types.FilterName: "Alice", types.FilterMaxAge: 40, types.FilterHobby: "chess"},
			wantWhere: " WHERE hobby = ? AND age <= ? AND name = ?",
			wantArgs:  []any{"chess", int64(40), "Alice"},
		},
		{name: "unknown key", filter: map[string]any{"color": "red"}, wantErr: types.ErrInvalidFilter},
		{name: "name must be string", filter: map[string]any{types.FilterName: 7}, wantErr: types.ErrInvalidFilter},
		{name: "age must be integer", filter: map[string]any{types.FilterMinAge: "10"}, wantErr: types.ErrInvalidFilter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args, err := buildWhere(tt.filter, all...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
