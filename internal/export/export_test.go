package export

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/bookshop/pkg/types"
)

func TestNew(t *testing.T) {
	dir := t.TempDir()

	t.Run("json backend", func(t *testing.T) {
		exp, err := New(types.Config{Backend: types.BackendJSON, DataDir: dir}, zerolog.Nop())
		require.NoError(t, err)
		assert.IsType(t, &JSONFile{}, exp)
	})

	t.Run("sqlite backend", func(t *testing.T) {
		exp, err := New(types.Config{Backend: types.BackendSQLite, DataDir: dir}, zerolog.Nop())
		require.NoError(t, err)
		assert.IsType(t, &SQLite{}, exp)
	})

	t.Run("empty data dir defaults to working directory", func(t *testing.T) {
		exp, err := New(types.Config{Backend: types.BackendJSON}, zerolog.Nop())
		require.NoError(t, err)
		assert.Equal(t, JSONFileName, exp.(*JSONFile).Path())
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, err := New(types.Config{Backend: "postgres", DataDir: dir}, zerolog.Nop())
		assert.ErrorIs(t, err, types.ErrBackendUnknown)
	})

	t.Run("empty backend", func(t *testing.T) {
		_, err := New(types.Config{DataDir: dir}, zerolog.Nop())
		assert.ErrorIs(t, err, types.ErrBackendEmpty)
	})
}
