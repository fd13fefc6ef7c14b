package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenSQLiteCreatesTable(t *testing.T) {
	ctx := context.Background()
	h, err := Open(ctx, DriverSQLite, "file:connect_test?mode=memory&cache=shared")
	require.NoError(t, err)
	defer h.Close()

	var name string
	err = h.QueryRowContext(ctx, `SELECT name FROM sqlite_master WHERE type='table' AND name='resultados'`).Scan(&name)
	require.NoError(t, err)
	require.Equal(t, "resultados", name)

	// running it again must be harmless
	require.NoError(t, EnsureSchema(ctx, h, DriverSQLite))
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), Driver("oracle"), "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported driver")
}
