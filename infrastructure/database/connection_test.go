package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryConnection(t *testing.T) *Connection {
	t.Helper()

	conn, err := NewConnection(context.Background(), DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	_, err = conn.Exec(context.Background(), "CREATE TABLE items (name TEXT NOT NULL)")
	require.NoError(t, err)

	return conn
}

func countItems(t *testing.T, conn *Connection) int {
	t.Helper()

	var count int
	require.NoError(t, conn.QueryRow(context.Background(), "SELECT COUNT(*) FROM items").Scan(&count))
	return count
}

func TestNewConnection_UnsupportedDriver(t *testing.T) {
	_, err := NewConnection(context.Background(), "mongo", "")
	assert.ErrorContains(t, err, "driver não suportado")
}

func TestConnection_Driver(t *testing.T) {
	conn := newMemoryConnection(t)
	assert.Equal(t, DriverSQLite, conn.Driver())
	assert.NoError(t, conn.Ping(context.Background()))
}

func TestConnection_RunInTransaction(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		fn            func(tx *sql.Tx) error
		expectedErr   bool
		expectedCount int
	}{
		{
			name: "Commit quando a função não falha",
			fn: func(tx *sql.Tx) error {
				_, err := tx.ExecContext(ctx, "INSERT INTO items (name) VALUES ('a'), ('b')")
				return err
			},
			expectedCount: 2,
		},
		{
			name: "Rollback quando a função falha",
			fn: func(tx *sql.Tx) error {
				if _, err := tx.ExecContext(ctx, "INSERT INTO items (name) VALUES ('a')"); err != nil {
					return err
				}
				return errors.New("falha proposital")
			},
			expectedErr:   true,
			expectedCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := newMemoryConnection(t)

			err := conn.RunInTransaction(ctx, tt.fn)
			if tt.expectedErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedCount, countItems(t, conn))
		})
	}
}
