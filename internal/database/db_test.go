package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestFakeDBDelegates(t *testing.T) {
	ctx := context.Background()
	f := &FakeDB{
		ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("UPDATE 1"), nil
		},
		QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
			return nil, errors.New("query")
		},
		QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
			return nil
		},
		BeginFn: func(_ context.Context) (pgx.Tx, error) {
			return nil, errors.New("begin")
		},
		PingFn: func(_ context.Context) error { return errors.New("ping") },
	}

	tag, err := f.Exec(ctx, "UPDATE")
	require.NoError(t, err)
	require.EqualValues(t, 1, tag.RowsAffected())

	_, err = f.Query(ctx, "SELECT")
	require.Error(t, err)

	require.Nil(t, f.QueryRow(ctx, "SELECT"))

	_, err = f.Begin(ctx)
	require.Error(t, err)

	require.Error(t, f.Ping(ctx))
}

func TestFakeDBPanicsWhenUnset(t *testing.T) {
	f := &FakeDB{}
	require.Panics(t, func() { _, _ = f.Exec(context.Background(), "") })
	require.Panics(t, func() { _, _ = f.Query(context.Background(), "") })
	require.Panics(t, func() { _ = f.QueryRow(context.Background(), "") })
	require.Panics(t, func() { _, _ = f.Begin(context.Background()) })
	require.Panics(t, func() { _ = f.Ping(context.Background()) })
}

func TestFakeDBClose(t *testing.T) {
	closed := false
	f := &FakeDB{CloseFn: func() { closed = true }}
	f.Close()
	require.True(t, closed)

	(&FakeDB{}).Close()
}
