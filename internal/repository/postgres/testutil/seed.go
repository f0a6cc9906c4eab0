package testutil

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func MustInsertCustomer(t *testing.T, pool *pgxpool.Pool, firstName, lastName, email, address string, active bool) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(), `
		INSERT INTO customers (first_name, last_name, email, address, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, firstName, lastName, email, address, active).Scan(&id)

	require.NoError(t, err)
	require.NotZero(t, id)
	return id
}
