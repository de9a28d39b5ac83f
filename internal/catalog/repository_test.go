package catalog

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "products_sku_key"}
	require.True(t, isUniqueViolation(dup))
	require.True(t, isUniqueViolation(fmt.Errorf("catalog: update: %w", dup)))

	require.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	require.False(t, isUniqueViolation(errors.New("connection refused")))
}
