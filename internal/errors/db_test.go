package errors

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapDBError_Nil(t *testing.T) {
	assert.NoError(t, MapDBError(nil))
}

func TestMapDBError_ContextErrors(t *testing.T) {
	err := MapDBError(context.DeadlineExceeded)
	assert.Equal(t, ErrCodeTimeout, GetCode(err))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))

	err = MapDBError(context.Canceled)
	assert.Equal(t, ErrCodeCanceled, GetCode(err))
}

func TestMapDBError_NoRows(t *testing.T) {
	err := MapDBError(fmt.Errorf("query job: %w", pgx.ErrNoRows))
	assert.True(t, IsNotFound(err))
}

func TestMapDBError_Connectivity(t *testing.T) {
	err := MapDBError(driver.ErrBadConn)
	assert.True(t, IsUnavailable(err))
	assert.True(t, errors.Is(err, driver.ErrBadConn))
}

func TestMapDBError_UniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:   pgerrcode.UniqueViolation,
		Detail: "Key (email)=(p1@example.com) already exists.",
	}

	err := MapDBError(pgErr)
	require.True(t, IsConflict(err))
	assert.Equal(t, "email", GetField(err))
	assert.True(t, errors.Is(err, pgErr))
}

func TestMapDBError_UniqueViolationWithoutDetail(t *testing.T) {
	err := MapDBError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
	require.True(t, IsConflict(err))
	assert.Equal(t, "", GetField(err))
}

func TestMapDBError_ConstraintViolations(t *testing.T) {
	assert.True(t, IsValidation(MapDBError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})))
	assert.True(t, IsValidation(MapDBError(&pgconn.PgError{Code: pgerrcode.CheckViolation})))

	err := MapDBError(&pgconn.PgError{
		Code:       pgerrcode.NotNullViolation,
		ColumnName: "title",
	})
	require.True(t, IsValidation(err))
	assert.Equal(t, "title", GetField(err))
}

func TestMapDBError_UnknownPgErrorIsInternal(t *testing.T) {
	err := MapDBError(&pgconn.PgError{Code: pgerrcode.SerializationFailure})
	assert.True(t, IsInternal(err))
}

func TestMapDBError_UnrecognizedErrorPassesThrough(t *testing.T) {
	plain := errors.New("something else")
	assert.Equal(t, plain, MapDBError(plain))
}
