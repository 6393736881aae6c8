package txmanager

import (
	"context"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TutorService/pkg/dbmetrics"
)

func newManager(t *testing.T) (*TransactionManager, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewTransactionManager(dbmetrics.Wrap(db, nil)), mock
}

func TestDoCommits(t *testing.T) {
	tm, mock := newManager(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE schedule_cells").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := tm.Do(context.Background(), func(ctx context.Context) error {
		require.True(t, dbmetrics.IsInTransaction(ctx))
		tx, _ := dbmetrics.GetTx(ctx)
		_, err := tx.ExecContext(ctx, "UPDATE schedule_cells SET is_open = false")
		return err
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoRollsBackOnError(t *testing.T) {
	tm, mock := newManager(t)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := tm.Do(context.Background(), func(ctx context.Context) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoReportsBeginFailure(t *testing.T) {
	tm, mock := newManager(t)
	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	err := tm.Do(context.Background(), func(ctx context.Context) error {
		t.Fatal("fn must not run without a transaction")
		return nil
	})

	assert.ErrorIs(t, err, ErrBeginTx)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNestedDoReusesTransaction(t *testing.T) {
	tm, mock := newManager(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := tm.Do(context.Background(), func(ctx context.Context) error {
		return tm.DoSerializable(ctx, func(ctx context.Context) error {
			return nil
		})
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
