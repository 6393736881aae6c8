package booking

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TutorService/internal/domain"
	"github.com/m04kA/SMC-TutorService/pkg/dbmetrics"
)

func newRepoMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(dbmetrics.Wrap(db, nil)), mock
}

func TestRepositoryCreate(t *testing.T) {
	repo, mock := newRepoMock(t)
	created := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings (name,phone,schedule_cell_id) VALUES ($1,$2,$3) RETURNING id, created_at")).
		WithArgs("Anna", "+79161234567", int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, created))

	b, err := repo.Create(context.Background(), &domain.Booking{Name: "Anna", Phone: "+79161234567", ScheduleCellID: 7})
	require.NoError(t, err)
	assert.Equal(t, int64(1), b.ID)
	assert.Equal(t, created, b.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryCreateDuplicateCell(t *testing.T) {
	repo, mock := newRepoMock(t)

	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})

	_, err := repo.Create(context.Background(), &domain.Booking{Name: "Anna", Phone: "+79161234567", ScheduleCellID: 7})
	assert.ErrorIs(t, err, ErrCellAlreadyBooked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryCreateStorageUnavailable(t *testing.T) {
	repo, mock := newRepoMock(t)

	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnError(&pq.Error{Code: "42P01", Message: `relation "bookings" does not exist`})

	_, err := repo.Create(context.Background(), &domain.Booking{Name: "Anna", Phone: "+79161234567", ScheduleCellID: 7})
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}
