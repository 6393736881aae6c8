package request

import (
	"context"
	"errors"
	"regexp"
	"testing"

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

func TestCreate(t *testing.T) {
	repo, mock := newRepoMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO lesson_requests (name,phone,goal,time) VALUES ($1,$2,$3,$4) RETURNING id")).
		WithArgs("Анна", "89001234567", "Для работы", "3-5 часов в неделю").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	created, err := repo.Create(context.Background(), &domain.LessonRequest{
		Name:  "Анна",
		Phone: "89001234567",
		Goal:  "Для работы",
		Time:  "3-5 часов в неделю",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMissingTable(t *testing.T) {
	repo, mock := newRepoMock(t)

	mock.ExpectQuery("INSERT INTO lesson_requests").
		WillReturnError(&pq.Error{Code: "42P01", Message: `relation "lesson_requests" does not exist`})

	_, err := repo.Create(context.Background(), &domain.LessonRequest{Name: "Анна", Phone: "89001234567"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.True(t, errors.Is(err, domain.ErrStorageUnavailable))
}
