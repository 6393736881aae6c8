package get_free_days

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TutorService/internal/domain"
	"github.com/m04kA/SMC-TutorService/pkg/logger"
)

var (
	weekdays = []domain.WeekdaySlot{
		{Code: "mon", Name: "Понедельник", SortOrder: 1},
		{Code: "tue", Name: "Вторник", SortOrder: 2},
		{Code: "wed", Name: "Среда", SortOrder: 3},
	}
	times = []domain.TimeSlot{
		{ID: 1, Label: "8:00", SortOrder: 1},
		{ID: 2, Label: "10:00", SortOrder: 2},
		{ID: 3, Label: "12:00", SortOrder: 3},
	}
)

type fakeRepo struct {
	tutors   map[int64]*domain.Tutor
	weekdays []domain.WeekdaySlot
	cells    []domain.ScheduleCell
	listErr  error
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Tutor, error) {
	t, ok := r.tutors[id]
	if !ok {
		return nil, domain.ErrTutorNotFound
	}
	return t, nil
}

func (r *fakeRepo) ListWeekdays(context.Context) ([]domain.WeekdaySlot, error) {
	return r.weekdays, r.listErr
}

func (r *fakeRepo) ListByTutor(_ context.Context, tutorID int64) ([]domain.ScheduleCell, error) {
	var out []domain.ScheduleCell
	for _, c := range r.cells {
		if c.TutorID == tutorID {
			out = append(out, c)
		}
	}
	return out, nil
}

func cell(weekday string, ts domain.TimeSlot, open bool) domain.ScheduleCell {
	return domain.ScheduleCell{TutorID: 1, WeekdayCode: weekday, Time: ts, IsOpen: open}
}

func labels(day domain.FreeDay) []string {
	out := make([]string, 0, len(day.Cells))
	for _, c := range day.Cells {
		out = append(out, c.Time.Label)
	}
	return out
}

func TestBuildFreeDaysOrderDoesNotDependOnInput(t *testing.T) {
	cells := []domain.ScheduleCell{
		cell("mon", times[2], true),
		cell("mon", times[0], true),
		cell("mon", times[1], false),
		cell("tue", times[1], true),
		cell("tue", times[0], true),
		cell("wed", times[0], false),
	}

	for i := 0; i < 20; i++ {
		shuffledDays := append([]domain.WeekdaySlot(nil), weekdays...)
		rand.Shuffle(len(shuffledDays), func(a, b int) { shuffledDays[a], shuffledDays[b] = shuffledDays[b], shuffledDays[a] })
		shuffledCells := append([]domain.ScheduleCell(nil), cells...)
		rand.Shuffle(len(shuffledCells), func(a, b int) { shuffledCells[a], shuffledCells[b] = shuffledCells[b], shuffledCells[a] })

		days := buildFreeDays(shuffledDays, shuffledCells)

		require.Len(t, days, 3)
		assert.Equal(t, "mon", days[0].Weekday.Code)
		assert.Equal(t, "tue", days[1].Weekday.Code)
		assert.Equal(t, "wed", days[2].Weekday.Code)
		assert.Equal(t, []string{"8:00", "12:00"}, labels(days[0]))
		assert.Equal(t, []string{"8:00", "10:00"}, labels(days[1]))
		assert.Empty(t, days[2].Cells)
		assert.NotNil(t, days[2].Cells)
		assert.False(t, days[2].HasFreeTime())
	}
}

func TestExecute(t *testing.T) {
	repo := &fakeRepo{
		tutors:   map[int64]*domain.Tutor{1: {ID: 1, Name: "Morris Simmmons"}},
		weekdays: weekdays,
		cells: []domain.ScheduleCell{
			cell("tue", times[1], true),
			{TutorID: 2, WeekdayCode: "tue", Time: times[0], IsOpen: true},
		},
	}
	uc := NewUseCase(repo, repo, repo, logger.NewNop())

	resp, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Morris Simmmons", resp.Tutor.Name)
	require.Len(t, resp.FreeDays, 3)
	assert.Empty(t, resp.FreeDays[0].Cells)
	assert.Equal(t, []string{"10:00"}, labels(resp.FreeDays[1]))
}

func TestExecuteUnknownTutor(t *testing.T) {
	repo := &fakeRepo{tutors: map[int64]*domain.Tutor{}}
	uc := NewUseCase(repo, repo, repo, logger.NewNop())

	_, err := uc.Execute(context.Background(), 42)
	assert.ErrorIs(t, err, ErrTutorNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExecuteKeepsStorageError(t *testing.T) {
	repo := &fakeRepo{
		tutors:  map[int64]*domain.Tutor{1: {ID: 1}},
		listErr: errors.Join(domain.ErrStorageUnavailable, errors.New("relation \"weekdays\" does not exist")),
	}
	uc := NewUseCase(repo, repo, repo, logger.NewNop())

	_, err := uc.Execute(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInternal)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}
