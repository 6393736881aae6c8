package provision

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TutorService/internal/domain"
	"github.com/m04kA/SMC-TutorService/internal/infra/seed"
	"github.com/m04kA/SMC-TutorService/pkg/logger"
)

type fakeDB struct {
	resets   int
	inTx     bool
	weekdays []domain.WeekdaySlot
	times    []domain.TimeSlot
	goals    []domain.Goal
	tutors   []*domain.Tutor
	cells    []domain.ScheduleCell

	resetErr error
}

func (f *fakeDB) Reset(context.Context) error {
	if f.resetErr != nil {
		return f.resetErr
	}
	f.resets++
	return nil
}

func (f *fakeDB) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.inTx = true
	defer func() { f.inTx = false }()
	return fn(ctx)
}

func (f *fakeDB) CreateWeekdays(_ context.Context, weekdays []domain.WeekdaySlot) error {
	f.weekdays = weekdays
	return nil
}

func (f *fakeDB) CreateTimeSlots(_ context.Context, slots []domain.TimeSlot) ([]domain.TimeSlot, error) {
	out := make([]domain.TimeSlot, len(slots))
	for i, s := range slots {
		s.ID = int64(100 + i)
		out[i] = s
	}
	f.times = out
	return out, nil
}

func (f *fakeDB) CreateGoals(_ context.Context, goals []domain.Goal) error {
	f.goals = goals
	return nil
}

func (f *fakeDB) Create(_ context.Context, tutor *domain.Tutor) error {
	f.tutors = append(f.tutors, tutor)
	return nil
}

func (f *fakeDB) CreateBatch(_ context.Context, cells []domain.ScheduleCell) error {
	if !f.inTx {
		return errors.New("cells created outside of transaction")
	}
	f.cells = append(f.cells, cells...)
	return nil
}

func newUseCase(f *fakeDB) *UseCase {
	return NewUseCase(f, f, f, f, f, logger.NewNop())
}

// fullGrid набор из T преподавателей, у каждого заполнены все D×S ячейки
func fullGrid() *seed.Dataset {
	ds := &seed.Dataset{
		Weekdays: []seed.Weekday{{Code: "mon", Name: "Понедельник"}, {Code: "tue", Name: "Вторник"}, {Code: "wed", Name: "Среда"}},
		Times:    []string{"8:00", "10:00"},
		Goals:    []seed.Goal{{ID: "travel", Title: "Для путешествий", Sign: "⛱"}, {ID: "work", Title: "Для работы", Sign: "🏢"}},
	}
	for id := int64(1); id <= 4; id++ {
		free := map[string]map[string]bool{}
		for _, wd := range ds.Weekdays {
			free[wd.Code] = map[string]bool{"8:00": id%2 == 0, "10:00": true}
		}
		ds.Tutors = append(ds.Tutors, seed.Tutor{ID: id, Name: "Tutor", Goals: []string{"work"}, Free: free})
	}
	return ds
}

func TestExecuteCreatesCellPerTutorDayTime(t *testing.T) {
	f := &fakeDB{}
	ds := fullGrid()

	resp, err := newUseCase(f).Execute(context.Background(), ds)
	require.NoError(t, err)
	assert.Equal(t, 1, f.resets)

	assert.Equal(t, 4*3*2, resp.Cells)
	require.Len(t, f.cells, 4*3*2)

	seen := map[string]bool{}
	for _, c := range f.cells {
		key := c.WeekdayCode + "/" + c.Time.Label + "/" + string(rune('0'+c.TutorID))
		assert.False(t, seen[key], "duplicate cell %s", key)
		seen[key] = true

		want := ds.Tutors[c.TutorID-1].Free[c.WeekdayCode][c.Time.Label]
		assert.Equal(t, want, c.IsOpen, key)
		assert.NotZero(t, c.Time.ID)
	}

	assert.Equal(t, []domain.WeekdaySlot{
		{Code: "mon", Name: "Понедельник", SortOrder: 1},
		{Code: "tue", Name: "Вторник", SortOrder: 2},
		{Code: "wed", Name: "Среда", SortOrder: 3},
	}, f.weekdays)
	assert.Equal(t, 2, f.times[1].SortOrder)
	require.Len(t, f.tutors, 4)
	assert.Equal(t, []domain.Goal{{ID: "work", Title: "Для работы", Sign: "🏢"}}, f.tutors[0].Goals)
}

func TestExecuteRejectsBadDatasetBeforeReset(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(ds *seed.Dataset)
		wantErr error
	}{
		{
			name:    "unknown goal",
			mutate:  func(ds *seed.Dataset) { ds.Tutors[0].Goals = []string{"fun"} },
			wantErr: ErrUnknownGoal,
		},
		{
			name:    "unknown weekday",
			mutate:  func(ds *seed.Dataset) { ds.Tutors[1].Free["sun"] = map[string]bool{"8:00": true} },
			wantErr: ErrUnknownWeekday,
		},
		{
			name:    "unknown time",
			mutate:  func(ds *seed.Dataset) { ds.Tutors[2].Free["mon"]["23:00"] = true },
			wantErr: ErrUnknownTime,
		},
		{
			name:    "duplicate tutor",
			mutate:  func(ds *seed.Dataset) { ds.Tutors[3].ID = 1 },
			wantErr: ErrDuplicate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeDB{}
			ds := fullGrid()
			tt.mutate(ds)

			_, err := newUseCase(f).Execute(context.Background(), ds)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, f.resets)
			assert.Empty(t, f.cells)
		})
	}
}

func TestExecuteResetError(t *testing.T) {
	f := &fakeDB{resetErr: errors.New("goose: no migrations")}

	_, err := newUseCase(f).Execute(context.Background(), fullGrid())
	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, f.tutors)
}

func TestExecuteDefaultDataset(t *testing.T) {
	ds, err := seed.Default()
	require.NoError(t, err)

	f := &fakeDB{}
	resp, err := newUseCase(f).Execute(context.Background(), ds)
	require.NoError(t, err)
	assert.Equal(t, len(ds.Tutors)*len(ds.Weekdays)*len(ds.Times), resp.Cells)
}
