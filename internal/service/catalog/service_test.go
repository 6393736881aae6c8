package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TutorService/internal/domain"
	"github.com/m04kA/SMC-TutorService/internal/usecase/get_free_days"
	"github.com/m04kA/SMC-TutorService/pkg/logger"
)

type fakeRepo struct {
	tutors  []*domain.Tutor
	goals   []domain.Goal
	listErr error
}

func (r *fakeRepo) List(context.Context) ([]*domain.Tutor, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return append([]*domain.Tutor(nil), r.tutors...), nil
}

func (r *fakeRepo) ListByGoal(_ context.Context, goalID string) ([]*domain.Tutor, error) {
	var out []*domain.Tutor
	for _, t := range r.tutors {
		if t.HasGoal(goalID) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListGoals(context.Context) ([]domain.Goal, error) {
	return r.goals, nil
}

func (r *fakeRepo) GetGoal(_ context.Context, id string) (*domain.Goal, error) {
	for _, g := range r.goals {
		if g.ID == id {
			return &g, nil
		}
	}
	return nil, domain.ErrGoalNotFound
}

type fakeFreeDays struct {
	resp *get_free_days.Response
	err  error
}

func (f *fakeFreeDays) Execute(context.Context, int64) (*get_free_days.Response, error) {
	return f.resp, f.err
}

func newRepo(n int) *fakeRepo {
	r := &fakeRepo{goals: []domain.Goal{{ID: "travel", Title: "Для путешествий"}, {ID: "work", Title: "Для работы"}}}
	for i := 1; i <= n; i++ {
		t := &domain.Tutor{ID: int64(i)}
		if i%2 == 0 {
			t.Goals = []domain.Goal{r.goals[1]}
		}
		r.tutors = append(r.tutors, t)
	}
	return r
}

func TestFeaturedSamplesUpToLimit(t *testing.T) {
	repo := newRepo(10)
	s := NewService(repo, repo, &fakeFreeDays{}, logger.NewNop())

	resp, err := s.Featured(context.Background(), domain.DefaultFeaturedTutors)
	require.NoError(t, err)
	assert.Len(t, resp.Tutors, 6)
	assert.Len(t, resp.Goals, 2)

	ids := map[int64]bool{}
	for _, tutor := range resp.Tutors {
		assert.False(t, ids[tutor.ID])
		ids[tutor.ID] = true
	}
}

func TestFeaturedReturnsAllWhenFew(t *testing.T) {
	repo := newRepo(3)
	s := NewService(repo, repo, &fakeFreeDays{}, logger.NewNop())
	s.shuffle = func(int, func(i, j int)) { t.Fatal("shuffle must not be called") }

	resp, err := s.Featured(context.Background(), 6)
	require.NoError(t, err)
	assert.Len(t, resp.Tutors, 3)
}

func TestFeaturedStorageUnavailable(t *testing.T) {
	repo := newRepo(0)
	repo.listErr = domain.ErrStorageUnavailable
	s := NewService(repo, repo, &fakeFreeDays{}, logger.NewNop())

	_, err := s.Featured(context.Background(), 6)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

func TestByGoal(t *testing.T) {
	repo := newRepo(4)
	s := NewService(repo, repo, &fakeFreeDays{}, logger.NewNop())

	resp, err := s.ByGoal(context.Background(), "work")
	require.NoError(t, err)
	assert.Equal(t, "Для работы", resp.Goal.Title)
	assert.Len(t, resp.Tutors, 2)

	_, err = s.ByGoal(context.Background(), "fun")
	assert.ErrorIs(t, err, ErrGoalNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProfile(t *testing.T) {
	repo := newRepo(1)
	free := &fakeFreeDays{resp: &get_free_days.Response{
		Tutor:    repo.tutors[0],
		FreeDays: []domain.FreeDay{{Weekday: domain.WeekdaySlot{Code: "mon"}}},
	}}
	s := NewService(repo, repo, free, logger.NewNop())

	resp, err := s.Profile(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Tutor.ID)
	assert.Len(t, resp.FreeDays, 1)
	assert.Len(t, resp.Goals, 2)

	free.err = get_free_days.ErrTutorNotFound
	_, err = s.Profile(context.Background(), 2)
	assert.ErrorIs(t, err, domain.ErrTutorNotFound)
}
