package submit_request

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TutorService/internal/domain"
	"github.com/m04kA/SMC-TutorService/pkg/logger"
)

type fakeRepo struct {
	stored []domain.LessonRequest
	err    error
}

func (r *fakeRepo) Create(_ context.Context, req *domain.LessonRequest) (*domain.LessonRequest, error) {
	if r.err != nil {
		return nil, r.err
	}
	req.ID = int64(len(r.stored) + 1)
	r.stored = append(r.stored, *req)
	return req, nil
}

type fakeMetrics struct {
	goals []string
}

func (m *fakeMetrics) RecordLessonRequest(goal string) {
	m.goals = append(m.goals, goal)
}

func TestExecuteStoresLabels(t *testing.T) {
	repo := &fakeRepo{}
	m := &fakeMetrics{}
	uc := NewUseCase(repo, m, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{
		ClientName:  "Ivan",
		ClientPhone: "+79161112233",
		Goal:        "travel",
		TimeBudget:  "1-2",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Для путешествий", resp.GoalLabel)
	assert.Equal(t, "1-2 часа в неделю", resp.TimeLabel)

	require.Len(t, repo.stored, 1)
	assert.Equal(t, domain.LessonRequest{
		ID:    1,
		Name:  "Ivan",
		Phone: "+79161112233",
		Goal:  "Для путешествий",
		Time:  "1-2 часа в неделю",
	}, repo.stored[0])
	assert.Equal(t, []string{"travel"}, m.goals)
}

func TestExecuteRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{
			name:    "empty name",
			req:     Request{ClientPhone: "89161112233", Goal: "work", TimeBudget: "3-5"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "bad phone",
			req:     Request{ClientName: "Ivan", ClientPhone: "abc", Goal: "work", TimeBudget: "3-5"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown goal",
			req:     Request{ClientName: "Ivan", ClientPhone: "89161112233", Goal: "fun", TimeBudget: "3-5"},
			wantErr: ErrInvalidChoice,
		},
		{
			name:    "unknown time budget",
			req:     Request{ClientName: "Ivan", ClientPhone: "89161112233", Goal: "work", TimeBudget: "100"},
			wantErr: ErrInvalidChoice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			uc := NewUseCase(repo, &fakeMetrics{}, logger.NewNop())

			_, err := uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Empty(t, repo.stored)
		})
	}
}

func TestExecuteRepositoryError(t *testing.T) {
	repo := &fakeRepo{err: errors.Join(domain.ErrStorageUnavailable, errors.New("connection refused"))}
	uc := NewUseCase(repo, &fakeMetrics{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{
		ClientName: "Ivan", ClientPhone: "89161112233", Goal: "coding", TimeBudget: "7-10",
	})
	assert.ErrorIs(t, err, ErrInternal)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}
