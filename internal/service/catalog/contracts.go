package catalog

import (
	"context"

	"github.com/m04kA/SMC-TutorService/internal/domain"
	"github.com/m04kA/SMC-TutorService/internal/usecase/get_free_days"
)

// TutorRepository интерфейс репозитория преподавателей
type TutorRepository interface {
	List(ctx context.Context) ([]*domain.Tutor, error)
	ListByGoal(ctx context.Context, goalID string) ([]*domain.Tutor, error)
}

// GoalRepository интерфейс справочника целей
type GoalRepository interface {
	ListGoals(ctx context.Context) ([]domain.Goal, error)
	GetGoal(ctx context.Context, id string) (*domain.Goal, error)
}

// FreeDaysUseCase интерфейс получения свободного времени преподавателя
type FreeDaysUseCase interface {
	Execute(ctx context.Context, tutorID int64) (*get_free_days.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
