package get_free_days

import (
	"context"

	"github.com/m04kA/SMC-TutorService/internal/domain"
)

// TutorRepository интерфейс репозитория преподавателей
type TutorRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Tutor, error)
}

// ReferenceRepository интерфейс справочника дней недели
type ReferenceRepository interface {
	ListWeekdays(ctx context.Context) ([]domain.WeekdaySlot, error)
}

// ScheduleRepository интерфейс репозитория ячеек расписания
type ScheduleRepository interface {
	ListByTutor(ctx context.Context, tutorID int64) ([]domain.ScheduleCell, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
