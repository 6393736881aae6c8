package provision

import (
	"context"

	"github.com/m04kA/SMC-TutorService/internal/domain"
)

// SchemaResetter пересоздает схему БД (все миграции вниз, затем вверх)
type SchemaResetter interface {
	Reset(ctx context.Context) error
}

// ReferenceRepository интерфейс справочников
type ReferenceRepository interface {
	CreateWeekdays(ctx context.Context, weekdays []domain.WeekdaySlot) error
	CreateTimeSlots(ctx context.Context, slots []domain.TimeSlot) ([]domain.TimeSlot, error)
	CreateGoals(ctx context.Context, goals []domain.Goal) error
}

// TutorRepository интерфейс репозитория преподавателей
type TutorRepository interface {
	Create(ctx context.Context, tutor *domain.Tutor) error
}

// ScheduleRepository интерфейс репозитория ячеек расписания
type ScheduleRepository interface {
	CreateBatch(ctx context.Context, cells []domain.ScheduleCell) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
