package create_booking

import (
	"context"

	"github.com/m04kA/SMC-TutorService/internal/domain"
)

// TutorRepository интерфейс репозитория преподавателей
type TutorRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Tutor, error)
}

// ReferenceRepository интерфейс справочников дней недели и времени
type ReferenceRepository interface {
	GetWeekday(ctx context.Context, code string) (*domain.WeekdaySlot, error)
	GetTimeSlotByLabel(ctx context.Context, label string) (*domain.TimeSlot, error)
}

// ScheduleRepository интерфейс репозитория ячеек расписания
type ScheduleRepository interface {
	Get(ctx context.Context, tutorID int64, weekdayCode string, timeSlotID int64) (*domain.ScheduleCell, error)
	Close(ctx context.Context, cellID int64) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс учета исходов бронирования
type Metrics interface {
	RecordBooking(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
