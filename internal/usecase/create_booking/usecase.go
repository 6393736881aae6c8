package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-TutorService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TutorService/internal/infra/storage/booking"
	scheduleRepo "github.com/m04kA/SMC-TutorService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-TutorService/pkg/metrics"
)

// UseCase use case для бронирования ячейки расписания
type UseCase struct {
	tutorRepo     TutorRepository
	referenceRepo ReferenceRepository
	scheduleRepo  ScheduleRepository
	bookingRepo   BookingRepository
	txManager     TransactionManager
	metrics       Metrics
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tutorRepo TutorRepository,
	referenceRepo ReferenceRepository,
	scheduleRepo ScheduleRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		tutorRepo:     tutorRepo,
		referenceRepo: referenceRepo,
		scheduleRepo:  scheduleRepo,
		bookingRepo:   bookingRepo,
		txManager:     txManager,
		metrics:       metrics,
		logger:        logger,
	}
}

// Prepare разрешает преподавателя, день и время для страницы формы бронирования.
// Ошибки те же, что и у Execute на шаге разрешения.
func (uc *UseCase) Prepare(ctx context.Context, target Target) (*Slot, error) {
	return uc.resolve(ctx, target)
}

// Execute выполняет бронирование.
// Ячейка блокируется (SELECT ... FOR UPDATE) и закрывается в одной транзакции с записью бронирования,
// поэтому из конкурентных запросов на одну ячейку успешен ровно один.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: tutor=%d, weekday=%s, time=%s",
		req.TutorID, req.WeekdayCode, req.TimeLabel)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.metrics.RecordBooking(metrics.BookingInvalid)
		return nil, err
	}

	// 2. Разрешаем время, день недели и преподавателя
	slot, err := uc.resolve(ctx, req.Target)
	if err != nil {
		uc.record(err)
		return nil, err
	}

	var result *domain.Booking

	// 3. Занимаем ячейку в транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем ячейку с блокировкой строки
		cell, err := uc.scheduleRepo.Get(txCtx, slot.Tutor.ID, slot.Weekday.Code, slot.Time.ID)
		if err != nil {
			if errors.Is(err, domain.ErrScheduleNotFound) {
				uc.logger.Warn("CreateBooking: no schedule cell for tutor=%d, weekday=%s, time=%s",
					slot.Tutor.ID, slot.Weekday.Code, slot.Time.Label)
				return ErrScheduleNotFound
			}
			uc.logger.Error("CreateBooking: failed to get schedule cell: %v", err)
			return fmt.Errorf("%w: failed to get schedule cell: %w", ErrInternal, err)
		}

		// 3.2. Закрытую ячейку не трогаем
		if !cell.IsOpen {
			uc.logger.Warn("CreateBooking: cell id=%d is already closed", cell.ID)
			return ErrSlotTaken
		}

		// 3.3. Закрываем ячейку (условный UPDATE ... WHERE is_open)
		if err := uc.scheduleRepo.Close(txCtx, cell.ID); err != nil {
			if errors.Is(err, scheduleRepo.ErrCellClosed) {
				uc.logger.Warn("CreateBooking: cell id=%d was closed concurrently", cell.ID)
				return ErrSlotTaken
			}
			uc.logger.Error("CreateBooking: failed to close cell id=%d: %v", cell.ID, err)
			return fmt.Errorf("%w: failed to close schedule cell: %w", ErrInternal, err)
		}

		// 3.4. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			ScheduleCellID: cell.ID,
			Name:           strings.TrimSpace(req.ClientName),
			Phone:          strings.TrimSpace(req.ClientPhone),
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrCellAlreadyBooked) {
				uc.logger.Warn("CreateBooking: cell id=%d already has a booking", cell.ID)
				return ErrSlotTaken
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		uc.record(err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d for cell id=%d",
		result.ID, result.ScheduleCellID)
	uc.metrics.RecordBooking(metrics.BookingCreated)

	return &Response{
		ID:             result.ID,
		ScheduleCellID: result.ScheduleCellID,
		Slot:           *slot,
		ClientName:     result.Name,
		ClientPhone:    result.Phone,
		CreatedAt:      result.CreatedAt,
	}, nil
}

// resolve проверяет время, день недели и преподавателя (именно в таком порядке)
func (uc *UseCase) resolve(ctx context.Context, target Target) (*Slot, error) {
	timeSlot, err := uc.referenceRepo.GetTimeSlotByLabel(ctx, target.TimeLabel)
	if err != nil {
		if errors.Is(err, domain.ErrTimeNotFound) {
			uc.logger.Warn("CreateBooking: time %q not found", target.TimeLabel)
			return nil, ErrTimeNotFound
		}
		uc.logger.Error("CreateBooking: failed to get time %q: %v", target.TimeLabel, err)
		return nil, fmt.Errorf("%w: failed to get time slot: %w", ErrInternal, err)
	}

	weekday, err := uc.referenceRepo.GetWeekday(ctx, target.WeekdayCode)
	if err != nil {
		if errors.Is(err, domain.ErrWeekdayNotFound) {
			uc.logger.Warn("CreateBooking: weekday %q not found", target.WeekdayCode)
			return nil, ErrWeekdayNotFound
		}
		uc.logger.Error("CreateBooking: failed to get weekday %q: %v", target.WeekdayCode, err)
		return nil, fmt.Errorf("%w: failed to get weekday: %w", ErrInternal, err)
	}

	tutor, err := uc.tutorRepo.GetByID(ctx, target.TutorID)
	if err != nil {
		if errors.Is(err, domain.ErrTutorNotFound) {
			uc.logger.Warn("CreateBooking: tutor id=%d not found", target.TutorID)
			return nil, ErrTutorNotFound
		}
		uc.logger.Error("CreateBooking: failed to get tutor id=%d: %v", target.TutorID, err)
		return nil, fmt.Errorf("%w: failed to get tutor: %w", ErrInternal, err)
	}

	return &Slot{Tutor: tutor, Weekday: *weekday, Time: *timeSlot}, nil
}

// record учитывает неуспешный исход бронирования в метриках
func (uc *UseCase) record(err error) {
	switch {
	case errors.Is(err, domain.ErrSlotTaken):
		uc.metrics.RecordBooking(metrics.BookingSlotTaken)
	case errors.Is(err, domain.ErrNotFound):
		uc.metrics.RecordBooking(metrics.BookingNotFound)
	default:
		uc.metrics.RecordBooking(metrics.BookingFailed)
	}
}
