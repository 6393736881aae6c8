package get_free_days

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TutorService/internal/domain"
)

// UseCase use case для получения свободного времени преподавателя
type UseCase struct {
	tutorRepo     TutorRepository
	referenceRepo ReferenceRepository
	scheduleRepo  ScheduleRepository
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tutorRepo TutorRepository,
	referenceRepo ReferenceRepository,
	scheduleRepo ScheduleRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		tutorRepo:     tutorRepo,
		referenceRepo: referenceRepo,
		scheduleRepo:  scheduleRepo,
		logger:        logger,
	}
}

// Execute возвращает преподавателя и его свободные дни
func (uc *UseCase) Execute(ctx context.Context, tutorID int64) (*Response, error) {
	uc.logger.Info("GetFreeDays: tutor=%d", tutorID)

	// 1. Получаем преподавателя
	tutor, err := uc.tutorRepo.GetByID(ctx, tutorID)
	if err != nil {
		if errors.Is(err, domain.ErrTutorNotFound) {
			uc.logger.Warn("GetFreeDays: tutor id=%d not found", tutorID)
			return nil, ErrTutorNotFound
		}
		uc.logger.Error("GetFreeDays: failed to get tutor id=%d: %v", tutorID, err)
		return nil, fmt.Errorf("%w: failed to get tutor: %w", ErrInternal, err)
	}

	// 2. Справочник дней недели
	weekdays, err := uc.referenceRepo.ListWeekdays(ctx)
	if err != nil {
		uc.logger.Error("GetFreeDays: failed to list weekdays: %v", err)
		return nil, fmt.Errorf("%w: failed to list weekdays: %w", ErrInternal, err)
	}

	// 3. Ячейки расписания преподавателя
	cells, err := uc.scheduleRepo.ListByTutor(ctx, tutorID)
	if err != nil {
		uc.logger.Error("GetFreeDays: failed to list cells of tutor id=%d: %v", tutorID, err)
		return nil, fmt.Errorf("%w: failed to list schedule cells: %w", ErrInternal, err)
	}

	return &Response{
		Tutor:    tutor,
		FreeDays: buildFreeDays(weekdays, cells),
	}, nil
}
