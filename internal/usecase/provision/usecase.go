package provision

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-TutorService/internal/domain"
	"github.com/m04kA/SMC-TutorService/internal/infra/seed"
)

// UseCase use case для наполнения БД из набора данных.
// Операция разрушающая: схема пересоздается, все бронирования и заявки удаляются.
type UseCase struct {
	schema        SchemaResetter
	referenceRepo ReferenceRepository
	tutorRepo     TutorRepository
	scheduleRepo  ScheduleRepository
	txManager     TransactionManager
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	schema SchemaResetter,
	referenceRepo ReferenceRepository,
	tutorRepo TutorRepository,
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		schema:        schema,
		referenceRepo: referenceRepo,
		tutorRepo:     tutorRepo,
		scheduleRepo:  scheduleRepo,
		txManager:     txManager,
		logger:        logger,
	}
}

// Execute пересоздает схему и загружает набор данных одной транзакцией
func (uc *UseCase) Execute(ctx context.Context, ds *seed.Dataset) (*Response, error) {
	uc.logger.Info("Provision: weekdays=%d, times=%d, goals=%d, tutors=%d",
		len(ds.Weekdays), len(ds.Times), len(ds.Goals), len(ds.Tutors))

	// 1. Проверяем набор до того, как что-то удалить
	p, err := buildPlan(ds)
	if err != nil {
		uc.logger.Warn("Provision: dataset rejected: %v", err)
		return nil, err
	}

	// 2. Пересоздаем схему
	if err := uc.schema.Reset(ctx); err != nil {
		uc.logger.Error("Provision: failed to reset schema: %v", err)
		return nil, fmt.Errorf("%w: failed to reset schema: %w", ErrInternal, err)
	}

	// 3. Загружаем данные
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.referenceRepo.CreateWeekdays(txCtx, p.weekdays); err != nil {
			return fmt.Errorf("%w: failed to create weekdays: %w", ErrInternal, err)
		}

		times, err := uc.referenceRepo.CreateTimeSlots(txCtx, p.times)
		if err != nil {
			return fmt.Errorf("%w: failed to create time slots: %w", ErrInternal, err)
		}

		byLabel := make(map[string]domain.TimeSlot, len(times))
		for _, ts := range times {
			byLabel[ts.Label] = ts
		}

		if err := uc.referenceRepo.CreateGoals(txCtx, p.goals); err != nil {
			return fmt.Errorf("%w: failed to create goals: %w", ErrInternal, err)
		}

		for _, tutor := range p.tutors {
			if err := uc.tutorRepo.Create(txCtx, tutor); err != nil {
				return fmt.Errorf("%w: failed to create tutor id=%d: %w", ErrInternal, tutor.ID, err)
			}
		}

		cells := make([]domain.ScheduleCell, 0, len(p.cells))
		for _, c := range p.cells {
			ts, ok := byLabel[c.timeLabel]
			if !ok {
				return fmt.Errorf("%w: time slot %q was not created", ErrInternal, c.timeLabel)
			}
			cells = append(cells, domain.ScheduleCell{
				TutorID:     c.tutorID,
				WeekdayCode: c.weekday,
				Time:        ts,
				IsOpen:      c.isOpen,
			})
		}

		if err := uc.scheduleRepo.CreateBatch(txCtx, cells); err != nil {
			return fmt.Errorf("%w: failed to create schedule cells: %w", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		uc.logger.Error("Provision: load failed: %v", err)
		return nil, err
	}

	uc.logger.Info("Provision: loaded %d tutors and %d schedule cells", len(p.tutors), len(p.cells))

	return &Response{
		Weekdays: len(p.weekdays),
		Times:    len(p.times),
		Goals:    len(p.goals),
		Tutors:   len(p.tutors),
		Cells:    len(p.cells),
	}, nil
}
