package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound базовая ошибка для неизвестных сущностей
	ErrNotFound = errors.New("not found")

	ErrTutorNotFound    = fmt.Errorf("tutor %w", ErrNotFound)
	ErrGoalNotFound     = fmt.Errorf("goal %w", ErrNotFound)
	ErrWeekdayNotFound  = fmt.Errorf("weekday %w", ErrNotFound)
	ErrTimeNotFound     = fmt.Errorf("time slot %w", ErrNotFound)
	ErrScheduleNotFound = fmt.Errorf("schedule cell %w", ErrNotFound)

	// ErrValidation некорректные данные формы
	ErrValidation = errors.New("validation failed")

	// ErrSlotTaken ячейка расписания уже занята
	ErrSlotTaken = errors.New("slot is already taken")

	// ErrStorageUnavailable хранилище недоступно или схема не создана
	ErrStorageUnavailable = errors.New("storage unavailable")
)
