package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TutorService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных имени или телефоне
	ErrInvalidInput = fmt.Errorf("create_booking: %w", domain.ErrValidation)

	// ErrTutorNotFound возвращается, когда преподаватель не найден
	ErrTutorNotFound = fmt.Errorf("create_booking: %w", domain.ErrTutorNotFound)

	// ErrWeekdayNotFound возвращается, когда день недели не найден
	ErrWeekdayNotFound = fmt.Errorf("create_booking: %w", domain.ErrWeekdayNotFound)

	// ErrTimeNotFound возвращается, когда время не найдено
	ErrTimeNotFound = fmt.Errorf("create_booking: %w", domain.ErrTimeNotFound)

	// ErrScheduleNotFound возвращается, когда у преподавателя нет такой ячейки расписания
	ErrScheduleNotFound = fmt.Errorf("create_booking: %w", domain.ErrScheduleNotFound)

	// ErrSlotTaken возвращается, когда ячейка уже занята
	ErrSlotTaken = fmt.Errorf("create_booking: %w", domain.ErrSlotTaken)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
