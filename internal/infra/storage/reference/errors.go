package reference

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TutorService/internal/domain"
)

var (
	// ErrWeekdayNotFound возвращается, когда день недели не найден
	ErrWeekdayNotFound = fmt.Errorf("reference.repository: %w", domain.ErrWeekdayNotFound)

	// ErrTimeSlotNotFound возвращается, когда время не найдено
	ErrTimeSlotNotFound = fmt.Errorf("reference.repository: %w", domain.ErrTimeNotFound)

	// ErrGoalNotFound возвращается, когда цель не найдена
	ErrGoalNotFound = fmt.Errorf("reference.repository: %w", domain.ErrGoalNotFound)

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reference.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reference.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reference.repository: failed to scan row")
)
