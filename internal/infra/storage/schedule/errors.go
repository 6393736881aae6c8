package schedule

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TutorService/internal/domain"
)

var (
	// ErrCellNotFound возвращается, когда ячейка расписания не найдена
	ErrCellNotFound = fmt.Errorf("schedule.repository: %w", domain.ErrScheduleNotFound)

	// ErrCellClosed возвращается, когда ячейку пытаются закрыть повторно
	ErrCellClosed = errors.New("schedule.repository: schedule cell already closed")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
