package tutor

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TutorService/internal/domain"
)

var (
	// ErrTutorNotFound возвращается, когда преподаватель не найден
	ErrTutorNotFound = fmt.Errorf("tutor.repository: %w", domain.ErrTutorNotFound)

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("tutor.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("tutor.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("tutor.repository: failed to scan row")
)
