package get_free_days

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TutorService/internal/domain"
)

var (
	// ErrTutorNotFound возвращается, когда преподаватель не найден
	ErrTutorNotFound = fmt.Errorf("get_free_days: %w", domain.ErrTutorNotFound)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_free_days: internal error")
)
