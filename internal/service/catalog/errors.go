package catalog

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TutorService/internal/domain"
)

var (
	// ErrGoalNotFound возвращается, когда цель не найдена
	ErrGoalNotFound = fmt.Errorf("catalog: %w", domain.ErrGoalNotFound)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog: internal error")
)
