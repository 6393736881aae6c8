package submit_request

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TutorService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных имени или телефоне
	ErrInvalidInput = fmt.Errorf("submit_request: %w", domain.ErrValidation)

	// ErrInvalidChoice возвращается, когда ключ цели или времени не из списка вариантов
	ErrInvalidChoice = fmt.Errorf("submit_request: invalid choice: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_request: internal error")
)
