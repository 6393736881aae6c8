package create_booking

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-TutorService/internal/domain"
)

// validateRequest валидирует имя и телефон клиента.
// Формы проверяют то же самое, но usecase не полагается на это.
func validateRequest(req *Request) error {
	name := strings.TrimSpace(req.ClientName)
	if name == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}

	if utf8.RuneCountInString(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: clientName is longer than %d", ErrInvalidInput, domain.MaxNameLength)
	}

	phone := strings.TrimSpace(req.ClientPhone)
	if phone == "" {
		return fmt.Errorf("%w: clientPhone is required", ErrInvalidInput)
	}

	if len(phone) > domain.MaxPhoneLength || !domain.IsValidPhone(phone) {
		return fmt.Errorf("%w: clientPhone %q has invalid format", ErrInvalidInput, phone)
	}

	return nil
}
