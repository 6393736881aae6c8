package submit_request

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-TutorService/internal/domain"
)

// validateRequest валидирует имя и телефон клиента
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

// resolveChoices переводит ключи вариантов в подписи
func resolveChoices(req *Request) (goal, timeBudget domain.Choice, err error) {
	goal, ok := domain.FindChoice(domain.GoalChoices, req.Goal)
	if !ok {
		return goal, timeBudget, fmt.Errorf("%w: goal %q", ErrInvalidChoice, req.Goal)
	}

	timeBudget, ok = domain.FindChoice(domain.TimeBudgetChoices, req.TimeBudget)
	if !ok {
		return goal, timeBudget, fmt.Errorf("%w: time %q", ErrInvalidChoice, req.TimeBudget)
	}

	return goal, timeBudget, nil
}
