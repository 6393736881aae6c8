package get_free_days

import "github.com/m04kA/SMC-TutorService/internal/domain"

// Response преподаватель и его свободное время по дням недели
type Response struct {
	Tutor    *domain.Tutor
	FreeDays []domain.FreeDay // все дни недели по порядку, в том числе без свободного времени
}
