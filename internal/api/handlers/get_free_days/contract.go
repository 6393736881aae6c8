package get_free_days

import (
	"context"

	getFreeDays "github.com/m04kA/SMC-TutorService/internal/usecase/get_free_days"
)

type GetFreeDaysUseCase interface {
	Execute(ctx context.Context, tutorID int64) (*getFreeDays.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
