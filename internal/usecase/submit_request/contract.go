package submit_request

import (
	"context"

	"github.com/m04kA/SMC-TutorService/internal/domain"
)

// RequestRepository интерфейс репозитория заявок
type RequestRepository interface {
	Create(ctx context.Context, req *domain.LessonRequest) (*domain.LessonRequest, error)
}

// Metrics интерфейс учета заявок
type Metrics interface {
	RecordLessonRequest(goal string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
