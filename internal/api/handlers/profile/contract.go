package profile

import (
	"context"

	"github.com/m04kA/SMC-TutorService/internal/service/catalog/models"
)

type CatalogService interface {
	Profile(ctx context.Context, tutorID int64) (*models.ProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
