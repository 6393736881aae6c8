package index

import (
	"context"

	"github.com/m04kA/SMC-TutorService/internal/service/catalog/models"
)

type CatalogService interface {
	Featured(ctx context.Context, limit int) (*models.FeaturedResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
