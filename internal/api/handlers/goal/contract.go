package goal

import (
	"context"

	"github.com/m04kA/SMC-TutorService/internal/service/catalog/models"
)

type CatalogService interface {
	ByGoal(ctx context.Context, goalID string) (*models.GoalResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
