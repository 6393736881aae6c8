package request

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-TutorService/internal/domain"
	"github.com/m04kA/SMC-TutorService/internal/infra/storage"
	"github.com/m04kA/SMC-TutorService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TutorService/pkg/psqlbuilder"
)

// Repository репозиторий заявок на подбор преподавателя
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет заявку и заполняет её ID
func (r *Repository) Create(ctx context.Context, req *domain.LessonRequest) (*domain.LessonRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("lesson_requests").
		Columns("name", "phone", "goal", "time").
		Values(req.Name, req.Phone, req.Goal, req.Time).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&req.ID); err != nil {
		return nil, storage.Wrap(ErrExecQuery, "Create - execute insert", err)
	}

	return req, nil
}
