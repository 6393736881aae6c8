package tutor

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TutorService/internal/domain"
	"github.com/m04kA/SMC-TutorService/internal/infra/storage"
	"github.com/m04kA/SMC-TutorService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TutorService/pkg/psqlbuilder"
)

var tutorColumns = []string{
	"t.id",
	"t.name",
	"t.about",
	"t.rating",
	"t.picture",
	"t.price",
}

// Repository репозиторий преподавателей и их целей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория преподавателей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает всех преподавателей с их целями
func (r *Repository) List(ctx context.Context) ([]*domain.Tutor, error) {
	query, args, err := psqlbuilder.Select(tutorColumns...).
		From("tutors t").
		OrderBy("t.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryTutors(ctx, "List", query, args)
}

// ListByGoal возвращает преподавателей, у которых есть указанная цель
func (r *Repository) ListByGoal(ctx context.Context, goalID string) ([]*domain.Tutor, error) {
	query, args, err := psqlbuilder.Select(tutorColumns...).
		From("tutors t").
		Join("goals_tutors gt ON gt.tutor_id = t.id").
		Where(squirrel.Eq{"gt.goal_id": goalID}).
		OrderBy("t.rating DESC", "t.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByGoal - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryTutors(ctx, "ListByGoal", query, args)
}

// GetByID получает преподавателя по ID вместе с целями
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Tutor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tutorColumns...).
		From("tutors t").
		Where(squirrel.Eq{"t.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var t domain.Tutor
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&t.ID,
		&t.Name,
		&t.About,
		&t.Rating,
		&t.Picture,
		&t.Price,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTutorNotFound
	}
	if err != nil {
		return nil, storage.Wrap(ErrScanRow, "GetByID - scan tutor", err)
	}

	tutors := []*domain.Tutor{&t}
	if err := r.loadGoals(ctx, tutors); err != nil {
		return nil, err
	}

	return &t, nil
}

// Create сохраняет преподавателя с заданным ID и его связи с целями
func (r *Repository) Create(ctx context.Context, t *domain.Tutor) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("tutors").
		Columns("id", "name", "about", "rating", "picture", "price").
		Values(t.ID, t.Name, t.About, t.Rating, t.Picture, t.Price).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return storage.Wrap(ErrExecQuery, "Create - execute insert tutor", err)
	}

	if len(t.Goals) == 0 {
		return nil
	}

	builder := psqlbuilder.Insert("goals_tutors").Columns("goal_id", "tutor_id")
	for _, g := range t.Goals {
		builder = builder.Values(g.ID, t.ID)
	}

	query, args, err = builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert goals query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return storage.Wrap(ErrExecQuery, "Create - execute insert goals", err)
	}

	return nil
}

// queryTutors выполняет запрос списка преподавателей и подгружает их цели
func (r *Repository) queryTutors(ctx context.Context, op, query string, args []interface{}) ([]*domain.Tutor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storage.Wrap(ErrExecQuery, op+" - execute query", err)
	}
	defer rows.Close()

	tutors := make([]*domain.Tutor, 0)
	for rows.Next() {
		var t domain.Tutor
		if err := rows.Scan(&t.ID, &t.Name, &t.About, &t.Rating, &t.Picture, &t.Price); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		tutors = append(tutors, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, storage.Wrap(ErrScanRow, op+" - rows error", err)
	}

	if err := r.loadGoals(ctx, tutors); err != nil {
		return nil, err
	}

	return tutors, nil
}

// loadGoals заполняет Goals у переданных преподавателей одним запросом
func (r *Repository) loadGoals(ctx context.Context, tutors []*domain.Tutor) error {
	if len(tutors) == 0 {
		return nil
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	byID := make(map[int64]*domain.Tutor, len(tutors))
	ids := make([]int64, 0, len(tutors))
	for _, t := range tutors {
		byID[t.ID] = t
		ids = append(ids, t.ID)
	}

	query, args, err := psqlbuilder.Select("gt.tutor_id", "g.id", "g.title", "g.sign").
		From("goals_tutors gt").
		Join("goals g ON g.id = gt.goal_id").
		Where(squirrel.Eq{"gt.tutor_id": ids}).
		OrderBy("gt.tutor_id ASC", "g.id ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadGoals - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return storage.Wrap(ErrExecQuery, "loadGoals - execute query", err)
	}
	defer rows.Close()

	for rows.Next() {
		var tutorID int64
		var g domain.Goal
		if err := rows.Scan(&tutorID, &g.ID, &g.Title, &g.Sign); err != nil {
			return fmt.Errorf("%w: loadGoals - scan row: %v", ErrScanRow, err)
		}
		if t, ok := byID[tutorID]; ok {
			t.Goals = append(t.Goals, g)
		}
	}

	if err := rows.Err(); err != nil {
		return storage.Wrap(ErrScanRow, "loadGoals - rows error", err)
	}

	return nil
}
