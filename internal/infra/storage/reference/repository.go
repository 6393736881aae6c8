package reference

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

// Repository репозиторий справочников: дни недели, время занятий, цели
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListWeekdays возвращает дни недели по возрастанию sort_order
func (r *Repository) ListWeekdays(ctx context.Context) ([]domain.WeekdaySlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("code", "name", "sort_order").
		From("weekdays").
		OrderBy("sort_order ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWeekdays - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storage.Wrap(ErrExecQuery, "ListWeekdays - execute query", err)
	}
	defer rows.Close()

	weekdays := make([]domain.WeekdaySlot, 0, 7)
	for rows.Next() {
		var w domain.WeekdaySlot
		if err := rows.Scan(&w.Code, &w.Name, &w.SortOrder); err != nil {
			return nil, fmt.Errorf("%w: ListWeekdays - scan row: %v", ErrScanRow, err)
		}
		weekdays = append(weekdays, w)
	}

	if err := rows.Err(); err != nil {
		return nil, storage.Wrap(ErrScanRow, "ListWeekdays - rows error", err)
	}

	return weekdays, nil
}

// GetWeekday получает день недели по коду
func (r *Repository) GetWeekday(ctx context.Context, code string) (*domain.WeekdaySlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("code", "name", "sort_order").
		From("weekdays").
		Where(squirrel.Eq{"code": code}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeekday - build select query: %v", ErrBuildQuery, err)
	}

	var w domain.WeekdaySlot
	err = executor.QueryRowContext(ctx, query, args...).Scan(&w.Code, &w.Name, &w.SortOrder)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWeekdayNotFound
	}
	if err != nil {
		return nil, storage.Wrap(ErrScanRow, "GetWeekday - scan weekday", err)
	}

	return &w, nil
}

// ListTimeSlots возвращает время занятий по возрастанию sort_order
func (r *Repository) ListTimeSlots(ctx context.Context) ([]domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "label", "sort_order").
		From("time_slots").
		OrderBy("sort_order ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListTimeSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storage.Wrap(ErrExecQuery, "ListTimeSlots - execute query", err)
	}
	defer rows.Close()

	slots := make([]domain.TimeSlot, 0)
	for rows.Next() {
		var s domain.TimeSlot
		if err := rows.Scan(&s.ID, &s.Label, &s.SortOrder); err != nil {
			return nil, fmt.Errorf("%w: ListTimeSlots - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, s)
	}

	if err := rows.Err(); err != nil {
		return nil, storage.Wrap(ErrScanRow, "ListTimeSlots - rows error", err)
	}

	return slots, nil
}

// GetTimeSlotByLabel получает время занятия по подписи ("10:00")
func (r *Repository) GetTimeSlotByLabel(ctx context.Context, label string) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "label", "sort_order").
		From("time_slots").
		Where(squirrel.Eq{"label": label}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetTimeSlotByLabel - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.TimeSlot
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.Label, &s.SortOrder)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTimeSlotNotFound
	}
	if err != nil {
		return nil, storage.Wrap(ErrScanRow, "GetTimeSlotByLabel - scan time slot", err)
	}

	return &s, nil
}

// ListGoals возвращает все цели
func (r *Repository) ListGoals(ctx context.Context) ([]domain.Goal, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "title", "sign").
		From("goals").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListGoals - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storage.Wrap(ErrExecQuery, "ListGoals - execute query", err)
	}
	defer rows.Close()

	goals := make([]domain.Goal, 0)
	for rows.Next() {
		var g domain.Goal
		if err := rows.Scan(&g.ID, &g.Title, &g.Sign); err != nil {
			return nil, fmt.Errorf("%w: ListGoals - scan row: %v", ErrScanRow, err)
		}
		goals = append(goals, g)
	}

	if err := rows.Err(); err != nil {
		return nil, storage.Wrap(ErrScanRow, "ListGoals - rows error", err)
	}

	return goals, nil
}

// GetGoal получает цель по ID
func (r *Repository) GetGoal(ctx context.Context, id string) (*domain.Goal, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "title", "sign").
		From("goals").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetGoal - build select query: %v", ErrBuildQuery, err)
	}

	var g domain.Goal
	err = executor.QueryRowContext(ctx, query, args...).Scan(&g.ID, &g.Title, &g.Sign)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, storage.Wrap(ErrScanRow, "GetGoal - scan goal", err)
	}

	return &g, nil
}

// CreateWeekdays сохраняет дни недели одним запросом
func (r *Repository) CreateWeekdays(ctx context.Context, weekdays []domain.WeekdaySlot) error {
	if len(weekdays) == 0 {
		return nil
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Insert("weekdays").Columns("code", "name", "sort_order")
	for _, w := range weekdays {
		builder = builder.Values(w.Code, w.Name, w.SortOrder)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateWeekdays - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return storage.Wrap(ErrExecQuery, "CreateWeekdays - execute insert", err)
	}

	return nil
}

// CreateTimeSlots сохраняет время занятий и возвращает их с присвоенными ID
func (r *Repository) CreateTimeSlots(ctx context.Context, slots []domain.TimeSlot) ([]domain.TimeSlot, error) {
	if len(slots) == 0 {
		return nil, nil
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Insert("time_slots").Columns("label", "sort_order")
	for _, s := range slots {
		builder = builder.Values(s.Label, s.SortOrder)
	}

	query, args, err := builder.Suffix("RETURNING id, label, sort_order").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateTimeSlots - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storage.Wrap(ErrExecQuery, "CreateTimeSlots - execute insert", err)
	}
	defer rows.Close()

	created := make([]domain.TimeSlot, 0, len(slots))
	for rows.Next() {
		var s domain.TimeSlot
		if err := rows.Scan(&s.ID, &s.Label, &s.SortOrder); err != nil {
			return nil, fmt.Errorf("%w: CreateTimeSlots - scan row: %v", ErrScanRow, err)
		}
		created = append(created, s)
	}

	if err := rows.Err(); err != nil {
		return nil, storage.Wrap(ErrScanRow, "CreateTimeSlots - rows error", err)
	}

	return created, nil
}

// CreateGoals сохраняет цели одним запросом
func (r *Repository) CreateGoals(ctx context.Context, goals []domain.Goal) error {
	if len(goals) == 0 {
		return nil
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Insert("goals").Columns("id", "title", "sign")
	for _, g := range goals {
		builder = builder.Values(g.ID, g.Title, g.Sign)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateGoals - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return storage.Wrap(ErrExecQuery, "CreateGoals - execute insert", err)
	}

	return nil
}
