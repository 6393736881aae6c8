package schedule

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

// batchSize сколько ячеек вставлять одним INSERT (ограничение PostgreSQL на число параметров)
const batchSize = 1000

var cellColumns = []string{
	"sc.id",
	"sc.tutor_id",
	"sc.weekday_code",
	"sc.is_open",
	"ts.id",
	"ts.label",
	"ts.sort_order",
}

// Repository репозиторий ячеек недельного расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListByTutor возвращает все ячейки преподавателя (открытые и закрытые) вместе с временем
func (r *Repository) ListByTutor(ctx context.Context, tutorID int64) ([]domain.ScheduleCell, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(cellColumns...).
		From("schedule_cells sc").
		Join("time_slots ts ON ts.id = sc.time_slot_id").
		Where(squirrel.Eq{"sc.tutor_id": tutorID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByTutor - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storage.Wrap(ErrExecQuery, "ListByTutor - execute query", err)
	}
	defer rows.Close()

	cells := make([]domain.ScheduleCell, 0)
	for rows.Next() {
		c, err := scanCell(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByTutor - scan row: %v", ErrScanRow, err)
		}
		cells = append(cells, c)
	}

	if err := rows.Err(); err != nil {
		return nil, storage.Wrap(ErrScanRow, "ListByTutor - rows error", err)
	}

	return cells, nil
}

// Get получает ячейку (преподаватель, день, время).
// Внутри транзакции строка блокируется (FOR UPDATE): конкурентное бронирование
// той же ячейки ждет завершения текущей транзакции и затем читает новое значение is_open.
func (r *Repository) Get(ctx context.Context, tutorID int64, weekdayCode string, timeSlotID int64) (*domain.ScheduleCell, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(cellColumns...).
		From("schedule_cells sc").
		Join("time_slots ts ON ts.id = sc.time_slot_id").
		Where(squirrel.Eq{"sc.tutor_id": tutorID}).
		Where(squirrel.Eq{"sc.weekday_code": weekdayCode}).
		Where(squirrel.Eq{"sc.time_slot_id": timeSlotID})

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE OF sc")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	cell, err := scanCell(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCellNotFound
	}
	if err != nil {
		return nil, storage.Wrap(ErrScanRow, "Get - scan cell", err)
	}

	return &cell, nil
}

// Close закрывает открытую ячейку. Закрыть уже закрытую ячейку нельзя: ErrCellClosed.
func (r *Repository) Close(ctx context.Context, cellID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("schedule_cells").
		Set("is_open", false).
		Where(squirrel.Eq{"id": cellID}).
		Where(squirrel.Eq{"is_open": true}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Close - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return storage.Wrap(ErrExecQuery, "Close - execute update", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Close - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCellClosed
	}

	return nil
}

// CreateBatch сохраняет ячейки расписания пачками
func (r *Repository) CreateBatch(ctx context.Context, cells []domain.ScheduleCell) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	for start := 0; start < len(cells); start += batchSize {
		end := min(start+batchSize, len(cells))

		builder := psqlbuilder.Insert("schedule_cells").
			Columns("tutor_id", "weekday_code", "time_slot_id", "is_open")
		for _, c := range cells[start:end] {
			builder = builder.Values(c.TutorID, c.WeekdayCode, c.Time.ID, c.IsOpen)
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return storage.Wrap(ErrExecQuery, "CreateBatch - execute insert", err)
		}
	}

	return nil
}

// Count количество ячеек расписания
func (r *Repository) Count(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").From("schedule_cells").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, storage.Wrap(ErrScanRow, "Count - scan count", err)
	}

	return count, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanCell(row scanner) (domain.ScheduleCell, error) {
	var c domain.ScheduleCell
	err := row.Scan(
		&c.ID,
		&c.TutorID,
		&c.WeekdayCode,
		&c.IsOpen,
		&c.Time.ID,
		&c.Time.Label,
		&c.Time.SortOrder,
	)
	return c, err
}
