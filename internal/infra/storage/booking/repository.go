package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/SMC-TutorService/internal/domain"
	"github.com/m04kA/SMC-TutorService/internal/infra/storage"
	"github.com/m04kA/SMC-TutorService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TutorService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование ячейки расписания.
// Вызывается внутри транзакции вместе с закрытием ячейки (см. schedule.Repository.Close),
// иначе ячейка может остаться открытой при существующем бронировании.
// Уникальный индекс по schedule_cell_id не дает создать второе бронирование той же ячейки.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"name",
			"phone",
			"schedule_cell_id",
		).
		Values(
			booking.Name,
			booking.Phone,
			booking.ScheduleCellID,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
	)

	if err != nil {
		if storage.IsWriteConflict(err) {
			return nil, fmt.Errorf("%w: Create - cell_id=%d: %v", ErrCellAlreadyBooked, booking.ScheduleCellID, err)
		}
		return nil, storage.Wrap(ErrExecQuery, "Create - execute insert", err)
	}

	booking.CreatedAt = createdAt.Time

	return booking, nil
}
