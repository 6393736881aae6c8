package booking

import "errors"

var (
	// ErrCellAlreadyBooked возвращается, когда на ячейку уже есть бронирование
	ErrCellAlreadyBooked = errors.New("booking.repository: schedule cell already booked")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
