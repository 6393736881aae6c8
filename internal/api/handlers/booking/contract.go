package booking

import (
	"context"

	createBooking "github.com/m04kA/SMC-TutorService/internal/usecase/create_booking"
)

type CreateBookingUseCase interface {
	Prepare(ctx context.Context, target createBooking.Target) (*createBooking.Slot, error)
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
