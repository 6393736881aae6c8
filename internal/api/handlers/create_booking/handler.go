package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TutorService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-TutorService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректное имя или телефон"
	msgSlotTaken          = "указанное время занято"
	msgTutorNotFound      = "преподаватель не найден"
	msgWeekdayNotFound    = "день недели не найден"
	msgTimeNotFound       = "время не найдено"
	msgScheduleNotFound   = "у преподавателя нет такого времени в расписании"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: tutor_id=%d, weekday=%s, time=%s", req.TutorID, req.Weekday, req.Time)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrTimeNotFound):
			h.logger.Warn("POST /bookings - Time not found: time=%s", req.Time)
			handlers.RespondNotFound(w, msgTimeNotFound)

		case errors.Is(err, createBooking.ErrWeekdayNotFound):
			h.logger.Warn("POST /bookings - Weekday not found: weekday=%s", req.Weekday)
			handlers.RespondNotFound(w, msgWeekdayNotFound)

		case errors.Is(err, createBooking.ErrTutorNotFound):
			h.logger.Warn("POST /bookings - Tutor not found: tutor_id=%d", req.TutorID)
			handlers.RespondNotFound(w, msgTutorNotFound)

		case errors.Is(err, createBooking.ErrScheduleNotFound):
			h.logger.Warn("POST /bookings - Schedule cell not found: tutor_id=%d, weekday=%s, time=%s", req.TutorID, req.Weekday, req.Time)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case handlers.IsStorageUnavailable(err):
			h.logger.Warn("POST /bookings - Storage unavailable: %v", err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: tutor_id=%d, error=%v", req.TutorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, tutor_id=%d", result.ID, req.TutorID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
