package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TutorService/internal/api/forms"
	"github.com/m04kA/SMC-TutorService/internal/api/handlers"
	"github.com/m04kA/SMC-TutorService/internal/api/views"
	"github.com/m04kA/SMC-TutorService/internal/domain"
	createBooking "github.com/m04kA/SMC-TutorService/internal/usecase/create_booking"
)

const msgInvalidForm = "Проверьте имя и телефон"

type Handler struct {
	useCase   CreateBookingUseCase
	validator *forms.Validator
	renderer  handlers.Renderer
	logger    Logger
}

func NewHandler(useCase CreateBookingUseCase, validator *forms.Validator, renderer handlers.Renderer, logger Logger) *Handler {
	return &Handler{
		useCase:   useCase,
		validator: validator,
		renderer:  renderer,
		logger:    logger,
	}
}

// Handle GET /booking/{tutorId}/{weekday}/{time}/ - форма бронирования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	target, ok := h.target(w, r)
	if !ok {
		return
	}

	slot, err := h.useCase.Prepare(r.Context(), target)
	if err != nil {
		h.respondError(w, "GET", target, err)
		return
	}

	h.renderForm(w, r, slot, forms.BookingForm{}, nil)
}

// HandleSubmit POST /booking/{tutorId}/{weekday}/{time}/ - создание бронирования
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	target, ok := h.target(w, r)
	if !ok {
		return
	}

	form := forms.ParseBooking(r)

	if errs := h.validator.Validate(form); len(errs) > 0 {
		h.logger.Warn("POST /booking/ - Invalid form: %v", errs)
		slot, err := h.useCase.Prepare(r.Context(), target)
		if err != nil {
			h.respondError(w, "POST", target, err)
			return
		}
		h.renderForm(w, r, slot, form, errs)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &createBooking.Request{
		Target:      target,
		ClientName:  form.ClientName,
		ClientPhone: form.ClientPhone,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			h.logger.Warn("POST /booking/ - Rejected by use case: %v", err)
			slot, prepErr := h.useCase.Prepare(r.Context(), target)
			if prepErr != nil {
				h.respondError(w, "POST", target, prepErr)
				return
			}
			h.renderForm(w, r, slot, form, forms.Errors{"": msgInvalidForm})
			return
		}
		h.respondError(w, "POST", target, err)
		return
	}

	h.logger.Info("POST /booking/ - Booking created: booking_id=%d, tutor_id=%d, weekday=%s, time=%s",
		result.ID, target.TutorID, target.WeekdayCode, target.TimeLabel)
	handlers.RespondPage(w, h.renderer, http.StatusOK, views.PageBookingDone, views.BookingDoneData{
		Tutor:       result.Tutor,
		Weekday:     result.Weekday,
		Time:        result.Time,
		ClientName:  result.ClientName,
		ClientPhone: result.ClientPhone,
	})
}

// target разбирает путь запроса. Нечисловой ID преподавателя означает, что такого преподавателя нет.
func (h *Handler) target(w http.ResponseWriter, r *http.Request) (createBooking.Target, bool) {
	vars := mux.Vars(r)

	tutorID, err := strconv.ParseInt(vars["tutorId"], 10, 64)
	if err != nil {
		h.logger.Warn("%s /booking/ - Invalid tutor ID: %v", r.Method, err)
		handlers.RespondErrorPage(w, h.renderer, http.StatusNotFound, handlers.MsgTutorNotFound)
		return createBooking.Target{}, false
	}

	return createBooking.Target{
		TutorID:     tutorID,
		WeekdayCode: vars["weekday"],
		TimeLabel:   vars["time"],
	}, true
}

func (h *Handler) respondError(w http.ResponseWriter, method string, target createBooking.Target, err error) {
	switch {
	case errors.Is(err, domain.ErrSlotTaken):
		h.logger.Warn("%s /booking/ - Slot taken: tutor_id=%d, weekday=%s, time=%s",
			method, target.TutorID, target.WeekdayCode, target.TimeLabel)
	case errors.Is(err, domain.ErrNotFound):
		h.logger.Warn("%s /booking/ - Not found: tutor_id=%d, weekday=%s, time=%s, error=%v",
			method, target.TutorID, target.WeekdayCode, target.TimeLabel, err)
	case handlers.IsStorageUnavailable(err):
		h.logger.Warn("%s /booking/ - Storage unavailable: %v", method, err)
	default:
		h.logger.Error("%s /booking/ - Failed: tutor_id=%d, weekday=%s, time=%s, error=%v",
			method, target.TutorID, target.WeekdayCode, target.TimeLabel, err)
	}
	handlers.RespondPageError(w, h.renderer, err)
}

func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, slot *createBooking.Slot, form forms.BookingForm, errs forms.Errors) {
	handlers.RespondPage(w, h.renderer, http.StatusOK, views.PageBooking, views.BookingData{
		CSRFField: csrf.TemplateField(r),
		Tutor:     slot.Tutor,
		Weekday:   slot.Weekday,
		Time:      slot.Time,
		Form:      form,
		Errors:    errs,
	})
}
