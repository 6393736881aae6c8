package get_free_days

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TutorService/internal/api/handlers"
	getFreeDays "github.com/m04kA/SMC-TutorService/internal/usecase/get_free_days"
)

const (
	msgInvalidTutorID = "некорректный ID преподавателя"
	msgTutorNotFound  = "преподаватель не найден"
)

type Handler struct {
	useCase GetFreeDaysUseCase
	logger  Logger
}

func NewHandler(useCase GetFreeDaysUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tutors/{tutorId}/free-days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tutorIDStr := mux.Vars(r)["tutorId"]
	tutorID, err := strconv.ParseInt(tutorIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /tutors/{id}/free-days - Invalid tutor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTutorID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), tutorID)
	if err != nil {
		switch {
		case errors.Is(err, getFreeDays.ErrTutorNotFound):
			h.logger.Warn("GET /tutors/{id}/free-days - Tutor not found: tutor_id=%d", tutorID)
			handlers.RespondNotFound(w, msgTutorNotFound)

		case handlers.IsStorageUnavailable(err):
			h.logger.Warn("GET /tutors/{id}/free-days - Storage unavailable: %v", err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("GET /tutors/{id}/free-days - Failed to get free days: tutor_id=%d, error=%v", tutorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
