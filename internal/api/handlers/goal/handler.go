package goal

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TutorService/internal/api/handlers"
	"github.com/m04kA/SMC-TutorService/internal/api/views"
	"github.com/m04kA/SMC-TutorService/internal/domain"
)

type Handler struct {
	service  CatalogService
	renderer handlers.Renderer
	logger   Logger
}

func NewHandler(service CatalogService, renderer handlers.Renderer, logger Logger) *Handler {
	return &Handler{
		service:  service,
		renderer: renderer,
		logger:   logger,
	}
}

// Handle GET /goals/{goalId}/
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	goalID := mux.Vars(r)["goalId"]

	result, err := h.service.ByGoal(r.Context(), goalID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrGoalNotFound):
			h.logger.Warn("GET /goals/{id}/ - Goal not found: goal_id=%s", goalID)
		case handlers.IsStorageUnavailable(err):
			h.logger.Warn("GET /goals/{id}/ - Storage unavailable: %v", err)
		default:
			h.logger.Error("GET /goals/{id}/ - Failed to get tutors: goal_id=%s, error=%v", goalID, err)
		}
		handlers.RespondPageError(w, h.renderer, err)
		return
	}

	handlers.RespondPage(w, h.renderer, http.StatusOK, views.PageGoal, views.GoalData{
		Goals:  result.Goals,
		Goal:   result.Goal,
		Tutors: result.Tutors,
	})
}
