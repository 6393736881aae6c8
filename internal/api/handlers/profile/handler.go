package profile

import (
	"errors"
	"net/http"
	"strconv"

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

// Handle GET /profiles/{tutorId}/
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tutorIDStr := mux.Vars(r)["tutorId"]
	tutorID, err := strconv.ParseInt(tutorIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /profiles/{id}/ - Invalid tutor ID: %v", err)
		handlers.RespondErrorPage(w, h.renderer, http.StatusNotFound, handlers.MsgTutorNotFound)
		return
	}

	result, err := h.service.Profile(r.Context(), tutorID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTutorNotFound):
			h.logger.Warn("GET /profiles/{id}/ - Tutor not found: tutor_id=%d", tutorID)
		case handlers.IsStorageUnavailable(err):
			h.logger.Warn("GET /profiles/{id}/ - Storage unavailable: %v", err)
		default:
			h.logger.Error("GET /profiles/{id}/ - Failed to get profile: tutor_id=%d, error=%v", tutorID, err)
		}
		handlers.RespondPageError(w, h.renderer, err)
		return
	}

	handlers.RespondPage(w, h.renderer, http.StatusOK, views.PageProfile, views.ProfileData{
		Goals:    result.Goals,
		Tutor:    result.Tutor,
		FreeDays: result.FreeDays,
	})
}
