package index

import (
	"net/http"

	"github.com/m04kA/SMC-TutorService/internal/api/handlers"
	"github.com/m04kA/SMC-TutorService/internal/api/views"
)

type Handler struct {
	service  CatalogService
	renderer handlers.Renderer
	limit    int
	logger   Logger
}

func NewHandler(service CatalogService, renderer handlers.Renderer, limit int, logger Logger) *Handler {
	return &Handler{
		service:  service,
		renderer: renderer,
		limit:    limit,
		logger:   logger,
	}
}

// Handle GET /
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Featured(r.Context(), h.limit)
	if err != nil {
		if handlers.IsStorageUnavailable(err) {
			h.logger.Warn("GET / - Storage unavailable: %v", err)
		} else {
			h.logger.Error("GET / - Failed to get featured tutors: %v", err)
		}
		handlers.RespondPageError(w, h.renderer, err)
		return
	}

	handlers.RespondPage(w, h.renderer, http.StatusOK, views.PageIndex, views.IndexData{
		Goals:  result.Goals,
		Tutors: result.Tutors,
	})
}
