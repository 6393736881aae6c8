package request_form

import (
	"net/http"

	"github.com/gorilla/csrf"

	"github.com/m04kA/SMC-TutorService/internal/api/forms"
	"github.com/m04kA/SMC-TutorService/internal/api/handlers"
	"github.com/m04kA/SMC-TutorService/internal/api/views"
	"github.com/m04kA/SMC-TutorService/internal/domain"
)

type Handler struct {
	renderer handlers.Renderer
}

func NewHandler(renderer handlers.Renderer) *Handler {
	return &Handler{renderer: renderer}
}

// Handle GET /request/
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondPage(w, h.renderer, http.StatusOK, views.PageRequest, views.RequestData{
		CSRFField:   csrf.TemplateField(r),
		Form:        forms.NewRequestForm(),
		GoalChoices: domain.GoalChoices,
		TimeChoices: domain.TimeBudgetChoices,
	})
}
