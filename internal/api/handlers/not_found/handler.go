package not_found

import (
	"net/http"

	"github.com/m04kA/SMC-TutorService/internal/api/handlers"
)

type Handler struct {
	renderer handlers.Renderer
}

func NewHandler(renderer handlers.Renderer) *Handler {
	return &Handler{renderer: renderer}
}

// ServeHTTP неизвестный маршрут
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	handlers.RespondErrorPage(w, h.renderer, http.StatusNotFound, handlers.MsgNotFound)
}
