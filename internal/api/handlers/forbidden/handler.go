package forbidden

import (
	"net/http"

	"github.com/gorilla/csrf"

	"github.com/m04kA/SMC-TutorService/internal/api/handlers"
)

type Logger interface {
	Warn(format string, v ...interface{})
}

type Handler struct {
	renderer handlers.Renderer
	logger   Logger
}

func NewHandler(renderer handlers.Renderer, logger Logger) *Handler {
	return &Handler{renderer: renderer, logger: logger}
}

// ServeHTTP форма отправлена без валидного CSRF токена
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.logger.Warn("%s %s - CSRF check failed: %v", r.Method, r.URL.Path, csrf.FailureReason(r))
	handlers.RespondErrorPage(w, h.renderer, http.StatusForbidden, handlers.MsgForbidden)
}
