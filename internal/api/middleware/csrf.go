package middleware

import (
	"net/http"
	"strings"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
)

// CSRFFieldName имя скрытого поля формы с токеном
const CSRFFieldName = "csrf_token"

// CSRFOptions настройки защиты форм
type CSRFOptions struct {
	Key []byte // 32 байта
	// Secure cookie только по HTTPS. При false запросы считаются пришедшими по HTTP
	Secure bool
	// SkipPrefixes пути без проверки токена (JSON API)
	SkipPrefixes []string
	// Failure отвечает на запрос без валидного токена
	Failure http.Handler
}

// CSRF проверяет токен во всех небезопасных запросах (POST и т.п.).
// Токен для формы берется через csrf.TemplateField(r).
func CSRF(opts CSRFOptions) mux.MiddlewareFunc {
	csrfOpts := []csrf.Option{
		csrf.Secure(opts.Secure),
		csrf.Path("/"),
		csrf.HttpOnly(true),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.FieldName(CSRFFieldName),
	}
	if opts.Failure != nil {
		csrfOpts = append(csrfOpts, csrf.ErrorHandler(opts.Failure))
	}
	protect := csrf.Protect(opts.Key, csrfOpts...)

	return func(next http.Handler) http.Handler {
		protected := protect(next)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, prefix := range opts.SkipPrefixes {
				if strings.HasPrefix(r.URL.Path, prefix) {
					next.ServeHTTP(w, r)
					return
				}
			}

			if !opts.Secure {
				r = csrf.PlaintextHTTPRequest(r)
			}
			protected.ServeHTTP(w, r)
		})
	}
}
