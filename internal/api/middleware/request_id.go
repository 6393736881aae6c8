package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// HeaderRequestID заголовок с идентификатором запроса
const HeaderRequestID = "X-Request-ID"

type ctxKey struct{}

// RequestIDFromContext возвращает ID запроса, выставленный RequestLogger
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// RequestLogger присваивает запросу ID (или берет из заголовка X-Request-ID)
// и пишет в лог строку на каждый обработанный запрос
func RequestLogger(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(HeaderRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set(HeaderRequestID, requestID)

			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), ctxKey{}, requestID)))

			elapsed := time.Since(start)
			switch {
			case rec.status >= http.StatusInternalServerError:
				logger.Error("%s %s - %d (%s) request_id=%s", r.Method, r.URL.Path, rec.status, elapsed, requestID)
			case rec.status >= http.StatusBadRequest:
				logger.Warn("%s %s - %d (%s) request_id=%s", r.Method, r.URL.Path, rec.status, elapsed, requestID)
			default:
				logger.Info("%s %s - %d (%s) request_id=%s", r.Method, r.URL.Path, rec.status, elapsed, requestID)
			}
		})
	}
}
