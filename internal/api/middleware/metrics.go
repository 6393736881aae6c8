package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// routeUnknown метка для запросов, не попавших ни в один маршрут
const routeUnknown = "unmatched"

// Metrics учитывает каждый HTTP запрос. Метка маршрута берется из шаблона mux,
// чтобы /profiles/1/ и /profiles/2/ попадали в один ряд.
func Metrics(recorder MetricsRecorder) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			recorder.RecordHTTPRequest(r.Method, routeTemplate(r), rec.status, time.Since(start))
		})
	}
}

func routeTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return routeUnknown
	}
	tpl, err := route.GetPathTemplate()
	if err != nil {
		return routeUnknown
	}
	return tpl
}
