package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Результаты бронирования для счетчика bookings_total
const (
	BookingCreated   = "created"
	BookingSlotTaken = "slot_taken"
	BookingNotFound  = "not_found"
	BookingInvalid   = "invalid"
	BookingFailed    = "failed"
)

// Metrics набор prometheus-метрик сервиса.
// Все методы безопасно вызывать на nil (метрики выключены).
type Metrics struct {
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	dbQueries     *prometheus.HistogramVec
	dbOpen        prometheus.Gauge
	dbInUse       prometheus.Gauge
	dbIdle        prometheus.Gauge
	bookings      *prometheus.CounterVec
	lessonRequest *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики в указанном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "route"}),
		dbQueries: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),
		dbOpen: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_open",
			Help:        "Open connections in the pool",
			ConstLabels: constLabels,
		}),
		dbInUse: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_in_use",
			Help:        "Connections currently in use",
			ConstLabels: constLabels,
		}),
		dbIdle: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_idle",
			Help:        "Idle connections in the pool",
			ConstLabels: constLabels,
		}),
		bookings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_total",
			Help:        "Booking attempts by outcome",
			ConstLabels: constLabels,
		}, []string{"result"}),
		lessonRequest: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "lesson_requests_total",
			Help:        "Lesson requests by goal",
			ConstLabels: constLabels,
		}, []string{"goal"}),
	}

	reg.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.dbQueries,
		m.dbOpen,
		m.dbInUse,
		m.dbIdle,
		m.bookings,
		m.lessonRequest,
	)

	return m
}

// RecordHTTPRequest учитывает обработанный HTTP запрос
func (m *Metrics) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordDBQuery учитывает выполненный запрос к БД
func (m *Metrics) RecordDBQuery(operation string, err error, duration time.Duration) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil && err != sql.ErrNoRows {
		status = "error"
	}
	m.dbQueries.WithLabelValues(operation, status).Observe(duration.Seconds())
}

// SetDBStats обновляет метрики пула соединений
func (m *Metrics) SetDBStats(stats sql.DBStats) {
	if m == nil {
		return
	}
	m.dbOpen.Set(float64(stats.OpenConnections))
	m.dbInUse.Set(float64(stats.InUse))
	m.dbIdle.Set(float64(stats.Idle))
}

// RecordBooking учитывает исход попытки бронирования
func (m *Metrics) RecordBooking(result string) {
	if m == nil {
		return
	}
	m.bookings.WithLabelValues(result).Inc()
}

// RecordLessonRequest учитывает принятую заявку
func (m *Metrics) RecordLessonRequest(goal string) {
	if m == nil {
		return
	}
	m.lessonRequest.WithLabelValues(goal).Inc()
}
