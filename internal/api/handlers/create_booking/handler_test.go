package create_booking

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TutorService/internal/domain"
	createBooking "github.com/m04kA/SMC-TutorService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-TutorService/pkg/logger"
)

type fakeUseCase struct {
	err error
	req *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &createBooking.Response{
		ID: 5,
		Slot: createBooking.Slot{
			Tutor:   &domain.Tutor{ID: req.TutorID, Name: "Morris Simmmons"},
			Weekday: domain.WeekdaySlot{Code: req.WeekdayCode, Name: "Понедельник"},
			Time:    domain.TimeSlot{Label: req.TimeLabel},
		},
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		CreatedAt:   time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC),
	}, nil
}

const body = `{"tutorId":1,"weekday":"mon","time":"10:00","clientName":"Иван","clientPhone":"89161234567"}`

func do(uc *fakeUseCase, payload string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(w, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(payload)))
	return w
}

func TestHandleCreated(t *testing.T) {
	uc := &fakeUseCase{}
	w := do(uc, body)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{
		"id": 5,
		"tutorId": 1,
		"tutorName": "Morris Simmmons",
		"weekday": "mon",
		"weekdayName": "Понедельник",
		"time": "10:00",
		"clientName": "Иван",
		"clientPhone": "89161234567",
		"createdAt": "2025-03-03T10:00:00Z"
	}`, w.Body.String())
	assert.Equal(t, "mon", uc.req.WeekdayCode)
}

func TestHandleErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		payload    string
		wantStatus int
	}{
		{name: "bad json", payload: "{", wantStatus: http.StatusBadRequest},
		{name: "slot taken", err: createBooking.ErrSlotTaken, payload: body, wantStatus: http.StatusConflict},
		{name: "invalid phone", err: fmt.Errorf("%w: clientPhone", createBooking.ErrInvalidInput), payload: body, wantStatus: http.StatusBadRequest},
		{name: "unknown tutor", err: createBooking.ErrTutorNotFound, payload: body, wantStatus: http.StatusNotFound},
		{name: "unknown weekday", err: createBooking.ErrWeekdayNotFound, payload: body, wantStatus: http.StatusNotFound},
		{name: "unknown time", err: createBooking.ErrTimeNotFound, payload: body, wantStatus: http.StatusNotFound},
		{name: "no cell", err: createBooking.ErrScheduleNotFound, payload: body, wantStatus: http.StatusNotFound},
		{
			name:       "storage unavailable",
			err:        fmt.Errorf("%w: %w", createBooking.ErrInternal, domain.ErrStorageUnavailable),
			payload:    body,
			wantStatus: http.StatusServiceUnavailable,
		},
		{name: "internal", err: createBooking.ErrInternal, payload: body, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(&fakeUseCase{err: tt.err}, tt.payload)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), `"error"`)
		})
	}
}
