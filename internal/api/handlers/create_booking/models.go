package create_booking

import (
	"time"

	createBooking "github.com/m04kA/SMC-TutorService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	TutorID     int64  `json:"tutorId"`
	Weekday     string `json:"weekday"` // "mon"
	Time        string `json:"time"`    // "10:00"
	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64  `json:"id"`
	TutorID     int64  `json:"tutorId"`
	TutorName   string `json:"tutorName"`
	Weekday     string `json:"weekday"`
	WeekdayName string `json:"weekdayName"`
	Time        string `json:"time"`
	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone"`
	CreatedAt   string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		Target: createBooking.Target{
			TutorID:     r.TutorID,
			WeekdayCode: r.Weekday,
			TimeLabel:   r.Time,
		},
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		TutorID:     resp.Tutor.ID,
		TutorName:   resp.Tutor.Name,
		Weekday:     resp.Weekday.Code,
		WeekdayName: resp.Weekday.Name,
		Time:        resp.Time.Label,
		ClientName:  resp.ClientName,
		ClientPhone: resp.ClientPhone,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}
