package get_free_days

import getFreeDays "github.com/m04kA/SMC-TutorService/internal/usecase/get_free_days"

// FreeDaysResponse HTTP response model
type FreeDaysResponse struct {
	TutorID   int64     `json:"tutorId"`
	TutorName string    `json:"tutorName"`
	Days      []FreeDay `json:"days"`
}

// FreeDay день недели со свободным временем
type FreeDay struct {
	Weekday string   `json:"weekday"`
	Name    string   `json:"name"`
	Times   []string `json:"times"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getFreeDays.Response) *FreeDaysResponse {
	days := make([]FreeDay, 0, len(resp.FreeDays))
	for _, d := range resp.FreeDays {
		times := make([]string, 0, len(d.Cells))
		for _, c := range d.Cells {
			times = append(times, c.Time.Label)
		}
		days = append(days, FreeDay{
			Weekday: d.Weekday.Code,
			Name:    d.Weekday.Name,
			Times:   times,
		})
	}

	return &FreeDaysResponse{
		TutorID:   resp.Tutor.ID,
		TutorName: resp.Tutor.Name,
		Days:      days,
	}
}
