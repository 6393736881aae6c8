package provision

import "github.com/m04kA/SMC-TutorService/internal/domain"

// Response сколько записей создано
type Response struct {
	Weekdays int
	Times    int
	Goals    int
	Tutors   int
	Cells    int
}

// plan строки для вставки, собранные из набора данных.
// Ячейки ссылаются на время по подписи, ID времени известен только после вставки.
type plan struct {
	weekdays []domain.WeekdaySlot
	times    []domain.TimeSlot
	goals    []domain.Goal
	tutors   []*domain.Tutor
	cells    []plannedCell
}

type plannedCell struct {
	tutorID   int64
	weekday   string
	timeLabel string
	isOpen    bool
}
