package create_booking

import (
	"time"

	"github.com/m04kA/SMC-TutorService/internal/domain"
)

// Target модель запроса формы бронирования: какую ячейку хотят занять
type Target struct {
	TutorID     int64  // ID преподавателя
	WeekdayCode string // Код дня недели ("mon")
	TimeLabel   string // Время ("10:00")
}

// Request модель запроса на создание бронирования
type Request struct {
	Target
	ClientName  string // Имя клиента
	ClientPhone string // Телефон клиента
}

// Slot разрешенная ячейка: преподаватель, день и время из справочников
type Slot struct {
	Tutor   *domain.Tutor
	Weekday domain.WeekdaySlot
	Time    domain.TimeSlot
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID             int64
	ScheduleCellID int64
	Slot
	ClientName  string
	ClientPhone string
	CreatedAt   time.Time
}
