package domain

import "time"

// Booking бронирование конкретной ячейки расписания.
// На одну ячейку приходится не больше одного бронирования.
type Booking struct {
	ID             int64
	ScheduleCellID int64
	Name           string
	Phone          string
	CreatedAt      time.Time
}

// LessonRequest заявка на подбор преподавателя, не связанная с расписанием.
// Goal и Time хранят отображаемые подписи, а не ключи формы.
type LessonRequest struct {
	ID    int64
	Name  string
	Phone string
	Goal  string
	Time  string
}
