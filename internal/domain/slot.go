package domain

// WeekdaySlot день недели из справочника. SortOrder задает порядок отображения.
type WeekdaySlot struct {
	Code      string // "mon", "tue", ...
	Name      string // "Понедельник"
	SortOrder int
}

// TimeSlot время занятия из справочника
type TimeSlot struct {
	ID        int64
	Label     string // "10:00"
	SortOrder int
}

// ScheduleCell ячейка недельного расписания преподавателя.
// Для каждой тройки (преподаватель, день, время) существует ровно одна ячейка.
type ScheduleCell struct {
	ID          int64
	TutorID     int64
	WeekdayCode string
	Time        TimeSlot
	IsOpen      bool
}

// FreeDay день недели со списком свободных ячеек, отсортированных по времени
type FreeDay struct {
	Weekday WeekdaySlot
	Cells   []ScheduleCell
}

// HasFreeTime возвращает true, если в этот день есть хотя бы одно свободное время
func (d *FreeDay) HasFreeTime() bool {
	return len(d.Cells) > 0
}
