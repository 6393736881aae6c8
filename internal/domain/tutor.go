package domain

// Goal цель занятий ("для путешествий", "для работы", ...)
type Goal struct {
	ID    string
	Title string
	Sign  string // один символ-иконка
}

// Tutor преподаватель
type Tutor struct {
	ID      int64
	Name    string
	About   string
	Rating  float64
	Picture string
	Price   int // стоимость часа

	Goals []Goal
}

// HasGoal проверяет, что у преподавателя есть указанная цель
func (t *Tutor) HasGoal(goalID string) bool {
	for _, g := range t.Goals {
		if g.ID == goalID {
			return true
		}
	}
	return false
}
