package provision

import (
	"fmt"

	"github.com/m04kA/SMC-TutorService/internal/domain"
	"github.com/m04kA/SMC-TutorService/internal/infra/seed"
)

// buildPlan проверяет набор данных и раскладывает его по таблицам.
// Порядок дней и времени в наборе становится SortOrder (с единицы).
func buildPlan(ds *seed.Dataset) (*plan, error) {
	p := &plan{}

	weekdayCodes := make(map[string]bool, len(ds.Weekdays))
	for i, wd := range ds.Weekdays {
		if weekdayCodes[wd.Code] {
			return nil, fmt.Errorf("%w: weekday %q", ErrDuplicate, wd.Code)
		}
		weekdayCodes[wd.Code] = true
		p.weekdays = append(p.weekdays, domain.WeekdaySlot{Code: wd.Code, Name: wd.Name, SortOrder: i + 1})
	}

	timeLabels := make(map[string]bool, len(ds.Times))
	for i, label := range ds.Times {
		if timeLabels[label] {
			return nil, fmt.Errorf("%w: time %q", ErrDuplicate, label)
		}
		timeLabels[label] = true
		p.times = append(p.times, domain.TimeSlot{Label: label, SortOrder: i + 1})
	}

	goals := make(map[string]domain.Goal, len(ds.Goals))
	for _, g := range ds.Goals {
		if _, ok := goals[g.ID]; ok {
			return nil, fmt.Errorf("%w: goal %q", ErrDuplicate, g.ID)
		}
		goal := domain.Goal{ID: g.ID, Title: g.Title, Sign: g.Sign}
		goals[g.ID] = goal
		p.goals = append(p.goals, goal)
	}

	tutorIDs := make(map[int64]bool, len(ds.Tutors))
	for _, t := range ds.Tutors {
		if tutorIDs[t.ID] {
			return nil, fmt.Errorf("%w: tutor id=%d", ErrDuplicate, t.ID)
		}
		tutorIDs[t.ID] = true

		tutor := &domain.Tutor{
			ID:      t.ID,
			Name:    t.Name,
			About:   t.About,
			Rating:  t.Rating,
			Picture: t.Picture,
			Price:   t.Price,
		}
		for _, goalID := range t.Goals {
			goal, ok := goals[goalID]
			if !ok {
				return nil, fmt.Errorf("%w: %q of tutor id=%d", ErrUnknownGoal, goalID, t.ID)
			}
			tutor.Goals = append(tutor.Goals, goal)
		}
		p.tutors = append(p.tutors, tutor)

		for day, slots := range t.Free {
			if !weekdayCodes[day] {
				return nil, fmt.Errorf("%w: %q of tutor id=%d", ErrUnknownWeekday, day, t.ID)
			}
			for label := range slots {
				if !timeLabels[label] {
					return nil, fmt.Errorf("%w: %q of tutor id=%d", ErrUnknownTime, label, t.ID)
				}
			}
		}

		// Обходим дни и время в порядке набора, чтобы ID ячеек были предсказуемы
		for _, wd := range ds.Weekdays {
			slots, ok := t.Free[wd.Code]
			if !ok {
				continue
			}
			for _, label := range ds.Times {
				isOpen, ok := slots[label]
				if !ok {
					continue
				}
				p.cells = append(p.cells, plannedCell{
					tutorID:   t.ID,
					weekday:   wd.Code,
					timeLabel: label,
					isOpen:    isOpen,
				})
			}
		}
	}

	return p, nil
}
