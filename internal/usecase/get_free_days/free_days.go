package get_free_days

import (
	"sort"

	"github.com/m04kA/SMC-TutorService/internal/domain"
)

// buildFreeDays раскладывает открытые ячейки по дням недели.
// Дни идут по SortOrder дня, ячейки внутри дня по SortOrder времени.
// Порядок входных срезов не важен. Дни без открытых ячеек остаются с пустым списком.
func buildFreeDays(weekdays []domain.WeekdaySlot, cells []domain.ScheduleCell) []domain.FreeDay {
	days := make([]domain.WeekdaySlot, len(weekdays))
	copy(days, weekdays)
	sort.SliceStable(days, func(i, j int) bool {
		return days[i].SortOrder < days[j].SortOrder
	})

	open := make(map[string][]domain.ScheduleCell, len(days))
	for _, c := range cells {
		if c.IsOpen {
			open[c.WeekdayCode] = append(open[c.WeekdayCode], c)
		}
	}

	result := make([]domain.FreeDay, 0, len(days))
	for _, wd := range days {
		dayCells := open[wd.Code]
		sort.SliceStable(dayCells, func(i, j int) bool {
			return dayCells[i].Time.SortOrder < dayCells[j].Time.SortOrder
		})
		if dayCells == nil {
			dayCells = []domain.ScheduleCell{}
		}
		result = append(result, domain.FreeDay{Weekday: wd, Cells: dayCells})
	}

	return result
}
