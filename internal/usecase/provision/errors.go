package provision

import "errors"

var (
	// ErrUnknownGoal возвращается, когда у преподавателя указана цель, которой нет в наборе
	ErrUnknownGoal = errors.New("provision: unknown goal")

	// ErrUnknownWeekday возвращается, когда в сетке преподавателя день, которого нет в наборе
	ErrUnknownWeekday = errors.New("provision: unknown weekday")

	// ErrUnknownTime возвращается, когда в сетке преподавателя время, которого нет в наборе
	ErrUnknownTime = errors.New("provision: unknown time")

	// ErrDuplicate возвращается при повторяющихся кодах дней, времени, целей или ID преподавателей
	ErrDuplicate = errors.New("provision: duplicate entry")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("provision: internal error")
)
