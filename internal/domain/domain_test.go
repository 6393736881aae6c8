package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPhone(t *testing.T) {
	valid := []string{
		"+7 916 123-45-67",
		"8(916)1234567",
		"9161234567",
		"+79161234567",
		"8 916 123 45 67",
	}
	for _, phone := range valid {
		assert.True(t, IsValidPhone(phone), phone)
	}

	invalid := []string{
		"abc",
		"123",
		"",
		"+7 916 abc-45-67",
	}
	for _, phone := range invalid {
		assert.False(t, IsValidPhone(phone), phone)
	}
}

func TestFindChoice(t *testing.T) {
	c, ok := FindChoice(GoalChoices, "travel")
	assert.True(t, ok)
	assert.Equal(t, "Для путешествий", c.Label)

	c, ok = FindChoice(TimeBudgetChoices, "1-2")
	assert.True(t, ok)
	assert.Equal(t, "1-2 часа в неделю", c.Label)

	_, ok = FindChoice(GoalChoices, "sleep")
	assert.False(t, ok)
}

func TestNotFoundErrorsShareBase(t *testing.T) {
	for _, err := range []error{ErrTutorNotFound, ErrGoalNotFound, ErrWeekdayNotFound, ErrTimeNotFound, ErrScheduleNotFound} {
		assert.True(t, errors.Is(err, ErrNotFound), err.Error())
	}
	assert.False(t, errors.Is(ErrSlotTaken, ErrNotFound))
}

func TestTutorHasGoal(t *testing.T) {
	tutor := Tutor{Goals: []Goal{{ID: "travel"}, {ID: "work"}}}
	assert.True(t, tutor.HasGoal("work"))
	assert.False(t, tutor.HasGoal("coding"))
}
