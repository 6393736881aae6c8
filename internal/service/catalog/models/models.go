package models

import "github.com/m04kA/SMC-TutorService/internal/domain"

// FeaturedResponse данные главной страницы
type FeaturedResponse struct {
	Goals  []domain.Goal
	Tutors []*domain.Tutor
}

// GoalResponse данные страницы цели
type GoalResponse struct {
	Goals  []domain.Goal
	Goal   *domain.Goal
	Tutors []*domain.Tutor
}

// ProfileResponse данные страницы преподавателя
type ProfileResponse struct {
	Goals    []domain.Goal
	Tutor    *domain.Tutor
	FreeDays []domain.FreeDay
}
