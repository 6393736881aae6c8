package catalog

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/m04kA/SMC-TutorService/internal/domain"
	"github.com/m04kA/SMC-TutorService/internal/service/catalog/models"
)

// Service сервис витрины: главная, подборка по цели, профиль преподавателя
type Service struct {
	tutorRepo TutorRepository
	goalRepo  GoalRepository
	freeDays  FreeDaysUseCase
	shuffle   func(n int, swap func(i, j int))
	logger    Logger
}

// NewService создает новый экземпляр сервиса витрины
func NewService(
	tutorRepo TutorRepository,
	goalRepo GoalRepository,
	freeDays FreeDaysUseCase,
	logger Logger,
) *Service {
	return &Service{
		tutorRepo: tutorRepo,
		goalRepo:  goalRepo,
		freeDays:  freeDays,
		shuffle:   rand.Shuffle,
		logger:    logger,
	}
}

// Featured возвращает все цели и случайную выборку не более limit преподавателей
func (s *Service) Featured(ctx context.Context, limit int) (*models.FeaturedResponse, error) {
	goals, err := s.goalRepo.ListGoals(ctx)
	if err != nil {
		s.logger.Error("Featured: failed to list goals: %v", err)
		return nil, fmt.Errorf("%w: Featured - list goals: %w", ErrInternal, err)
	}

	tutors, err := s.tutorRepo.List(ctx)
	if err != nil {
		s.logger.Error("Featured: failed to list tutors: %v", err)
		return nil, fmt.Errorf("%w: Featured - list tutors: %w", ErrInternal, err)
	}

	if limit > 0 && len(tutors) > limit {
		s.shuffle(len(tutors), func(i, j int) {
			tutors[i], tutors[j] = tutors[j], tutors[i]
		})
		tutors = tutors[:limit]
	}

	return &models.FeaturedResponse{Goals: goals, Tutors: tutors}, nil
}

// ByGoal возвращает цель и её преподавателей
func (s *Service) ByGoal(ctx context.Context, goalID string) (*models.GoalResponse, error) {
	goal, err := s.goalRepo.GetGoal(ctx, goalID)
	if err != nil {
		if errors.Is(err, domain.ErrGoalNotFound) {
			s.logger.Warn("ByGoal: goal %q not found", goalID)
			return nil, ErrGoalNotFound
		}
		s.logger.Error("ByGoal: failed to get goal %q: %v", goalID, err)
		return nil, fmt.Errorf("%w: ByGoal - get goal: %w", ErrInternal, err)
	}

	goals, err := s.goalRepo.ListGoals(ctx)
	if err != nil {
		s.logger.Error("ByGoal: failed to list goals: %v", err)
		return nil, fmt.Errorf("%w: ByGoal - list goals: %w", ErrInternal, err)
	}

	tutors, err := s.tutorRepo.ListByGoal(ctx, goalID)
	if err != nil {
		s.logger.Error("ByGoal: failed to list tutors of goal %q: %v", goalID, err)
		return nil, fmt.Errorf("%w: ByGoal - list tutors: %w", ErrInternal, err)
	}

	return &models.GoalResponse{Goals: goals, Goal: goal, Tutors: tutors}, nil
}

// Profile возвращает преподавателя, его свободные дни и все цели для меню
func (s *Service) Profile(ctx context.Context, tutorID int64) (*models.ProfileResponse, error) {
	resp, err := s.freeDays.Execute(ctx, tutorID)
	if err != nil {
		// Ошибки usecase уже содержат нужные sentinel (not found, storage unavailable)
		return nil, err
	}

	goals, err := s.goalRepo.ListGoals(ctx)
	if err != nil {
		s.logger.Error("Profile: failed to list goals: %v", err)
		return nil, fmt.Errorf("%w: Profile - list goals: %w", ErrInternal, err)
	}

	return &models.ProfileResponse{Goals: goals, Tutor: resp.Tutor, FreeDays: resp.FreeDays}, nil
}
