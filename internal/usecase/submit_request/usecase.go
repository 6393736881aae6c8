package submit_request

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-TutorService/internal/domain"
)

// UseCase use case для приема заявки на подбор преподавателя
type UseCase struct {
	requestRepo RequestRepository
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(requestRepo RequestRepository, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		requestRepo: requestRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute проверяет заявку и сохраняет её с подписями выбранных вариантов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitRequest: goal=%s, time=%s", req.Goal, req.TimeBudget)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitRequest: validation failed: %v", err)
		return nil, err
	}

	// 2. Ключи вариантов в подписи
	goal, timeBudget, err := resolveChoices(req)
	if err != nil {
		uc.logger.Warn("SubmitRequest: %v", err)
		return nil, err
	}

	// 3. Сохраняем заявку
	created, err := uc.requestRepo.Create(ctx, &domain.LessonRequest{
		Name:  strings.TrimSpace(req.ClientName),
		Phone: strings.TrimSpace(req.ClientPhone),
		Goal:  goal.Label,
		Time:  timeBudget.Label,
	})
	if err != nil {
		uc.logger.Error("SubmitRequest: failed to create request: %v", err)
		return nil, fmt.Errorf("%w: failed to create request: %w", ErrInternal, err)
	}

	uc.metrics.RecordLessonRequest(goal.Key)
	uc.logger.Info("SubmitRequest: successfully created request id=%d", created.ID)

	return &Response{
		ID:          created.ID,
		ClientName:  created.Name,
		ClientPhone: created.Phone,
		GoalLabel:   created.Goal,
		TimeLabel:   created.Time,
	}, nil
}
