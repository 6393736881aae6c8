package request_done

import (
	"errors"
	"net/http"

	"github.com/gorilla/csrf"

	"github.com/m04kA/SMC-TutorService/internal/api/forms"
	"github.com/m04kA/SMC-TutorService/internal/api/handlers"
	"github.com/m04kA/SMC-TutorService/internal/api/views"
	"github.com/m04kA/SMC-TutorService/internal/domain"
	submitRequest "github.com/m04kA/SMC-TutorService/internal/usecase/submit_request"
)

const (
	msgInvalidChoice = "Выберите цель и время из списка"
	msgInvalidForm   = "Проверьте имя и телефон"
)

type Handler struct {
	useCase   SubmitRequestUseCase
	validator *forms.Validator
	renderer  handlers.Renderer
	// legacyChoiceStatus неизвестный вариант в форме отдает 404 вместо формы с ошибкой
	legacyChoiceStatus bool
	logger             Logger
}

func NewHandler(
	useCase SubmitRequestUseCase,
	validator *forms.Validator,
	renderer handlers.Renderer,
	legacyChoiceStatus bool,
	logger Logger,
) *Handler {
	return &Handler{
		useCase:            useCase,
		validator:          validator,
		renderer:           renderer,
		legacyChoiceStatus: legacyChoiceStatus,
		logger:             logger,
	}
}

// Handle POST /request_done/
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	form := forms.ParseRequest(r)

	if errs := h.validator.Validate(form); len(errs) > 0 {
		h.logger.Warn("POST /request_done/ - Invalid form: %v", errs)
		h.renderForm(w, r, form, errs)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &submitRequest.Request{
		ClientName:  form.ClientName,
		ClientPhone: form.ClientPhone,
		Goal:        form.ClientGoal,
		TimeBudget:  form.ClientTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, submitRequest.ErrInvalidChoice):
			h.logger.Warn("POST /request_done/ - Invalid choice: goal=%q, time=%q", form.ClientGoal, form.ClientTime)
			if h.legacyChoiceStatus {
				handlers.RespondErrorPage(w, h.renderer, http.StatusNotFound, handlers.MsgInvalidData)
				return
			}
			h.renderForm(w, r, form, forms.Errors{"": msgInvalidChoice})

		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("POST /request_done/ - Rejected by use case: %v", err)
			h.renderForm(w, r, form, forms.Errors{"": msgInvalidForm})

		case handlers.IsStorageUnavailable(err):
			h.logger.Warn("POST /request_done/ - Storage unavailable: %v", err)
			handlers.RespondDBEmpty(w, h.renderer)

		default:
			h.logger.Error("POST /request_done/ - Failed to submit request: %v", err)
			handlers.RespondPageError(w, h.renderer, err)
		}
		return
	}

	h.logger.Info("POST /request_done/ - Request created: request_id=%d", result.ID)
	handlers.RespondPage(w, h.renderer, http.StatusOK, views.PageRequestDone, views.RequestDoneData{
		ClientName:  result.ClientName,
		ClientPhone: result.ClientPhone,
		GoalLabel:   result.GoalLabel,
		TimeLabel:   result.TimeLabel,
	})
}

func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, form forms.RequestForm, errs forms.Errors) {
	handlers.RespondPage(w, h.renderer, http.StatusOK, views.PageRequest, views.RequestData{
		CSRFField:   csrf.TemplateField(r),
		Form:        form,
		Errors:      errs,
		GoalChoices: domain.GoalChoices,
		TimeChoices: domain.TimeBudgetChoices,
	})
}
