package request_done

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TutorService/internal/api/forms"
	"github.com/m04kA/SMC-TutorService/internal/api/handlers"
	"github.com/m04kA/SMC-TutorService/internal/api/views"
	"github.com/m04kA/SMC-TutorService/internal/domain"
	submitRequest "github.com/m04kA/SMC-TutorService/internal/usecase/submit_request"
	"github.com/m04kA/SMC-TutorService/pkg/logger"
)

type fakeUseCase struct {
	calls int
	err   error
}

func (f *fakeUseCase) Execute(_ context.Context, req *submitRequest.Request) (*submitRequest.Response, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	goal, ok := domain.FindChoice(domain.GoalChoices, req.Goal)
	if !ok {
		return nil, fmt.Errorf("%w: goal %q", submitRequest.ErrInvalidChoice, req.Goal)
	}
	timeBudget, _ := domain.FindChoice(domain.TimeBudgetChoices, req.TimeBudget)
	return &submitRequest.Response{
		ID:          1,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		GoalLabel:   goal.Label,
		TimeLabel:   timeBudget.Label,
	}, nil
}

func post(t *testing.T, uc *fakeUseCase, legacy bool, values url.Values) *httptest.ResponseRecorder {
	renderer, err := views.New()
	require.NoError(t, err)

	h := NewHandler(uc, forms.NewValidator(), renderer, legacy, logger.NewNop())

	r := httptest.NewRequest(http.MethodPost, "/request_done/", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func validForm() url.Values {
	return url.Values{
		"clientName":  {"Ivan"},
		"clientPhone": {"+79161112233"},
		"clientGoal":  {"travel"},
		"clientTime":  {"1-2"},
	}
}

func TestHandle(t *testing.T) {
	uc := &fakeUseCase{}
	w := post(t, uc, false, validForm())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Для путешествий")
	assert.Contains(t, w.Body.String(), "1-2 часа в неделю")
	assert.Equal(t, 1, uc.calls)
}

func TestHandleInvalidFormIsRerendered(t *testing.T) {
	uc := &fakeUseCase{}
	values := validForm()
	values.Set("clientPhone", "abc")

	w := post(t, uc, false, values)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Телефон должен содержать от 6 до 11 цифр")
	assert.Contains(t, w.Body.String(), `value="Ivan"`)
	assert.Zero(t, uc.calls)
}

func TestHandleInvalidChoice(t *testing.T) {
	values := validForm()
	values.Set("clientGoal", "fun")

	w := post(t, &fakeUseCase{}, false, values)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), msgInvalidChoice)

	w = post(t, &fakeUseCase{}, true, values)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), handlers.MsgInvalidData)
	assert.NotContains(t, w.Body.String(), handlers.MsgNotFound)
}

func TestHandleStorageUnavailable(t *testing.T) {
	uc := &fakeUseCase{err: fmt.Errorf("%w: %w", submitRequest.ErrInternal, domain.ErrStorageUnavailable)}

	w := post(t, uc, false, validForm())
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "База данных пуста")
}
