package forbidden

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TutorService/internal/api/handlers"
	"github.com/m04kA/SMC-TutorService/internal/api/views"
	"github.com/m04kA/SMC-TutorService/pkg/logger"
)

func TestServeHTTP(t *testing.T) {
	renderer, err := views.New()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	NewHandler(renderer, logger.NewNop()).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/request_done/", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), handlers.MsgForbidden)
}
