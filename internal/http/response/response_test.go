package response

import (
	"encoding/json/v2"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/streamlens/streamlens-server/internal/errors"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestSuccess(t *testing.T) {
	rec := httptest.NewRecorder()

	Success(rec, map[string]int{"total": 3}, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Empty(t, env.Error)
}

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()

	Error(rec, http.StatusBadRequest, "bad filter", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "bad filter", env.Error)
}

func TestTooManyRequests(t *testing.T) {
	rec := httptest.NewRecorder()

	TooManyRequests(rec, "rate limit exceeded", nil)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "rate limit exceeded", env.Error)
}

func TestHandleError_DomainError(t *testing.T) {
	rec := httptest.NewRecorder()

	HandleError(rec, domainerrors.NotFound("title not found"), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "title not found", env.Error)
}

func TestHandleError_WrappedDomainError(t *testing.T) {
	rec := httptest.NewRecorder()
	err := domainerrors.Wrap(assert.AnError, domainerrors.CodeUnavailable, "catalog unreadable")

	HandleError(rec, err, nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleError_UnknownErrorIs500(t *testing.T) {
	rec := httptest.NewRecorder()

	HandleError(rec, assert.AnError, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "internal server error", env.Error)
}
