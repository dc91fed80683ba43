package response_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"studyroom/shared/failure"
	"studyroom/transport/http/response"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "failure keeps its message",
			err:      failure.EndBeforeStart,
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"End time must be after start time."}`,
		},
		{
			name:     "internal error is masked",
			err:      errors.New("pq: connection refused"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusCreated, map[string]string{"id": "b-1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"id":"b-1"}}`, rec.Body.String())
}

func TestRedirect(t *testing.T) {
	rec := httptest.NewRecorder()

	response.Redirect(rec, httptest.NewRequest(http.MethodPost, "/submit-booking", nil), "/history?msg=success")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/history?msg=success", rec.Header().Get("Location"))
}
