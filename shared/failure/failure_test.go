package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"studyroom/shared/failure"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{name: "bad request", err: failure.BadRequest(errors.New("bad input")), code: http.StatusBadRequest, message: "bad input"},
		{name: "bad request from string", err: failure.BadRequestFromString("Invalid time range."), code: http.StatusBadRequest, message: "Invalid time range."},
		{name: "unauthorized", err: failure.Unauthorized("session expired"), code: http.StatusUnauthorized, message: "session expired"},
		{name: "not found", err: failure.NotFound("room not found"), code: http.StatusNotFound, message: "room not found"},
		{name: "conflict", err: failure.Conflict("room number already exists"), code: http.StatusConflict, message: "room number already exists"},
		{name: "login required", err: failure.LoginRequired, code: http.StatusUnauthorized, message: "Please log in to continue."},
		{name: "invalid login", err: failure.InvalidLogin, code: http.StatusUnauthorized, message: "Invalid username or password."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, failure.GetCode(tt.err))
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

func TestNilPassthrough(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
}

func TestGetCode(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", failure.NotFound("booking not found"))

	assert.Equal(t, http.StatusNotFound, failure.GetCode(wrapped))
	assert.True(t, failure.IsNotFound(wrapped))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("plain")))
}

func TestGetMessage(t *testing.T) {
	assert.Equal(t, "Invalid date.", failure.GetMessage(failure.InvalidDate))
	assert.Equal(t, "Internal Server Error", failure.GetMessage(&failure.Failure{Code: http.StatusBadGateway, Message: "pq: connection refused"}))
	assert.Equal(t, "Internal Server Error", failure.GetMessage(errors.New("plain")))
}
