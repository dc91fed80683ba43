package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"studyroom/shared/constant"
)

func TestHealthDuringShutdown(t *testing.T) {
	for _, state := range []ServerState{ServerStateInGracePeriod, ServerStateInCleanupPeriod} {
		h := &HTTP{State: state}

		rec := httptest.NewRecorder()
		h.health(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), constant.ResponseErrorPrepareShutdown)
	}
}
