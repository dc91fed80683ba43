package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"studyroom/config"
	"studyroom/infras/metrics"
)

func TestRecorderExposesCounters(t *testing.T) {
	recorder := metrics.New(&config.Config{})

	recorder.ObserveHTTP(http.MethodPost, "/submit-booking", http.StatusSeeOther, 20*time.Millisecond)
	recorder.BookingSubmitted(metrics.OutcomeConflict)
	recorder.BookingCancelled(true)
	recorder.NotificationDelivered(metrics.ResultSent)

	rec := httptest.NewRecorder()
	recorder.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, `studyroom_http_requests_total{method="POST",route="/submit-booking",status="303"} 1`)
	assert.Contains(t, body, `studyroom_booking_submissions_total{outcome="conflict"} 1`)
	assert.Contains(t, body, `studyroom_booking_cancellations_total{actor="staff"} 1`)
	assert.Contains(t, body, `studyroom_notifications_total{result="sent"} 1`)
}
