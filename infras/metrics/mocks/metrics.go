package mocks

import (
	"net/http"
	"time"

	"studyroom/infras/metrics"
)

type recorderImpl struct{}

func (r *recorderImpl) ObserveHTTP(_, _ string, _ int, _ time.Duration) {}
func (r *recorderImpl) BookingSubmitted(_ string) {}
func (r *recorderImpl) BookingCancelled(_ bool) {}
func (r *recorderImpl) NotificationDelivered(_ string) {}

func (r *recorderImpl) Handler() http.Handler {
	return http.NotFoundHandler()
}

// NewRecorder returns a recorder that drops every observation.
func NewRecorder() metrics.Recorder {
	return &recorderImpl{}
}
