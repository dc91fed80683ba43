package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"studyroom/config"
	"studyroom/infras/metrics"
	"studyroom/infras/otel/mocks"
	analyticsMocks "studyroom/internal/domains/analytics/service/mocks"
	authMocks "studyroom/internal/domains/auth/service/mocks"
	bookingMocks "studyroom/internal/domains/booking/service/mocks"
	roomMocks "studyroom/internal/domains/room/service/mocks"
	"studyroom/internal/handlers/analytics"
	"studyroom/internal/handlers/auth"
	"studyroom/internal/handlers/booking"
	"studyroom/internal/handlers/room"
	"studyroom/internal/views"
	"studyroom/transport/http/middleware"
	"studyroom/transport/http/router"
)

func newMux(t *testing.T) *chi.Mux {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Session.CookieName = "staff_session"
	cfg.Metrics.Enable = true
	cfg.Metrics.Path = "/metrics"

	otel := mocks.NewOtel()
	renderer := views.New()
	recorder := metrics.New(cfg)

	authService := authMocks.NewMockAuth(ctrl)
	roomService := roomMocks.NewMockRoom(ctrl)
	bookingService := bookingMocks.NewMockBooking(ctrl)

	r := router.New(
		cfg,
		router.DomainHandlers{
			Auth:      auth.New(authService, cfg, renderer, otel),
			Room:      room.New(roomService, bookingService, renderer, otel),
			Booking:   booking.New(bookingService, roomService, renderer, otel),
			Analytics: analytics.New(analyticsMocks.NewMockAnalytics(ctrl), renderer, otel),
		},
		router.Middlewares{
			App:   middleware.NewAppMiddleware(otel, cfg, nil, recorder),
			Staff: middleware.NewStaffMiddleware(authService, otel, cfg),
		},
		recorder,
	)

	mux := chi.NewRouter()
	r.SetupRoutes(mux)

	return mux
}

func TestSetupRoutes(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		target   string
		status   int
		location string
	}{
		{name: "home page is public", method: http.MethodGet, target: "/", status: http.StatusOK},
		{name: "filter page is public", method: http.MethodGet, target: "/filter", status: http.StatusOK},
		{name: "login page is public", method: http.MethodGet, target: "/staff-login", status: http.StatusOK},
		{name: "room management needs a session", method: http.MethodGet, target: "/manage-rooms", status: http.StatusSeeOther, location: "/staff-login"},
		{name: "adding a room needs a session", method: http.MethodPost, target: "/add-room", status: http.StatusSeeOther, location: "/staff-login"},
		{name: "dashboard needs a session", method: http.MethodGet, target: "/staff-dashboard", status: http.StatusSeeOther, location: "/staff-login"},
		{name: "analytics needs a session", method: http.MethodGet, target: "/analytics", status: http.StatusSeeOther, location: "/staff-login"},
		{name: "staff cancellation needs a session", method: http.MethodGet, target: "/staff/cancel/x", status: http.StatusSeeOther, location: "/staff-login"},
		{name: "analytics API needs a session", method: http.MethodGet, target: "/api/v1/analytics/report", status: http.StatusUnauthorized},
		{name: "metrics are exposed", method: http.MethodGet, target: "/metrics", status: http.StatusOK},
		{name: "unknown path", method: http.MethodGet, target: "/nowhere", status: http.StatusNotFound},
	}

	mux := newMux(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.location, rec.Header().Get("Location"))
		})
	}
}
