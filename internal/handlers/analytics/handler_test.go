package analytics_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"studyroom/infras/otel/mocks"
	"studyroom/internal/domains/analytics/model/dto"
	analyticsMocks "studyroom/internal/domains/analytics/service/mocks"
	bookingDto "studyroom/internal/domains/booking/model/dto"
	"studyroom/internal/handlers/analytics"
	"studyroom/internal/views"
)

func newRouter(t *testing.T) (*analyticsMocks.MockAnalytics, chi.Router) {
	ctrl := gomock.NewController(t)
	service := analyticsMocks.NewMockAnalytics(ctrl)

	router := chi.NewRouter()
	handler := analytics.New(service, views.New(), mocks.NewOtel())
	handler.StaffPages(router)
	router.Route("/api/v1", handler.Router)

	return service, router
}

func serve(router chi.Router, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	return rec
}

func TestDashboardPage(t *testing.T) {
	service, router := newRouter(t)
	service.EXPECT().Dashboard(gomock.Any()).Return(dto.DashboardResponse{
		BookingsToday: 3,
		ActiveNow:     1,
		RoomsCount:    4,
		MostBooked:    &dto.RoomTotalResponse{RoomNumber: "101", Total: 7},
		Recent:        []bookingDto.BookingResponse{{ID: "b-1", RoomNumber: "102", Email: "sam@example.com"}},
	}, nil)

	rec := serve(router, "/staff-dashboard")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "101 (7)")
	assert.Contains(t, rec.Body.String(), "/staff/cancel/b-1")
}

func TestReportPage(t *testing.T) {
	service, router := newRouter(t)
	service.EXPECT().Report(gomock.Any()).Return(dto.ReportResponse{
		HoursPerRoom: []dto.RoomHoursResponse{{RoomNumber: "101", Hours: 2.5}},
		StartTimes:   []dto.StartTotalResponse{{Start: "10:00", StartDisplay: "10:00 AM", Total: 2}},
	}, nil)

	rec := serve(router, "/analytics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<td>2.5</td>")
	assert.Contains(t, rec.Body.String(), "10:00 AM")
}

func TestPagesFailure(t *testing.T) {
	service, router := newRouter(t)
	service.EXPECT().Dashboard(gomock.Any()).Return(dto.DashboardResponse{}, errors.New("db down"))
	service.EXPECT().Report(gomock.Any()).Return(dto.ReportResponse{}, errors.New("db down"))

	assert.Equal(t, http.StatusInternalServerError, serve(router, "/staff-dashboard").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(router, "/analytics").Code)
}

func TestAPI(t *testing.T) {
	service, router := newRouter(t)
	service.EXPECT().Dashboard(gomock.Any()).Return(dto.DashboardResponse{BookingsToday: 3}, nil)
	service.EXPECT().Report(gomock.Any()).Return(dto.ReportResponse{}, errors.New("db down"))

	dashboard := serve(router, "/api/v1/analytics/dashboard")
	assert.Equal(t, http.StatusOK, dashboard.Code)
	assert.Contains(t, dashboard.Body.String(), `"bookings_today":3`)

	report := serve(router, "/api/v1/analytics/report")
	assert.Equal(t, http.StatusInternalServerError, report.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, report.Body.String())
}
