package analytics

import (
	"net/http"

	"studyroom/infras/otel"
	"studyroom/internal/domains/analytics/service"
	"studyroom/internal/views"
	"studyroom/shared/constant"
	"studyroom/shared/failure"
	"studyroom/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Analytics
	views   views.Renderer
	otel    otel.Otel
}

func New(service service.Analytics, views views.Renderer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		views:   views,
		otel:    otel,
	}
}

func (handler *Handler) StaffPages(router chi.Router) {
	router.Get("/staff-dashboard", handler.DashboardPage)
	router.Get("/analytics", handler.ReportPage)
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/analytics", func(routerGroup chi.Router) {
		routerGroup.Get("/dashboard", handler.Dashboard)
		routerGroup.Get("/report", handler.Report)
	})
}

func (handler *Handler) DashboardPage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DashboardPage")
	defer scope.End()

	r = r.WithContext(ctx)

	dashboard, err := handler.service.Dashboard(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build staff dashboard")
		handler.renderError(w, r, err)

		return
	}

	handler.views.Render(w, r, http.StatusOK, views.PageStaffDashboard, "Staff dashboard", dashboard)
}

func (handler *Handler) ReportPage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReportPage")
	defer scope.End()

	r = r.WithContext(ctx)

	report, err := handler.service.Report(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build analytics report")
		handler.renderError(w, r, err)

		return
	}

	handler.views.Render(w, r, http.StatusOK, views.PageAnalytics, "Analytics", report)
}

// Dashboard returns today's headline figures.
// @Summary Staff dashboard figures
// @Tags Analytics
// @Produce json
// @Security StaffSession
// @Success 200 {object} response.Data[dto.DashboardResponse]
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/v1/analytics/dashboard [get]
func (handler *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Dashboard")
	defer scope.End()

	dashboard, err := handler.service.Dashboard(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, dashboard)
}

// Report returns the usage aggregates.
// @Summary Usage report
// @Description Bookings and hours per room, busiest start times and bookings per day.
// @Tags Analytics
// @Produce json
// @Security StaffSession
// @Success 200 {object} response.Data[dto.ReportResponse]
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/v1/analytics/report [get]
func (handler *Handler) Report(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Report")
	defer scope.End()

	report, err := handler.service.Report(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, report)
}

func (handler *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	handler.views.Render(w, r, failure.GetCode(err), views.PageError, "Error", views.Error{Message: failure.GetMessage(err)})
}
