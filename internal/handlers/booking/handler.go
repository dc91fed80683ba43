package booking

import (
	"net/http"
	"net/url"

	"studyroom/infras/otel"
	"studyroom/internal/domains/booking/model/dto"
	"studyroom/internal/domains/booking/service"
	roomModel "studyroom/internal/domains/room/model"
	roomService "studyroom/internal/domains/room/service"
	"studyroom/internal/views"
	"studyroom/shared/constant"
	gDto "studyroom/shared/dto"
	"studyroom/shared/failure"
	"studyroom/shared/validator"
	"studyroom/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	formEmail = "email"
	formRoom  = "room"
	formDate  = "date"
	formStart = "start"
	formEnd   = "end"

	pathHistory        = "/history"
	pathStaffDashboard = "/staff-dashboard"
)

type Handler struct {
	service service.Booking
	rooms   roomService.Room
	views   views.Renderer
	otel    otel.Otel
}

func New(service service.Booking, rooms roomService.Room, views views.Renderer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		rooms:   rooms,
		views:   views,
		otel:    otel,
	}
}

func (handler *Handler) Pages(router chi.Router) {
	router.Get("/book", handler.BookingForm)
	router.Post("/submit-booking", handler.SubmitBooking)
	router.Get("/history", handler.History)
	router.Get("/cancel/{id}", handler.CancelBooking)
}

func (handler *Handler) StaffPages(router chi.Router) {
	router.Get("/staff/cancel/{id}", handler.StaffCancelBooking)
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
	})
}

// BookingForm renders the booking form, optionally with a room preselected.
func (handler *Handler) BookingForm(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookingForm")
	defer scope.End()

	page := views.BookingForm{
		Form: dto.SubmitBookingRequest{RoomID: r.URL.Query().Get(constant.QueryParamRoomID)},
	}

	handler.renderForm(w, r.WithContext(ctx), http.StatusOK, page)
}

// SubmitBooking books the room or shows the next free slot when the request collides.
func (handler *Handler) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitBooking")
	defer scope.End()

	r = r.WithContext(ctx)

	req := dto.SubmitBookingRequest{
		Email:  r.PostFormValue(formEmail),
		RoomID: r.PostFormValue(formRoom),
		Date:   r.PostFormValue(formDate),
		Start:  r.PostFormValue(formStart),
		End:    r.PostFormValue(formEnd),
	}

	res, err := handler.service.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)

		if failure.GetCode(err) >= http.StatusInternalServerError {
			log.Error().Err(err).Msg("failed to submit booking")
			handler.renderError(w, r, err)

			return
		}

		handler.renderForm(w, r, failure.GetCode(err), views.BookingForm{Form: req, Error: failure.GetMessage(err)})

		return
	}

	if !res.Accepted() {
		scope.AddEvent("Booking conflict, next slot suggested")
		handler.renderForm(w, r, http.StatusConflict, views.BookingForm{Form: req, Conflict: res.Conflict})

		return
	}

	response.Redirect(w, r, historyURL(constant.MessageSuccess, res.Booking.Email))
}

// History lists the bookings made with the email in the query string.
func (handler *Handler) History(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".History")
	defer scope.End()

	r = r.WithContext(ctx)

	page := views.History{
		Email: r.URL.Query().Get(constant.QueryParamEmail),
		Msg:   r.URL.Query().Get(constant.QueryParamMessage),
	}

	bookings, err := handler.service.History(ctx, page.Email)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking history")
		handler.renderError(w, r, err)

		return
	}

	page.Bookings = bookings

	handler.views.Render(w, r, http.StatusOK, views.PageHistory, "My bookings", page)
}

// CancelBooking removes a booking and returns to its owner's history. Unknown ids change nothing.
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if validator.ValidateVar(id, "uuid") != nil {
		response.Redirect(w, r, pathHistory)

		return
	}

	email, err := handler.service.Cancel(ctx, id)
	if err != nil {
		if failure.IsNotFound(err) {
			response.Redirect(w, r, pathHistory)

			return
		}

		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", id).Msg("failed to cancel booking")
		handler.renderError(w, r.WithContext(ctx), err)

		return
	}

	response.Redirect(w, r, historyURL(constant.MessageDeleted, email))
}

// StaffCancelBooking removes any booking and returns to the dashboard.
func (handler *Handler) StaffCancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StaffCancelBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if validator.ValidateVar(id, "uuid") != nil {
		response.Redirect(w, r, pathStaffDashboard)

		return
	}

	if err := handler.service.StaffCancel(ctx, id); err != nil && !failure.IsNotFound(err) {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", id).Msg("failed to cancel booking")
		handler.renderError(w, r.WithContext(ctx), err)

		return
	}

	response.Redirect(w, r, pathStaffDashboard)
}

// CreateBooking handles a booking submitted as JSON.
// @Summary Book a room
// @Description Books the room when the interval is free. A collision answers 409 with the next free slot.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.SubmitBookingRequest true "Booking request"
// @Success 201 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Data[dto.SuggestionResponse]
// @Failure 500 {object} response.Error
// @Router /api/v1/bookings [post]
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.SubmitBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if !res.Accepted() {
		response.WithJSON(w, http.StatusConflict, res.Conflict)

		return
	}

	response.WithJSON(w, http.StatusCreated, res.Booking)
}

// GetBookings lists the bookings made with an email.
// @Summary Booking history
// @Description Lists the bookings made with the email, newest date first.
// @Tags Booking
// @Produce json
// @Param email query string true "Visitor email"
// @Success 200 {object} response.Data[[]dto.BookingResponse]
// @Failure 500 {object} response.Error
// @Router /api/v1/bookings [get]
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	bookings, err := handler.service.History(ctx, r.URL.Query().Get(constant.QueryParamEmail))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if bookings == nil {
		bookings = []dto.BookingResponse{}
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

func (handler *Handler) renderForm(w http.ResponseWriter, r *http.Request, status int, page views.BookingForm) {
	rooms, err := handler.rooms.GetAll(r.Context(),
		gDto.QueryParams{SortBy: roomModel.FieldRoomNumber, SortDir: gDto.SortDirAsc}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to list rooms for booking form")
		handler.renderError(w, r, err)

		return
	}

	page.Rooms = rooms.Rooms

	handler.views.Render(w, r, status, views.PageBooking, "Book a room", page)
}

func (handler *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	handler.views.Render(w, r, failure.GetCode(err), views.PageError, "Error", views.Error{Message: failure.GetMessage(err)})
}

func historyURL(msg, email string) string {
	return pathHistory + "?" + url.Values{
		constant.QueryParamMessage: {msg},
		constant.QueryParamEmail:   {email},
	}.Encode()
}
