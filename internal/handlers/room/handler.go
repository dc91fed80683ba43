package room

import (
	"errors"
	"net/http"
	"strings"

	"studyroom/infras/otel"
	bookingDto "studyroom/internal/domains/booking/model/dto"
	bookingService "studyroom/internal/domains/booking/service"
	"studyroom/internal/domains/room/model"
	"studyroom/internal/domains/room/model/dto"
	"studyroom/internal/domains/room/service"
	"studyroom/internal/views"
	"studyroom/shared"
	"studyroom/shared/constant"
	gDto "studyroom/shared/dto"
	"studyroom/shared/failure"
	"studyroom/shared/validator"
	"studyroom/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	formRoomNumber = "room_number"
	formCapacity   = "capacity"
	formType       = "type"
	formStatus     = "status"
	formImage      = "image"
	formDate       = "date"
	formStart      = "start"
	formEnd        = "end"

	queryStart       = "start_time"
	queryEnd         = "end_time"
	queryMinCapacity = "min_capacity"

	pathManageRooms = "/manage-rooms"
)

// ScheduleResponse is the body served by GetRoomSchedule.
type ScheduleResponse = bookingDto.RoomScheduleResponse

type Handler struct {
	service  service.Room
	bookings bookingService.Booking
	views    views.Renderer
	otel     otel.Otel
}

func New(service service.Room, bookings bookingService.Booking, views views.Renderer, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		bookings: bookings,
		views:    views,
		otel:     otel,
	}
}

func (handler *Handler) Pages(router chi.Router) {
	router.Get("/", handler.Index)
	router.Get("/rooms", handler.Rooms)
	router.Get("/room/{id}", handler.RoomDetails)
	router.Get("/filter", handler.FilterForm)
	router.Post("/filter", handler.FilterRooms)
}

func (handler *Handler) StaffPages(router chi.Router) {
	router.Get("/manage-rooms", handler.ManageRooms)
	router.Get("/add-room", handler.AddRoomForm)
	router.Post("/add-room", handler.AddRoom)
	router.Get("/edit-room/{id}", handler.EditRoomForm)
	router.Post("/edit-room/{id}", handler.EditRoom)
	router.Get("/delete-room/{id}", handler.DeleteRoom)
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/available", handler.GetAvailableRooms)
		routerGroup.Get("/{id}", handler.GetRoomByID)
		routerGroup.Get("/{id}/schedule", handler.GetRoomSchedule)
	})
}

func (handler *Handler) Index(w http.ResponseWriter, r *http.Request) {
	handler.views.Render(w, r, http.StatusOK, views.PageIndex, "Home", nil)
}

// Rooms renders every room with its live status.
func (handler *Handler) Rooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Rooms")
	defer scope.End()

	r = r.WithContext(ctx)

	board, err := handler.bookings.Board(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build rooms board")
		handler.renderError(w, r, err)

		return
	}

	handler.views.Render(w, r, http.StatusOK, views.PageRooms, "Rooms", board)
}

// RoomDetails renders one room with its schedule for ?date=, today by default.
func (handler *Handler) RoomDetails(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RoomDetails")
	defer scope.End()

	r = r.WithContext(ctx)

	id := chi.URLParam(r, constant.RequestParamID)
	if validator.ValidateVar(id, "uuid") != nil {
		handler.renderError(w, r, service.ErrRoomNotFound)

		return
	}

	schedule, err := handler.bookings.Schedule(ctx, id, r.URL.Query().Get(constant.QueryParamDate))
	if err != nil {
		scope.TraceError(err)
		handler.renderError(w, r, err)

		return
	}

	handler.views.Render(w, r, http.StatusOK, views.PageRoomDetails, "Room "+schedule.Room.RoomNumber, schedule)
}

func (handler *Handler) FilterForm(w http.ResponseWriter, r *http.Request) {
	handler.views.Render(w, r, http.StatusOK, views.PageFilter, "Find a room", views.Filter{})
}

// FilterRooms lists rooms with enough seats that are free for the whole interval.
func (handler *Handler) FilterRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".FilterRooms")
	defer scope.End()

	r = r.WithContext(ctx)

	page := views.Filter{
		Date:  strings.TrimSpace(r.PostFormValue(formDate)),
		Start: strings.TrimSpace(r.PostFormValue(formStart)),
		End:   strings.TrimSpace(r.PostFormValue(formEnd)),
	}

	if raw := r.PostFormValue(formCapacity); raw != "" {
		capacity, err := shared.ConvertStringToInt(raw)
		if err != nil {
			page.Error = "Minimum capacity must be a number."
			handler.views.Render(w, r, http.StatusBadRequest, views.PageFilter, "Find a room", page)

			return
		}

		page.MinCapacity = capacity
	}

	rooms, err := handler.service.Available(ctx, dto.AvailabilityFilter{
		Date:        page.Date,
		Start:       page.Start,
		End:         page.End,
		MinCapacity: page.MinCapacity,
	})
	if err != nil {
		scope.TraceError(err)

		if failure.GetCode(err) >= http.StatusInternalServerError {
			log.Error().Err(err).Msg("failed to filter rooms")
			handler.renderError(w, r, err)

			return
		}

		page.Error = failure.GetMessage(err)
		handler.views.Render(w, r, failure.GetCode(err), views.PageFilter, "Find a room", page)

		return
	}

	handler.views.Render(w, r, http.StatusOK, views.PageFilterResults, "Available rooms", views.FilterResults{Filter: page, Rooms: rooms})
}

// ManageRooms renders the staff room list.
func (handler *Handler) ManageRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ManageRooms")
	defer scope.End()

	r = r.WithContext(ctx)

	rooms, err := handler.service.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldRoomNumber, SortDir: gDto.SortDirAsc}, gDto.FilterGroup{})
	if err != nil {
		scope.TraceError(err)
		handler.renderError(w, r, err)

		return
	}

	handler.views.Render(w, r, http.StatusOK, views.PageManageRooms, "Manage rooms", rooms.Rooms)
}

func (handler *Handler) AddRoomForm(w http.ResponseWriter, r *http.Request) {
	handler.views.Render(w, r, http.StatusOK, views.PageRoomForm, "Add a room", views.RoomForm{})
}

// AddRoom creates a room from the multipart form, photo optional.
func (handler *Handler) AddRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddRoom")
	defer scope.End()

	r = r.WithContext(ctx)

	form, page, err := parseRoomForm(r)
	if err == nil {
		defer closeImage(form)

		_, err = handler.service.Create(ctx, form)
	}

	if err != nil {
		scope.TraceError(err)
		handler.formFailed(w, r, page, err)

		return
	}

	scope.AddEvent("Room created")
	response.Redirect(w, r, pathManageRooms)
}

// EditRoomForm renders the edit page. Unknown rooms go back to the room list.
func (handler *Handler) EditRoomForm(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".EditRoomForm")
	defer scope.End()

	r = r.WithContext(ctx)

	id := chi.URLParam(r, constant.RequestParamID)
	if validator.ValidateVar(id, "uuid") != nil {
		response.Redirect(w, r, pathManageRooms)

		return
	}

	room, err := handler.service.Get(ctx, id)
	if err != nil {
		if failure.IsNotFound(err) {
			response.Redirect(w, r, pathManageRooms)

			return
		}

		scope.TraceError(err)
		handler.renderError(w, r, err)

		return
	}

	handler.views.Render(w, r, http.StatusOK, views.PageRoomForm, "Edit room", views.RoomForm{
		ID:         room.ID,
		RoomNumber: room.RoomNumber,
		Capacity:   room.Capacity,
		Type:       room.Type,
		Status:     room.Status,
		Image:      room.Image,
	})
}

// EditRoom overwrites a room. Unknown rooms go back to the room list.
func (handler *Handler) EditRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".EditRoom")
	defer scope.End()

	r = r.WithContext(ctx)

	id := chi.URLParam(r, constant.RequestParamID)
	if validator.ValidateVar(id, "uuid") != nil {
		response.Redirect(w, r, pathManageRooms)

		return
	}

	form, page, err := parseRoomForm(r)
	page.ID = id

	if err == nil {
		defer closeImage(form)

		err = handler.service.Update(ctx, id, form)
	}

	if err != nil {
		if failure.IsNotFound(err) {
			response.Redirect(w, r, pathManageRooms)

			return
		}

		scope.TraceError(err)
		handler.formFailed(w, r, page, err)

		return
	}

	scope.AddEvent("Room updated")
	response.Redirect(w, r, pathManageRooms)
}

// DeleteRoom removes a room together with its bookings. Unknown rooms are ignored.
func (handler *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if validator.ValidateVar(id, "uuid") != nil {
		response.Redirect(w, r, pathManageRooms)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil && !failure.IsNotFound(err) {
		scope.TraceError(err)
		log.Error().Err(err).Str("room_id", id).Msg("failed to delete room")
		handler.renderError(w, r.WithContext(ctx), err)

		return
	}

	response.Redirect(w, r, pathManageRooms)
}

// GetRooms retrieves rooms with optional filtering and pagination.
// @Summary List rooms
// @Description Lists rooms ordered by room number unless sort_by says otherwise.
// @Tags Room
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param type query string false "Filter by room type"
// @Param min_capacity query integer false "Minimum number of seats"
// @Success 200 {object} response.Data[dto.GetRoomsResponse]
// @Failure 500 {object} response.Error
// @Router /api/v1/rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.RestrictSort(model.FieldRoomNumber, model.FieldCapacity, model.FieldType)

	if queryParams.SortBy == "" {
		queryParams.SortBy = model.FieldRoomNumber
	}

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if roomType := r.URL.Query().Get(model.FieldType); roomType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    roomType,
			Table:    model.TableName,
		})
	}

	if minCapacity, err := shared.ConvertStringToInt(r.URL.Query().Get(queryMinCapacity)); err == nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCapacity,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    minCapacity,
			Table:    model.TableName,
		})
	}

	rooms, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoomByID retrieves one room.
// @Summary Get a room
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/v1/rooms/{id} [get]
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if validator.ValidateVar(id, "uuid") != nil {
		response.WithError(w, service.ErrRoomNotFound)

		return
	}

	room, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, room)
}

// GetRoomSchedule retrieves a room's bookings for a date.
// @Summary Room schedule
// @Description Lists the room's bookings on date (today by default) and, for today, whether it is in use now.
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Param date query string false "Date as YYYY-MM-DD"
// @Success 200 {object} response.Data[ScheduleResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/v1/rooms/{id}/schedule [get]
func (handler *Handler) GetRoomSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomSchedule")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if validator.ValidateVar(id, "uuid") != nil {
		response.WithError(w, service.ErrRoomNotFound)

		return
	}

	schedule, err := handler.bookings.Schedule(ctx, id, r.URL.Query().Get(constant.QueryParamDate))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, schedule)
}

// GetAvailableRooms lists rooms free for a whole interval.
// @Summary Available rooms
// @Tags Room
// @Produce json
// @Param date query string true "Date as YYYY-MM-DD"
// @Param start_time query string true "Start as HH:MM"
// @Param end_time query string true "End as HH:MM, 24:00 allowed"
// @Param min_capacity query integer false "Minimum number of seats"
// @Success 200 {object} response.Data[[]dto.RoomResponse]
// @Failure 400 {object} response.Error
// @Router /api/v1/rooms/available [get]
func (handler *Handler) GetAvailableRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableRooms")
	defer scope.End()

	query := r.URL.Query()

	filter := dto.AvailabilityFilter{
		Date:  query.Get(constant.QueryParamDate),
		Start: query.Get(queryStart),
		End:   query.Get(queryEnd),
	}

	if minCapacity, err := shared.ConvertStringToInt(query.Get(queryMinCapacity)); err == nil {
		filter.MinCapacity = minCapacity
	}

	rooms, err := handler.service.Available(ctx, filter)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if rooms == nil {
		rooms = []dto.RoomResponse{}
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

func (handler *Handler) formFailed(w http.ResponseWriter, r *http.Request, page views.RoomForm, err error) {
	if failure.GetCode(err) >= http.StatusInternalServerError {
		log.Error().Err(err).Msg("failed to save room")
		handler.renderError(w, r, err)

		return
	}

	page.Error = failure.GetMessage(err)
	title := "Add a room"

	if page.Editing() {
		title = "Edit room"
	}

	handler.views.Render(w, r, failure.GetCode(err), views.PageRoomForm, title, page)
}

func (handler *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	handler.views.Render(w, r, failure.GetCode(err), views.PageError, "Error", views.Error{Message: failure.GetMessage(err)})
}

// parseRoomForm reads the room form and validates it. The returned page echoes
// the submitted values for redisplay.
func parseRoomForm(r *http.Request) (dto.RoomForm, views.RoomForm, error) {
	var form dto.RoomForm

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return form, views.RoomForm{}, failure.BadRequest(err)
	}

	form.RoomNumber = strings.TrimSpace(r.FormValue(formRoomNumber))
	form.Type = strings.TrimSpace(r.FormValue(formType))
	form.Status = strings.TrimSpace(r.FormValue(formStatus))

	page := views.RoomForm{RoomNumber: form.RoomNumber, Type: form.Type, Status: form.Status}

	capacity, err := shared.ConvertStringToInt(r.FormValue(formCapacity))
	if err != nil {
		return form, page, failure.BadRequestFromString("Capacity must be a number.")
	}

	form.Capacity = capacity
	page.Capacity = capacity

	if file, header, err := r.FormFile(formImage); err == nil {
		form.Image = header
		form.ImageFile = file
	}

	if err := validator.ValidateStruct(&form); err != nil {
		closeImage(form)

		return form, page, err
	}

	return form, page, nil
}

func closeImage(form dto.RoomForm) {
	if form.ImageFile != nil {
		_ = form.ImageFile.Close()
	}
}
