package dto

import (
	"studyroom/internal/domains/analytics/model"
	bookingDto "studyroom/internal/domains/booking/model/dto"
	"studyroom/shared/wallclock"
)

type RoomTotalResponse struct {
	RoomNumber string `json:"room_number"`
	Total      int    `json:"total"`
}

type RoomHoursResponse struct {
	RoomNumber string  `json:"room_number"`
	Hours      float64 `json:"hours"`
}

type StartTotalResponse struct {
	Start        string `json:"start"`
	StartDisplay string `json:"start_display"`
	Total        int    `json:"total"`
}

type DayTotalResponse struct {
	Date  string `json:"date"`
	Total int    `json:"total"`
}

type DashboardResponse struct {
	BookingsToday int                          `json:"bookings_today"`
	ActiveNow     int                          `json:"active_now"`
	RoomsCount    int                          `json:"rooms_count"`
	MostBooked    *RoomTotalResponse           `json:"most_booked,omitempty"`
	Recent        []bookingDto.BookingResponse `json:"recent"`
}

type ReportResponse struct {
	BookingsPerRoom []RoomTotalResponse  `json:"bookings_per_room"`
	HoursPerRoom    []RoomHoursResponse  `json:"hours_per_room"`
	StartTimes      []StartTotalResponse `json:"start_times"`
	BookingsPerDay  []DayTotalResponse   `json:"bookings_per_day"`
}

func FromRoomTotals(rows []model.RoomTotal) []RoomTotalResponse {
	res := make([]RoomTotalResponse, len(rows))
	for i, row := range rows {
		res[i] = RoomTotalResponse{RoomNumber: row.RoomNumber, Total: row.Total}
	}

	return res
}

func FromRoomHours(rows []model.RoomHours) []RoomHoursResponse {
	res := make([]RoomHoursResponse, len(rows))
	for i, row := range rows {
		res[i] = RoomHoursResponse{RoomNumber: row.RoomNumber, Hours: row.TotalHours}
	}

	return res
}

func FromStartTotals(rows []model.StartTotal) []StartTotalResponse {
	res := make([]StartTotalResponse, len(rows))
	for i, row := range rows {
		res[i] = StartTotalResponse{
			Start:        wallclock.FormatMinutes(row.StartMinute),
			StartDisplay: wallclock.DisplayMinutes(row.StartMinute),
			Total:        row.Total,
		}
	}

	return res
}

func FromDayTotals(rows []model.DayTotal) []DayTotalResponse {
	res := make([]DayTotalResponse, len(rows))
	for i, row := range rows {
		res[i] = DayTotalResponse{Date: row.BookingDate.String(), Total: row.Total}
	}

	return res
}
