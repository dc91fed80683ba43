package notification

import (
	"fmt"
	"strings"

	"studyroom/infras/mailer"
	"studyroom/shared/wallclock"
)

const ConfirmationSubject = "Your Study Room Booking Confirmation"

// BookingConfirmed is published once a booking is stored. Times are "HH:MM".
type BookingConfirmed struct {
	BookingID  string `json:"booking_id"`
	Email      string `json:"email"`
	RoomNumber string `json:"room_number"`
	Date       string `json:"date"`
	Start      string `json:"start_time"`
	End        string `json:"end_time"`
}

func (e BookingConfirmed) Mail() mailer.Mail {
	var body strings.Builder

	body.WriteString("Hello,\n\n")
	body.WriteString("Your booking has been confirmed with the following details:\n\n")
	fmt.Fprintf(&body, "Room: %s\n", e.RoomNumber)
	fmt.Fprintf(&body, "Date: %s\n", e.Date)
	fmt.Fprintf(&body, "Time: %s → %s\n\n", display(e.Start), display(e.End))
	body.WriteString("Thank you for using the Study Room Tracker.\n")

	return mailer.Mail{
		To:      e.Email,
		Subject: ConfirmationSubject,
		Body:    body.String(),
	}
}

func display(clock string) string {
	formatted, err := wallclock.ToDisplay(clock)
	if err != nil {
		return clock
	}

	return formatted
}
