package main

import (
	"studyroom/config"
	"studyroom/di"
	_ "studyroom/docs"
	"studyroom/shared/logger"
)

// @title Study Room Booking API
// @version 1.0
// @description Rooms, bookings and staff analytics for the study room booking service.
// @BasePath /
// @securityDefinitions.apikey StaffSession
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
