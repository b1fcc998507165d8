package main

import (
	"frontdesk/config"
	"frontdesk/di"
	"frontdesk/shared/logger"
)

//	@title						Front Desk Gateway
//	@version					1.0
//	@description				Booking cards, payment reconciliation and agent propagation in front of the hotel backend.
//	@BasePath					/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
